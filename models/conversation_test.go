package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLastMessage(t *testing.T) {
	_, ok := Conversation{}.LastMessage()
	assert.False(t, ok)

	now := time.Now()
	c := Conversation{Messages: []Message{
		{Text: "first", Timestamp: now},
		{Text: "second", Timestamp: now.Add(time.Minute)},
		{Text: "third", Timestamp: now.Add(-time.Hour)},
	}}
	last, ok := c.LastMessage()
	assert.True(t, ok)
	assert.Equal(t, "third", last.Text)
}

func TestEmergencyTags(t *testing.T) {
	for _, tag := range []EmergencyTag{TagClientDissatisfied, TagTechnicalProblem, TagStockProblem, TagUnknownReply, TagEmergency} {
		assert.True(t, tag.Valid(), tag)
		assert.NotEmpty(t, tag.Label(), tag)
		assert.NotEmpty(t, tag.Icon(), tag)
	}
	assert.False(t, EmergencyTag("other").Valid())
	assert.Empty(t, EmergencyTag("other").Label())
	assert.Equal(t, "Urgence", TagEmergency.Label())
}

func TestPropertyClone(t *testing.T) {
	p := Property{ID: "1", HouseRules: []string{"a"}, Amenities: []string{"b"}, Photos: []string{"c"}}
	c := p.Clone()
	c.HouseRules[0] = "x"
	c.Photos[0] = "y"
	assert.Equal(t, "a", p.HouseRules[0])
	assert.Equal(t, "c", p.CoverPhoto())
	assert.Empty(t, Property{}.CoverPhoto())
}
