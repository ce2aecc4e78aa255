package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestIDFilterMatchesObjectIDAndHexString(t *testing.T) {
	oid := primitive.NewObjectID()

	filter := idFilter(oid.Hex())

	in, ok := filter["_id"].(bson.M)
	require.True(t, ok, "hex ids should use an $in filter")
	assert.Equal(t, bson.A{oid, oid.Hex()}, in["$in"])
}

func TestIDFilterKeepsPlainStringIDs(t *testing.T) {
	for _, id := range []string{"1", "c1", "p101", "not-a-hex-object-id"} {
		assert.Equal(t, bson.M{"_id": id}, idFilter(id), id)
	}
}

func TestIDFilterMarshalsToBSON(t *testing.T) {
	oid := primitive.NewObjectID()

	raw, err := bson.Marshal(idFilter(oid.Hex()))
	require.NoError(t, err)

	var decoded struct {
		ID struct {
			In []interface{} `bson:"$in"`
		} `bson:"_id"`
	}
	require.NoError(t, bson.Unmarshal(raw, &decoded))
	require.Len(t, decoded.ID.In, 2)
	assert.Equal(t, oid, decoded.ID.In[0])
	assert.Equal(t, oid.Hex(), decoded.ID.In[1])
}

func TestValidIDRejectsOperatorsAndBlanks(t *testing.T) {
	for _, id := range []string{"", "   ", "$where", "a/b", "a b"} {
		assert.ErrorIs(t, validID(id), ErrInvalidID, id)
	}
	assert.NoError(t, validID(primitive.NewObjectID().Hex()))
}
