package models

import "time"

type EmergencyTag string

const (
	TagClientDissatisfied EmergencyTag = "client_mecontent"
	TagTechnicalProblem   EmergencyTag = "probleme_technique"
	TagStockProblem       EmergencyTag = "probleme_stock"
	TagUnknownReply       EmergencyTag = "reponse_inconnue"
	TagEmergency          EmergencyTag = "urgence"
)

type tagInfo struct {
	label string
	icon  string
	color string
}

var tagTable = map[EmergencyTag]tagInfo{
	TagClientDissatisfied: {"Client mécontent", "alert-triangle", "text-orange-500"},
	TagTechnicalProblem:   {"Problème technique", "wrench", "text-red-500"},
	TagStockProblem:       {"Problème de stock", "package", "text-yellow-500"},
	TagUnknownReply:       {"Réponse inconnue", "help-circle", "text-blue-500"},
	TagEmergency:          {"Urgence", "alert-octagon", "text-red-600"},
}

func (t EmergencyTag) Valid() bool {
	_, ok := tagTable[t]
	return ok
}

func (t EmergencyTag) Label() string { return tagTable[t].label }
func (t EmergencyTag) Icon() string  { return tagTable[t].icon }
func (t EmergencyTag) Color() string { return tagTable[t].color }

type Message struct {
	Text      string    `bson:"text" json:"text"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	Sender    string    `bson:"sender,omitempty" json:"sender,omitempty"`
}

type Conversation struct {
	ID            string         `bson:"_id,omitempty" json:"id"`
	PropertyID    string         `bson:"propertyId" json:"propertyId"`
	GuestName     string         `bson:"guestName" json:"guestName"`
	CheckIn       time.Time      `bson:"checkIn" json:"checkIn"`
	CheckOut      time.Time      `bson:"checkOut" json:"checkOut"`
	EmergencyTags []EmergencyTag `bson:"emergencyTags" json:"emergencyTags"`
	Messages      []Message      `bson:"messages" json:"messages"`
}

// LastMessage returns the message at the final position of the thread.
func (c Conversation) LastMessage() (Message, bool) {
	if len(c.Messages) == 0 {
		return Message{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}
