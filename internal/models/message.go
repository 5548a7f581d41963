package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Broadcast is the reserved recipient meaning "every participant".
const Broadcast = "Todos"

// Message kinds. Status messages are written by the system on join and
// on eviction; clients may only post message and private_message.
const (
	TypeMessage = "message"
	TypePrivate = "private_message"
	TypeStatus  = "status"
)

// Message is a single chat message in the messages collection.
// A message addressed to Broadcast is visible to everyone; a
// private_message is visible only to its sender and its recipient.
type Message struct {
	// OID is the Mongo document key. It doubles as the insertion-order
	// sort key for limited listings and is never exposed to clients.
	OID primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	// ID is the stable public identifier used for edits and deletes.
	ID string `bson:"id" json:"id"`
	// From is the sender's participant name, fixed at creation.
	From string `bson:"from" json:"from"`
	// To is a participant name or the Broadcast marker.
	To string `bson:"to" json:"to"`
	// Text is the sanitized message body.
	Text string `bson:"text" json:"text"`
	// Type is one of TypeMessage, TypePrivate or TypeStatus.
	Type string `bson:"type" json:"type"`
	// Time is the creation wall-clock time formatted HH:mm:ss.
	Time string `bson:"time" json:"time"`
}

// VisibleTo reports whether requester is allowed to see the message:
// broadcasts are public, everything else only reaches its sender and
// its named recipient.
func (m Message) VisibleTo(requester string) bool {
	return m.To == Broadcast || m.To == requester || m.From == requester
}
