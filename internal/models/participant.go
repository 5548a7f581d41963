package models

// Participant represents a user currently present in the room.
// Presence is tracked by LastStatus, which is refreshed on every heartbeat;
// the sweeper removes participants whose LastStatus falls behind the
// inactivity threshold.
type Participant struct {
	// Name is the unique, case-sensitive identity of the participant.
	Name string `bson:"name" json:"name"`
	// LastStatus is the last heartbeat time in milliseconds since epoch.
	LastStatus int64 `bson:"lastStatus" json:"lastStatus"`
}
