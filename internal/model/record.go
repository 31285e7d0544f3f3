package model

import "time"

// Record is one committed grading result. Feedback holds the displayed prose
// with the score block stripped; Scores is nil when no block could be
// extracted. Records are immutable once saved.
type Record struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	OwnerID   string    `json:"ownerId,omitempty" bson:"ownerId,omitempty"`
	Question  string    `json:"question" bson:"question"`
	Answer    string    `json:"answer" bson:"answer"`
	Feedback  string    `json:"feedback" bson:"feedback"`
	Scores    ScoreSet  `json:"scores" bson:"scores,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
