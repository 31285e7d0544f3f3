package model

import "time"

// Question is a practice essay question from the bank. Topic groups questions
// by subject area, Source names the exam paper a past question came from.
type Question struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Topic     string    `json:"topic" bson:"topic"`
	Text      string    `json:"text" bson:"text"`
	Source    string    `json:"source,omitempty" bson:"source,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// SuggestedQuestion is one generated practice question targeting a rubric
// category the user scores low on. Suggestions are not persisted to the bank.
type SuggestedQuestion struct {
	Topic          string `json:"topic"`
	Text           string `json:"text"`
	TargetCategory string `json:"targetCategory"`
	Rationale      string `json:"rationale"`
}
