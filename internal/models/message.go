package models

import "time"

// Message is immutable once created except for the read transition.
// ReadAt is set iff IsRead is true.
type Message struct {
	ID         int64
	SenderID   int64
	ReceiverID int64
	Content    string
	IsRead     bool
	ReadAt     *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
