package domain

import "time"

// Message is one entry in the chat transcript.
type Message struct {
	ID        string
	Role      Role
	Text      string
	CreatedAt time.Time
}
