package domain

import "time"

// Discussion is a project conversation thread. Declared for the data model;
// no store operation populates or mutates discussions yet.
type Discussion struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"project_id"`
	Title        string    `json:"title"`
	Messages     []Message `json:"messages"`
	Participants []User    `json:"participants"`
	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity"`
}

// Message is a single entry in a discussion thread.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Author    User      `json:"author"`
	Edited    bool      `json:"edited,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
