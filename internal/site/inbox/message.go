// Copyright (c) 2026 Folio. All rights reserved.
// Author: jon@theijon.online

/*
Package inbox manages visitor messages: the public submission endpoint and
the admin triage operations (status changes, deletion). Messages are never
edited beyond their read status, so the package carries no draft session.
*/
package inbox

// Message status values, as stored by the content service.
const (
	StatusUnread   = "unread"
	StatusRead     = "read"
	StatusArchived = "archived"
)

// Message is one visitor submission from the contact form.
type Message struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Content   string `json:"content"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// Identity implements edit.Identifiable.
func (m Message) Identity() int { return m.ID }

// Submission is the public contact-form payload. Status and timestamps are
// assigned server-side.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Content string `json:"content"`
}
