package models

import "time"

// Contact form statuses.
const (
	ContactStatusNew       = "new"
	ContactStatusContacted = "contacted"
	ContactStatusArchived  = "archived"
)

// ContactForm is one inbound inquiry submitted through the public site.
type ContactForm struct {
	ID           string     `bson:"_id,omitempty" json:"id"`
	Name         string     `bson:"name" json:"name"`
	Mobile       string     `bson:"mobile" json:"mobile"`
	Email        string     `bson:"email" json:"email"`
	Product      string     `bson:"product" json:"product"`
	Message      string     `bson:"message" json:"message"`
	Status       string     `bson:"status" json:"status"`
	Contacted    bool       `bson:"contacted" json:"contacted"`
	ContactedVia string     `bson:"contactedVia" json:"contactedVia"`
	AdminNotes   string     `bson:"adminNotes" json:"adminNotes"`
	AssignedTo   string     `bson:"assignedTo" json:"assignedTo"`
	CreatedAt    time.Time  `bson:"createdAt" json:"createdAt"`
	ContactedAt  *time.Time `bson:"contactedAt,omitempty" json:"contactedAt,omitempty"`
	UpdatedAt    time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// ContactFormStatistics aggregates counts for the contact forms screen.
type ContactFormStatistics struct {
	TotalMessages     int64 `json:"totalMessages"`
	NewMessages       int64 `json:"newMessages"`
	ContactedMessages int64 `json:"contactedMessages"`
	ArchivedMessages  int64 `json:"archivedMessages"`
}

func ValidContactStatus(s string) bool {
	switch s {
	case ContactStatusNew, ContactStatusContacted, ContactStatusArchived:
		return true
	}
	return false
}
