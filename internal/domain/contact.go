package domain

import "time"

// ContactStatus tracks how far the firm has progressed with an inquiry.
type ContactStatus string

const (
	ContactStatusNew       ContactStatus = "new"
	ContactStatusRead      ContactStatus = "read"
	ContactStatusResponded ContactStatus = "responded"
)

// Valid reports whether s is one of the known statuses.
func (s ContactStatus) Valid() bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusResponded:
		return true
	}
	return false
}

// Contact is an inquiry submitted through the public contact form.
// Phone and AdminNotes are nil when absent, never empty strings.
type Contact struct {
	ID          string
	Name        string
	Email       string
	Phone       *string
	InquiryType string
	Message     string
	Status      ContactStatus
	AdminNotes  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ContactPatch lists the fields an administrator may change.
// A nil field is left untouched; an empty AdminNotes clears the notes.
type ContactPatch struct {
	Status     *ContactStatus
	AdminNotes *string
}

// Apply merges the patch onto c.
func (p ContactPatch) Apply(c *Contact) {
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.AdminNotes != nil {
		if *p.AdminNotes == "" {
			c.AdminNotes = nil
		} else {
			notes := *p.AdminNotes
			c.AdminNotes = &notes
		}
	}
}
