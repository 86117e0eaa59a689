package domain

import "time"

// AdminIdentity is the authenticated caller behind a valid session.
// It only exists for the lifetime of a request.
type AdminIdentity struct {
	Email string
}

// AdminCredential is the long-lived login for the administrative backend.
type AdminCredential struct {
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
