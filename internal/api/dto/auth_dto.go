package dto

// UserResponse identifies the signed-in admin.
type UserResponse struct {
	Email string `json:"email"`
}

// SessionResponse answers the session check.
type SessionResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *UserResponse `json:"user,omitempty"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

// SuccessResponse is the bare acknowledgement used by deletes and logout.
type SuccessResponse struct {
	Success bool `json:"success"`
}
