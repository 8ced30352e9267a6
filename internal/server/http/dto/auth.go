package dto

// PasscodeRequest asks for a one-time code to be emailed.
type PasscodeRequest struct {
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
}

// SignupRequest completes registration with the emailed code.
type SignupRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Code     string `json:"code"`
}

// LoginRequest describes email/password payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResetRequest replaces a forgotten password using the emailed code.
type ResetRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Code     string `json:"code"`
}

// UserResponse describes the authenticated account.
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Admin bool   `json:"admin"`
}
