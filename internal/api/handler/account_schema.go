package handler

// messageResponse is the standard envelope for 2xx acknowledgments and 4xx
// validation failures.
type messageResponse struct {
	Message string `json:"message"`
}

// errorResponse is the envelope for 5xx failures.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type addUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// updateUserRequest authenticates with the current email and password; the
// new* fields are optional and applied only when present. The wire field
// names are part of the public contract.
type updateUserRequest struct {
	Email       string `json:"email"    validate:"required"`
	Password    string `json:"password" validate:"required"`
	NewName     string `json:"newname"`
	NewEmail    string `json:"newemail"`
	NewPassword string `json:"newpassword"`
}

// userResponse exposes only non-sensitive account fields. There is no
// password field on purpose.
type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type addUserResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}
