package dto

// AdminUserView is the user projection returned to admin requesters.
type AdminUserView struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserView is the user projection returned to non-admin requesters.
// It deliberately omits the ID.
type UserView struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TokenResponse is the success body for the login endpoint.
type TokenResponse struct {
	Token string `json:"token"`
}
