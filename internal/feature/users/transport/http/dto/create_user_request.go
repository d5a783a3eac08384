package dto

// CreateUserReq represents the request body for the admin-only user creation
// endpoint. Unlike registration, the role is chosen by the caller.
type CreateUserReq struct {
	Type     string `json:"type" binding:"required,oneof=admin blogger"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
