// Package dto defines data transfer objects for the users feature's HTTP
// transport layer.
package dto

// RegisterReq represents the request body for the public registration
// endpoint. The account role is not part of the payload; self-registered
// accounts are always bloggers.
type RegisterReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
