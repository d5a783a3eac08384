// Package dto defines data transfer objects for the posts feature's HTTP
// transport layer.
package dto

// CreatePostReq represents the request body for post creation. Presence is
// checked by the workflow rather than binding tags so the canonical
// "Title and content required" message is produced.
type CreatePostReq struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// EditPostReq represents the request body for post editing. Title and content
// must both be sent even when unchanged; isHidden is applied only when
// present.
type EditPostReq struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsHidden *bool  `json:"isHidden"`
}
