package models

// UserRequest is one entry in a user's recent request activity.
type UserRequest struct {
	Method string `json:"method"`
	Route  string `json:"route"`
}
