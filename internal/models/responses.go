package models

// ListResponse wraps list endpoint results
type ListResponse[T any] struct {
	Items []T `json:"items"`
}

// CreatedResponse is returned by create endpoints
type CreatedResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

// StatusResponse is a bare status payload
type StatusResponse struct {
	Status string `json:"status"`
}

// MessageResponse is a bare message payload
type MessageResponse struct {
	Message string `json:"message"`
}
