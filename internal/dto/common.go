package dto

// MessageResponse is returned by endpoints that only confirm an action.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
// Detail is the human readable message, Code the stable error kind.
type ErrorResponse struct {
	Detail     string         `json:"detail"`
	Code       string         `json:"code"`
	Cap        *int           `json:"cap,omitempty"`
	Dependents map[string]int `json:"dependents,omitempty"`
}
