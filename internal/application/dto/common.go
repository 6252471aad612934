package dto

// Response is the uniform success envelope: {"success": true, "data": ...}.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK wraps a payload in the success envelope.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// ErrorResponse is the uniform error body; the HTTP status carries the kind.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Err builds an error body.
func Err(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}

// PageRequest pagination for list endpoints.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage applies defaults when Limit/Offset are unset.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
