package response

// Resp is the standard JSON response body.
type Resp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Status values for Resp.Status.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)
