package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

const (
	// MessageSuccess is the message on successful responses.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internals from API consumers.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the error_code for 500 responses.
	InternalServerErrorCode = 500
)
