package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	BadRequestCode          = 1
	TooManyRequestsCode     = 429
	InternalServerErrorCode = 500
)
