package dto

const (
	CodeNotFound      = "not_found"
	CodeInvalidID     = "invalid_id"
	CodeBadRequest    = "bad_request"
	CodeInternalError = "internal_error"
)

type ErrorResponse struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Resource   string `json:"resource,omitempty"`
	ResourceID *uint  `json:"resourceId,omitempty"`
}

func NotFound(resource string, id uint, message string) ErrorResponse {
	return ErrorResponse{
		Code:       CodeNotFound,
		Message:    message,
		Resource:   resource,
		ResourceID: &id,
	}
}
