package decode

// DecodeError represents audio decoding failures
type DecodeError struct {
	Path    string `json:"path"`
	Format  string `json:"format"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Common error codes
const (
	ErrCodeOpen          = "OPEN_FAILED"
	ErrCodeInvalidFormat = "INVALID_FORMAT"
	ErrCodeDecoding      = "DECODING_FAILED"
	ErrCodeUnsupported   = "UNSUPPORTED_FORMAT"
)

// NewDecodeError creates a new decode error
func NewDecodeError(path, format, code, message string, cause error) *DecodeError {
	return &DecodeError{
		Path:    path,
		Format:  format,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
