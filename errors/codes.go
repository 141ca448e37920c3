package errors

// ErrorCode is the application error code returned to API clients
type ErrorCode int32

const (
	ErrorCode_HTTP_OK ErrorCode = 200

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1002

	// Session
	ErrorCode_SESSION_INVALID ErrorCode = 2000

	// Transcript
	ErrorCode_TRANSCRIPT_INVALID_URL  ErrorCode = 3000
	ErrorCode_TRANSCRIPT_FETCH_FAILED ErrorCode = 3001
	ErrorCode_TRANSCRIPT_NOT_READY    ErrorCode = 3002
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                 "HTTP_OK",
	ErrorCode_INTERNAL:                "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:        "INVALID_ARGUMENT",
	ErrorCode_INVALID_PAYLOAD:         "INVALID_PAYLOAD",
	ErrorCode_SESSION_INVALID:         "SESSION_INVALID",
	ErrorCode_TRANSCRIPT_INVALID_URL:  "TRANSCRIPT_INVALID_URL",
	ErrorCode_TRANSCRIPT_FETCH_FAILED: "TRANSCRIPT_FETCH_FAILED",
	ErrorCode_TRANSCRIPT_NOT_READY:    "TRANSCRIPT_NOT_READY",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
