package errors

import (
	"fmt"
	"net/http"
)

// AppError carries the HTTP status and API code a failure is reported with
type AppError struct {
	Raw      error
	HTTPCode int
	Code     ErrorCode
	Message  string
	Details  map[string]string
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

// Session Errors
func ErrSessionInvalid(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_SESSION_INVALID,
		Message:  "Invalid session token",
	}
}

// Transcript Errors

// ErrInvalidVideoURL is returned before any network call when the URL carries no usable video id.
func ErrInvalidVideoURL(url string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_TRANSCRIPT_INVALID_URL,
		Message:  "Invalid YouTube URL",
	}.WithDetail("url", url)
}

// ErrTranscriptFetchFailed carries the user-facing hint alongside the source error.
func ErrTranscriptFetchFailed(videoID string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_TRANSCRIPT_FETCH_FAILED,
		Message:  fmt.Sprintf("Failed to get transcript. Is it a valid YouTube URL with transcripts enabled? Error: %v", err),
	}.WithDetail("video_id", videoID)
}

func ErrTranscriptNotReady() AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_TRANSCRIPT_NOT_READY,
		Message:  "Please generate a transcript first.",
	}
}
