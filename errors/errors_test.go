package errors

import (
	stdErrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	err := ErrInvalidArgument("bad input")
	assert.Equal(t, "[INVALID_ARGUMENT] bad input", err.Error())

	wrapped := ErrInternal(stdErrors.New("boom"))
	assert.Equal(t, "[INTERNAL] Internal server error: boom", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stdErrors.New("no captions")
	err := ErrTranscriptFetchFailed("abcdefghijk", cause)

	assert.True(t, stdErrors.Is(err, cause))
	assert.Equal(t, http.StatusBadGateway, err.HTTPCode)
	assert.Equal(t, "abcdefghijk", err.Details["video_id"])
	assert.Equal(t,
		"Failed to get transcript. Is it a valid YouTube URL with transcripts enabled? Error: no captions",
		err.Message)
}

func TestAppError_WithDetail(t *testing.T) {
	base := ErrInvalidVideoURL("https://example.com", stdErrors.New("no id"))
	other := base.WithDetail("hint", "x")

	assert.Equal(t, "https://example.com", other.Details["url"])
	assert.Equal(t, "x", other.Details["hint"])
	assert.Equal(t, http.StatusBadRequest, other.HTTPCode)
}

func TestErrorCode_String(t *testing.T) {
	assert.Equal(t, "TRANSCRIPT_NOT_READY", ErrorCode_TRANSCRIPT_NOT_READY.String())
	assert.Equal(t, "UNKNOWN", ErrorCode(42).String())
}
