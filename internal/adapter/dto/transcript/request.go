package transcript

// FetchTranscriptRequest represents the request to load a video's transcript
type FetchTranscriptRequest struct {
	URL string `json:"url" query:"url" validate:"required,notblank,max=2048"`
}
