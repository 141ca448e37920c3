package entities

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// DefaultVideoTitle is used when the source has no title for a video
const DefaultVideoTitle = "Unknown Title"

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// Video holds the metadata of a YouTube video
type Video struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	URL           string `json:"url"`
	Language      string `json:"language,omitempty"`
	AutoGenerated bool   `json:"auto_generated"`
}

// ParseVideoID extracts the video id from the "v" query parameter of a watch URL.
// youtu.be short links are accepted as well.
func ParseVideoID(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", fmt.Errorf("%w: empty url", ErrInvalidVideoURL)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidVideoURL, err)
	}

	id := u.Query().Get("v")
	if id == "" && strings.EqualFold(strings.TrimPrefix(u.Hostname(), "www."), "youtu.be") {
		id = strings.Trim(u.Path, "/")
	}
	if id == "" {
		return "", fmt.Errorf("%w: missing v parameter", ErrInvalidVideoURL)
	}
	if !videoIDPattern.MatchString(id) {
		return "", fmt.Errorf("%w: malformed video id %q", ErrInvalidVideoURL, id)
	}
	return id, nil
}

// WatchURL returns the canonical watch page URL of a video
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
