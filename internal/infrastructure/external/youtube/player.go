package youtube

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// playerResponseMarker marks the start of the player response JSON in watch page HTML
const playerResponseMarker = "ytInitialPlayerResponse = "

type playerResponse struct {
	VideoDetails *struct {
		VideoID string `json:"videoId"`
		Title   string `json:"title"`
		Author  string `json:"author"`
	} `json:"videoDetails"`
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" = auto-generated
}

func (p *playerResponse) title() string {
	if p.VideoDetails == nil {
		return ""
	}
	return strings.TrimSpace(p.VideoDetails.Title)
}

func (p *playerResponse) captionTracks() []captionTrack {
	if p.Captions == nil {
		return nil
	}
	return p.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
}

// unplayableReason is the status reason for videos that cannot be played (private, removed, ...)
func (p *playerResponse) unplayableReason() string {
	if p.PlayabilityStatus == nil || p.PlayabilityStatus.Status == "OK" {
		return ""
	}
	if p.PlayabilityStatus.Reason != "" {
		return p.PlayabilityStatus.Reason
	}
	return strings.ToLower(p.PlayabilityStatus.Status)
}

// parsePlayerResponse extracts and decodes ytInitialPlayerResponse from watch page HTML
func parsePlayerResponse(page []byte) (*playerResponse, error) {
	idx := bytes.Index(page, []byte(playerResponseMarker))
	if idx < 0 {
		return nil, errors.New("ytInitialPlayerResponse not found in watch page")
	}
	data := extractJSON(page[idx+len(playerResponseMarker):])
	if data == nil {
		return nil, errors.New("failed to extract ytInitialPlayerResponse JSON")
	}

	var resp playerResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decode ytInitialPlayerResponse: %w", err)
	}
	return &resp, nil
}

// extractJSON returns the complete JSON object starting at b[0] == '{' by tracking brace depth
func extractJSON(b []byte) []byte {
	if len(b) == 0 || b[0] != '{' {
		return nil
	}
	depth := 0
	inStr := false
	escaped := false
	for i, c := range b {
		if inStr {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inStr = false
			}
			continue
		}
		switch c {
		case '"':
			inStr = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return b[:i+1]
			}
		}
	}
	return nil
}

// needsPoToken marks track URLs that the timedtext endpoint rejects without a browser proof token
func needsPoToken(baseURL string) bool {
	return strings.Contains(baseURL, "&exp=xpe")
}

// trackRank orders caption tracks for selection, lower is better:
// a manual track in a configured language, then an auto-generated one,
// then any English track, then anything else.
func trackRank(t captionTrack, langs []string) int {
	for i, lang := range langs {
		if t.LanguageCode != lang {
			continue
		}
		if t.Kind == "asr" {
			return len(langs) + i
		}
		return i
	}
	if strings.HasPrefix(t.LanguageCode, "en") {
		return 2 * len(langs)
	}
	return 2*len(langs) + 1
}

// pickBestTrack returns the lowest ranked fetchable track, keeping page order on ties.
// The bool is false when no track can be downloaded.
func pickBestTrack(tracks []captionTrack, langs []string) (captionTrack, bool) {
	best, bestRank := captionTrack{}, -1
	for _, t := range tracks {
		if t.BaseURL == "" || needsPoToken(t.BaseURL) {
			continue
		}
		if r := trackRank(t, langs); bestRank < 0 || r < bestRank {
			best, bestRank = t, r
		}
	}
	return best, bestRank >= 0
}
