package youtube

import (
	"encoding/xml"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/johnquangdev/video-assistant/internal/domain/entities"
)

// timedText covers both caption XML layouts: legacy <transcript><text start dur>
// and format 3 <timedtext><body><p t d> with millisecond attributes.
type timedText struct {
	Lines []timedLine `xml:"text"`
	Body  struct {
		Paras []timedPara `xml:"p"`
	} `xml:"body"`
}

type timedLine struct {
	Start float64 `xml:"start,attr"`
	Dur   float64 `xml:"dur,attr"`
	Text  string  `xml:",chardata"`
}

type timedPara struct {
	T     int64    `xml:"t,attr"`
	D     int64    `xml:"d,attr"`
	Text  string   `xml:",chardata"`
	Spans []string `xml:"s"`
}

// parseTimedText decodes caption XML into ordered segments, dropping empty lines
func parseTimedText(body []byte) ([]entities.CaptionSegment, error) {
	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("parse timedtext XML: %w", err)
	}

	segments := make([]entities.CaptionSegment, 0, len(tt.Lines)+len(tt.Body.Paras))
	for _, line := range tt.Lines {
		if text := cleanCaption(line.Text); text != "" {
			segments = append(segments, entities.CaptionSegment{Text: text, Start: line.Start, Duration: line.Dur})
		}
	}
	for _, p := range tt.Body.Paras {
		raw := p.Text
		if len(p.Spans) > 0 {
			raw = strings.Join(p.Spans, "")
		}
		if text := cleanCaption(raw); text != "" {
			segments = append(segments, entities.CaptionSegment{
				Text:     text,
				Start:    float64(p.T) / 1000,
				Duration: float64(p.D) / 1000,
			})
		}
	}
	return segments, nil
}

// cleanCaption undoes the second level of entity escaping YouTube applies and collapses whitespace
func cleanCaption(s string) string {
	s = html.UnescapeString(s)
	return strings.Join(strings.Fields(s), " ")
}
