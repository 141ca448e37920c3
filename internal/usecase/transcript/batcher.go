package transcript

import (
	"strings"

	"github.com/johnquangdev/video-assistant/internal/domain/entities"
)

// DefaultMinGap is the paragraph length in seconds
const DefaultMinGap = 80.0

// Rebatch groups caption segments into paragraphs. A paragraph is closed once a
// segment starts minGap seconds or more after the paragraph's own start.
// Every segment lands in exactly one paragraph, in input order.
func Rebatch(segments []entities.CaptionSegment, minGap float64) []entities.Paragraph {
	if len(segments) == 0 {
		return []entities.Paragraph{}
	}

	var (
		paragraphs []entities.Paragraph
		buf        strings.Builder
		start      = segments[0].Start
	)
	buf.WriteString(segments[0].Text)

	for _, seg := range segments[1:] {
		if seg.Start-start >= minGap && buf.Len() > 0 {
			paragraphs = append(paragraphs, entities.Paragraph{
				Text:  strings.TrimSpace(buf.String()),
				Start: start,
			})
			buf.Reset()
			buf.WriteString(seg.Text)
			start = seg.Start
			continue
		}
		buf.WriteString(" ")
		buf.WriteString(seg.Text)
	}

	return append(paragraphs, entities.Paragraph{
		Text:  strings.TrimSpace(buf.String()),
		Start: start,
	})
}
