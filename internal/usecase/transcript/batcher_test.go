package transcript

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/video-assistant/internal/domain/entities"
)

func segs(pairs ...any) []entities.CaptionSegment {
	out := make([]entities.CaptionSegment, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, entities.CaptionSegment{Text: pairs[i].(string), Start: pairs[i+1].(float64)})
	}
	return out
}

func TestRebatch_Example(t *testing.T) {
	got := Rebatch(segs("a", 0.0, "b", 50.0, "c", 90.0), 80)
	assert.Equal(t, []entities.Paragraph{
		{Text: "a b", Start: 0},
		{Text: "c", Start: 90},
	}, got)
}

func TestRebatch_Empty(t *testing.T) {
	assert.Empty(t, Rebatch(nil, DefaultMinGap))
}

func TestRebatch_SingleSegment(t *testing.T) {
	got := Rebatch(segs(" hello ", 3.5), DefaultMinGap)
	require.Len(t, got, 1)
	assert.Equal(t, entities.Paragraph{Text: "hello", Start: 3.5}, got[0])
}

func TestRebatch_NonPositiveThresholdSplitsEverySegment(t *testing.T) {
	in := segs("a", 0.0, "b", 1.0, "c", 1.0, "d", 7.0)
	for _, gap := range []float64{0, -5} {
		got := Rebatch(in, gap)
		require.Len(t, got, len(in))
		for i, p := range got {
			assert.Equal(t, in[i].Text, p.Text)
			assert.Equal(t, in[i].Start, p.Start)
		}
	}
}

func TestRebatch_HugeThresholdYieldsOneParagraph(t *testing.T) {
	in := segs("a", 0.0, "b", 100.0, "c", 500.0)
	got := Rebatch(in, 1e9)
	require.Len(t, got, 1)
	assert.Equal(t, "a b c", got[0].Text)
	assert.Equal(t, 0.0, got[0].Start)
}

func TestRebatch_PartitionsSegments(t *testing.T) {
	var in []entities.CaptionSegment
	for i := 0; i < 200; i++ {
		in = append(in, entities.CaptionSegment{Text: "w" + strings.Repeat("x", i%7), Start: float64(i) * 7.3})
	}

	got := Rebatch(in, DefaultMinGap)

	var words []string
	prev := -1.0
	for _, p := range got {
		assert.GreaterOrEqual(t, p.Start, prev)
		prev = p.Start
		words = append(words, strings.Fields(p.Text)...)
	}
	require.Len(t, words, len(in))
	for i, w := range words {
		assert.Equal(t, in[i].Text, w)
	}
}

func TestRebatch_GapMeasuredFromParagraphStart(t *testing.T) {
	// 40s steps never exceed the gap between neighbours but do from the paragraph start
	got := Rebatch(segs("a", 0.0, "b", 40.0, "c", 80.0, "d", 120.0), 80)
	assert.Equal(t, []entities.Paragraph{
		{Text: "a b", Start: 0},
		{Text: "c d", Start: 80},
	}, got)
}
