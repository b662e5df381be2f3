package segmenter

import (
	"strings"
	"testing"

	"book_translator/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestSegment_Sentences(t *testing.T) {
	text := "This is the first sentence. Here is the second! And the third?"

	res := Segment(text, model.ModeSentences, 2)

	assert.Equal(t, []string{"This is the first sentence.", "Here is the second!"}, res)
}

func TestSegment_SentencesWholeText(t *testing.T) {
	text := "This is the first sentence. Here is the second! And the third?"

	res := Segment(text, model.ModeSentences, 10)

	assert.Equal(t, []string{"This is the first sentence.", "Here is the second!", "And the third?"}, res)
}

func TestSegment_SentencesSkipBlank(t *testing.T) {
	text := "   \n\n  One.   \n\n   Two.  "

	res := Segment(text, model.ModeSentences, 5)

	assert.Equal(t, []string{"One.", "Two."}, res)
}

func TestSegment_Pages(t *testing.T) {
	text := strings.Repeat("a", 2500)

	res := Segment(text, model.ModePages, 3)

	assert.Len(t, res, 3)
	for _, page := range res {
		assert.LessOrEqual(t, len([]rune(page)), CharsPerPage)
	}
	assert.True(t, strings.HasPrefix(text, strings.Join(res, "")))
	assert.Len(t, res[2], 100)
}

func TestSegment_PagesCap(t *testing.T) {
	text := strings.Repeat("b", 5000)

	res := Segment(text, model.ModePages, 2)

	assert.Equal(t, []string{strings.Repeat("b", CharsPerPage), strings.Repeat("b", CharsPerPage)}, res)
}

func TestSegment_PagesMultibyte(t *testing.T) {
	text := strings.Repeat("ж", CharsPerPage+1)

	res := Segment(text, model.ModePages, 5)

	assert.Equal(t, []string{strings.Repeat("ж", CharsPerPage), "ж"}, res)
}

func TestSegment_Chapters(t *testing.T) {
	text := "Chapter One\nContent.\nchapter two\nMore content."

	res := Segment(text, model.ModeChapters, 5)

	assert.Equal(t, []string{"One\nContent.", "two\nMore content."}, res)
}

func TestSegment_ChaptersKeepsPreface(t *testing.T) {
	text := "Preface text. CHAPTER I\nFirst. Chapter II\nSecond."

	res := Segment(text, model.ModeChapters, 2)

	assert.Equal(t, []string{"Preface text.", "I\nFirst."}, res)
}

func TestSegment_ChaptersWholeWordOnly(t *testing.T) {
	text := "The chapters are short. Chaptering is fun."

	res := Segment(text, model.ModeChapters, 5)

	assert.Equal(t, Segment(text, model.ModeSentences, 5), res)
}

func TestSegment_ChaptersFallbackToSentences(t *testing.T) {
	text := "No markers here. Just two sentences."

	res := Segment(text, model.ModeChapters, 5)

	assert.Equal(t, []string{"No markers here.", "Just two sentences."}, res)
}

func TestSegment_ChaptersMarkersOnly(t *testing.T) {
	text := "Chapter CHAPTER chapter"

	res := Segment(text, model.ModeChapters, 5)

	assert.Equal(t, []string{"Chapter CHAPTER chapter"}, res)
}

func TestSegment_EmptyInput(t *testing.T) {
	for _, mode := range []model.SegmentationMode{model.ModeSentences, model.ModePages, model.ModeChapters} {
		assert.Empty(t, Segment("", mode, 10), "mode %s", mode)
	}
}

func TestSegment_NonPositiveCap(t *testing.T) {
	for _, mode := range []model.SegmentationMode{model.ModeSentences, model.ModePages, model.ModeChapters} {
		assert.Empty(t, Segment("Chapter one. Some text.", mode, 0), "mode %s", mode)
		assert.Empty(t, Segment("Chapter one. Some text.", mode, -3), "mode %s", mode)
	}
}

func TestSegment_NeverExceedsCap(t *testing.T) {
	text := strings.Repeat("Chapter x. A sentence here! Another one? ", 300)

	for _, mode := range []model.SegmentationMode{model.ModeSentences, model.ModePages, model.ModeChapters} {
		for _, maxUnits := range []int{1, 2, 7, 50, 200} {
			assert.LessOrEqual(t, len(Segment(text, mode, maxUnits)), maxUnits, "mode %s cap %d", mode, maxUnits)
		}
	}
}

func TestSegment_Deterministic(t *testing.T) {
	text := strings.Repeat("Chapter x. A sentence here! Another one? ", 20)

	for _, mode := range []model.SegmentationMode{model.ModeSentences, model.ModePages, model.ModeChapters} {
		assert.Equal(t, Segment(text, mode, 30), Segment(text, mode, 30))
	}
}

func TestClampSegments(t *testing.T) {
	assert.Equal(t, 1, ClampSegments(-5))
	assert.Equal(t, 1, ClampSegments(0))
	assert.Equal(t, 10, ClampSegments(10))
	assert.Equal(t, 200, ClampSegments(200))
	assert.Equal(t, 200, ClampSegments(1000))
}
