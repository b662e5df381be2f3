package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSegmentationMode(t *testing.T) {
	cases := map[string]SegmentationMode{
		"pages":     ModePages,
		"PAGES":     ModePages,
		" Chapters": ModeChapters,
		"sentences": ModeSentences,
		"":          ModeSentences,
		"paragraph": ModeSentences,
	}

	for in, want := range cases {
		assert.Equal(t, want, ParseSegmentationMode(in), "input %q", in)
	}
}
