package model

import "strings"

type SegmentationMode string

const (
	ModeSentences SegmentationMode = "sentences"
	ModePages     SegmentationMode = "pages"
	ModeChapters  SegmentationMode = "chapters"
)

// ParseSegmentationMode falls back to sentences for anything it does not recognise.
func ParseSegmentationMode(s string) SegmentationMode {
	switch SegmentationMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModePages:
		return ModePages
	case ModeChapters:
		return ModeChapters
	default:
		return ModeSentences
	}
}

type TranslationSegment struct {
	Index      int    `json:"index"`
	Source     string `json:"source"`
	Translated string `json:"translated"`
}

type TranslationResult struct {
	Book          BookSummary          `json:"book"`
	Segments      []TranslationSegment `json:"segments"`
	AudioFileName string               `json:"audioFileName,omitempty"`
}

func (r TranslationResult) HasAudio() bool {
	return r.AudioFileName != ""
}

type TranslationRequest struct {
	BookID      int64
	DownloadURL string
	Title       string
	Author      string
	Segments    int
	Mode        SegmentationMode
}
