// Package segmenter splits raw book text into ordered, size-bounded units.
package segmenter

import (
	"regexp"
	"strings"

	"book_translator/internal/model"

	"github.com/rivo/uniseg"
)

const (
	CharsPerPage = 1200

	MinSegments = 1
	MaxSegments = 200
)

var chapterRe = regexp.MustCompile(`(?i)\bchapter\b`)

// ClampSegments keeps a user-requested segment count within [MinSegments, MaxSegments].
func ClampSegments(n int) int {
	return max(MinSegments, min(n, MaxSegments))
}

// Segment returns at most maxUnits non-empty, trimmed units of text.
func Segment(text string, mode model.SegmentationMode, maxUnits int) []string {
	if maxUnits <= 0 || text == "" {
		return []string{}
	}

	switch mode {
	case model.ModePages:
		return splitByPages(text, maxUnits)
	case model.ModeChapters:
		return splitByChapters(text, maxUnits)
	default:
		return splitBySentences(text, maxUnits)
	}
}

func splitBySentences(text string, maxUnits int) []string {
	sentences := make([]string, 0, min(maxUnits, 16))
	state := -1
	rest := text
	var sentence string

	for rest != "" && len(sentences) < maxUnits {
		sentence, rest, state = uniseg.FirstSentenceInString(rest, state)
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		sentences = append(sentences, sentence)
	}

	return sentences
}

func splitByPages(text string, maxUnits int) []string {
	runes := []rune(text)
	pages := make([]string, 0, min(maxUnits, len(runes)/CharsPerPage+1))

	for start := 0; start < len(runes) && len(pages) < maxUnits; start += CharsPerPage {
		end := min(start+CharsPerPage, len(runes))
		page := strings.TrimSpace(string(runes[start:end]))
		// whitespace-only windows are not counted against the cap
		if page == "" {
			continue
		}
		pages = append(pages, page)
	}

	return pages
}

func splitByChapters(text string, maxUnits int) []string {
	if !chapterRe.MatchString(text) {
		return splitBySentences(text, maxUnits)
	}

	chapters := make([]string, 0)

	for _, chapter := range chapterRe.Split(text, -1) {
		chapter = strings.TrimSpace(chapter)
		if chapter == "" {
			continue
		}
		chapters = append(chapters, chapter)
		if len(chapters) >= maxUnits {
			break
		}
	}

	// markers only, nothing between them
	if len(chapters) == 0 {
		return splitBySentences(text, maxUnits)
	}

	return chapters
}
