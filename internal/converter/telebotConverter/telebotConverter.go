package telebotConverter

import (
	"book_translator/internal/model"
	"book_translator/internal/model/tg/tgCallback"
	"fmt"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v4"
)

// MaxMessageLen is the telegram limit for a single text message.
const MaxMessageLen = 4096

var modeTitles = []struct {
	mode  model.SegmentationMode
	title string
}{
	{model.ModeSentences, "by sentences"},
	{model.ModePages, "by pages"},
	{model.ModeChapters, "by chapters"},
}

func BooksNotFound(query string) string {
	return fmt.Sprintf("no books found for: %s", query)
}

func BooksPage(booksPage model.BooksPage, booksPerPage int) (text string, markup *tele.ReplyMarkup) {
	markup = &tele.ReplyMarkup{}
	sb := strings.Builder{}

	sb.WriteString(fmt.Sprintf("Search results: %s\n\n", booksPage.Query))

	menuRows := make([]tele.Row, 0)

	for i, book := range booksPage.Books {
		if i%5 == 0 {
			menuRows = append(menuRows, make(tele.Row, 0, 5))
		}

		ordinal := (booksPage.Page * booksPerPage) + i + 1
		sb.WriteString(fmt.Sprintf("%d) %s (%s)\n\n", ordinal, book.Title, book.Author))
		btn := markup.Data(strconv.Itoa(ordinal), tgCallback.ToBookDetails+strconv.FormatInt(book.ID, 10))
		menuRows[len(menuRows)-1] = append(menuRows[len(menuRows)-1], btn)
	}

	paginationBtns := make([]tele.Btn, 0)
	if booksPage.Page > 0 {
		paginationBtns = append(paginationBtns, markup.Data("back", tgCallback.ToBooksPage+strconv.Itoa(booksPage.Page-1)))
	}

	if booksPage.Page > 0 || booksPage.HasNextPage {
		paginationBtns = append(paginationBtns, markup.Data(fmt.Sprintf("page %d", booksPage.Page+1), tgCallback.PageNumber))
	}

	if booksPage.HasNextPage {
		paginationBtns = append(paginationBtns, markup.Data("next", tgCallback.ToBooksPage+strconv.Itoa(booksPage.Page+1)))
	}

	menuRows = append(menuRows, markup.Row(paginationBtns...))

	markup.Inline(menuRows...)

	return sb.String(), markup
}

func BookDetails(book model.BookSummary, segments int) (text string, markup *tele.ReplyMarkup) {
	markup = &tele.ReplyMarkup{}
	text = fmt.Sprintf("%s\n\n%s\n\nSegments to translate: %d (change with /segments)", book.Title, book.Author, segments)

	menuRows := make([]tele.Row, 0, len(modeTitles)+1)
	for _, m := range modeTitles {
		btn := markup.Data("translate "+m.title, TranslateData(m.mode, book.ID))
		menuRows = append(menuRows, markup.Row(btn))
	}

	backBtn := markup.Data("back", tgCallback.BackToBooksPage)
	menuRows = append(menuRows, markup.Row(backBtn))

	markup.Inline(menuRows...)

	return text, markup
}

func TranslateData(mode model.SegmentationMode, bookID int64) string {
	return fmt.Sprintf("%s%s:%d", tgCallback.Translate, mode, bookID)
}

// ParseTranslateData is the inverse of TranslateData. The leading "\f" telebot adds is ignored.
func ParseTranslateData(data string) (mode model.SegmentationMode, bookID int64, err error) {
	payload := strings.TrimPrefix(strings.TrimPrefix(data, "\f"), tgCallback.Translate)

	modeStr, idStr, found := strings.Cut(payload, ":")
	if !found {
		return "", 0, fmt.Errorf("malformed translate callback: %q", data)
	}

	bookID, err = strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("malformed book id: %w", err)
	}

	return model.ParseSegmentationMode(modeStr), bookID, nil
}

// TranslationMessages renders segments as numbered source/translation pairs split into
// messages no longer than MaxMessageLen runes.
func TranslationMessages(result model.TranslationResult) []string {
	messages := make([]string, 0)
	sb := strings.Builder{}
	sbLen := 0

	header := fmt.Sprintf("%s (%s)\n\n", result.Book.Title, result.Book.Author)
	sb.WriteString(header)
	sbLen += len([]rune(header))

	for _, segment := range result.Segments {
		block := fmt.Sprintf("%d. %s\n%s\n\n", segment.Index, segment.Source, segment.Translated)
		for _, part := range splitRunes(block, MaxMessageLen) {
			partLen := len([]rune(part))
			if sbLen+partLen > MaxMessageLen && sbLen > 0 {
				messages = append(messages, strings.TrimSpace(sb.String()))
				sb.Reset()
				sbLen = 0
			}
			sb.WriteString(part)
			sbLen += partLen
		}
	}

	if rest := strings.TrimSpace(sb.String()); rest != "" {
		messages = append(messages, rest)
	}

	return messages
}

func splitRunes(s string, size int) []string {
	runes := []rune(s)
	if len(runes) <= size {
		return []string{s}
	}

	parts := make([]string, 0, len(runes)/size+1)
	for start := 0; start < len(runes); start += size {
		end := min(start+size, len(runes))
		parts = append(parts, string(runes[start:end]))
	}
	return parts
}

func SegmentsPrompt(current int) string {
	return fmt.Sprintf("How many segments should be translated? Current value: %d. Enter a number from 1 to 200.", current)
}

func SegmentsSaved(segments int) string {
	return fmt.Sprintf("Done, %d segments will be translated.", segments)
}
