package session

import (
	"book_translator/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "book_translator:chat:42:preferences", preferencesKey(42))
	assert.Equal(t, "book_translator:chat:42:page:7", booksPageKey(42, 7))
	assert.NotEqual(t, booksPageKey(42, 7), booksPageKey(42, 8))
}

func TestDecode_Session(t *testing.T) {
	var chatSession model.Session

	err := decode([]byte(`{"action":"expecting_segment_count","segments":25,"mode":"pages"}`), &chatSession)

	assert.Nil(t, err)
	assert.Equal(t, model.Session{Action: model.ExpectingSegmentCount, Segments: 25, Mode: model.ModePages}, chatSession)
	assert.Equal(t, 25, chatSession.SegmentsOrDefault())
}

func TestDecode_Corrupted(t *testing.T) {
	for _, payload := range []string{"", "[]", "\"text\"", "{broken"} {
		var request model.BookSearchRequest
		assert.ErrorIs(t, decode([]byte(payload), &request), ErrCorrupted, payload)
	}
}

func TestEncode_Unsupported(t *testing.T) {
	_, err := encode(make(chan int))

	assert.ErrorIs(t, err, ErrCorrupted)
}
