package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanPayload_PlainTextUntouched(t *testing.T) {
	text := "  Some <b>not html</b>   text\n\n"

	assert.Equal(t, text, cleanPayload(text))
}

func TestCleanPayload_Html(t *testing.T) {
	payload := "<html><body class=\"x\"><div>One&amp;Two</div>\n\n\t<span>Three</span></body></html>"

	assert.Equal(t, "One&Two Three", cleanPayload(payload))
}

func TestDecodeCharset(t *testing.T) {
	res, err := decodeCharset([]byte("plain"), "")
	assert.Nil(t, err)
	assert.Equal(t, "plain", res)

	res, err = decodeCharset([]byte("na\xefve"), "text/plain; charset=windows-1252")
	assert.Nil(t, err)
	assert.Equal(t, "naïve", res)

	res, err = decodeCharset([]byte("unknown"), "text/plain; charset=x-made-up")
	assert.Nil(t, err)
	assert.Equal(t, "unknown", res)
}
