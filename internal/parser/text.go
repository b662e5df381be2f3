package parser

import (
	"html"
	"io"
	"mime"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/encoding/htmlindex"
)

var stripTagsPolicy = bluemonday.StrictPolicy().AddSpaceWhenStrippingTag(true)

// cleanPayload turns an html document into collapsed plain text.
// Anything without a body tag is returned untouched.
func cleanPayload(payload string) string {
	if !strings.Contains(payload, "<body") {
		return payload
	}

	text := stripTagsPolicy.Sanitize(payload)
	text = html.UnescapeString(text)

	return strings.Join(strings.Fields(text), " ")
}

// decodeCharset converts payload to UTF-8 using the charset declared in contentType.
func decodeCharset(payload []byte, contentType string) (string, error) {
	if contentType == "" {
		return string(payload), nil
	}

	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return string(payload), nil
	}

	charset := strings.ToLower(params["charset"])
	if charset == "" || charset == "utf-8" || charset == "us-ascii" {
		return string(payload), nil
	}

	enc, err := htmlindex.Get(charset)
	if err != nil {
		return string(payload), nil
	}

	decoded, err := io.ReadAll(enc.NewDecoder().Reader(strings.NewReader(string(payload))))
	if err != nil {
		return "", err
	}

	return string(decoded), nil
}
