package service

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrDownloadFailed = errors.New("unable to download the selected book")
	ErrEmptyContent   = errors.New("no content extracted from book for translation")
	ErrIncorrectPage  = errors.New("page must be positive")
)
