package model

const UnknownAuthor = "Unknown"

type BookSummary struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	DownloadURL string `json:"downloadUrl,omitempty"`
}

type BookSearchRequest struct {
	Query string `json:"query"`
	Page  int    `json:"page"`
}

type BooksPage struct {
	Books       []BookSummary
	HasNextPage bool
	Page        int
	Query       string
}
