package dto

import "book_translator/internal/model"

type SearchBooksResponse struct {
	Query string              `json:"query"`
	Books []model.BookSummary `json:"books"`
}

type CreateTranslationRequest struct {
	BookID           int64  `json:"bookId" binding:"required,gt=0"`
	DownloadURL      string `json:"downloadUrl"`
	Title            string `json:"title"`
	Author           string `json:"author"`
	Segments         int    `json:"segments"`
	SegmentationMode string `json:"segmentationMode"`
}

type CreateTranslationResponse struct {
	Book          model.BookSummary          `json:"book"`
	Segments      []model.TranslationSegment `json:"segments"`
	AudioFileName string                     `json:"audioFileName,omitempty"`
	AudioURL      string                     `json:"audioUrl,omitempty"`
	DownloadURL   string                     `json:"downloadUrl,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
