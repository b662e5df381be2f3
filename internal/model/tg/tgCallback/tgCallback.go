package tgCallback

// Callback button prefixes
const (
	PageNumber      string = "page_number"
	BackToBooksPage string = "back_to_books_page"

	// prefixes
	ToBookDetails string = "to_book_details:"
	ToBooksPage   string = "to_books_page:"
	Translate     string = "translate:"
)
