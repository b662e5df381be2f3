package telegram

const (
	startMsg            string = "Welcome! Send me the title of an English book from Project Gutenberg and I will translate it for you."
	helpMsg             string = "Send a book title to search the catalog, pick a book and choose how to split it: by sentences, pages or chapters.\n\nEach segment is sent with its translation, followed by a bilingual audio narration when it is available.\n\n/segments sets how many segments are translated (1-200)."
	internalErrMsg      string = "something went wrong..."
	booksNotFound       string = "no books found..."
	requestTooOld       string = "the request has expired, please enter a new title:"
	startTranslating    string = "translating, this may take a few minutes..."
	downloadFailedMsg   string = "Unable to download the selected book. Please try another title."
	emptyContentMsg     string = "No content extracted from book for translation."
	invalidSegmentsMsg  string = "please enter a whole number from 1 to 200"
	audioUnavailableMsg string = "audio narration is not available for this translation"
)
