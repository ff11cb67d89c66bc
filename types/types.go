package types

import "encoding/json"

// DocsCreateArgs contains arguments for creating a document.
type DocsCreateArgs struct {
	Title  string `json:"title"`   // Document title, defaults to "Untitled Document"
	UserID string `json:"user_id"` // Owning user ID, defaults to "me"
}

// DocsGetArgs contains arguments for fetching a document.
type DocsGetArgs struct {
	DocumentID          string `json:"document_id"`
	SuggestionsViewMode string `json:"suggestions_view_mode"` // Optional suggestions view mode
	IncludeTabsContent  bool   `json:"include_tabs_content"`
	UserID              string `json:"user_id"` // Defaults to "me"
}

// DocsBatchUpdateArgs contains arguments for a document batch update.
type DocsBatchUpdateArgs struct {
	DocumentID string            `json:"document_id"`
	Requests   []json.RawMessage `json:"requests"` // Ordered update requests, one type key each
	UserID     string            `json:"user_id"`  // Defaults to "me"
}

// SlidesCreateArgs contains arguments for creating a presentation.
type SlidesCreateArgs struct {
	Request json.RawMessage `json:"request"` // Initial presentation state
}

// SlidesGetArgs contains arguments for fetching a presentation.
type SlidesGetArgs struct {
	PresentationID string `json:"presentation_id"`
}

// SlidesGetPageArgs contains arguments for fetching a single page.
type SlidesGetPageArgs struct {
	PresentationID string `json:"presentation_id"`
	PageObjectID   string `json:"page_object_id"`
}

// SlidesSummarizeArgs contains arguments for summarizing a presentation.
type SlidesSummarizeArgs struct {
	PresentationID string `json:"presentation_id"`
	IncludeNotes   bool   `json:"include_notes"` // Include speaker notes in the summary
}

// SlidesBatchUpdateArgs contains arguments for a presentation batch update.
type SlidesBatchUpdateArgs struct {
	PresentationID string            `json:"presentation_id"`
	Requests       []json.RawMessage `json:"requests"`      // Ordered update requests, one type key each
	WriteControl   json.RawMessage   `json:"write_control"` // Optional revision assertion
}
