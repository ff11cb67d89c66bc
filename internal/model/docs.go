package model

import "encoding/json"

const DocumentMimeType = "application/vnd.google-apps.document"

// Document is a Docs file: Drive metadata plus the ordered content list.
// Content indices address positions in the list, not character offsets.
type Document struct {
	ID                  string            `json:"id"`
	DriveID             string            `json:"driveId"`
	Name                string            `json:"name"`
	MimeType            string            `json:"mimeType"`
	CreatedTime         string            `json:"createdTime"`
	ModifiedTime        string            `json:"modifiedTime"`
	Parents             []string          `json:"parents"`
	Owners              []string          `json:"owners"`
	SuggestionsViewMode string            `json:"suggestionsViewMode"`
	IncludeTabsContent  bool              `json:"includeTabsContent"`
	Content             []*ContentElement `json:"content"`
	Tabs                []json.RawMessage `json:"tabs"`
	Permissions         []*Permission     `json:"permissions"`
	Trashed             bool              `json:"trashed"`
	Starred             bool              `json:"starred"`
	Size                string            `json:"size"`
	RevisionID          string            `json:"revisionId,omitempty"`
	DocumentStyle       json.RawMessage   `json:"documentStyle,omitempty"`
}

// ContentElement is one addressable unit of document content: a text
// element, a table, or (in seed data) a legacy textRun wrapper that gets
// normalized at the read boundary.
type ContentElement struct {
	ElementID string         `json:"elementId,omitempty"`
	Text      *string        `json:"text,omitempty"`
	Table     *DocTable      `json:"table,omitempty"`
	TextRun   *DocTextRun    `json:"textRun,omitempty"`
}

type DocTextRun struct {
	Content string `json:"content"`
}

type DocTable struct {
	Rows      int            `json:"rows"`
	Columns   int            `json:"columns"`
	TableRows []*DocTableRow `json:"tableRows"`
}

type DocTableRow struct {
	TableCells []*DocTableCell `json:"tableCells"`
}

type DocTableCell struct {
	Content []*ContentElement `json:"content"`
}

type Permission struct {
	Kind         string `json:"kind,omitempty"`
	ID           string `json:"id,omitempty"`
	Role         string `json:"role"`
	Type         string `json:"type"`
	EmailAddress string `json:"emailAddress"`
	DisplayName  string `json:"displayName,omitempty"`
	Deleted      bool   `json:"deleted,omitempty"`
}

// TextString returns a content element's text, reading through the legacy
// textRun form when present.
func (c *ContentElement) TextString() (string, bool) {
	if c.TextRun != nil {
		return c.TextRun.Content, true
	}
	if c.Text != nil {
		return *c.Text, true
	}
	return "", false
}

// SetText stores text in the normalized form, dropping any legacy textRun.
func (c *ContentElement) SetText(s string) {
	c.Text = &s
	c.TextRun = nil
}
