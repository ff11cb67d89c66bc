package docs

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/joelanford/mcp/workspace-sim/internal/apierr"
	"github.com/joelanford/mcp/workspace-sim/internal/model"
)

// Reply carries the outcome of a single batch request, keyed by the
// request type that produced it.
type Reply struct {
	InsertText          *EmptyReply          `json:"insertText,omitempty"`
	UpdateDocumentStyle *EmptyReply          `json:"updateDocumentStyle,omitempty"`
	DeleteContentRange  *EmptyReply          `json:"deleteContentRange,omitempty"`
	ReplaceAllText      *ReplaceAllTextReply `json:"replaceAllText,omitempty"`
	InsertTable         *EmptyReply          `json:"insertTable,omitempty"`
}

type EmptyReply struct{}

type ReplaceAllTextReply struct {
	OccurrencesChanged int `json:"occurrencesChanged"`
}

type BatchUpdateResponse struct {
	DocumentID string  `json:"documentId"`
	Replies    []Reply `json:"replies"`
}

// BatchUpdate applies an ordered list of requests to a document as one
// atomic unit. All requests are validated up front; handlers then run in
// order against a working copy. The copy replaces the stored document
// only when every request succeeds, so a mid-batch failure leaves the
// document untouched.
func (s *Service) BatchUpdate(documentID string, rawRequests []json.RawMessage, userID string) (*BatchUpdateResponse, error) {
	if userID == "" {
		userID = DefaultUserID
	}
	requests := make([]*Request, 0, len(rawRequests))
	for _, raw := range rawRequests {
		req, err := decodeRequest(raw)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	u, err := s.store.RequireUser(userID)
	if err != nil {
		return nil, err
	}
	if f, ok := u.Files[documentID]; !ok || f.Doc == nil {
		return nil, apierr.NotFound("Document with ID '%s' not found.", documentID)
	}

	tx, err := s.store.Begin(userID, documentID)
	if err != nil {
		return nil, err
	}
	doc := tx.File().Doc

	replies := make([]Reply, 0, len(requests))
	for _, req := range requests {
		var reply Reply
		switch {
		case req.InsertText != nil:
			reply.InsertText = &EmptyReply{}
			err = applyInsertText(doc, req.InsertText)
		case req.UpdateDocumentStyle != nil:
			reply.UpdateDocumentStyle = &EmptyReply{}
			err = applyUpdateDocumentStyle(doc, req.UpdateDocumentStyle)
		case req.DeleteContentRange != nil:
			reply.DeleteContentRange = &EmptyReply{}
			err = applyDeleteContentRange(doc, req.DeleteContentRange)
		case req.ReplaceAllText != nil:
			var changed int
			changed, err = applyReplaceAllText(doc, req.ReplaceAllText)
			reply.ReplaceAllText = &ReplaceAllTextReply{OccurrencesChanged: changed}
		case req.InsertTable != nil:
			reply.InsertTable = &EmptyReply{}
			err = applyInsertTable(doc, req.InsertTable)
		}
		if err != nil {
			return nil, err
		}
		replies = append(replies, reply)
	}

	doc.ModifiedTime = timestamp()
	doc.RevisionID = uuid.NewString()
	tx.Commit()

	return &BatchUpdateResponse{DocumentID: documentID, Replies: replies}, nil
}

func applyInsertText(doc *model.Document, req *InsertTextRequest) error {
	id := "p" + strconv.Itoa(len(doc.Content)+1)
	el := &model.ContentElement{ElementID: id}
	el.SetText(*req.Text)

	idx := int(*req.Location.Index)
	if idx < 0 {
		idx = 0
	}
	if idx > len(doc.Content) {
		idx = len(doc.Content)
	}
	doc.Content = append(doc.Content, nil)
	copy(doc.Content[idx+1:], doc.Content[idx:])
	doc.Content[idx] = el
	return nil
}

func applyUpdateDocumentStyle(doc *model.Document, req *UpdateDocumentStyleRequest) error {
	doc.DocumentStyle = req.DocumentStyle
	return nil
}

func applyDeleteContentRange(doc *model.Document, req *DeleteContentRangeRequest) error {
	start := int(*req.Range.StartIndex)
	end := int(*req.Range.EndIndex)
	length := len(doc.Content)

	if start < 0 || end < 0 {
		return apierr.Validation("Range indices must be non-negative.")
	}
	if start > end {
		return apierr.Validation("startIndex must be less than or equal to endIndex.")
	}
	if start > length {
		return apierr.Validation("startIndex is beyond document content length.")
	}
	if end > length {
		end = length
	}
	if start < length {
		doc.Content = append(doc.Content[:start], doc.Content[end:]...)
	}
	return nil
}

func applyReplaceAllText(doc *model.Document, req *ReplaceAllTextRequest) (int, error) {
	search := *req.ContainsText.Text
	replacement := *req.ReplaceText
	matchCase := req.ContainsText.MatchCase

	var pattern *regexp.Regexp
	if !matchCase {
		var err error
		pattern, err = regexp.Compile("(?i)" + regexp.QuoteMeta(search))
		if err != nil {
			return 0, apierr.Validation("invalid search text %q: %v", search, err)
		}
	}

	changed := 0
	for _, el := range doc.Content {
		text, ok := el.TextString()
		if !ok {
			continue
		}
		if matchCase {
			if n := strings.Count(text, search); n > 0 {
				el.SetText(strings.ReplaceAll(text, search, replacement))
				changed += n
			} else {
				// Legacy elements normalize even when nothing matched.
				el.SetText(text)
			}
		} else {
			if n := len(pattern.FindAllStringIndex(text, -1)); n > 0 {
				el.SetText(pattern.ReplaceAllLiteralString(text, replacement))
				changed += n
			} else {
				el.SetText(text)
			}
		}
	}
	return changed, nil
}

func applyInsertTable(doc *model.Document, req *InsertTableRequest) error {
	rows := int(*req.Rows)
	columns := int(*req.Columns)
	if rows < 1 || rows > 20 {
		return apierr.Validation("rows must be between 1 and 20.")
	}
	if columns < 1 || columns > 20 {
		return apierr.Validation("columns must be between 1 and 20.")
	}
	if req.Location == nil && req.EndOfSegmentLocation == nil {
		return apierr.Validation("Either 'location' or 'endOfSegmentLocation' must be provided.")
	}
	if req.Location != nil && req.EndOfSegmentLocation != nil {
		return apierr.Validation("Cannot specify both 'location' and 'endOfSegmentLocation'.")
	}
	if req.Location != nil && req.Location.Index == nil {
		return apierr.Validation("insertTable.location.index is required")
	}

	length := len(doc.Content)
	newline := &model.ContentElement{ElementID: "p" + strconv.Itoa(length+1)}
	newline.SetText("\n")

	table := &model.DocTable{Rows: rows, Columns: columns, TableRows: []*model.DocTableRow{}}
	for r := 0; r < rows; r++ {
		row := &model.DocTableRow{TableCells: []*model.DocTableCell{}}
		for c := 0; c < columns; c++ {
			cellText := ""
			cell := &model.DocTableCell{Content: []*model.ContentElement{{
				ElementID: "cell_" + strconv.Itoa(r) + "_" + strconv.Itoa(c),
				Text:      &cellText,
			}}}
			row.TableCells = append(row.TableCells, cell)
		}
		table.TableRows = append(table.TableRows, row)
	}
	tableEl := &model.ContentElement{
		ElementID: "p" + strconv.Itoa(length+2),
		Table:     table,
	}

	if req.Location != nil {
		idx := int(*req.Location.Index)
		if idx < 0 {
			idx = 0
		}
		if idx > len(doc.Content) {
			idx = len(doc.Content)
		}
		doc.Content = append(doc.Content, nil, nil)
		copy(doc.Content[idx+2:], doc.Content[idx:])
		doc.Content[idx] = newline
		doc.Content[idx+1] = tableEl
	} else {
		doc.Content = append(doc.Content, newline, tableEl)
	}
	return nil
}
