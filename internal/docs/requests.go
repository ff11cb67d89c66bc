package docs

import (
	"encoding/json"

	"github.com/joelanford/mcp/workspace-sim/internal/apierr"
	"github.com/joelanford/mcp/workspace-sim/internal/schema"
)

// Request is one batch update request. Exactly one field is set; the
// others stay nil. Unknown request types fail to decode.
type Request struct {
	InsertText          *InsertTextRequest          `json:"insertText,omitempty"`
	UpdateDocumentStyle *UpdateDocumentStyleRequest `json:"updateDocumentStyle,omitempty"`
	DeleteContentRange  *DeleteContentRangeRequest  `json:"deleteContentRange,omitempty"`
	ReplaceAllText      *ReplaceAllTextRequest      `json:"replaceAllText,omitempty"`
	InsertTable         *InsertTableRequest         `json:"insertTable,omitempty"`
}

type Location struct {
	Index *schema.Int `json:"index"`
}

type EndOfSegmentLocation struct {
	SegmentID string `json:"segmentId"`
}

type InsertTextRequest struct {
	Text     *string   `json:"text"`
	Location *Location `json:"location"`
}

type UpdateDocumentStyleRequest struct {
	DocumentStyle json.RawMessage `json:"documentStyle"`
}

type ContentRange struct {
	StartIndex *schema.Int `json:"startIndex"`
	EndIndex   *schema.Int `json:"endIndex"`
}

type DeleteContentRangeRequest struct {
	Range *ContentRange `json:"range"`
}

type SubstringMatchCriteria struct {
	Text      *string `json:"text"`
	MatchCase bool    `json:"matchCase"`
}

type ReplaceAllTextRequest struct {
	ContainsText *SubstringMatchCriteria `json:"containsText"`
	ReplaceText  *string                 `json:"replaceText"`
}

type InsertTableRequest struct {
	Rows                 *schema.Int           `json:"rows"`
	Columns              *schema.Int           `json:"columns"`
	Location             *Location             `json:"location"`
	EndOfSegmentLocation *EndOfSegmentLocation `json:"endOfSegmentLocation"`
}

// decodeRequest parses and validates a raw batch request. Shape errors
// (unknown type, extra fields, missing required fields) surface here,
// before any handler runs.
func decodeRequest(raw json.RawMessage) (*Request, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return nil, apierr.Validation("request must be a JSON object")
	}
	var req Request
	if err := schema.Decode(raw, &req); err != nil {
		return nil, apierr.Validation("Unsupported request type.")
	}
	set := 0
	if req.InsertText != nil {
		set++
	}
	if req.UpdateDocumentStyle != nil {
		set++
	}
	if req.DeleteContentRange != nil {
		set++
	}
	if req.ReplaceAllText != nil {
		set++
	}
	if req.InsertTable != nil {
		set++
	}
	if set != 1 {
		return nil, apierr.Validation("Unsupported request type.")
	}
	if err := req.validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *Request) validate() error {
	switch {
	case r.InsertText != nil:
		if r.InsertText.Text == nil {
			return apierr.Validation("insertText.text is required")
		}
		if r.InsertText.Location == nil || r.InsertText.Location.Index == nil {
			return apierr.Validation("insertText.location.index is required")
		}
	case r.UpdateDocumentStyle != nil:
		// documentStyle is free-form; nothing further to check.
	case r.DeleteContentRange != nil:
		rng := r.DeleteContentRange.Range
		if rng == nil || rng.StartIndex == nil || rng.EndIndex == nil {
			return apierr.Validation("deleteContentRange.range requires startIndex and endIndex")
		}
	case r.ReplaceAllText != nil:
		if r.ReplaceAllText.ContainsText == nil || r.ReplaceAllText.ContainsText.Text == nil {
			return apierr.Validation("replaceAllText.containsText.text is required")
		}
		if r.ReplaceAllText.ReplaceText == nil {
			return apierr.Validation("replaceAllText.replaceText is required")
		}
	case r.InsertTable != nil:
		if r.InsertTable.Rows == nil || r.InsertTable.Columns == nil {
			return apierr.Validation("insertTable requires rows and columns")
		}
	}
	return nil
}
