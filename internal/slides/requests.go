package slides

import (
	"encoding/json"

	"github.com/joelanford/mcp/workspace-sim/internal/apierr"
	"github.com/joelanford/mcp/workspace-sim/internal/model"
	"github.com/joelanford/mcp/workspace-sim/internal/schema"
)

// Request is one batch update request. Exactly one field is set.
type Request struct {
	CreateSlide              *CreateSlideRequest              `json:"createSlide,omitempty"`
	CreateShape              *CreateShapeRequest              `json:"createShape,omitempty"`
	InsertText               *InsertTextRequest               `json:"insertText,omitempty"`
	ReplaceAllText           *ReplaceAllTextRequest           `json:"replaceAllText,omitempty"`
	DeleteObject             *DeleteObjectRequest             `json:"deleteObject,omitempty"`
	DeleteText               *DeleteTextRequest               `json:"deleteText,omitempty"`
	UpdateTextStyle          *UpdateTextStyleRequest          `json:"updateTextStyle,omitempty"`
	GroupObjects             *GroupObjectsRequest             `json:"groupObjects,omitempty"`
	UngroupObjects           *UngroupObjectsRequest           `json:"ungroupObjects,omitempty"`
	UpdatePageElementAltText *UpdatePageElementAltTextRequest `json:"updatePageElementAltText,omitempty"`
	UpdateSlideProperties    *UpdateSlidePropertiesRequest    `json:"updateSlideProperties,omitempty"`
}

// Type returns the request's type key, or "" when no field is set.
func (r *Request) Type() string {
	switch {
	case r.CreateSlide != nil:
		return "createSlide"
	case r.CreateShape != nil:
		return "createShape"
	case r.InsertText != nil:
		return "insertText"
	case r.ReplaceAllText != nil:
		return "replaceAllText"
	case r.DeleteObject != nil:
		return "deleteObject"
	case r.DeleteText != nil:
		return "deleteText"
	case r.UpdateTextStyle != nil:
		return "updateTextStyle"
	case r.GroupObjects != nil:
		return "groupObjects"
	case r.UngroupObjects != nil:
		return "ungroupObjects"
	case r.UpdatePageElementAltText != nil:
		return "updatePageElementAltText"
	case r.UpdateSlideProperties != nil:
		return "updateSlideProperties"
	}
	return ""
}

type LayoutReference struct {
	PredefinedLayout string `json:"predefinedLayout,omitempty"`
	LayoutID         string `json:"layoutId,omitempty"`
}

type LayoutPlaceholderIDMapping struct {
	ObjectID                  string             `json:"objectId,omitempty"`
	LayoutPlaceholder         *model.Placeholder `json:"layoutPlaceholder,omitempty"`
	LayoutPlaceholderObjectID string             `json:"layoutPlaceholderObjectId,omitempty"`
}

type CreateSlideRequest struct {
	ObjectID              string                        `json:"objectId,omitempty"`
	InsertionIndex        *schema.Int                   `json:"insertionIndex,omitempty"`
	SlideLayoutReference  *LayoutReference              `json:"slideLayoutReference,omitempty"`
	PlaceholderIDMappings []*LayoutPlaceholderIDMapping `json:"placeholderIdMappings,omitempty"`
}

type PageElementProperties struct {
	PageObjectID string                 `json:"pageObjectId,omitempty"`
	Size         *model.Size            `json:"size,omitempty"`
	Transform    *model.AffineTransform `json:"transform,omitempty"`
}

type CreateShapeRequest struct {
	ObjectID          string                 `json:"objectId,omitempty"`
	ElementProperties *PageElementProperties `json:"elementProperties,omitempty"`
	ShapeType         *string                `json:"shapeType"`
}

type TableCellLocation struct {
	RowIndex    *schema.Int `json:"rowIndex,omitempty"`
	ColumnIndex *schema.Int `json:"columnIndex,omitempty"`
}

type InsertTextRequest struct {
	ObjectID       string             `json:"objectId"`
	CellLocation   *TableCellLocation `json:"cellLocation,omitempty"`
	Text           *string            `json:"text"`
	InsertionIndex *schema.Int        `json:"insertionIndex,omitempty"`
}

type SubstringMatchCriteria struct {
	Text          *string `json:"text"`
	MatchCase     bool    `json:"matchCase"`
	SearchByRegex bool    `json:"searchByRegex"`
}

type ReplaceAllTextRequest struct {
	ReplaceText   *string                 `json:"replaceText"`
	PageObjectIDs []string                `json:"pageObjectIds,omitempty"`
	ContainsText  *SubstringMatchCriteria `json:"containsText"`
}

type DeleteObjectRequest struct {
	ObjectID string `json:"objectId"`
}

type DeleteTextRequest struct {
	ObjectID     string             `json:"objectId"`
	CellLocation *TableCellLocation `json:"cellLocation,omitempty"`
	TextRange    *schema.Range      `json:"textRange"`
}

type UpdateTextStyleRequest struct {
	ObjectID     string             `json:"objectId"`
	CellLocation *TableCellLocation `json:"cellLocation,omitempty"`
	Style        *model.TextStyle   `json:"style"`
	TextRange    *schema.Range      `json:"textRange,omitempty"`
	Fields       *string            `json:"fields"`
}

type GroupObjectsRequest struct {
	GroupObjectID     string   `json:"groupObjectId,omitempty"`
	ChildrenObjectIDs []string `json:"childrenObjectIds"`
}

type UngroupObjectsRequest struct {
	ObjectIDs []string `json:"objectIds"`
}

type UpdatePageElementAltTextRequest struct {
	ObjectID    string  `json:"objectId"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

type SlidePropertiesUpdate struct {
	LayoutObjectID string      `json:"layoutObjectId,omitempty"`
	MasterObjectID string      `json:"masterObjectId,omitempty"`
	NotesPage      *model.Page `json:"notesPage,omitempty"`
	IsSkipped      *bool       `json:"isSkipped,omitempty"`
}

type UpdateSlidePropertiesRequest struct {
	ObjectID        string                 `json:"objectId"`
	SlideProperties *SlidePropertiesUpdate `json:"slideProperties"`
	Fields          *string                `json:"fields"`
}

// decodeRequest parses and validates one raw batch request: a JSON object
// with a single supported request-type key whose value is an object.
func decodeRequest(raw json.RawMessage, index int) (*Request, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil || len(keys) != 1 {
		return nil, apierr.InvalidInput("Request at index %d is malformed: must be a dictionary with a single key.", index)
	}
	var typeKey string
	for k := range keys {
		typeKey = k
	}
	var probe any
	if err := json.Unmarshal(keys[typeKey], &probe); err != nil {
		return nil, apierr.InvalidInput("Parameters for request '%s' at index %d must be a dictionary.", typeKey, index)
	}
	if _, ok := probe.(map[string]any); !ok {
		return nil, apierr.InvalidInput("Parameters for request '%s' at index %d must be a dictionary.", typeKey, index)
	}

	var req Request
	if err := schema.Decode(raw, &req); err != nil {
		if req.Type() == "" {
			return nil, apierr.InvalidInput("Unsupported request type: '%s' at index %d.", typeKey, index)
		}
		return nil, apierr.InvalidInput("Invalid parameters for %s request: %s", typeKey, err.Error())
	}
	if req.Type() == "" {
		return nil, apierr.InvalidInput("Unsupported request type: '%s' at index %d.", typeKey, index)
	}
	if err := req.validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

func checkOptionalObjectID(id string) error {
	if id == "" {
		return nil
	}
	return schema.CheckObjectID(id)
}

func (r *Request) validate() error {
	switch {
	case r.CreateSlide != nil:
		if err := checkOptionalObjectID(r.CreateSlide.ObjectID); err != nil {
			return apierr.InvalidInput("Invalid parameters for createSlide request: %s", err.Error())
		}
	case r.CreateShape != nil:
		if err := checkOptionalObjectID(r.CreateShape.ObjectID); err != nil {
			return apierr.InvalidInput("Invalid parameters for createShape request: %s", err.Error())
		}
		if r.CreateShape.ShapeType == nil {
			return apierr.InvalidInput("Invalid parameters for createShape request: shapeType is required")
		}
	case r.InsertText != nil:
		if err := schema.CheckObjectID(r.InsertText.ObjectID); err != nil {
			return apierr.InvalidInput("Invalid parameters for insertText request: %s", err.Error())
		}
		if r.InsertText.Text == nil {
			return apierr.InvalidInput("Invalid parameters for insertText request: text is required")
		}
	case r.ReplaceAllText != nil:
		if r.ReplaceAllText.ContainsText == nil || r.ReplaceAllText.ContainsText.Text == nil {
			return apierr.InvalidInput("Invalid parameters for replaceAllText request: containsText.text is required")
		}
		if r.ReplaceAllText.ReplaceText == nil {
			return apierr.InvalidInput("Invalid parameters for replaceAllText request: replaceText is required")
		}
	case r.DeleteObject != nil:
		if r.DeleteObject.ObjectID == "" {
			return apierr.InvalidInput("Invalid parameters for deleteObject request: objectId is required")
		}
	case r.DeleteText != nil:
		if r.DeleteText.ObjectID == "" {
			return apierr.InvalidInput("Invalid parameters for deleteText request: objectId is required")
		}
		if r.DeleteText.TextRange == nil {
			return apierr.InvalidInput("Invalid parameters for deleteText request: textRange is required")
		}
		if err := r.DeleteText.TextRange.Validate(); err != nil {
			return apierr.InvalidInput("Invalid parameters for deleteText request: %s", err.Error())
		}
	case r.UpdateTextStyle != nil:
		if r.UpdateTextStyle.ObjectID == "" {
			return apierr.InvalidInput("Invalid parameters for updateTextStyle request: objectId is required")
		}
		if r.UpdateTextStyle.Style == nil {
			return apierr.InvalidInput("Invalid parameters for updateTextStyle request: style is required")
		}
		if r.UpdateTextStyle.Fields == nil {
			return apierr.InvalidInput("Invalid parameters for updateTextStyle request: fields is required")
		}
		if r.UpdateTextStyle.TextRange != nil {
			if err := r.UpdateTextStyle.TextRange.Validate(); err != nil {
				return apierr.InvalidInput("Invalid parameters for updateTextStyle request: %s", err.Error())
			}
		}
	case r.GroupObjects != nil:
		if err := checkOptionalObjectID(r.GroupObjects.GroupObjectID); err != nil {
			return apierr.InvalidInput("Invalid parameters for groupObjects request: %s", err.Error())
		}
		if len(r.GroupObjects.ChildrenObjectIDs) < 2 {
			return apierr.InvalidInput("Need at least two children.")
		}
	case r.UngroupObjects != nil:
		if len(r.UngroupObjects.ObjectIDs) == 0 {
			return apierr.InvalidInput("objectIds list cannot be empty.")
		}
	case r.UpdatePageElementAltText != nil:
		if r.UpdatePageElementAltText.ObjectID == "" {
			return apierr.InvalidInput("Invalid parameters for updatePageElementAltText request: objectId is required")
		}
	case r.UpdateSlideProperties != nil:
		if r.UpdateSlideProperties.ObjectID == "" {
			return apierr.InvalidInput("Invalid parameters for updateSlideProperties request: objectId is required")
		}
		if r.UpdateSlideProperties.SlideProperties == nil {
			return apierr.InvalidInput("Invalid parameters for updateSlideProperties request: slideProperties is required")
		}
		if r.UpdateSlideProperties.Fields == nil {
			return apierr.InvalidInput("Invalid parameters for updateSlideProperties request: fields is required")
		}
	}
	return nil
}
