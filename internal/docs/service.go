// Package docs implements the simulated Docs service: document creation,
// reads with content normalization, and transactional batch updates.
package docs

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joelanford/mcp/workspace-sim/internal/apierr"
	"github.com/joelanford/mcp/workspace-sim/internal/model"
	"github.com/joelanford/mcp/workspace-sim/internal/store"
)

const DefaultUserID = "me"

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

func timestamp() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05Z")
}

// Create makes a new empty document owned by the given user. The user
// must already exist: creating one here would paper over a missing-user
// condition.
func (s *Service) Create(title, userID string) (*model.Document, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apierr.Validation("Argument 'userId' cannot be empty or only whitespace.")
	}
	u, ok := s.store.Users[userID]
	if !ok {
		return nil, apierr.UserNotFound("User with ID '%s' not found. Cannot create document for non-existent user.", userID)
	}
	now := timestamp()
	doc := &model.Document{
		ID:                  uuid.NewString(),
		DriveID:             "",
		Name:                title,
		MimeType:            model.DocumentMimeType,
		CreatedTime:         now,
		ModifiedTime:        now,
		Parents:             []string{},
		Owners:              []string{u.Email()},
		SuggestionsViewMode: "DEFAULT",
		IncludeTabsContent:  false,
		Content:             []*model.ContentElement{},
		Tabs:                nil,
		Permissions: []*model.Permission{
			{Role: "owner", Type: "user", EmailAddress: u.Email()},
		},
		Trashed: false,
		Starred: false,
		Size:    "0",
	}
	u.Files[doc.ID] = &store.File{Doc: doc}
	s.store.NextCounter(userID, "file")
	return doc, nil
}

var suggestionsViewModes = map[string]bool{
	"DEFAULT_FOR_CURRENT_ACCESS":   true,
	"SUGGESTIONS_INLINE":           true,
	"PREVIEW_SUGGESTIONS_ACCEPTED": true,
	"PREVIEW_WITHOUT_SUGGESTIONS":  true,
}

// DocumentView is the Get response: the document with its annotation
// collections attached and content normalized to the {elementId, text}
// form.
type DocumentView struct {
	model.Document
	Comments        map[string]map[string]any `json:"comments"`
	Replies         map[string]map[string]any `json:"replies"`
	Labels          map[string]map[string]any `json:"labels"`
	AccessProposals map[string]map[string]any `json:"accessproposals"`
}

// Get returns a document. The returned view is a copy: reading never
// mutates stored state, and reading twice yields the same normalization.
func (s *Service) Get(documentID, suggestionsViewMode string, includeTabsContent bool, userID string) (*DocumentView, error) {
	if strings.TrimSpace(documentID) == "" {
		return nil, apierr.Validation("documentId cannot be empty or consist only of whitespace.")
	}
	if strings.TrimSpace(userID) == "" {
		return nil, apierr.Validation("userId cannot be empty or consist only of whitespace.")
	}
	if suggestionsViewMode != "" && !suggestionsViewModes[suggestionsViewMode] {
		return nil, apierr.Validation("Invalid value for suggestionsViewMode: %s. Valid values are: DEFAULT_FOR_CURRENT_ACCESS, SUGGESTIONS_INLINE, PREVIEW_SUGGESTIONS_ACCEPTED, PREVIEW_WITHOUT_SUGGESTIONS.", suggestionsViewMode)
	}
	u, err := s.store.RequireUser(userID)
	if err != nil {
		return nil, err
	}
	f, ok := u.Files[documentID]
	if !ok || f.Doc == nil {
		return nil, apierr.NotFound("Document '%s' not found", documentID)
	}
	clone, err := f.Clone()
	if err != nil {
		return nil, err
	}
	doc := clone.Doc
	if suggestionsViewMode != "" {
		doc.SuggestionsViewMode = suggestionsViewMode
	}
	if includeTabsContent {
		doc.IncludeTabsContent = true
	}
	doc.Content = normalizeContent(doc.Content)

	return &DocumentView{
		Document:        *doc,
		Comments:        store.AnnotationsFor(u.Comments, documentID),
		Replies:         store.AnnotationsFor(u.Replies, documentID),
		Labels:          store.AnnotationsFor(u.Labels, documentID),
		AccessProposals: store.AnnotationsFor(u.AccessProposals, documentID),
	}, nil
}

// normalizeContent rewrites content elements into the documented
// {elementId, text} form: legacy textRun wrappers are unwrapped and
// missing element IDs are assigned positionally.
func normalizeContent(content []*model.ContentElement) []*model.ContentElement {
	out := make([]*model.ContentElement, 0, len(content))
	counter := 1
	for _, el := range content {
		switch {
		case el.TextRun != nil:
			text := el.TextRun.Content
			out = append(out, &model.ContentElement{
				ElementID: elementID(counter),
				Text:      &text,
			})
			counter++
		case el.Text != nil:
			id := el.ElementID
			if id == "" {
				id = elementID(counter)
			}
			out = append(out, &model.ContentElement{
				ElementID: id,
				Text:      el.Text,
			})
			counter++
		default:
			if el.ElementID == "" {
				el.ElementID = elementID(counter)
				counter++
			}
			out = append(out, el)
		}
	}
	return out
}

func elementID(n int) string {
	return "p" + strconv.Itoa(n)
}
