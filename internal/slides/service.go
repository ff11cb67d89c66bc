// Package slides implements the simulated Slides service: presentation
// lifecycle, page reads, text summarization, and transactional batch
// updates.
package slides

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
	return time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
}

// CreateRequest carries the initial state for a new presentation. At
// least one field must be provided; revisionId is output-only and
// ignored.
type CreateRequest struct {
	PresentationID string        `json:"presentationId,omitempty"`
	PageSize       *model.Size   `json:"pageSize,omitempty"`
	Slides         []*model.Page `json:"slides,omitempty"`
	Title          string        `json:"title,omitempty"`
	Masters        []*model.Page `json:"masters,omitempty"`
	Layouts        []*model.Page `json:"layouts,omitempty"`
	Locale         string        `json:"locale,omitempty"`
	RevisionID     string        `json:"revisionId,omitempty"`
	NotesMaster    *model.Page   `json:"notesMaster,omitempty"`
}

func (r *CreateRequest) empty() bool {
	return r.PresentationID == "" && r.PageSize == nil && r.Slides == nil &&
		r.Title == "" && r.Masters == nil && r.Layouts == nil &&
		r.Locale == "" && r.RevisionID == "" && r.NotesMaster == nil
}

func (r *CreateRequest) validate() error {
	if r.empty() {
		return apierr.InvalidInput("At least one field must be provided in the create presentation request.")
	}
	if len(r.Title) > 1000 {
		return apierr.InvalidInput("Request validation failed: title must be at most 1000 characters.")
	}
	pages := append([]*model.Page{}, r.Slides...)
	pages = append(pages, r.Masters...)
	pages = append(pages, r.Layouts...)
	if r.NotesMaster != nil {
		pages = append(pages, r.NotesMaster)
	}
	for _, page := range pages {
		if err := page.Validate(); err != nil {
			return apierr.InvalidInput("Request validation failed: %s", err.Error())
		}
	}
	return nil
}

// Create makes a new presentation and stores it as a Drive file entry for
// the default user, creating the user scaffold when needed.
func (s *Service) Create(req *CreateRequest) (*model.Presentation, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	u := s.store.EnsureUser(DefaultUserID)

	presentationID := req.PresentationID
	if presentationID == "" {
		presentationID = uuid.NewString()
	}
	if _, exists := u.Files[presentationID]; exists {
		return nil, apierr.InvalidInput("A presentation with ID '%s' already exists.", presentationID)
	}

	pres := model.Presentation{
		PresentationID: presentationID,
		Title:          req.Title,
		PageSize:       req.PageSize,
		Slides:         req.Slides,
		Masters:        req.Masters,
		Layouts:        req.Layouts,
		NotesMaster:    req.NotesMaster,
		Locale:         req.Locale,
		RevisionID:     uuid.NewString(),
	}
	if pres.Slides == nil {
		pres.Slides = []*model.Page{}
	}
	if pres.Masters == nil {
		pres.Masters = []*model.Page{}
	}
	if pres.Layouts == nil {
		pres.Layouts = []*model.Page{}
	}

	now := timestamp()
	file := &model.PresentationFile{
		FileMeta: model.FileMeta{
			Kind:         "drive#file",
			ID:           presentationID,
			Name:         pres.Title,
			MimeType:     model.PresentationMimeType,
			CreatedTime:  now,
			ModifiedTime: now,
			Parents:      []string{},
			Owners:       []string{u.Email()},
			Permissions: []*model.Permission{{
				Kind:         "drive#permission",
				ID:           "owner_perm_" + uuid.NewString(),
				Type:         "user",
				EmailAddress: u.Email(),
				Role:         "owner",
				DisplayName:  u.DisplayName(),
				Deleted:      false,
			}},
			Starred:               false,
			Trashed:               false,
			ViewersCanCopyContent: true,
			WritersCanShare:       true,
			Version:               "1",
			Size:                  "0",
		},
		Presentation: pres,
	}
	u.Files[presentationID] = &store.File{Pres: file}

	return &file.Presentation, nil
}

// Get returns the latest version of the presentation.
func (s *Service) Get(presentationID string) (*model.Presentation, error) {
	if strings.TrimSpace(presentationID) == "" {
		return nil, apierr.InvalidInput("presentationId must be a non-empty string.")
	}
	u, err := s.store.RequireUser(DefaultUserID)
	if err != nil {
		return nil, err
	}
	f, ok := u.Files[presentationID]
	if !ok {
		return nil, apierr.NotFound("Presentation with ID '%s' not found or is not a presentation file.", presentationID)
	}
	if f.Pres == nil || f.Pres.MimeType != model.PresentationMimeType {
		return nil, apierr.NotFound("Presentation with %s is not a presentation file.", presentationID)
	}
	return &f.Pres.Presentation, nil
}

// GetPage returns a single page by object ID, searching slides, layouts,
// masters, and the notes master. A page that exists but fails validation
// is a validation error, not a not-found.
func (s *Service) GetPage(presentationID, pageObjectID string) (*model.Page, error) {
	if strings.TrimSpace(presentationID) == "" {
		return nil, apierr.InvalidInput("presentationId cannot be empty or contain only whitespace.")
	}
	if strings.TrimSpace(pageObjectID) == "" {
		return nil, apierr.InvalidInput("pageObjectId cannot be empty or contain only whitespace.")
	}
	u, err := s.store.RequireUser(DefaultUserID)
	if err != nil {
		return nil, err
	}
	f, ok := u.Files[presentationID]
	if !ok {
		return nil, apierr.NotFound("Presentation with ID '%s' not found.", presentationID)
	}
	if f.Pres == nil || f.Pres.MimeType != model.PresentationMimeType {
		return nil, apierr.NotFound("File with ID '%s' is not a Google Slides presentation.", presentationID)
	}

	page := f.Pres.FindPage(pageObjectID)
	if page == nil {
		return nil, apierr.NotFound("Page with object ID '%s' not found in presentation '%s'.", pageObjectID, presentationID)
	}
	if err := page.Validate(); err != nil {
		return nil, apierr.Validation("Page with object ID '%s' exists but has invalid data structure: %s", pageObjectID, err.Error())
	}
	return page, nil
}

// SlideSummary is the per-slide portion of a presentation summary.
type SlideSummary struct {
	SlideNumber int    `json:"slideNumber"`
	SlideID     string `json:"slideId"`
	Content     string `json:"content"`
	Notes       string `json:"notes,omitempty"`
}

type Summary struct {
	Title        string          `json:"title"`
	SlideCount   int             `json:"slideCount"`
	LastModified string          `json:"lastModified"`
	Slides       []*SlideSummary `json:"slides"`
	Message      string          `json:"summary,omitempty"`
}

// Summarize extracts the text content of every slide, optionally with
// speaker notes, for summarization by a caller.
func (s *Service) Summarize(presentationID string, includeNotes bool) (*Summary, error) {
	if strings.TrimSpace(presentationID) == "" {
		return nil, apierr.InvalidInput("presentationId cannot be empty or contain only whitespace.")
	}
	u, err := s.store.RequireUser(DefaultUserID)
	if err != nil {
		return nil, err
	}
	f, ok := u.Files[presentationID]
	if !ok || f.Pres == nil || f.Pres.MimeType != model.PresentationMimeType {
		return nil, apierr.NotFound("Presentation with ID '%s' not found or is not a presentation file.", presentationID)
	}
	pres := &f.Pres.Presentation

	title := pres.Title
	if title == "" {
		title = "Untitled Presentation"
	}
	lastModified := "Unknown"
	if pres.RevisionID != "" {
		lastModified = "Revision " + pres.RevisionID
	}

	if len(pres.Slides) == 0 {
		return &Summary{
			Title:        title,
			SlideCount:   0,
			LastModified: lastModified,
			Slides:       []*SlideSummary{},
			Message:      "This presentation contains no slides.",
		}, nil
	}

	summaries := make([]*SlideSummary, 0, len(pres.Slides))
	for i, slide := range pres.Slides {
		slideID := slide.ObjectID
		if slideID == "" {
			slideID = "slide_" + strconv.Itoa(i+1)
		}
		info := &SlideSummary{
			SlideNumber: i + 1,
			SlideID:     slideID,
			Content:     strings.Join(extractText(slide.PageElements), " "),
		}
		if includeNotes && slide.SlideProperties != nil && slide.SlideProperties.NotesPage != nil {
			notes := strings.TrimSpace(strings.Join(extractText(slide.SlideProperties.NotesPage.PageElements), " "))
			info.Notes = notes
		}
		summaries = append(summaries, info)
	}

	return &Summary{
		Title:        title,
		SlideCount:   len(summaries),
		LastModified: lastModified,
		Slides:       summaries,
	}, nil
}

// extractText collects trimmed text run content from shapes and table
// cells, in document order.
func extractText(elements []*model.PageElement) []string {
	var segments []string
	for _, element := range elements {
		for _, run := range element.TextRuns() {
			if text := strings.TrimSpace(run.Content); text != "" {
				segments = append(segments, text)
			}
		}
		if element.Table != nil {
			for _, row := range element.Table.TableRows {
				for _, cell := range row.TableCells {
					if cell.Text == nil {
						continue
					}
					for _, te := range cell.Text.TextElements {
						if te.TextRun == nil {
							continue
						}
						if text := strings.TrimSpace(te.TextRun.Content); text != "" {
							segments = append(segments, text)
						}
					}
				}
			}
		}
	}
	return segments
}
