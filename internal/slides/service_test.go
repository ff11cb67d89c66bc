package slides

import (
	"testing"

	"github.com/joelanford/mcp/workspace-sim/internal/apierr"
	"github.com/joelanford/mcp/workspace-sim/internal/model"
	"github.com/joelanford/mcp/workspace-sim/internal/store"
)

func newTestService() (*Service, *store.Store) {
	st := store.New()
	return NewService(st), st
}

func textShape(objectID, content string) *model.PageElement {
	return &model.PageElement{
		ObjectID: objectID,
		Shape: &model.Shape{
			ShapeType: "TEXT_BOX",
			Text: &model.TextContent{TextElements: []*model.TextElement{
				{TextRun: &model.TextRun{Content: content, Style: &model.TextStyle{}}},
			}},
		},
	}
}

func TestCreate(t *testing.T) {
	svc, st := newTestService()

	pres, err := svc.Create(&CreateRequest{
		PresentationID: "pres_test_1",
		Title:          "Quarterly Review",
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if pres.PresentationID != "pres_test_1" {
		t.Fatalf("presentationId=%q", pres.PresentationID)
	}
	if pres.RevisionID == "" {
		t.Fatalf("created presentation has no revision")
	}
	if pres.Slides == nil || pres.Masters == nil || pres.Layouts == nil {
		t.Fatalf("page collections not initialized: %+v", pres)
	}

	u, err := st.RequireUser(DefaultUserID)
	if err != nil {
		t.Fatalf("user scaffold not created: %v", err)
	}
	f, ok := u.Files["pres_test_1"]
	if !ok || f.Pres == nil {
		t.Fatalf("presentation not stored as a file")
	}
	if f.Pres.MimeType != model.PresentationMimeType {
		t.Fatalf("mimeType=%q", f.Pres.MimeType)
	}
	if len(f.Pres.Permissions) != 1 || f.Pres.Permissions[0].Role != "owner" {
		t.Fatalf("permissions=%+v, want one owner entry", f.Pres.Permissions)
	}
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(&CreateRequest{})
	if err == nil {
		t.Fatalf("Create() accepted empty request")
	}
	want := "At least one field must be provided in the create presentation request."
	if err.Error() != want {
		t.Fatalf("error %q, want %q", err.Error(), want)
	}

	long := make([]byte, 1001)
	for i := range long {
		long[i] = 'a'
	}
	if _, err := svc.Create(&CreateRequest{Title: string(long)}); err == nil {
		t.Fatalf("Create() accepted 1001-character title")
	}

	_, err = svc.Create(&CreateRequest{
		Slides: []*model.Page{{ObjectID: "slide_1", PageType: model.PageTypeSlide}},
	})
	if err == nil {
		t.Fatalf("Create() accepted invalid slide page")
	}
	want = "Request validation failed: slideProperties must be present when pageType is 'SLIDE'."
	if err.Error() != want {
		t.Fatalf("error %q, want %q", err.Error(), want)
	}
}

func TestCreate_DuplicateID(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Create(&CreateRequest{PresentationID: "pres_dup_1"}); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	_, err := svc.Create(&CreateRequest{PresentationID: "pres_dup_1"})
	if err == nil {
		t.Fatalf("Create() accepted duplicate ID")
	}
	want := "A presentation with ID 'pres_dup_1' already exists."
	if err.Error() != want {
		t.Fatalf("error %q, want %q", err.Error(), want)
	}
}

func TestGet(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Create(&CreateRequest{PresentationID: "pres_get_1", Title: "Deck"}); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	pres, err := svc.Get("pres_get_1")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if pres.Title != "Deck" {
		t.Fatalf("title=%q, want Deck", pres.Title)
	}

	if _, err := svc.Get("  "); err == nil {
		t.Fatalf("Get() accepted whitespace ID")
	}
	_, err = svc.Get("missing")
	if !apierr.IsKind(err, apierr.KindNotFound) {
		t.Fatalf("Get(missing) error=%v, want NotFound", err)
	}
}

func TestGetPage(t *testing.T) {
	svc, st := newTestService()
	u := st.EnsureUser(DefaultUserID)
	u.Files["pres_page_1"] = &store.File{Pres: &model.PresentationFile{
		FileMeta: model.FileMeta{ID: "pres_page_1", MimeType: model.PresentationMimeType},
		Presentation: model.Presentation{
			PresentationID: "pres_page_1",
			Slides: []*model.Page{
				{ObjectID: "slide_1", PageType: model.PageTypeSlide, SlideProperties: &model.SlideProperties{}},
				{ObjectID: "slide_bad", PageType: model.PageTypeSlide},
			},
			Layouts: []*model.Page{
				{ObjectID: "layout_blank_1", PageType: model.PageTypeLayout, LayoutProperties: &model.LayoutProperties{Name: "BLANK"}},
			},
		},
	}}

	page, err := svc.GetPage("pres_page_1", "slide_1")
	if err != nil {
		t.Fatalf("GetPage(slide) error: %v", err)
	}
	if page.ObjectID != "slide_1" {
		t.Fatalf("page=%q, want slide_1", page.ObjectID)
	}

	if _, err := svc.GetPage("pres_page_1", "layout_blank_1"); err != nil {
		t.Fatalf("GetPage(layout) error: %v", err)
	}

	// A page that exists but fails validation is a validation error,
	// not a not-found.
	_, err = svc.GetPage("pres_page_1", "slide_bad")
	if !apierr.IsKind(err, apierr.KindValidation) {
		t.Fatalf("GetPage(invalid page) error=%v, want Validation", err)
	}

	_, err = svc.GetPage("pres_page_1", "nope_123")
	if !apierr.IsKind(err, apierr.KindNotFound) {
		t.Fatalf("GetPage(missing page) error=%v, want NotFound", err)
	}
}

func TestSummarize(t *testing.T) {
	svc, st := newTestService()
	u := st.EnsureUser(DefaultUserID)
	u.Files["pres_sum_1"] = &store.File{Pres: &model.PresentationFile{
		FileMeta: model.FileMeta{ID: "pres_sum_1", MimeType: model.PresentationMimeType},
		Presentation: model.Presentation{
			PresentationID: "pres_sum_1",
			Title:          "Launch Plan",
			RevisionID:     "rev_abc",
			Slides: []*model.Page{
				{
					ObjectID:     "slide_1",
					PageElements: []*model.PageElement{textShape("title_1", "Welcome"), textShape("body_1", "Agenda")},
					SlideProperties: &model.SlideProperties{
						NotesPage: &model.Page{
							ObjectID:     "notes_1",
							PageElements: []*model.PageElement{textShape("speaker_1", "  remember to demo  ")},
						},
					},
				},
				{ObjectID: "slide_2", PageElements: []*model.PageElement{}},
			},
		},
	}}

	summary, err := svc.Summarize("pres_sum_1", true)
	if err != nil {
		t.Fatalf("Summarize() error: %v", err)
	}
	if summary.Title != "Launch Plan" || summary.SlideCount != 2 {
		t.Fatalf("summary=%+v", summary)
	}
	if summary.LastModified != "Revision rev_abc" {
		t.Fatalf("lastModified=%q", summary.LastModified)
	}
	if summary.Slides[0].Content != "Welcome Agenda" {
		t.Fatalf("slide 1 content=%q", summary.Slides[0].Content)
	}
	if summary.Slides[0].Notes != "remember to demo" {
		t.Fatalf("slide 1 notes=%q", summary.Slides[0].Notes)
	}
	if summary.Slides[1].Content != "" {
		t.Fatalf("slide 2 content=%q, want empty", summary.Slides[1].Content)
	}

	// Without notes requested, notes stay empty.
	summary, err = svc.Summarize("pres_sum_1", false)
	if err != nil {
		t.Fatalf("Summarize() error: %v", err)
	}
	if summary.Slides[0].Notes != "" {
		t.Fatalf("notes=%q without includeNotes", summary.Slides[0].Notes)
	}
}

func TestSummarize_EmptyPresentation(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Create(&CreateRequest{PresentationID: "pres_empty_1"}); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	summary, err := svc.Summarize("pres_empty_1", false)
	if err != nil {
		t.Fatalf("Summarize() error: %v", err)
	}
	if summary.SlideCount != 0 || len(summary.Slides) != 0 {
		t.Fatalf("summary=%+v, want zero slides", summary)
	}
	if summary.Message != "This presentation contains no slides." {
		t.Fatalf("message=%q", summary.Message)
	}
	if summary.Title != "Untitled Presentation" {
		t.Fatalf("title=%q, want Untitled Presentation", summary.Title)
	}
}
