package docs

import (
	"testing"

	"github.com/joelanford/mcp/workspace-sim/internal/apierr"
	"github.com/joelanford/mcp/workspace-sim/internal/model"
	"github.com/joelanford/mcp/workspace-sim/internal/store"
)

func newTestService() (*Service, *store.Store) {
	st := store.New()
	st.EnsureUser("me")
	return NewService(st), st
}

func TestCreate(t *testing.T) {
	svc, st := newTestService()

	doc, err := svc.Create("Meeting Notes", "me")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if doc.ID == "" {
		t.Fatalf("created document has empty ID")
	}
	if doc.Name != "Meeting Notes" {
		t.Fatalf("name=%q, want Meeting Notes", doc.Name)
	}
	if doc.MimeType != model.DocumentMimeType {
		t.Fatalf("mimeType=%q, want %q", doc.MimeType, model.DocumentMimeType)
	}
	if len(doc.Owners) != 1 || doc.Owners[0] != "me@example.com" {
		t.Fatalf("owners=%v, want [me@example.com]", doc.Owners)
	}
	if len(doc.Permissions) != 1 || doc.Permissions[0].Role != "owner" {
		t.Fatalf("permissions=%v, want one owner entry", doc.Permissions)
	}

	u, _ := st.RequireUser("me")
	if _, ok := u.Files[doc.ID]; !ok {
		t.Fatalf("created document not stored")
	}
	if u.Counters["file"] != 1 {
		t.Fatalf("file counter=%d, want 1", u.Counters["file"])
	}
}

func TestCreate_InvalidUser(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Create("Doc", "   "); err == nil {
		t.Fatalf("Create() accepted whitespace userID")
	}

	_, err := svc.Create("Doc", "ghost")
	if err == nil {
		t.Fatalf("Create() accepted unknown user")
	}
	if !apierr.IsKind(err, apierr.KindUserNotFound) {
		t.Fatalf("Create() unknown-user error kind=%v, want UserNotFound", err)
	}
	want := "User with ID 'ghost' not found. Cannot create document for non-existent user."
	if err.Error() != want {
		t.Fatalf("Create() error %q, want %q", err.Error(), want)
	}
}

func TestGet_Validation(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Get("  ", "", false, "me"); err == nil {
		t.Fatalf("Get() accepted whitespace documentId")
	}
	if _, err := svc.Get("doc_1", "", false, " "); err == nil {
		t.Fatalf("Get() accepted whitespace userId")
	}

	_, err := svc.Get("doc_1", "BOGUS_MODE", false, "me")
	if err == nil {
		t.Fatalf("Get() accepted invalid suggestionsViewMode")
	}
	want := "Invalid value for suggestionsViewMode: BOGUS_MODE. Valid values are: DEFAULT_FOR_CURRENT_ACCESS, SUGGESTIONS_INLINE, PREVIEW_SUGGESTIONS_ACCEPTED, PREVIEW_WITHOUT_SUGGESTIONS."
	if err.Error() != want {
		t.Fatalf("Get() error %q, want %q", err.Error(), want)
	}

	if _, err := svc.Get("missing", "", false, "me"); !apierr.IsKind(err, apierr.KindNotFound) {
		t.Fatalf("Get(missing) error=%v, want NotFound", err)
	}
}

func TestGet_NormalizesLegacyContent(t *testing.T) {
	svc, st := newTestService()
	u, _ := st.RequireUser("me")

	text := "plain"
	u.Files["doc_1"] = &store.File{Doc: &model.Document{
		ID:       "doc_1",
		MimeType: model.DocumentMimeType,
		Content: []*model.ContentElement{
			{TextRun: &model.DocTextRun{Content: "legacy run"}},
			{ElementID: "keep_me", Text: &text},
			{Text: &text},
		},
	}}

	view, err := svc.Get("doc_1", "", false, "me")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if len(view.Content) != 3 {
		t.Fatalf("len(content)=%d, want 3", len(view.Content))
	}
	if view.Content[0].ElementID != "p1" || view.Content[0].Text == nil || *view.Content[0].Text != "legacy run" {
		t.Fatalf("legacy element normalized to %+v", view.Content[0])
	}
	if view.Content[0].TextRun != nil {
		t.Fatalf("normalized element still carries textRun")
	}
	if view.Content[1].ElementID != "keep_me" {
		t.Fatalf("existing element ID rewritten to %q", view.Content[1].ElementID)
	}
	if view.Content[2].ElementID != "p3" {
		t.Fatalf("assigned element ID=%q, want p3", view.Content[2].ElementID)
	}

	// Reads never mutate stored state: the stored element keeps its
	// legacy form, and a second read normalizes identically.
	if u.Files["doc_1"].Doc.Content[0].TextRun == nil {
		t.Fatalf("Get() mutated stored content")
	}
	again, err := svc.Get("doc_1", "", false, "me")
	if err != nil {
		t.Fatalf("second Get() error: %v", err)
	}
	if again.Content[0].ElementID != "p1" || *again.Content[0].Text != "legacy run" {
		t.Fatalf("second read normalized differently: %+v", again.Content[0])
	}
}

func TestGet_AttachesAnnotations(t *testing.T) {
	svc, st := newTestService()
	u, _ := st.RequireUser("me")
	u.Files["doc_1"] = &store.File{Doc: &model.Document{ID: "doc_1", MimeType: model.DocumentMimeType}}
	u.Comments["c1"] = map[string]any{"fileId": "doc_1", "content": "looks good"}
	u.Comments["c2"] = map[string]any{"fileId": "other", "content": "elsewhere"}
	u.Replies["r1"] = map[string]any{"fileId": "doc_1", "content": "thanks"}

	view, err := svc.Get("doc_1", "SUGGESTIONS_INLINE", true, "me")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if len(view.Comments) != 1 {
		t.Fatalf("len(comments)=%d, want 1", len(view.Comments))
	}
	if len(view.Replies) != 1 {
		t.Fatalf("len(replies)=%d, want 1", len(view.Replies))
	}
	if view.SuggestionsViewMode != "SUGGESTIONS_INLINE" {
		t.Fatalf("suggestionsViewMode=%q", view.SuggestionsViewMode)
	}
	if !view.IncludeTabsContent {
		t.Fatalf("includeTabsContent=false, want true")
	}
}
