package model

import "testing"

func TestPageValidate_RequiredProperties(t *testing.T) {
	cases := []struct {
		name    string
		page    Page
		wantErr string
	}{
		{
			name:    "layout missing layoutProperties",
			page:    Page{ObjectID: "layout_1", PageType: PageTypeLayout},
			wantErr: "layoutProperties must be present when pageType is 'LAYOUT'.",
		},
		{
			name: "layout with slideProperties",
			page: Page{
				ObjectID:         "layout_1",
				PageType:         PageTypeLayout,
				LayoutProperties: &LayoutProperties{Name: "BLANK"},
				SlideProperties:  &SlideProperties{},
			},
			wantErr: "slideProperties must not be set when pageType is 'LAYOUT'.",
		},
		{
			name:    "master missing masterProperties",
			page:    Page{ObjectID: "master_1", PageType: PageTypeMaster},
			wantErr: "masterProperties must be present when pageType is 'MASTER'.",
		},
		{
			name:    "slide missing slideProperties",
			page:    Page{ObjectID: "slide_1", PageType: PageTypeSlide},
			wantErr: "slideProperties must be present when pageType is 'SLIDE'.",
		},
		{
			name:    "notes missing notesProperties",
			page:    Page{ObjectID: "notes_1", PageType: PageTypeNotes},
			wantErr: "notesProperties must be present when pageType is 'NOTES'.",
		},
		{
			name: "untyped page with layoutProperties",
			page: Page{
				ObjectID:         "p1",
				LayoutProperties: &LayoutProperties{Name: "BLANK"},
			},
			wantErr: "layoutProperties must not be set when pageType is ''.",
		},
		{
			name: "slide ok",
			page: Page{
				ObjectID:        "slide_1",
				PageType:        PageTypeSlide,
				SlideProperties: &SlideProperties{},
			},
		},
		{
			name: "untyped empty page ok",
			page: Page{ObjectID: "p1"},
		},
	}
	for _, tc := range cases {
		err := tc.page.Validate()
		if tc.wantErr == "" {
			if err != nil {
				t.Fatalf("%s: Validate() error: %v", tc.name, err)
			}
			continue
		}
		if err == nil {
			t.Fatalf("%s: Validate() accepted, want error", tc.name)
		}
		if err.Error() != tc.wantErr {
			t.Fatalf("%s: Validate() error %q, want %q", tc.name, err.Error(), tc.wantErr)
		}
	}
}

func TestPageValidate_RecursesIntoElements(t *testing.T) {
	page := Page{
		ObjectID: "slide_1",
		PageType: PageTypeSlide,
		SlideProperties: &SlideProperties{},
		PageElements: []*PageElement{{
			ObjectID: "shape_1",
			Shape: &Shape{Text: &TextContent{TextElements: []*TextElement{{
				TextRun:         &TextRun{Content: "hi"},
				ParagraphMarker: &ParagraphMarker{},
			}}}},
		}},
	}
	err := page.Validate()
	if err == nil {
		t.Fatalf("Validate() accepted text element with two content kinds")
	}
	if err.Error() != "Only one of textRun, paragraphMarker, or autoText may be set." {
		t.Fatalf("Validate() error %q", err.Error())
	}
}

func TestTextContentReindex(t *testing.T) {
	tc := TextContent{TextElements: []*TextElement{
		{TextRun: &TextRun{Content: "hello"}},
		{ParagraphMarker: &ParagraphMarker{}},
	}}
	tc.Reindex()
	if tc.TextElements[0].StartIndex != 0 || tc.TextElements[0].EndIndex != 5 {
		t.Fatalf("run indices=(%d,%d), want (0,5)", tc.TextElements[0].StartIndex, tc.TextElements[0].EndIndex)
	}
	if tc.TextElements[1].StartIndex != 5 || tc.TextElements[1].EndIndex != 6 {
		t.Fatalf("marker indices=(%d,%d), want (5,6)", tc.TextElements[1].StartIndex, tc.TextElements[1].EndIndex)
	}
}

func TestFindPageElement_SearchesGroupsAndNotes(t *testing.T) {
	inner := &PageElement{ObjectID: "inner_shape"}
	notesShape := &PageElement{ObjectID: "notes_shape"}
	pres := Presentation{
		PresentationID: "pres_1",
		Slides: []*Page{{
			ObjectID: "slide_1",
			PageElements: []*PageElement{{
				ObjectID:     "group_1",
				ElementGroup: &Group{Children: []*PageElement{inner}},
			}},
			NotesPage: &Page{
				ObjectID:     "notes_1",
				PageElements: []*PageElement{notesShape},
			},
		}},
	}

	el, page := pres.FindPageElement("inner_shape")
	if el != inner {
		t.Fatalf("FindPageElement(inner_shape)=%v, want group child", el)
	}
	if page == nil || page.ObjectID != "slide_1" {
		t.Fatalf("holder page=%v, want slide_1", page)
	}

	el, page = pres.FindPageElement("notes_shape")
	if el != notesShape {
		t.Fatalf("FindPageElement(notes_shape)=%v, want notes element", el)
	}
	if page == nil || page.ObjectID != "notes_1" {
		t.Fatalf("holder page=%v, want notes_1", page)
	}

	if el, _ := pres.FindPageElement("missing"); el != nil {
		t.Fatalf("FindPageElement(missing)=%v, want nil", el)
	}
}
