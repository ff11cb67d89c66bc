package slides

import (
	"strings"

	"github.com/google/uuid"

	"github.com/joelanford/mcp/workspace-sim/internal/model"
)

// standardLayouts are the predefined layouts a fresh presentation carries,
// as (name, displayName) pairs.
var standardLayouts = [][2]string{
	{"BLANK", "Blank"},
	{"TITLE", "Title Slide"},
	{"TITLE_AND_BODY", "Title and Body"},
	{"TITLE_AND_TWO_COLUMNS", "Title and Two Columns"},
	{"TITLE_ONLY", "Title Only"},
	{"SECTION_HEADER", "Section Header"},
	{"CAPTION_ONLY", "Caption Only"},
	{"ONE_COLUMN_TEXT", "One Column Text"},
	{"MAIN_POINT", "Main Point"},
	{"BIG_NUMBER", "Big Number"},
}

func whitePageProperties() *model.PageProperties {
	return &model.PageProperties{
		BackgroundColor: &model.BackgroundColor{
			OpaqueColor: &model.OpaqueColor{
				RgbColor: &model.RgbColor{Red: 1.0, Green: 1.0, Blue: 1.0},
			},
		},
	}
}

// ensureStandardLayouts adds any missing standard layout to the
// presentation, matching on either name or displayName.
func ensureStandardLayouts(pres *model.Presentation) {
	existing := map[string]bool{}
	for _, layout := range pres.Layouts {
		if layout.LayoutProperties == nil {
			continue
		}
		if layout.LayoutProperties.Name != "" {
			existing[layout.LayoutProperties.Name] = true
		}
		if layout.LayoutProperties.DisplayName != "" {
			existing[layout.LayoutProperties.DisplayName] = true
		}
	}
	for _, entry := range standardLayouts {
		name, displayName := entry[0], entry[1]
		if existing[name] || existing[displayName] {
			continue
		}
		id := "layout_" + strings.ToLower(name) + "_" + uuid.NewString()[28:]
		pres.Layouts = append(pres.Layouts, &model.Page{
			ObjectID:       id,
			PageType:       model.PageTypeLayout,
			RevisionID:     "rev_" + id,
			PageProperties: whitePageProperties(),
			LayoutProperties: &model.LayoutProperties{
				Name:        name,
				DisplayName: displayName,
			},
			PageElements: []*model.PageElement{},
		})
	}
}

func emptyTextBoxShape() *model.Shape {
	return &model.Shape{
		ShapeType: "TEXT_BOX",
		Text: &model.TextContent{
			TextElements: []*model.TextElement{
				{TextRun: &model.TextRun{Content: "", Style: &model.TextStyle{}}},
			},
		},
	}
}

func placeholderElement(prefix, placeholderType string, width, height, translateY float64) *model.PageElement {
	one := 1.0
	x := 50.0
	y := translateY
	return &model.PageElement{
		ObjectID: prefix + "_placeholder_" + uuid.NewString()[:8],
		Shape:    emptyTextBoxShape(),
		Size: &model.Size{
			Width:  &model.Dimension{Magnitude: width, Unit: "PT"},
			Height: &model.Dimension{Magnitude: height, Unit: "PT"},
		},
		Transform: &model.AffineTransform{
			ScaleX: &one, ScaleY: &one,
			TranslateX: &x, TranslateY: &y,
			Unit: "PT",
		},
		Placeholder: &model.Placeholder{Type: placeholderType, Index: 0},
	}
}

// createDefaultLayout appends a layout for the given predefined layout
// type, with canonical placeholders for the types that carry them, and
// returns the new layout's object ID.
func createDefaultLayout(pres *model.Presentation, predefinedLayout string) string {
	id := "layout_" + strings.ToLower(predefinedLayout) + "_" + uuid.NewString()[:8]
	layout := &model.Page{
		ObjectID:   id,
		PageType:   model.PageTypeLayout,
		RevisionID: uuid.NewString(),
		LayoutProperties: &model.LayoutProperties{
			Name:        predefinedLayout,
			DisplayName: displayNameFor(predefinedLayout),
		},
		PageElements:   []*model.PageElement{},
		PageProperties: whitePageProperties(),
	}
	switch predefinedLayout {
	case "TITLE_AND_BODY":
		layout.PageElements = []*model.PageElement{
			placeholderElement("title", "TITLE", 400, 50, 50),
			placeholderElement("body", "BODY", 400, 200, 120),
		}
	case "TITLE":
		layout.PageElements = []*model.PageElement{
			placeholderElement("title", "TITLE", 400, 100, 100),
		}
	}
	pres.Layouts = append(pres.Layouts, layout)
	return id
}

// displayNameFor converts PREDEFINED_LAYOUT to "Predefined Layout".
func displayNameFor(name string) string {
	words := strings.Split(strings.ToLower(name), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
