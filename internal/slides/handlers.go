package slides

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/joelanford/mcp/workspace-sim/internal/apierr"
	"github.com/joelanford/mcp/workspace-sim/internal/model"
)

func applyCreateSlide(pres *model.Presentation, req *CreateSlideRequest) (*Reply, error) {
	slideID := req.ObjectID
	if slideID == "" {
		slideID = "slide_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
	}
	if existing, _ := pres.FindSlide(slideID); existing != nil {
		return nil, apierr.InvalidInput("Slide ID '%s' already exists.", slideID)
	}

	insertAt := len(pres.Slides)
	if req.InsertionIndex != nil {
		insertAt = int(*req.InsertionIndex)
		if insertAt < 0 {
			insertAt = 0
		}
		if insertAt > len(pres.Slides) {
			insertAt = len(pres.Slides)
		}
	}

	var layoutID string
	if ref := req.SlideLayoutReference; ref != nil {
		switch {
		case ref.LayoutID != "":
			layoutID = ref.LayoutID
			found := false
			for _, layout := range pres.Layouts {
				if layout.ObjectID == layoutID {
					found = true
					break
				}
			}
			if !found {
				return nil, apierr.InvalidInput("Layout with ID '%s' not found.", layoutID)
			}
		case ref.PredefinedLayout != "":
			for _, layout := range pres.Layouts {
				if layout.LayoutProperties == nil {
					continue
				}
				if layout.LayoutProperties.Name == ref.PredefinedLayout ||
					layout.LayoutProperties.DisplayName == ref.PredefinedLayout {
					layoutID = layout.ObjectID
					break
				}
			}
			if layoutID == "" {
				layoutID = createDefaultLayout(pres, ref.PredefinedLayout)
			}
		}
	} else {
		ensureStandardLayouts(pres)
		for _, layout := range pres.Layouts {
			if layout.LayoutProperties == nil {
				continue
			}
			if layout.LayoutProperties.Name == "BLANK" || layout.LayoutProperties.DisplayName == "BLANK" {
				layoutID = layout.ObjectID
				break
			}
		}
	}

	newSlide := &model.Page{
		ObjectID:   slideID,
		PageType:   model.PageTypeSlide,
		RevisionID: uuid.NewString(),
		PageProperties: &model.PageProperties{
			BackgroundColor: &model.BackgroundColor{
				OpaqueColor: &model.OpaqueColor{
					RgbColor: &model.RgbColor{Red: 0.0, Green: 0.0, Blue: 0.0},
				},
			},
		},
		SlideProperties: &model.SlideProperties{LayoutObjectID: layoutID},
		PageElements:    []*model.PageElement{},
	}

	pres.Slides = append(pres.Slides, nil)
	copy(pres.Slides[insertAt+1:], pres.Slides[insertAt:])
	pres.Slides[insertAt] = newSlide

	return &Reply{CreateSlide: &ObjectIDReply{ObjectID: slideID}}, nil
}

func applyCreateShape(pres *model.Presentation, req *CreateShapeRequest) (*Reply, error) {
	shapeID := req.ObjectID
	if shapeID == "" {
		shapeID = uuid.NewString()
	}
	if req.ElementProperties == nil || req.ElementProperties.PageObjectID == "" {
		return nil, apierr.InvalidInput("elementProperties.pageObjectId is required to create a shape.")
	}
	page, _ := pres.FindSlide(req.ElementProperties.PageObjectID)
	if page == nil {
		return nil, apierr.NotFound("Page with ID '%s' not found for creating shape.", req.ElementProperties.PageObjectID)
	}
	for _, el := range page.PageElements {
		if el.ObjectID == shapeID {
			return nil, apierr.InvalidInput("Shape with ID '%s' already exists.", shapeID)
		}
	}

	shape := &model.Shape{ShapeType: *req.ShapeType}
	if shape.ShapeType == "TEXT_BOX" {
		shape.Text = &model.TextContent{
			TextElements: []*model.TextElement{{}},
		}
	}
	element := &model.PageElement{ObjectID: shapeID, Shape: shape}
	if req.ElementProperties.Size != nil {
		element.Size = req.ElementProperties.Size
	}
	if req.ElementProperties.Transform != nil {
		element.Transform = req.ElementProperties.Transform
	}
	page.PageElements = append(page.PageElements, element)

	return &Reply{CreateShape: &ObjectIDReply{ObjectID: shapeID}}, nil
}

func applyInsertText(pres *model.Presentation, req *InsertTextRequest) (*Reply, error) {
	if req.CellLocation != nil {
		return nil, apierr.InvalidInput("Table cell text insertion is not implemented in this simulation.")
	}
	element, _ := pres.FindPageElement(req.ObjectID)
	if element == nil {
		return nil, apierr.NotFound("Object with ID '%s' not found for InsertTextRequest.", req.ObjectID)
	}

	if element.Shape == nil {
		element.Shape = &model.Shape{}
	}
	if element.Shape.Text == nil {
		element.Shape.Text = &model.TextContent{}
	}
	text := element.Shape.Text

	var run *model.TextRun
	if len(text.TextElements) > 0 && text.TextElements[0].TextRun != nil {
		run = text.TextElements[0].TextRun
	} else if len(text.TextElements) > 0 {
		run = &model.TextRun{Content: "", Style: &model.TextStyle{}}
		text.TextElements[0] = &model.TextElement{TextRun: run}
	} else {
		run = &model.TextRun{Content: "", Style: &model.TextStyle{}}
		text.TextElements = append(text.TextElements, &model.TextElement{TextRun: run})
	}

	current := run.Content
	idx := len(current)
	if req.InsertionIndex != nil {
		idx = int(*req.InsertionIndex)
	}
	if idx < 0 {
		idx = 0
	}
	if idx > len(current) {
		idx = len(current)
	}
	run.Content = current[:idx] + *req.Text
	text.Reindex()

	return &Reply{InsertText: &EmptyReply{}}, nil
}

func applyReplaceAllText(pres *model.Presentation, req *ReplaceAllTextRequest) (*Reply, error) {
	search := *req.ContainsText.Text
	replacement := *req.ReplaceText

	var pages []*model.Page
	if len(req.PageObjectIDs) > 0 {
		wanted := map[string]bool{}
		for _, id := range req.PageObjectIDs {
			wanted[id] = true
		}
		for _, slide := range pres.Slides {
			if wanted[slide.ObjectID] {
				pages = append(pages, slide)
			}
		}
	} else {
		pages = append(pages, pres.Slides...)
		pages = append(pages, pres.Masters...)
		pages = append(pages, pres.Layouts...)
	}

	expr := regexp.QuoteMeta(search)
	if !req.ContainsText.MatchCase {
		expr = "(?i)" + expr
	}
	pattern, err := regexp.Compile(expr)
	if err != nil {
		return nil, apierr.InvalidInput("Invalid regex pattern in containsText: %s, %v", search, err)
	}

	changed := 0
	for _, page := range pages {
		for _, element := range page.PageElements {
			for _, run := range element.TextRuns() {
				if run.Content == "" {
					continue
				}
				n := len(pattern.FindAllStringIndex(run.Content, -1))
				if n > 0 {
					run.Content = pattern.ReplaceAllLiteralString(run.Content, replacement)
					changed += n
				}
			}
		}
	}
	return &Reply{ReplaceAllText: &ReplaceAllTextReply{OccurrencesChanged: changed}}, nil
}

func applyDeleteObject(pres *model.Presentation, req *DeleteObjectRequest) (*Reply, error) {
	// Slides are checked first: a slide ID wins over an element ID.
	for i, slide := range pres.Slides {
		if slide.ObjectID == req.ObjectID {
			pres.Slides = append(pres.Slides[:i], pres.Slides[i+1:]...)
			return &Reply{DeleteObject: &EmptyReply{}}, nil
		}
	}

	var pages []*model.Page
	for _, slide := range pres.Slides {
		pages = append(pages, slide)
		if slide.NotesPage != nil {
			pages = append(pages, slide.NotesPage)
		}
	}
	for _, page := range pages {
		kept := page.PageElements[:0:0]
		deleted := false
		for _, el := range page.PageElements {
			if el.ObjectID == req.ObjectID {
				deleted = true
				continue
			}
			if el.ElementGroup != nil {
				children := el.ElementGroup.Children[:0:0]
				removedChild := false
				for _, child := range el.ElementGroup.Children {
					if child.ObjectID == req.ObjectID {
						removedChild = true
						continue
					}
					children = append(children, child)
				}
				if removedChild {
					deleted = true
					el.ElementGroup.Children = children
					if len(children) == 0 {
						// Deleting a group's last child removes the group.
						continue
					}
				}
			}
			kept = append(kept, el)
		}
		if deleted {
			page.PageElements = kept
			return &Reply{DeleteObject: &EmptyReply{}}, nil
		}
	}
	return nil, apierr.NotFound("Object with ID '%s' not found for deletion.", req.ObjectID)
}

func applyDeleteText(pres *model.Presentation, req *DeleteTextRequest) (*Reply, error) {
	if req.CellLocation != nil {
		return nil, apierr.InvalidInput("Table cell text deletion not implemented.")
	}
	element, _ := pres.FindPageElement(req.ObjectID)
	if element == nil {
		return nil, apierr.NotFound("Object with ID '%s' not found.", req.ObjectID)
	}
	if element.Shape == nil || element.Shape.Text == nil || len(element.Shape.Text.TextElements) == 0 {
		return &Reply{DeleteText: &EmptyReply{}}, nil
	}

	elements := element.Shape.Text.TextElements
	content := ""
	var style *model.TextStyle
	if elements[0].TextRun != nil {
		content = elements[0].TextRun.Content
		style = elements[0].TextRun.Style
	}

	start, end := req.TextRange.Resolve(len(content))
	if start < 0 {
		start = 0
	}
	if start > len(content) {
		start = len(content)
	}
	if end > len(content) {
		end = len(content)
	}
	if end < start {
		end = start
	}
	remaining := content
	if start < end {
		remaining = content[:start] + content[end:]
	}

	var rebuilt []*model.TextElement
	offset := 0
	if remaining != "" {
		rebuilt = append(rebuilt, &model.TextElement{
			StartIndex: offset,
			EndIndex:   offset + len(remaining),
			TextRun:    &model.TextRun{Content: remaining, Style: style},
		})
		offset += len(remaining)
	}
	rebuilt = append(rebuilt, &model.TextElement{
		StartIndex:      offset,
		EndIndex:        offset + 1,
		ParagraphMarker: &model.ParagraphMarker{Style: &model.ParagraphStyle{}},
	})
	element.Shape.Text.TextElements = rebuilt

	return &Reply{DeleteText: &EmptyReply{}}, nil
}

func applyUpdateTextStyle(pres *model.Presentation, req *UpdateTextStyleRequest) (*Reply, error) {
	for _, slide := range pres.Slides {
		for _, element := range slide.PageElements {
			if element.ObjectID != req.ObjectID {
				continue
			}
			if element.Shape == nil || element.Shape.Text == nil {
				return nil, apierr.InvalidInput("Object with ID '%s' has no text to style.", req.ObjectID)
			}
			for _, te := range element.Shape.Text.TextElements {
				if te.TextRun != nil {
					te.TextRun.Style = req.Style
				}
			}
			return &Reply{UpdateTextStyle: req.Style}, nil
		}
	}
	return nil, apierr.NotFound("Object with ID '%s' not found.", req.ObjectID)
}

func applyGroupObjects(pres *model.Presentation, req *GroupObjectsRequest) (*Reply, error) {
	groupID := req.GroupObjectID
	if groupID == "" {
		groupID = uuid.NewString()
	}

	var parent *model.Page
	for _, slide := range pres.Slides {
		for _, element := range slide.PageElements {
			if element.ObjectID == req.ChildrenObjectIDs[0] {
				parent = slide
				break
			}
		}
	}
	if parent == nil {
		return nil, apierr.NotFound("slide for elements to group not found.")
	}

	wanted := map[string]bool{}
	for _, id := range req.ChildrenObjectIDs {
		wanted[id] = true
	}
	var children []*model.PageElement
	var kept []*model.PageElement
	for _, element := range parent.PageElements {
		if wanted[element.ObjectID] {
			children = append(children, element)
		} else {
			kept = append(kept, element)
		}
	}

	group := &model.PageElement{
		ObjectID:     groupID,
		ElementGroup: &model.Group{Children: children},
	}
	parent.PageElements = append(kept, group)

	return &Reply{GroupObjects: &ObjectIDReply{ObjectID: groupID}}, nil
}

func applyUngroupObjects(pres *model.Presentation, req *UngroupObjectsRequest) (*Reply, error) {
	wanted := map[string]bool{}
	for _, id := range req.ObjectIDs {
		wanted[id] = true
	}

	var parent *model.Page
	var group *model.PageElement
	for _, slide := range pres.Slides {
		for _, element := range slide.PageElements {
			if element.ElementGroup == nil {
				continue
			}
			for _, child := range element.ElementGroup.Children {
				if wanted[child.ObjectID] {
					parent = slide
					group = element
				}
			}
		}
	}
	if parent == nil || group == nil {
		return nil, apierr.NotFound("slide for elements to ungroup not found.")
	}

	var released []*model.PageElement
	var remaining []*model.PageElement
	for _, child := range group.ElementGroup.Children {
		if wanted[child.ObjectID] {
			released = append(released, child)
		} else {
			remaining = append(remaining, child)
		}
	}

	if len(remaining) == 0 {
		kept := parent.PageElements[:0:0]
		for _, element := range parent.PageElements {
			if element.ObjectID != group.ObjectID {
				kept = append(kept, element)
			}
		}
		parent.PageElements = kept
	} else {
		group.ElementGroup.Children = remaining
	}
	parent.PageElements = append(parent.PageElements, released...)

	return &Reply{UngroupObjects: &ObjectIDReply{ObjectID: group.ObjectID}}, nil
}

func applyUpdatePageElementAltText(pres *model.Presentation, req *UpdatePageElementAltTextRequest) (*Reply, error) {
	element, _ := pres.FindPageElement(req.ObjectID)
	if element == nil {
		return nil, apierr.NotFound("Page element '%s' not found.", req.ObjectID)
	}
	if req.Title != nil {
		element.Title = req.Title
	}
	if req.Description != nil {
		element.Description = req.Description
	}
	return &Reply{UpdatePageElementAltText: &EmptyReply{}}, nil
}

func applyUpdateSlideProperties(pres *model.Presentation, req *UpdateSlidePropertiesRequest) (*Reply, error) {
	slide, _ := pres.FindSlide(req.ObjectID)
	if slide == nil {
		return nil, apierr.NotFound("Slide '%s' not found.", req.ObjectID)
	}
	if slide.SlideProperties == nil {
		slide.SlideProperties = &model.SlideProperties{}
	}

	mask := *req.Fields

	// The mask merge works over map form: marshal both sides, merge the
	// masked paths, and decode the result back into the typed properties.
	target, err := toMap(slide.SlideProperties)
	if err != nil {
		return nil, err
	}
	updates, err := toMap(req.SlideProperties)
	if err != nil {
		return nil, err
	}
	if err := applyFieldMask(target, updates, mask); err != nil {
		return nil, err
	}
	merged := &model.SlideProperties{}
	if err := fromMap(target, merged); err != nil {
		return nil, apierr.InvalidInput("Error applying update for slide '%s': %s", req.ObjectID, err.Error())
	}
	slide.SlideProperties = merged

	// A masked update of the notes page's speaker notes object ID also
	// lands on the slide's canonical notes page.
	const notesPath = "notesPage.notesProperties.speakerNotesObjectId"
	maskPaths := map[string]bool{}
	for _, p := range strings.Split(mask, ",") {
		maskPaths[strings.TrimSpace(p)] = true
	}
	if maskPaths["*"] || maskPaths[notesPath] {
		if np := req.SlideProperties.NotesPage; np != nil && np.NotesProperties != nil && np.NotesProperties.SpeakerNotesObjectID != "" {
			if slide.NotesPage == nil {
				return nil, apierr.InvalidInput("Slide '%s' has no canonical 'notesPage' to update.", req.ObjectID)
			}
			if slide.NotesPage.NotesPageProperties == nil {
				slide.NotesPage.NotesPageProperties = &model.NotesPageProperties{}
			}
			slide.NotesPage.NotesPageProperties.SpeakerNotesObjectID = np.NotesProperties.SpeakerNotesObjectID
		}
	}

	return &Reply{UpdateSlideProperties: &EmptyReply{}}, nil
}

func toMap(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func fromMap(m map[string]any, v any) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
