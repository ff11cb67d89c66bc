package model

// FindSlide returns the slide with the given object ID and its index, or
// nil and -1 when absent.
func (p *Presentation) FindSlide(slideID string) (*Page, int) {
	for i, slide := range p.Slides {
		if slide.ObjectID == slideID {
			return slide, i
		}
	}
	return nil, -1
}

// FindPage searches slides, layouts, masters, and the notes master for a
// page with the given object ID.
func (p *Presentation) FindPage(pageID string) *Page {
	for _, section := range [][]*Page{p.Slides, p.Layouts, p.Masters} {
		for _, page := range section {
			if page.ObjectID == pageID {
				return page
			}
		}
	}
	if p.NotesMaster != nil && p.NotesMaster.ObjectID == pageID {
		return p.NotesMaster
	}
	return nil
}

func findInElements(elements []*PageElement, elementID string) *PageElement {
	for _, el := range elements {
		if el.ObjectID == elementID {
			return el
		}
		if el.ElementGroup != nil {
			if found := findInElements(el.ElementGroup.Children, elementID); found != nil {
				return found
			}
		}
	}
	return nil
}

// FindPageElement searches every slide (including group children and the
// slide's notes page) for a page element with the given object ID. It
// returns the element and the page that holds it.
func (p *Presentation) FindPageElement(elementID string) (*PageElement, *Page) {
	for _, slide := range p.Slides {
		if found := findInElements(slide.PageElements, elementID); found != nil {
			return found, slide
		}
		if slide.NotesPage != nil {
			if found := findInElements(slide.NotesPage.PageElements, elementID); found != nil {
				return found, slide.NotesPage
			}
		}
	}
	return nil, nil
}

// TextRuns returns the text runs of the element's shape, in order.
func (e *PageElement) TextRuns() []*TextRun {
	var runs []*TextRun
	if e.Shape == nil || e.Shape.Text == nil {
		return runs
	}
	for _, te := range e.Shape.Text.TextElements {
		if te.TextRun != nil {
			runs = append(runs, te.TextRun)
		}
	}
	return runs
}

// Reindex recomputes startIndex/endIndex over the text elements: text runs
// contribute their content length, paragraph markers contribute one.
func (tc *TextContent) Reindex() {
	offset := 0
	for _, te := range tc.TextElements {
		te.StartIndex = offset
		switch {
		case te.TextRun != nil:
			offset += len(te.TextRun.Content)
		case te.ParagraphMarker != nil:
			offset++
		}
		te.EndIndex = offset
	}
}
