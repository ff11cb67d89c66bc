package model

import "github.com/joelanford/mcp/workspace-sim/internal/apierr"

// Validate checks the page's type-specific properties: each page type
// requires exactly its own properties bag and forbids the others.
func (p *Page) Validate() error {
	switch p.PageType {
	case PageTypeLayout:
		if p.LayoutProperties == nil {
			return apierr.Validation("layoutProperties must be present when pageType is 'LAYOUT'.")
		}
		if p.SlideProperties != nil {
			return apierr.Validation("slideProperties must not be set when pageType is 'LAYOUT'.")
		}
		if p.MasterProperties != nil {
			return apierr.Validation("masterProperties must not be set when pageType is 'LAYOUT'.")
		}
		if p.NotesProperties != nil {
			return apierr.Validation("notesProperties must not be set when pageType is 'LAYOUT'.")
		}
	case PageTypeMaster:
		if p.MasterProperties == nil {
			return apierr.Validation("masterProperties must be present when pageType is 'MASTER'.")
		}
		if p.LayoutProperties != nil {
			return apierr.Validation("layoutProperties must not be set when pageType is 'MASTER'.")
		}
		if p.SlideProperties != nil {
			return apierr.Validation("slideProperties must not be set when pageType is 'MASTER'.")
		}
		if p.NotesProperties != nil {
			return apierr.Validation("notesProperties must not be set when pageType is 'MASTER'.")
		}
	case PageTypeSlide:
		if p.SlideProperties == nil {
			return apierr.Validation("slideProperties must be present when pageType is 'SLIDE'.")
		}
		if p.LayoutProperties != nil {
			return apierr.Validation("layoutProperties must not be set when pageType is 'SLIDE'.")
		}
		if p.MasterProperties != nil {
			return apierr.Validation("masterProperties must not be set when pageType is 'SLIDE'.")
		}
		if p.NotesProperties != nil {
			return apierr.Validation("notesProperties must not be set when pageType is 'SLIDE'.")
		}
	case PageTypeNotes:
		if p.NotesProperties == nil {
			return apierr.Validation("notesProperties must be present when pageType is 'NOTES'.")
		}
		if p.SlideProperties != nil {
			return apierr.Validation("slideProperties must not be set when pageType is 'NOTES'.")
		}
		if p.LayoutProperties != nil {
			return apierr.Validation("layoutProperties must not be set when pageType is 'NOTES'.")
		}
		if p.MasterProperties != nil {
			return apierr.Validation("masterProperties must not be set when pageType is 'NOTES'.")
		}
	default:
		if p.LayoutProperties != nil {
			return apierr.Validation("layoutProperties must not be set when pageType is '%s'.", p.PageType)
		}
		if p.MasterProperties != nil {
			return apierr.Validation("masterProperties must not be set when pageType is '%s'.", p.PageType)
		}
		if p.SlideProperties != nil {
			return apierr.Validation("slideProperties must not be set when pageType is '%s'.", p.PageType)
		}
	}
	for _, el := range p.PageElements {
		if err := el.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the element's text content union rules, recursing into
// group children.
func (e *PageElement) Validate() error {
	if e.Shape != nil && e.Shape.Text != nil {
		for _, te := range e.Shape.Text.TextElements {
			if err := te.Validate(); err != nil {
				return err
			}
		}
	}
	if e.ElementGroup != nil {
		for _, child := range e.ElementGroup.Children {
			if err := child.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Validate enforces that at most one of textRun, paragraphMarker, and
// autoText is populated.
func (t *TextElement) Validate() error {
	n := 0
	if t.TextRun != nil {
		n++
	}
	if t.ParagraphMarker != nil {
		n++
	}
	if t.AutoText != nil {
		n++
	}
	if n > 1 {
		return apierr.Validation("Only one of textRun, paragraphMarker, or autoText may be set.")
	}
	return nil
}
