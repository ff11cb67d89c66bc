package model

const PresentationMimeType = "application/vnd.google-apps.presentation"

// Presentation is the Slides document body. RevisionID is the optimistic
// concurrency token: it changes on every successful batch update.
type Presentation struct {
	PresentationID string  `json:"presentationId"`
	Title          string  `json:"title,omitempty"`
	PageSize       *Size   `json:"pageSize,omitempty"`
	Slides         []*Page `json:"slides"`
	Masters        []*Page `json:"masters"`
	Layouts        []*Page `json:"layouts"`
	NotesMaster    *Page   `json:"notesMaster,omitempty"`
	Locale         string  `json:"locale,omitempty"`
	RevisionID     string  `json:"revisionId,omitempty"`
}

type PageType string

const (
	PageTypeSlide       PageType = "SLIDE"
	PageTypeMaster      PageType = "MASTER"
	PageTypeLayout      PageType = "LAYOUT"
	PageTypeNotes       PageType = "NOTES"
	PageTypeNotesMaster PageType = "NOTES_MASTER"
)

// Page is a single page of any type. Which properties bag must be present
// is determined by PageType; see Validate.
type Page struct {
	ObjectID            string               `json:"objectId"`
	PageType            PageType             `json:"pageType,omitempty"`
	RevisionID          string               `json:"revisionId,omitempty"`
	PageProperties      *PageProperties      `json:"pageProperties,omitempty"`
	SlideProperties     *SlideProperties     `json:"slideProperties,omitempty"`
	LayoutProperties    *LayoutProperties    `json:"layoutProperties,omitempty"`
	NotesProperties     *NotesProperties     `json:"notesProperties,omitempty"`
	MasterProperties    *MasterProperties    `json:"masterProperties,omitempty"`
	NotesPage           *Page                `json:"notesPage,omitempty"`
	NotesPageProperties *NotesPageProperties `json:"notesPageProperties,omitempty"`
	PageElements        []*PageElement       `json:"pageElements"`
}

type PageProperties struct {
	BackgroundColor *BackgroundColor `json:"backgroundColor,omitempty"`
}

type BackgroundColor struct {
	OpaqueColor *OpaqueColor `json:"opaqueColor,omitempty"`
}

type OpaqueColor struct {
	RgbColor   *RgbColor `json:"rgbColor,omitempty"`
	ThemeColor string    `json:"themeColor,omitempty"`
}

type RgbColor struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
}

type SlideProperties struct {
	LayoutObjectID string `json:"layoutObjectId,omitempty"`
	MasterObjectID string `json:"masterObjectId,omitempty"`
	NotesPage      *Page  `json:"notesPage,omitempty"`
	IsSkipped      *bool  `json:"isSkipped,omitempty"`
}

type LayoutProperties struct {
	MasterObjectID string `json:"masterObjectId,omitempty"`
	Name           string `json:"name,omitempty"`
	DisplayName    string `json:"displayName,omitempty"`
}

type MasterProperties struct {
	DisplayName string `json:"displayName,omitempty"`
}

type NotesProperties struct {
	SpeakerNotesObjectID string `json:"speakerNotesObjectId"`
}

type NotesPageProperties struct {
	SpeakerNotesObjectID string `json:"speakerNotesObjectId,omitempty"`
}

// PageElement is a visual element on a page. At most one content kind
// (shape, image, video, table, line, wordArt, speakerSpotlight,
// elementGroup) is populated.
type PageElement struct {
	ObjectID         string            `json:"objectId"`
	Size             *Size             `json:"size,omitempty"`
	Transform        *AffineTransform  `json:"transform,omitempty"`
	Title            *string           `json:"title,omitempty"`
	Description      *string           `json:"description,omitempty"`
	Shape            *Shape            `json:"shape,omitempty"`
	Image            *Image            `json:"image,omitempty"`
	Video            *Video            `json:"video,omitempty"`
	Table            *Table            `json:"table,omitempty"`
	Line             *Line             `json:"line,omitempty"`
	WordArt          *WordArt          `json:"wordArt,omitempty"`
	SpeakerSpotlight *SpeakerSpotlight `json:"speakerSpotlight,omitempty"`
	ElementGroup     *Group            `json:"elementGroup,omitempty"`
	Placeholder      *Placeholder      `json:"placeholder,omitempty"`
}

type Group struct {
	Children []*PageElement `json:"children"`
}

type Placeholder struct {
	Type           string `json:"type"`
	Index          int    `json:"index"`
	ParentObjectID string `json:"parentObjectId,omitempty"`
}

type Shape struct {
	ShapeType string       `json:"shapeType"`
	Text      *TextContent `json:"text,omitempty"`
}

type Image struct {
	ContentURL      string         `json:"contentUrl,omitempty"`
	SourceURL       string         `json:"sourceUrl,omitempty"`
	ImageProperties map[string]any `json:"imageProperties,omitempty"`
	Placeholder     map[string]any `json:"placeholder,omitempty"`
}

type Video struct {
	URL             string         `json:"url,omitempty"`
	Source          string         `json:"source,omitempty"`
	ID              string         `json:"id,omitempty"`
	VideoProperties map[string]any `json:"videoProperties,omitempty"`
}

type Table struct {
	Rows                 int               `json:"rows,omitempty"`
	Columns              int               `json:"columns,omitempty"`
	TableRows            []*TableRow       `json:"tableRows,omitempty"`
	HorizontalBorderRows []*TableBorderRow `json:"horizontalBorderRows,omitempty"`
	VerticalBorderRows   []*TableBorderRow `json:"verticalBorderRows,omitempty"`
}

type TableRow struct {
	Height             *Dimension       `json:"height,omitempty"`
	TableCells         []*TableCell     `json:"tableCells,omitempty"`
	TableRowProperties map[string]any   `json:"tableRowProperties,omitempty"`
}

type TableCell struct {
	Text *TextContent `json:"text,omitempty"`
}

type TableBorderRow struct {
	TableBorderCells []map[string]any `json:"tableBorderCells,omitempty"`
}

type Line struct {
	LineType       string         `json:"lineType,omitempty"`
	LineCategory   string         `json:"lineCategory,omitempty"`
	LineProperties map[string]any `json:"lineProperties,omitempty"`
}

type WordArt struct {
	RenderedText string `json:"renderedText,omitempty"`
}

type SpeakerSpotlight struct {
	SpeakerSpotlightProperties map[string]any `json:"speakerSpotlightProperties,omitempty"`
}

type TextContent struct {
	TextElements []*TextElement `json:"textElements"`
}

// TextElement holds exactly one of textRun, paragraphMarker, or autoText.
type TextElement struct {
	StartIndex      int              `json:"startIndex"`
	EndIndex        int              `json:"endIndex"`
	TextRun         *TextRun         `json:"textRun,omitempty"`
	ParagraphMarker *ParagraphMarker `json:"paragraphMarker,omitempty"`
	AutoText        *AutoText        `json:"autoText,omitempty"`
}

type TextRun struct {
	Content string     `json:"content"`
	Style   *TextStyle `json:"style,omitempty"`
}

type ParagraphMarker struct {
	Style  *ParagraphStyle `json:"style,omitempty"`
	Bullet *Bullet         `json:"bullet,omitempty"`
}

type AutoText struct {
	Text string `json:"text,omitempty"`
}

type ParagraphStyle struct {
	LineSpacing     *float64   `json:"lineSpacing,omitempty"`
	Alignment       string     `json:"alignment,omitempty"`
	IndentStart     *Dimension `json:"indentStart,omitempty"`
	IndentEnd       *Dimension `json:"indentEnd,omitempty"`
	SpaceAbove      *Dimension `json:"spaceAbove,omitempty"`
	SpaceBelow      *Dimension `json:"spaceBelow,omitempty"`
	IndentFirstLine *Dimension `json:"indentFirstLine,omitempty"`
	Direction       string     `json:"direction,omitempty"`
	SpacingMode     string     `json:"spacingMode,omitempty"`
}

type Bullet struct {
	ListID       string     `json:"listId,omitempty"`
	NestingLevel *int       `json:"nestingLevel,omitempty"`
	Glyph        string     `json:"glyph,omitempty"`
	BulletStyle  *TextStyle `json:"bulletStyle,omitempty"`
}

type TextStyle struct {
	BackgroundColor    *OptionalColor      `json:"backgroundColor,omitempty"`
	ForegroundColor    *OptionalColor      `json:"foregroundColor,omitempty"`
	Bold               *bool               `json:"bold,omitempty"`
	Italic             *bool               `json:"italic,omitempty"`
	FontFamily         *string             `json:"fontFamily,omitempty"`
	FontSize           *Dimension          `json:"fontSize,omitempty"`
	Link               *Link               `json:"link,omitempty"`
	BaselineOffset     string              `json:"baselineOffset,omitempty"`
	SmallCaps          *bool               `json:"smallCaps,omitempty"`
	Strikethrough      *bool               `json:"strikethrough,omitempty"`
	Underline          *bool               `json:"underline,omitempty"`
	WeightedFontFamily *WeightedFontFamily `json:"weightedFontFamily,omitempty"`
}

type OptionalColor struct {
	OpaqueColor *OpaqueColor `json:"opaqueColor,omitempty"`
}

type Link struct {
	URL          string `json:"url,omitempty"`
	RelativeLink string `json:"relativeLink,omitempty"`
	PageObjectID string `json:"pageObjectId,omitempty"`
	SlideIndex   *int   `json:"slideIndex,omitempty"`
}

type WeightedFontFamily struct {
	FontFamily string `json:"fontFamily"`
	Weight     int    `json:"weight"`
}

type Dimension struct {
	Magnitude float64 `json:"magnitude"`
	Unit      string  `json:"unit"`
}

type Size struct {
	Width  *Dimension `json:"width,omitempty"`
	Height *Dimension `json:"height,omitempty"`
}

type AffineTransform struct {
	ScaleX     *float64 `json:"scaleX,omitempty"`
	ScaleY     *float64 `json:"scaleY,omitempty"`
	ShearX     *float64 `json:"shearX,omitempty"`
	ShearY     *float64 `json:"shearY,omitempty"`
	TranslateX *float64 `json:"translateX,omitempty"`
	TranslateY *float64 `json:"translateY,omitempty"`
	Unit       string   `json:"unit,omitempty"`
}
