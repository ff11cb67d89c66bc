package tools

import (
	"context"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/joelanford/mcp/workspace-sim/internal/apierr"
	"github.com/joelanford/mcp/workspace-sim/internal/schema"
	"github.com/joelanford/mcp/workspace-sim/internal/slides"
	"github.com/joelanford/mcp/workspace-sim/types"
)

// SlidesTools provides the presentation tools.
type SlidesTools struct {
	svc *slides.Service
}

// NewSlidesTools creates a new SlidesTools instance over the presentation service.
func NewSlidesTools(svc *slides.Service) *SlidesTools {
	return &SlidesTools{svc: svc}
}

// SlidesCreateResponse contains the identifying fields of a created presentation.
type SlidesCreateResponse struct {
	PresentationID string `json:"presentationId"`
	Title          string `json:"title"`
	RevisionID     string `json:"revisionId"`
	SlideCount     int    `json:"slideCount"`
}

// MarshalCompact returns a compact text representation of the create response.
func (r SlidesCreateResponse) MarshalCompact() string {
	return r.PresentationID + " | " + r.Title + " | " + strconv.Itoa(r.SlideCount) + " slides | revision " + r.RevisionID
}

// CreateTool returns the tool definition for creating a presentation.
func (s *SlidesTools) CreateTool() mcp.Tool {
	return mcp.NewTool("slides_create",
		mcp.WithDescription(`Creates a new Google Slides presentation.

The request object may carry an explicit presentationId, a title, and
initial slides, layouts, masters and page size. At least one field must
be set.

Returns:
    str: The ID, title and revision of the created presentation.`),
		mcp.WithObject("request",
			mcp.Required(),
			mcp.Description("Initial presentation state (presentationId, title, slides, layouts, masters, pageSize, locale)"),
		),
	)
}

// CreateHandler handles slides_create tool calls.
func (s *SlidesTools) CreateHandler(ctx context.Context, request mcp.CallToolRequest, args types.SlidesCreateArgs) (*mcp.CallToolResult, error) {
	var req slides.CreateRequest
	if len(args.Request) > 0 {
		if err := schema.Decode(args.Request, &req); err != nil {
			return mcp.NewToolResultError(apierr.GoogleAPI(err).Error()), nil
		}
	}

	pres, err := s.svc.Create(&req)
	if err != nil {
		return mcp.NewToolResultError(apierr.GoogleAPI(err).Error()), nil
	}

	response := SlidesCreateResponse{
		PresentationID: pres.PresentationID,
		Title:          pres.Title,
		RevisionID:     pres.RevisionID,
		SlideCount:     len(pres.Slides),
	}

	data, err := types.MarshalResponse(response)
	if err != nil {
		return mcp.NewToolResultError("failed to marshal response: " + err.Error()), nil
	}
	return mcp.NewToolResultText(data), nil
}

// GetTool returns the tool definition for fetching a presentation.
func (s *SlidesTools) GetTool() mcp.Tool {
	return mcp.NewTool("slides_get",
		mcp.WithDescription(`Retrieves a Google Slides presentation.

Returns:
    str: The full presentation resource as JSON, including slides,
    layouts, masters and the notes master.`),
		mcp.WithString("presentation_id",
			mcp.Required(),
			mcp.Description("The presentation ID"),
		),
	)
}

// GetHandler handles slides_get tool calls.
func (s *SlidesTools) GetHandler(ctx context.Context, request mcp.CallToolRequest, args types.SlidesGetArgs) (*mcp.CallToolResult, error) {
	pres, err := s.svc.Get(args.PresentationID)
	if err != nil {
		return mcp.NewToolResultError(apierr.GoogleAPI(err).Error()), nil
	}

	data, err := types.MarshalResponse(pres)
	if err != nil {
		return mcp.NewToolResultError("failed to marshal response: " + err.Error()), nil
	}
	return mcp.NewToolResultText(data), nil
}

// GetPageTool returns the tool definition for fetching a single page.
func (s *SlidesTools) GetPageTool() mcp.Tool {
	return mcp.NewTool("slides_get_page",
		mcp.WithDescription(`Retrieves a single page of a presentation by its object ID.

Slides, layouts, masters and the notes master are all addressable.

Returns:
    str: The page resource as JSON.`),
		mcp.WithString("presentation_id",
			mcp.Required(),
			mcp.Description("The presentation ID"),
		),
		mcp.WithString("page_object_id",
			mcp.Required(),
			mcp.Description("The object ID of the page to return"),
		),
	)
}

// GetPageHandler handles slides_get_page tool calls.
func (s *SlidesTools) GetPageHandler(ctx context.Context, request mcp.CallToolRequest, args types.SlidesGetPageArgs) (*mcp.CallToolResult, error) {
	page, err := s.svc.GetPage(args.PresentationID, args.PageObjectID)
	if err != nil {
		return mcp.NewToolResultError(apierr.GoogleAPI(err).Error()), nil
	}

	data, err := types.MarshalResponse(page)
	if err != nil {
		return mcp.NewToolResultError("failed to marshal response: " + err.Error()), nil
	}
	return mcp.NewToolResultText(data), nil
}

// SlidesSummarizeResponse wraps a presentation summary for compact output.
type SlidesSummarizeResponse struct {
	*slides.Summary
}

// MarshalCompact returns a compact text representation of the summary.
// Format: a header line, then one block per slide with its number, ID,
// content and optional notes.
func (r SlidesSummarizeResponse) MarshalCompact() string {
	var sb strings.Builder
	sb.WriteString("=== Presentation: ")
	sb.WriteString(r.Title)
	sb.WriteString(" ===\nSlides: ")
	sb.WriteString(strconv.Itoa(r.SlideCount))
	sb.WriteString("\nLast modified: ")
	sb.WriteString(r.LastModified)
	sb.WriteString("\n")

	if r.Message != "" {
		sb.WriteString("\n")
		sb.WriteString(r.Message)
		return sb.String()
	}

	for _, slide := range r.Slides {
		sb.WriteString("\n--- Slide ")
		sb.WriteString(strconv.Itoa(slide.SlideNumber))
		sb.WriteString(" (")
		sb.WriteString(slide.SlideID)
		sb.WriteString(") ---\n")
		sb.WriteString(slide.Content)
		sb.WriteString("\n")
		if slide.Notes != "" {
			sb.WriteString("Notes: ")
			sb.WriteString(slide.Notes)
			sb.WriteString("\n")
		}
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// SummarizeTool returns the tool definition for summarizing a presentation.
func (s *SlidesTools) SummarizeTool() mcp.Tool {
	return mcp.NewTool("slides_summarize",
		mcp.WithDescription(`Extracts the text content of every slide in a presentation.

Returns:
    str: Per-slide text content, optionally with speaker notes.`),
		mcp.WithString("presentation_id",
			mcp.Required(),
			mcp.Description("The presentation ID"),
		),
		mcp.WithBoolean("include_notes",
			mcp.Description("Include speaker notes for each slide"),
		),
	)
}

// SummarizeHandler handles slides_summarize tool calls.
func (s *SlidesTools) SummarizeHandler(ctx context.Context, request mcp.CallToolRequest, args types.SlidesSummarizeArgs) (*mcp.CallToolResult, error) {
	summary, err := s.svc.Summarize(args.PresentationID, args.IncludeNotes)
	if err != nil {
		return mcp.NewToolResultError(apierr.GoogleAPI(err).Error()), nil
	}

	data, err := types.MarshalResponse(SlidesSummarizeResponse{summary})
	if err != nil {
		return mcp.NewToolResultError("failed to marshal response: " + err.Error()), nil
	}
	return mcp.NewToolResultText(data), nil
}

// BatchUpdateTool returns the tool definition for a presentation batch update.
func (s *SlidesTools) BatchUpdateTool() mcp.Tool {
	return mcp.NewTool("slides_batch_update",
		mcp.WithDescription(`Applies a list of update requests to a presentation atomically.

Supported request types: createSlide, createShape, insertText,
replaceAllText, deleteObject, deleteText, updateTextStyle, groupObjects,
ungroupObjects, updatePageElementAltText, updateSlideProperties.
Requests are applied in order; if any request fails, the presentation is
left unchanged. An optional writeControl asserts the expected revision.

Returns:
    str: The batch update response with one reply per request.`),
		mcp.WithString("presentation_id",
			mcp.Required(),
			mcp.Description("The presentation ID"),
		),
		mcp.WithArray("requests",
			mcp.Required(),
			mcp.Description("Ordered list of update request objects, each with a single request-type key"),
		),
		mcp.WithObject("write_control",
			mcp.Description("Optional revision assertion: {\"requiredRevisionId\": \"...\"}"),
		),
	)
}

// BatchUpdateHandler handles slides_batch_update tool calls.
func (s *SlidesTools) BatchUpdateHandler(ctx context.Context, request mcp.CallToolRequest, args types.SlidesBatchUpdateArgs) (*mcp.CallToolResult, error) {
	if args.PresentationID == "" {
		return mcp.NewToolResultError("presentation_id is required"), nil
	}

	var writeControl *slides.WriteControl
	if len(args.WriteControl) > 0 {
		writeControl = &slides.WriteControl{}
		if err := schema.Decode(args.WriteControl, writeControl); err != nil {
			return mcp.NewToolResultError(apierr.GoogleAPI(err).Error()), nil
		}
	}

	result, err := s.svc.BatchUpdate(args.PresentationID, args.Requests, writeControl)
	if err != nil {
		return mcp.NewToolResultError(apierr.GoogleAPI(err).Error()), nil
	}

	data, err := types.MarshalResponse(result)
	if err != nil {
		return mcp.NewToolResultError("failed to marshal response: " + err.Error()), nil
	}
	return mcp.NewToolResultText(data), nil
}
