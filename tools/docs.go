package tools

import (
	"context"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/joelanford/mcp/workspace-sim/internal/apierr"
	"github.com/joelanford/mcp/workspace-sim/internal/docs"
	"github.com/joelanford/mcp/workspace-sim/types"
)

// DocsTools provides the document tools.
type DocsTools struct {
	svc *docs.Service
}

// NewDocsTools creates a new DocsTools instance over the document service.
func NewDocsTools(svc *docs.Service) *DocsTools {
	return &DocsTools{svc: svc}
}

// DocsCreateResponse contains the identifying fields of a created document.
type DocsCreateResponse struct {
	DocumentID   string `json:"documentId"`
	Title        string `json:"title"`
	RevisionID   string `json:"revisionId"`
	CreatedTime  string `json:"createdTime"`
	ModifiedTime string `json:"modifiedTime"`
}

// MarshalCompact returns a compact text representation of the create response.
func (r DocsCreateResponse) MarshalCompact() string {
	return r.DocumentID + " | " + r.Title + " | revision " + r.RevisionID
}

// CreateTool returns the tool definition for creating a document.
func (d *DocsTools) CreateTool() mcp.Tool {
	return mcp.NewTool("docs_create",
		mcp.WithDescription(`Creates a new Google Doc owned by the given user.

Returns:
    str: The ID, title and revision of the created document.`),
		mcp.WithString("title",
			mcp.Description("Document title (defaults to 'Untitled Document')"),
		),
		mcp.WithString("user_id",
			mcp.Description("Owning user ID (defaults to 'me')"),
		),
	)
}

// CreateHandler handles docs_create tool calls.
func (d *DocsTools) CreateHandler(ctx context.Context, request mcp.CallToolRequest, args types.DocsCreateArgs) (*mcp.CallToolResult, error) {
	title := args.Title
	if title == "" {
		title = "Untitled Document"
	}
	userID := args.UserID
	if userID == "" {
		userID = "me"
	}

	doc, err := d.svc.Create(title, userID)
	if err != nil {
		return mcp.NewToolResultError(apierr.GoogleAPI(err).Error()), nil
	}

	response := DocsCreateResponse{
		DocumentID:   doc.ID,
		Title:        doc.Name,
		RevisionID:   doc.RevisionID,
		CreatedTime:  doc.CreatedTime,
		ModifiedTime: doc.ModifiedTime,
	}

	data, err := types.MarshalResponse(response)
	if err != nil {
		return mcp.NewToolResultError("failed to marshal response: " + err.Error()), nil
	}
	return mcp.NewToolResultText(data), nil
}

// GetTool returns the tool definition for fetching a document.
func (d *DocsTools) GetTool() mcp.Tool {
	return mcp.NewTool("docs_get",
		mcp.WithDescription(`Retrieves a Google Doc with its content and annotations.

Returns:
    str: The full document resource as JSON, including comments, replies,
    labels and access proposals attached to it.`),
		mcp.WithString("document_id",
			mcp.Required(),
			mcp.Description("The document ID"),
		),
		mcp.WithString("suggestions_view_mode",
			mcp.Description("Suggestions view mode: DEFAULT_FOR_CURRENT_ACCESS, SUGGESTIONS_INLINE, PREVIEW_SUGGESTIONS_ACCEPTED or PREVIEW_WITHOUT_SUGGESTIONS"),
		),
		mcp.WithBoolean("include_tabs_content",
			mcp.Description("Populate document tabs in addition to the body"),
		),
		mcp.WithString("user_id",
			mcp.Description("User ID performing the read (defaults to 'me')"),
		),
	)
}

// GetHandler handles docs_get tool calls.
func (d *DocsTools) GetHandler(ctx context.Context, request mcp.CallToolRequest, args types.DocsGetArgs) (*mcp.CallToolResult, error) {
	userID := args.UserID
	if userID == "" {
		userID = "me"
	}

	view, err := d.svc.Get(args.DocumentID, args.SuggestionsViewMode, args.IncludeTabsContent, userID)
	if err != nil {
		return mcp.NewToolResultError(apierr.GoogleAPI(err).Error()), nil
	}

	data, err := types.MarshalResponse(view)
	if err != nil {
		return mcp.NewToolResultError("failed to marshal response: " + err.Error()), nil
	}
	return mcp.NewToolResultText(data), nil
}

// DocsBatchUpdateResponse wraps a batch update result for compact output.
type DocsBatchUpdateResponse struct {
	*docs.BatchUpdateResponse
}

// MarshalCompact returns a compact text representation of the batch result.
func (r DocsBatchUpdateResponse) MarshalCompact() string {
	var sb strings.Builder
	sb.WriteString(r.DocumentID)
	sb.WriteString(" | ")
	sb.WriteString(strconv.Itoa(len(r.Replies)))
	sb.WriteString(" replies")
	for _, reply := range r.Replies {
		if reply.ReplaceAllText != nil {
			sb.WriteString("\nreplaceAllText: ")
			sb.WriteString(strconv.Itoa(reply.ReplaceAllText.OccurrencesChanged))
			sb.WriteString(" occurrences changed")
		}
	}
	return sb.String()
}

// BatchUpdateTool returns the tool definition for a document batch update.
func (d *DocsTools) BatchUpdateTool() mcp.Tool {
	return mcp.NewTool("docs_batch_update",
		mcp.WithDescription(`Applies a list of update requests to a Google Doc atomically.

Supported request types: insertText, updateDocumentStyle, deleteContentRange,
replaceAllText, insertTable. Requests are applied in order; if any request
fails, the document is left unchanged.

Returns:
    str: The batch update response with one reply per request.`),
		mcp.WithString("document_id",
			mcp.Required(),
			mcp.Description("The document ID"),
		),
		mcp.WithArray("requests",
			mcp.Required(),
			mcp.Description("Ordered list of update request objects, each with a single request-type key"),
		),
		mcp.WithString("user_id",
			mcp.Description("User ID performing the update (defaults to 'me')"),
		),
	)
}

// BatchUpdateHandler handles docs_batch_update tool calls.
func (d *DocsTools) BatchUpdateHandler(ctx context.Context, request mcp.CallToolRequest, args types.DocsBatchUpdateArgs) (*mcp.CallToolResult, error) {
	if args.DocumentID == "" {
		return mcp.NewToolResultError("document_id is required"), nil
	}

	result, err := d.svc.BatchUpdate(args.DocumentID, args.Requests, args.UserID)
	if err != nil {
		return mcp.NewToolResultError(apierr.GoogleAPI(err).Error()), nil
	}

	data, err := types.MarshalResponse(DocsBatchUpdateResponse{result})
	if err != nil {
		return mcp.NewToolResultError("failed to marshal response: " + err.Error()), nil
	}
	return mcp.NewToolResultText(data), nil
}
