package slides

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/joelanford/mcp/workspace-sim/internal/apierr"
	"github.com/joelanford/mcp/workspace-sim/internal/model"
)

// Reply carries the outcome of a single batch request, keyed by the
// request type that produced it.
type Reply struct {
	CreateSlide              *ObjectIDReply       `json:"createSlide,omitempty"`
	CreateShape              *ObjectIDReply       `json:"createShape,omitempty"`
	InsertText               *EmptyReply          `json:"insertText,omitempty"`
	ReplaceAllText           *ReplaceAllTextReply `json:"replaceAllText,omitempty"`
	DeleteObject             *EmptyReply          `json:"deleteObject,omitempty"`
	DeleteText               *EmptyReply          `json:"deleteText,omitempty"`
	UpdateTextStyle          *model.TextStyle     `json:"updateTextStyle,omitempty"`
	GroupObjects             *ObjectIDReply       `json:"groupObjects,omitempty"`
	UngroupObjects           *ObjectIDReply       `json:"ungroupObjects,omitempty"`
	UpdatePageElementAltText *EmptyReply          `json:"updatePageElementAltText,omitempty"`
	UpdateSlideProperties    *EmptyReply          `json:"updateSlideProperties,omitempty"`
}

type EmptyReply struct{}

type ObjectIDReply struct {
	ObjectID string `json:"objectId"`
}

type ReplaceAllTextReply struct {
	OccurrencesChanged int `json:"occurrencesChanged"`
}

// WriteControl asserts the revision the caller expects before a write is
// allowed to proceed. TargetRevisionID is the deprecated alias.
type WriteControl struct {
	RequiredRevisionID string `json:"requiredRevisionId,omitempty"`
	TargetRevisionID   string `json:"targetRevisionId,omitempty"`
}

type WriteControlResponse struct {
	RequiredRevisionID string `json:"requiredRevisionId"`
}

type BatchUpdateResponse struct {
	PresentationID string               `json:"presentationId"`
	Replies        []Reply              `json:"replies"`
	WriteControl   WriteControlResponse `json:"writeControl"`
}

// BatchUpdate applies an ordered list of requests to a presentation as
// one atomic unit. The write control check runs before any request; on
// success the presentation is committed with a fresh revision ID and
// updated timestamps, and the response's writeControl carries the new
// revision.
func (s *Service) BatchUpdate(presentationID string, rawRequests []json.RawMessage, writeControl *WriteControl) (*BatchUpdateResponse, error) {
	if strings.TrimSpace(presentationID) == "" {
		return nil, apierr.InvalidInput("Presentation ID cannot be empty or contain only whitespace.")
	}
	s.store.EnsureUser(DefaultUserID)

	u := s.store.Users[DefaultUserID]
	f, ok := u.Files[presentationID]
	if !ok || f.Pres == nil || f.Pres.MimeType != model.PresentationMimeType {
		return nil, apierr.NotFound("Presentation with ID '%s' not found or is not a presentation.", presentationID)
	}

	tx, err := s.store.Begin(DefaultUserID, presentationID)
	if err != nil {
		return nil, err
	}
	pres := &tx.File().Pres.Presentation

	if writeControl != nil {
		required := writeControl.RequiredRevisionID
		if required == "" {
			required = writeControl.TargetRevisionID
		}
		if required != "" && required != pres.RevisionID {
			return nil, apierr.Concurrency("Required revision ID '%s' does not match current revision ID '%s'.", required, pres.RevisionID)
		}
	}

	replies := make([]Reply, 0, len(rawRequests))
	for i, raw := range rawRequests {
		req, err := decodeRequest(raw, i)
		if err != nil {
			return nil, err
		}
		reply, err := s.dispatch(pres, req)
		if err != nil {
			if kind, ok := apierr.KindOf(err); ok &&
				(kind == apierr.KindNotFound || kind == apierr.KindInvalidInput ||
					kind == apierr.KindValidation || kind == apierr.KindConcurrency) {
				return nil, err
			}
			return nil, apierr.InvalidInput("Error processing request at index %d (type: %s): %s", i, req.Type(), err.Error())
		}
		replies = append(replies, *reply)
	}

	now := timestamp()
	newRevision := uuid.NewString()
	file := tx.File().Pres
	file.UpdateTime = now
	file.ModifiedTime = now
	file.RevisionID = newRevision
	file.Version = newRevision
	tx.Commit()

	return &BatchUpdateResponse{
		PresentationID: presentationID,
		Replies:        replies,
		WriteControl:   WriteControlResponse{RequiredRevisionID: newRevision},
	}, nil
}

func (s *Service) dispatch(pres *model.Presentation, req *Request) (*Reply, error) {
	switch {
	case req.CreateSlide != nil:
		return applyCreateSlide(pres, req.CreateSlide)
	case req.CreateShape != nil:
		return applyCreateShape(pres, req.CreateShape)
	case req.InsertText != nil:
		return applyInsertText(pres, req.InsertText)
	case req.ReplaceAllText != nil:
		return applyReplaceAllText(pres, req.ReplaceAllText)
	case req.DeleteObject != nil:
		return applyDeleteObject(pres, req.DeleteObject)
	case req.DeleteText != nil:
		return applyDeleteText(pres, req.DeleteText)
	case req.UpdateTextStyle != nil:
		return applyUpdateTextStyle(pres, req.UpdateTextStyle)
	case req.GroupObjects != nil:
		return applyGroupObjects(pres, req.GroupObjects)
	case req.UngroupObjects != nil:
		return applyUngroupObjects(pres, req.UngroupObjects)
	case req.UpdatePageElementAltText != nil:
		return applyUpdatePageElementAltText(pres, req.UpdatePageElementAltText)
	case req.UpdateSlideProperties != nil:
		return applyUpdateSlideProperties(pres, req.UpdateSlideProperties)
	}
	return nil, apierr.InvalidInput("empty request")
}
