// Package store holds the in-memory user and file state backing the
// simulated services, with optional JSON persistence.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/joelanford/mcp/workspace-sim/internal/apierr"
	"github.com/joelanford/mcp/workspace-sim/internal/model"
)

// Store is the process-wide database: one entry per user. It is not safe
// for concurrent use; callers are expected to be single-threaded.
type Store struct {
	Users map[string]*User `json:"users"`
}

// User mirrors the Drive account structure: profile metadata, files, and
// the annotation collections that attach to files by fileId.
type User struct {
	About           map[string]any            `json:"about"`
	Files           map[string]*File          `json:"files"`
	Drives          map[string]map[string]any `json:"drives"`
	Comments        map[string]map[string]any `json:"comments"`
	Replies         map[string]map[string]any `json:"replies"`
	Labels          map[string]map[string]any `json:"labels"`
	AccessProposals map[string]map[string]any `json:"accessproposals"`
	Counters        map[string]int            `json:"counters"`
}

func New() *Store {
	return &Store{Users: map[string]*User{}}
}

// RequireUser returns the user entry, failing with a UserNotFound error
// when absent. It never creates users: read paths must not paper over a
// missing account.
func (s *Store) RequireUser(userID string) (*User, error) {
	u, ok := s.Users[userID]
	if !ok {
		return nil, apierr.UserNotFound("User with ID '%s' not found. Cannot perform read operation for non-existent user.", userID)
	}
	return u, nil
}

// EnsureUser returns the user entry, creating a default account scaffold
// when absent.
func (s *Store) EnsureUser(userID string) *User {
	if u, ok := s.Users[userID]; ok {
		u.ensureCollections()
		return u
	}
	u := newDefaultUser(userID)
	s.Users[userID] = u
	return u
}

// NextCounter increments and returns the named per-user counter.
func (s *Store) NextCounter(userID, name string) int {
	u := s.EnsureUser(userID)
	u.Counters[name]++
	return u.Counters[name]
}

// Email returns the user's profile email address.
func (u *User) Email() string {
	if user, ok := u.About["user"].(map[string]any); ok {
		if email, ok := user["emailAddress"].(string); ok {
			return email
		}
	}
	return ""
}

// DisplayName returns the user's profile display name.
func (u *User) DisplayName() string {
	if user, ok := u.About["user"].(map[string]any); ok {
		if name, ok := user["displayName"].(string); ok {
			return name
		}
	}
	return ""
}

// AnnotationsFor filters an annotation collection down to the entries
// attached to the given file.
func AnnotationsFor(coll map[string]map[string]any, fileID string) map[string]map[string]any {
	out := map[string]map[string]any{}
	for id, entry := range coll {
		if entry["fileId"] == fileID {
			out[id] = entry
		}
	}
	return out
}

func defaultCounters() map[string]int {
	return map[string]int{
		"file": 0, "drive": 0, "comment": 0, "reply": 0, "label": 0,
		"accessproposal": 0, "revision": 0,
		"presentation": 0, "slide": 0, "pageElement": 0,
	}
}

func newDefaultUser(userID string) *User {
	return &User{
		About: map[string]any{
			"kind": "drive#about",
			"storageQuota": map[string]any{
				"limit":             "107374182400",
				"usageInDrive":      "0",
				"usageInDriveTrash": "0",
				"usage":             "0",
			},
			"driveThemes":     []any{},
			"canCreateDrives": true,
			"importFormats": map[string]any{
				"application/vnd.openxmlformats-officedocument.presentationml.presentation": []any{model.PresentationMimeType},
			},
			"exportFormats": map[string]any{
				model.PresentationMimeType: []any{
					"application/vnd.openxmlformats-officedocument.presentationml.presentation",
					"application/pdf",
				},
			},
			"appInstalled": true,
			"user": map[string]any{
				"displayName":  fmt.Sprintf("User %s", userID),
				"kind":         "drive#user",
				"me":           userID == "me",
				"permissionId": fmt.Sprintf("user_permission_id_%s", userID),
				"emailAddress": fmt.Sprintf("%s@example.com", userID),
			},
			"folderColorPalette": "",
			"maxImportSizes": map[string]any{
				"application/vnd.openxmlformats-officedocument.presentationml.presentation": "52428800",
			},
			"maxUploadSize": "104857600",
		},
		Files:           map[string]*File{},
		Drives:          map[string]map[string]any{},
		Comments:        map[string]map[string]any{},
		Replies:         map[string]map[string]any{},
		Labels:          map[string]map[string]any{},
		AccessProposals: map[string]map[string]any{},
		Counters:        defaultCounters(),
	}
}

func (u *User) ensureCollections() {
	if u.Files == nil {
		u.Files = map[string]*File{}
	}
	if u.Drives == nil {
		u.Drives = map[string]map[string]any{}
	}
	if u.Comments == nil {
		u.Comments = map[string]map[string]any{}
	}
	if u.Replies == nil {
		u.Replies = map[string]map[string]any{}
	}
	if u.Labels == nil {
		u.Labels = map[string]map[string]any{}
	}
	if u.AccessProposals == nil {
		u.AccessProposals = map[string]map[string]any{}
	}
	if u.Counters == nil {
		u.Counters = map[string]int{}
	}
	for name, v := range defaultCounters() {
		if _, ok := u.Counters[name]; !ok {
			u.Counters[name] = v
		}
	}
}

// File is a stored Drive file: either a document or a presentation,
// discriminated by mimeType on the wire.
type File struct {
	Doc  *model.Document
	Pres *model.PresentationFile
}

func (f *File) MimeType() string {
	switch {
	case f.Doc != nil:
		return f.Doc.MimeType
	case f.Pres != nil:
		return f.Pres.MimeType
	}
	return ""
}

func (f *File) MarshalJSON() ([]byte, error) {
	switch {
	case f.Doc != nil:
		return json.Marshal(f.Doc)
	case f.Pres != nil:
		return json.Marshal(f.Pres)
	}
	return []byte("{}"), nil
}

func (f *File) UnmarshalJSON(data []byte) error {
	var probe struct {
		MimeType string `json:"mimeType"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	switch probe.MimeType {
	case model.PresentationMimeType:
		f.Pres = &model.PresentationFile{}
		return json.Unmarshal(data, f.Pres)
	default:
		f.Doc = &model.Document{}
		return json.Unmarshal(data, f.Doc)
	}
}
