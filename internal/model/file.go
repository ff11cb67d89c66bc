package model

// FileMeta is the Drive-level metadata carried by stored files.
type FileMeta struct {
	Kind                  string        `json:"kind,omitempty"`
	ID                    string        `json:"id"`
	Name                  string        `json:"name"`
	MimeType              string        `json:"mimeType"`
	CreatedTime           string        `json:"createdTime"`
	ModifiedTime          string        `json:"modifiedTime"`
	UpdateTime            string        `json:"updateTime,omitempty"`
	Parents               []string      `json:"parents"`
	Owners                []string      `json:"owners"`
	Permissions           []*Permission `json:"permissions"`
	Description           string        `json:"description,omitempty"`
	Starred               bool          `json:"starred"`
	Trashed               bool          `json:"trashed"`
	ViewersCanCopyContent bool          `json:"viewersCanCopyContent,omitempty"`
	WritersCanShare       bool          `json:"writersCanShare,omitempty"`
	Version               string        `json:"version,omitempty"`
	Size                  string        `json:"size,omitempty"`
}

// PresentationFile is a presentation stored as a Drive file entry: the
// Drive metadata and the presentation body share one flat JSON object.
type PresentationFile struct {
	FileMeta
	Presentation
}
