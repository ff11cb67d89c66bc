package store

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"

	"github.com/joelanford/mcp/workspace-sim/internal/apierr"
	"github.com/joelanford/mcp/workspace-sim/internal/model"
)

// Clone returns a deep copy of the file, independent of the original.
func (f *File) Clone() (*File, error) {
	out := &File{}
	switch {
	case f.Doc != nil:
		out.Doc = &model.Document{}
		if err := deepcopy.Copy(out.Doc, f.Doc); err != nil {
			return nil, fmt.Errorf("cloning document: %w", err)
		}
	case f.Pres != nil:
		out.Pres = &model.PresentationFile{}
		if err := deepcopy.Copy(out.Pres, f.Pres); err != nil {
			return nil, fmt.Errorf("cloning presentation: %w", err)
		}
	}
	return out, nil
}

// Tx is a single-file transaction. Begin hands out a deep copy of the
// stored file; handlers mutate the copy freely. Commit swaps the copy in
// as the stored file in one step. Abandoning the Tx without Commit leaves
// the store exactly as it was.
type Tx struct {
	store  *Store
	userID string
	fileID string
	work   *File
}

// Begin starts a transaction on the given user's file. Callers resolve
// the target (existence, mime type) before beginning; a missing file here
// is reported as a plain NotFound.
func (s *Store) Begin(userID, fileID string) (*Tx, error) {
	u, err := s.RequireUser(userID)
	if err != nil {
		return nil, err
	}
	f, ok := u.Files[fileID]
	if !ok {
		return nil, apierr.NotFound("File with ID '%s' not found.", fileID)
	}
	work, err := f.Clone()
	if err != nil {
		return nil, err
	}
	return &Tx{store: s, userID: userID, fileID: fileID, work: work}, nil
}

// File returns the transaction's working copy.
func (tx *Tx) File() *File {
	return tx.work
}

// Commit atomically replaces the stored file with the working copy.
func (tx *Tx) Commit() {
	tx.store.Users[tx.userID].Files[tx.fileID] = tx.work
}
