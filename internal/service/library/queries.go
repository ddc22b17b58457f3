package library

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/worklisten-backend/internal/domain"
)

// List returns a page of libraries, newest first, and the total count.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Library, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	libs, total, err := s.libraries.List(ctx, domain.LibraryFilter{
		Search: input.Search,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list libraries: %w", err)
	}
	return libs, total, nil
}

// Get returns a library with its chapters and groups.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Detail, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("library_id", "required")
	}

	lib, err := s.libraries.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get library: %w", err)
	}
	chapters, err := s.libraries.ListChapters(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list chapters: %w", err)
	}
	groups, err := s.libraries.ListGroups(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}

	return &Detail{Library: *lib, Chapters: chapters, Groups: groups}, nil
}

// Entries returns the entries of one group. A group index past the end of
// the library is reported as not found.
func (s *Service) Entries(ctx context.Context, input EntriesInput) ([]domain.Entry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	lib, err := s.libraries.GetByID(ctx, input.LibraryID)
	if err != nil {
		return nil, fmt.Errorf("get library: %w", err)
	}
	if input.GroupIndex >= lib.GroupCount {
		return nil, fmt.Errorf("group %d of library %s: %w", input.GroupIndex, lib.ID, domain.ErrNotFound)
	}

	entries, err := s.libraries.ListEntries(ctx, input.LibraryID, input.GroupIndex)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// Exists reports whether a library with the given name (after normalization) is stored.
func (s *Service) Exists(ctx context.Context, name string) (bool, error) {
	_, err := s.libraries.GetByName(ctx, name)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("check library name: %w", err)
	}
}
