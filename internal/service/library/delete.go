package library

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/worklisten-backend/internal/domain"
)

// Delete removes a library with all its chapters, groups and entries.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("library_id", "required")
	}

	if err := s.libraries.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete library: %w", err)
	}

	s.log.InfoContext(ctx, "library deleted", slog.String("library_id", id.String()))
	return nil
}
