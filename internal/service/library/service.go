package library

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/worklisten-backend/internal/domain"
	"github.com/heartmarshall/worklisten-backend/internal/importer"
)

type libraryRepo interface {
	SaveImport(ctx context.Context, res *domain.ImportResult) (*domain.Library, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Library, error)
	GetByName(ctx context.Context, name string) (*domain.Library, error)
	List(ctx context.Context, filter domain.LibraryFilter) ([]domain.Library, int, error)
	ListChapters(ctx context.Context, libraryID uuid.UUID) ([]domain.Chapter, error)
	ListGroups(ctx context.Context, libraryID uuid.UUID) ([]domain.Group, error)
	ListEntries(ctx context.Context, libraryID uuid.UUID, groupIndex int) ([]domain.Entry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type wordImporter interface {
	ImportReader(src io.Reader, source, libraryName string, opts ...importer.Option) (*domain.ImportResult, error)
}

// Service provides vocabulary library import and browsing operations.
type Service struct {
	libraries libraryRepo
	importer  wordImporter
	log       *slog.Logger
}

// NewService creates a new Library service.
func NewService(
	log *slog.Logger,
	libraries libraryRepo,
	importer wordImporter,
) *Service {
	return &Service{
		libraries: libraries,
		importer:  importer,
		log:       log.With("service", "library"),
	}
}
