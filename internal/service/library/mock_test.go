package library

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/worklisten-backend/internal/domain"
	"github.com/heartmarshall/worklisten-backend/internal/importer"
)

var (
	_ libraryRepo  = &libraryRepoMock{}
	_ wordImporter = &wordImporterMock{}
)

type libraryRepoMock struct {
	SaveImportFunc   func(ctx context.Context, res *domain.ImportResult) (*domain.Library, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Library, error)
	GetByNameFunc    func(ctx context.Context, name string) (*domain.Library, error)
	ListFunc         func(ctx context.Context, filter domain.LibraryFilter) ([]domain.Library, int, error)
	ListChaptersFunc func(ctx context.Context, libraryID uuid.UUID) ([]domain.Chapter, error)
	ListGroupsFunc   func(ctx context.Context, libraryID uuid.UUID) ([]domain.Group, error)
	ListEntriesFunc  func(ctx context.Context, libraryID uuid.UUID, groupIndex int) ([]domain.Entry, error)
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error

	mu    sync.Mutex
	calls struct {
		SaveImport []*domain.ImportResult
		GetByName  []string
		List       []domain.LibraryFilter
		Delete     []uuid.UUID
	}
}

func (m *libraryRepoMock) SaveImport(ctx context.Context, res *domain.ImportResult) (*domain.Library, error) {
	if m.SaveImportFunc == nil {
		panic("libraryRepoMock.SaveImportFunc: method is nil but libraryRepo.SaveImport was just called")
	}
	m.mu.Lock()
	m.calls.SaveImport = append(m.calls.SaveImport, res)
	m.mu.Unlock()
	return m.SaveImportFunc(ctx, res)
}

func (m *libraryRepoMock) SaveImportCalls() []*domain.ImportResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.SaveImport
}

func (m *libraryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Library, error) {
	if m.GetByIDFunc == nil {
		panic("libraryRepoMock.GetByIDFunc: method is nil but libraryRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *libraryRepoMock) GetByName(ctx context.Context, name string) (*domain.Library, error) {
	if m.GetByNameFunc == nil {
		panic("libraryRepoMock.GetByNameFunc: method is nil but libraryRepo.GetByName was just called")
	}
	m.mu.Lock()
	m.calls.GetByName = append(m.calls.GetByName, name)
	m.mu.Unlock()
	return m.GetByNameFunc(ctx, name)
}

func (m *libraryRepoMock) GetByNameCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetByName
}

func (m *libraryRepoMock) List(ctx context.Context, filter domain.LibraryFilter) ([]domain.Library, int, error) {
	if m.ListFunc == nil {
		panic("libraryRepoMock.ListFunc: method is nil but libraryRepo.List was just called")
	}
	m.mu.Lock()
	m.calls.List = append(m.calls.List, filter)
	m.mu.Unlock()
	return m.ListFunc(ctx, filter)
}

func (m *libraryRepoMock) ListCalls() []domain.LibraryFilter {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.List
}

func (m *libraryRepoMock) ListChapters(ctx context.Context, libraryID uuid.UUID) ([]domain.Chapter, error) {
	if m.ListChaptersFunc == nil {
		panic("libraryRepoMock.ListChaptersFunc: method is nil but libraryRepo.ListChapters was just called")
	}
	return m.ListChaptersFunc(ctx, libraryID)
}

func (m *libraryRepoMock) ListGroups(ctx context.Context, libraryID uuid.UUID) ([]domain.Group, error) {
	if m.ListGroupsFunc == nil {
		panic("libraryRepoMock.ListGroupsFunc: method is nil but libraryRepo.ListGroups was just called")
	}
	return m.ListGroupsFunc(ctx, libraryID)
}

func (m *libraryRepoMock) ListEntries(ctx context.Context, libraryID uuid.UUID, groupIndex int) ([]domain.Entry, error) {
	if m.ListEntriesFunc == nil {
		panic("libraryRepoMock.ListEntriesFunc: method is nil but libraryRepo.ListEntries was just called")
	}
	return m.ListEntriesFunc(ctx, libraryID, groupIndex)
}

func (m *libraryRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("libraryRepoMock.DeleteFunc: method is nil but libraryRepo.Delete was just called")
	}
	m.mu.Lock()
	m.calls.Delete = append(m.calls.Delete, id)
	m.mu.Unlock()
	return m.DeleteFunc(ctx, id)
}

func (m *libraryRepoMock) DeleteCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Delete
}

type importCall struct {
	Source      string
	LibraryName string
	Opts        int
}

type wordImporterMock struct {
	ImportReaderFunc func(src io.Reader, source, libraryName string, opts ...importer.Option) (*domain.ImportResult, error)

	mu    sync.Mutex
	calls []importCall
}

func (m *wordImporterMock) ImportReader(src io.Reader, source, libraryName string, opts ...importer.Option) (*domain.ImportResult, error) {
	if m.ImportReaderFunc == nil {
		panic("wordImporterMock.ImportReaderFunc: method is nil but wordImporter.ImportReader was just called")
	}
	m.mu.Lock()
	m.calls = append(m.calls, importCall{Source: source, LibraryName: libraryName, Opts: len(opts)})
	m.mu.Unlock()
	return m.ImportReaderFunc(src, source, libraryName, opts...)
}

func (m *wordImporterMock) ImportReaderCalls() []importCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
