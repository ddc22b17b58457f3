package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/worklisten-backend/internal/domain"
	"github.com/heartmarshall/worklisten-backend/internal/service/library"
	"github.com/heartmarshall/worklisten-backend/pkg/ctxutil"
)

// multipartMemory is the part of an upload kept in memory; the rest spills to disk.
const multipartMemory = 8 << 20

type librarySvc interface {
	Import(ctx context.Context, input library.ImportInput) (*library.ImportOutput, error)
	List(ctx context.Context, input library.ListInput) ([]domain.Library, int, error)
	Get(ctx context.Context, id uuid.UUID) (*library.Detail, error)
	Entries(ctx context.Context, input library.EntriesInput) ([]domain.Entry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// LibraryHandler serves vocabulary library REST endpoints.
type LibraryHandler struct {
	svc       librarySvc
	maxUpload int64
	log       *slog.Logger
}

// NewLibraryHandler creates a LibraryHandler. Upload bodies above
// maxUploadBytes are rejected with 413.
func NewLibraryHandler(svc librarySvc, maxUploadBytes int64, logger *slog.Logger) *LibraryHandler {
	return &LibraryHandler{
		svc:       svc,
		maxUpload: maxUploadBytes,
		log:       logger.With("handler", "library"),
	}
}

// Routes mounts the library endpoints on r.
func (h *LibraryHandler) Routes(r chi.Router) {
	r.Post("/", h.Import)
	r.Get("/", h.List)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Delete("/", h.Delete)
		r.Get("/groups/{index}/entries", h.Entries)
	})
}

type libraryResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	SourceFormat string    `json:"sourceFormat"`
	EntryCount   int       `json:"entryCount"`
	GroupCount   int       `json:"groupCount"`
	ChapterCount int       `json:"chapterCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

type chapterResponse struct {
	Number     int    `json:"number"`
	Title      string `json:"title"`
	FirstGroup int    `json:"firstGroup"`
	LastGroup  int    `json:"lastGroup"`
	GroupCount int    `json:"groupCount"`
}

type groupResponse struct {
	Index      int `json:"index"`
	Chapter    int `json:"chapter"`
	EntryCount int `json:"entryCount"`
}

type entryResponse struct {
	Position          int    `json:"position"`
	DisplayForm       string `json:"displayForm"`
	OriginalForm      string `json:"originalForm"`
	Meaning           string `json:"meaning"`
	PartOfSpeech      string `json:"partOfSpeech,omitempty"`
	PartOfSpeechLabel string `json:"partOfSpeechLabel,omitempty"`
	Category          string `json:"category,omitempty"`
	NonLatin          bool   `json:"nonLatin"`
}

type importStatsResponse struct {
	Format       string `json:"format"`
	Charset      string `json:"charset"`
	Rows         int    `json:"rows"`
	BlankMeaning int    `json:"blankMeaning"`
	Duplicates   int    `json:"duplicates"`
	NonLatin     int    `json:"nonLatin"`
}

type importResponse struct {
	Library      libraryResponse     `json:"library"`
	Imported     int                 `json:"imported"`
	Skipped      int                 `json:"skipped"`
	GroupCount   int                 `json:"groupCount"`
	ChapterCount int                 `json:"chapterCount"`
	DryRun       bool                `json:"dryRun"`
	Stats        importStatsResponse `json:"stats"`
}

type listResponse struct {
	Items  []libraryResponse `json:"items"`
	Total  int               `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

type detailResponse struct {
	libraryResponse
	Chapters []chapterResponse `json:"chapters"`
	Groups   []groupResponse   `json:"groups"`
}

// Import handles POST /api/libraries (multipart: file, name, delimiter, format, dryRun).
func (h *LibraryHandler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "file too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	input := library.ImportInput{
		LibraryName: r.FormValue("name"),
		Delimiter:   r.FormValue("delimiter"),
		Format:      r.FormValue("format"),
	}
	if v := r.FormValue("dryRun"); v != "" {
		dry, err := strconv.ParseBool(v)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("dryRun", "must be a boolean"))
			return
		}
		input.DryRun = dry
	}

	file, header, err := r.FormFile("file")
	switch {
	case errors.Is(err, http.ErrMissingFile):
		// Leave File nil; validation reports it with the other fields.
	case err != nil:
		writeError(w, http.StatusBadRequest, "invalid file part")
		return
	default:
		defer file.Close()
		input.File = file
		input.FileName = header.Filename
	}

	out, err := h.svc.Import(ctxutil.WithOrigin(r.Context(), ctxutil.OriginUpload), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	status := http.StatusCreated
	if out.DryRun {
		status = http.StatusOK
	}
	writeJSON(w, status, importResponse{
		Library:      toLibraryResponse(out.Library),
		Imported:     out.ImportedCount,
		Skipped:      out.SkippedCount,
		GroupCount:   out.GroupCount,
		ChapterCount: out.ChapterCount,
		DryRun:       out.DryRun,
		Stats: importStatsResponse{
			Format:       out.Stats.Format.String(),
			Charset:      out.Stats.Charset,
			Rows:         out.Stats.RawPairs,
			BlankMeaning: out.Stats.BlankMeaning,
			Duplicates:   out.Stats.Duplicates,
			NonLatin:     out.Stats.NonLatin,
		},
	})
}

// List handles GET /api/libraries?search=&limit=&offset=.
func (h *LibraryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := library.ListInput{Search: q.Get("search")}

	var errs []domain.FieldError
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be an integer"})
		}
		input.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "offset", Message: "must be an integer"})
		}
		input.Offset = n
	}
	if len(errs) > 0 {
		handleError(h.log, w, r, domain.NewValidationErrors(errs))
		return
	}

	libs, total, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := listResponse{
		Items:  make([]libraryResponse, len(libs)),
		Total:  total,
		Limit:  domain.LibraryFilter{Limit: input.Limit}.Normalized().Limit,
		Offset: input.Offset,
	}
	for i, l := range libs {
		resp.Items[i] = toLibraryResponse(l)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/libraries/{id}.
func (h *LibraryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.libraryID(w, r)
	if !ok {
		return
	}

	d, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := detailResponse{
		libraryResponse: toLibraryResponse(d.Library),
		Chapters:        make([]chapterResponse, len(d.Chapters)),
		Groups:          make([]groupResponse, len(d.Groups)),
	}
	for i, c := range d.Chapters {
		resp.Chapters[i] = chapterResponse{
			Number:     c.Number,
			Title:      c.Title,
			FirstGroup: c.FirstGroup,
			LastGroup:  c.LastGroup,
			GroupCount: c.GroupCount(),
		}
	}
	for i, g := range d.Groups {
		resp.Groups[i] = groupResponse{Index: g.Index, Chapter: g.ChapterIndex() + 1, EntryCount: g.EntryCount}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Entries handles GET /api/libraries/{id}/groups/{index}/entries.
func (h *LibraryHandler) Entries(w http.ResponseWriter, r *http.Request) {
	id, ok := h.libraryID(w, r)
	if !ok {
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("index", "must be an integer"))
		return
	}

	entries, err := h.svc.Entries(r.Context(), library.EntriesInput{LibraryID: id, GroupIndex: index})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]entryResponse, len(entries))
	for i, e := range entries {
		resp[i] = entryResponse{
			Position:          e.Position,
			DisplayForm:       e.DisplayForm,
			OriginalForm:      e.OriginalForm,
			Meaning:           e.Meaning,
			PartOfSpeech:      e.PartOfSpeech,
			PartOfSpeechLabel: domain.PartOfSpeechLabel(e.PartOfSpeech),
			Category:          domain.PartOfSpeechFromTag(e.PartOfSpeech).String(),
			NonLatin:          e.IsNonLatinScript,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Delete handles DELETE /api/libraries/{id}.
func (h *LibraryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.libraryID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *LibraryHandler) libraryID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("id", "must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}

func toLibraryResponse(l domain.Library) libraryResponse {
	resp := libraryResponse{
		Name:         l.Name,
		SourceFormat: l.SourceFormat.String(),
		EntryCount:   l.EntryCount,
		GroupCount:   l.GroupCount,
		ChapterCount: l.ChapterCount,
		CreatedAt:    l.CreatedAt,
	}
	if l.ID != uuid.Nil {
		resp.ID = l.ID.String()
	}
	return resp
}
