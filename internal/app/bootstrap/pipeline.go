// Package bootstrap imports the bundled vocabulary corpora into the library
// store. It is safe to run on every start: corpora whose library already
// exists are left alone.
package bootstrap

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/heartmarshall/worklisten-backend/internal/config"
	"github.com/heartmarshall/worklisten-backend/internal/service/library"
	"github.com/heartmarshall/worklisten-backend/pkg/ctxutil"
)

type librarySvc interface {
	Exists(ctx context.Context, name string) (bool, error)
	Import(ctx context.Context, input library.ImportInput) (*library.ImportOutput, error)
}

// CorpusResult holds the outcome of importing a single corpus.
type CorpusResult struct {
	Corpus   config.Corpus
	Existing bool // library was already present, file not read
	Imported int
	Skipped  int
	Duration time.Duration
	Err      error
}

// Pipeline imports corpora in configured order.
type Pipeline struct {
	log     *slog.Logger
	svc     librarySvc
	fsys    fs.FS
	corpora []config.Corpus
	dryRun  bool
	results []CorpusResult
}

// NewPipeline creates a new Pipeline reading corpus files from fsys.
func NewPipeline(log *slog.Logger, svc librarySvc, fsys fs.FS, corpora []config.Corpus, dryRun bool) *Pipeline {
	return &Pipeline{
		log:     log.With("component", "bootstrap"),
		svc:     svc,
		fsys:    fsys,
		corpora: corpora,
		dryRun:  dryRun,
	}
}

// Results returns per-corpus results in run order after Run completes.
func (p *Pipeline) Results() []CorpusResult {
	return p.results
}

// HasErrors returns true if any corpus failed.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run imports every corpus. A failing corpus is recorded and the rest still
// run; only context cancellation stops the pipeline early.
func (p *Pipeline) Run(ctx context.Context) error {
	p.results = make([]CorpusResult, 0, len(p.corpora))
	ctx = ctxutil.WithOrigin(ctx, ctxutil.OriginBootstrap)

	for _, c := range p.corpora {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("bootstrap interrupted before %s: %w", c.File, err)
		}

		start := time.Now()
		result := p.runCorpus(ctx, c)
		result.Corpus = c
		result.Duration = time.Since(start)
		p.results = append(p.results, result)

		switch {
		case result.Err != nil:
			p.log.Warn("corpus failed",
				slog.String("file", c.File),
				slog.String("library", c.Name),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
		case result.Existing:
			p.log.Info("corpus already imported", slog.String("library", c.Name))
		default:
			p.log.Info("corpus imported",
				slog.String("file", c.File),
				slog.String("library", c.Name),
				slog.Int("imported", result.Imported),
				slog.Int("skipped", result.Skipped),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	p.log.Info("bootstrap completed", slog.Int("corpora", len(p.results)))
	return nil
}

func (p *Pipeline) runCorpus(ctx context.Context, c config.Corpus) CorpusResult {
	exists, err := p.svc.Exists(ctx, c.Name)
	if err != nil {
		return CorpusResult{Err: err}
	}
	if exists {
		return CorpusResult{Existing: true}
	}

	f, err := p.fsys.Open(c.File)
	if err != nil {
		return CorpusResult{Err: fmt.Errorf("open %s: %w", c.File, err)}
	}
	defer f.Close()

	out, err := p.svc.Import(ctx, library.ImportInput{
		LibraryName: c.Name,
		File:        f,
		FileName:    c.File,
		DryRun:      p.dryRun,
	})
	if err != nil {
		return CorpusResult{Err: err}
	}

	return CorpusResult{Imported: out.ImportedCount, Skipped: out.SkippedCount}
}
