// Command importer loads vocabulary files into the library store without
// going through the HTTP API.
//
// Flags:
//
//	--config     YAML config path (default $CONFIG_PATH, then ./config.yaml)
//	--file       path to a .txt, .csv, .tsv, .xlsx or .xls file
//	--name       library name (required with --file)
//	--delimiter  column delimiter for CSV input (default from config)
//	--format     format override when the file extension is missing or wrong
//	--dry-run    parse and report without writing to the DB
//	--bootstrap  import the bundled corpora from import.bootstrap_dir
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/heartmarshall/worklisten-backend/internal/adapter/postgres"
	libraryrepo "github.com/heartmarshall/worklisten-backend/internal/adapter/postgres/library"
	"github.com/heartmarshall/worklisten-backend/internal/app"
	"github.com/heartmarshall/worklisten-backend/internal/config"
	"github.com/heartmarshall/worklisten-backend/internal/importer"
	"github.com/heartmarshall/worklisten-backend/internal/service/library"
	"github.com/heartmarshall/worklisten-backend/pkg/ctxutil"
)

func main() {
	configFlag := flag.String("config", "", "YAML config path")
	fileFlag := flag.String("file", "", "vocabulary file to import")
	nameFlag := flag.String("name", "", "library name")
	delimiterFlag := flag.String("delimiter", "", "CSV column delimiter")
	formatFlag := flag.String("format", "", "format override: txt, csv, tsv, xlsx, xls")
	dryRunFlag := flag.Bool("dry-run", false, "parse without writing to DB")
	bootstrapFlag := flag.Bool("bootstrap", false, "import bundled corpora from import.bootstrap_dir")
	flag.Parse()

	if *bootstrapFlag == (*fileFlag != "") {
		log.Fatal("exactly one of --file or --bootstrap is required")
	}

	load := config.Load
	if *configFlag != "" {
		load = func() (*config.Config, error) { return config.LoadFrom(*configFlag) }
	}
	cfg, err := load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	svc := library.NewService(logger, libraryrepo.New(pool, txm), importer.New(logger, cfg.Import.Delimiter()))

	if *bootstrapFlag {
		if !app.RunBootstrap(ctx, logger, cfg.Import, svc, *dryRunFlag) {
			os.Exit(1)
		}
		logger.Info("bootstrap completed successfully")
		return
	}

	f, err := os.Open(*fileFlag)
	if err != nil {
		logger.Error("open file", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer f.Close()

	out, err := svc.Import(ctxutil.WithOrigin(ctx, ctxutil.OriginCLI), library.ImportInput{
		LibraryName: *nameFlag,
		File:        f,
		FileName:    filepath.Base(*fileFlag),
		Format:      *formatFlag,
		Delimiter:   *delimiterFlag,
		DryRun:      *dryRunFlag,
	})
	if err != nil {
		logger.Error("import failed",
			slog.String("file", *fileFlag),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	logger.Info("import completed",
		slog.String("library", out.Library.Name),
		slog.Bool("dry_run", out.DryRun),
		slog.String("format", out.Stats.Format.String()),
		slog.String("charset", out.Stats.Charset),
		slog.Int("imported", out.ImportedCount),
		slog.Int("skipped", out.SkippedCount),
		slog.Int("groups", out.GroupCount),
		slog.Int("chapters", out.ChapterCount),
	)
}
