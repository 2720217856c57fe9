package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/claude/hevylift/internal/catalog"
	"github.com/claude/hevylift/internal/config"
	"github.com/claude/hevylift/internal/ingest/minmax"
	"github.com/claude/hevylift/internal/models"
	"github.com/claude/hevylift/internal/preview"
	"github.com/claude/hevylift/internal/upload"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	file := flag.String("file", "", "program workbook path (overrides config)")
	sheet := flag.String("sheet", "", "program sheet name (overrides config)")
	dryRun := flag.Bool("dry-run", false, "convert and report without contacting Hevy")
	serveAddr := flag.String("serve", "", "serve assembled payloads for inspection at this address instead of submitting")
	noState := flag.Bool("no-state", false, "don't skip routines recorded as already submitted")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("hevylift", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *file != "" {
		cfg.Program.File = *file
	}
	if *sheet != "" {
		cfg.Program.Sheet = *sheet
	}

	// Exercise catalog: built-ins, optionally extended from a YAML file.
	cat := catalog.Builtin()
	if cfg.Catalog.Path != "" {
		cat, err = catalog.LoadFile(cfg.Catalog.Path)
		if err != nil {
			log.Error("failed to load exercise catalog", "error", err, "path", cfg.Catalog.Path)
			os.Exit(1)
		}
	}
	if err := cat.Validate(); err != nil {
		log.Error("exercise catalog invalid", "error", err)
		os.Exit(1)
	}
	log.Info("exercise catalog ready", "entries", cat.Len())

	routines, err := minmax.Parse(cfg.Program.File, cfg.Program.Sheet)
	if err != nil {
		log.Error("failed to parse program sheet", "error", err)
		os.Exit(1)
	}
	if len(routines) == 0 {
		log.Error("no routines found", "file", cfg.Program.File, "sheet", cfg.Program.Sheet)
		os.Exit(1)
	}

	if *serveAddr != "" {
		payloads := make([]models.CreateRoutineRequest, len(routines))
		for i, r := range routines {
			payloads[i], _ = upload.Convert(r, cat, cfg.Program.Name, log)
		}
		srv := preview.New(payloads, log)
		log.Info("serving routine preview", "addr", *serveAddr, "routines", len(payloads))
		if err := http.ListenAndServe(*serveAddr, srv); err != nil {
			log.Error("preview server failed", "error", err)
			os.Exit(1)
		}
		return
	}

	var state *upload.StateDB
	if !*noState {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Error("failed to get home directory", "error", err)
			os.Exit(1)
		}
		s, err := upload.OpenStateDB(filepath.Join(homeDir, ".hevylift"))
		if err != nil {
			log.Error("failed to open state database", "error", err)
			os.Exit(1)
		}
		defer s.Close()
		state = s
	}

	var client *upload.Client
	if *dryRun {
		log.Info("DRY RUN mode - routines will be converted but not sent")
	} else {
		if cfg.Hevy.APIKey == "" {
			log.Error("hevy.api_key is required to submit (set HEVYLIFT_API_KEY or use -dry-run)")
			os.Exit(1)
		}
		client = upload.NewClient(cfg.Hevy.BaseURL, cfg.Hevy.APIKey)
	}

	uploader := upload.New(client, state, cat, cfg.Program.Name, *dryRun, log)
	stats, err := uploader.Run(routines)
	if err != nil {
		log.Error("upload failed", "error", err)
		printStats(stats)
		os.Exit(1)
	}

	printStats(stats)
	log.Info("upload complete")
}

func printStats(stats *upload.Stats) {
	fmt.Println()
	fmt.Println("=== Routine Summary ===")
	fmt.Printf("  Routines total:    %d\n", stats.RoutinesTotal)
	fmt.Printf("  Routines created:  %d\n", stats.RoutinesCreated)
	fmt.Printf("  Routines skipped:  %d (already submitted)\n", stats.RoutinesSkipped)
	fmt.Printf("  Exercises dropped: %d\n", stats.ExercisesDropped)

	if len(stats.UnmappedExercises) > 0 {
		fmt.Printf("\n  Unmapped exercises (no Hevy template ID):\n")
		for _, name := range stats.UnmappedExercises {
			fmt.Printf("    - %s\n", name)
		}
	}
	fmt.Println()
}
