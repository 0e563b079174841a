package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/audittax/audittax/internal/client"
	"github.com/audittax/audittax/internal/common"
	"github.com/audittax/audittax/internal/entity"
	"github.com/audittax/audittax/internal/history"
	"github.com/audittax/audittax/internal/ingest"
	"github.com/audittax/audittax/internal/track"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func usage() {
	printError(`usage: audittax <command> [flags]

commands:
  submit <file.xml>   upload a document, run the audit and follow it live
  history             list past audits
  show <audit_id>     print the result of a past audit
  report <audit_id>   download the XLSX report
  watch <dir>         submit every XML dropped into a directory
`)
	os.Exit(2)
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		usage()
	}

	cfg := common.LoadConfig()
	backend, err := client.New(cfg.Client.ServerAddr, logger)
	if err != nil {
		printError("Error: connecting to %s: %v\n", cfg.Client.ServerAddr, err)
		os.Exit(1)
	}
	defer backend.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch os.Args[1] {
	case "submit":
		runSubmit(ctx, cfg, backend, logger, os.Args[2:])
	case "history":
		runHistory(ctx, backend, logger, os.Args[2:])
	case "show":
		runShow(ctx, backend, logger, os.Args[2:])
	case "report":
		runReport(ctx, backend, os.Args[2:])
	case "watch":
		runWatch(ctx, cfg, backend, logger, os.Args[2:])
	default:
		usage()
	}
}

func runSubmit(ctx context.Context, cfg *common.Config, backend *client.Backend, logger *slog.Logger, args []string) {
	if len(args) != 1 {
		printError("Error: submit needs exactly one file\n")
		os.Exit(1)
	}
	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		printError("Error: reading %s: %v\n", path, err)
		os.Exit(1)
	}

	controller := track.NewController(backend, cfg.Client, logger)
	defer controller.Close()

	done := make(chan track.Snapshot, 1)
	var once sync.Once
	controller.SetNotify(func(s track.Snapshot) {
		switch s.Phase {
		case track.PhaseProcessing:
			if s.Job != nil {
				fmt.Printf("\r[%3d%%] %s", s.Job.Progress, s.Job.Step)
			}
		case track.PhaseCompleted:
			if s.View != nil {
				once.Do(func() { done <- s })
			}
		case track.PhaseError:
			once.Do(func() { done <- s })
		}
	})

	if err := controller.Submit(ctx, entity.Document{
		Filename: filepath.Base(path),
		Content:  content,
	}); err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	select {
	case <-ctx.Done():
		fmt.Println("\ninterrupted")
		os.Exit(1)
	case s := <-done:
		fmt.Println()
		if s.Phase == track.PhaseError {
			msg := s.LocalError
			if s.Job != nil && s.Job.ErrorMessage != "" {
				msg = s.Job.ErrorMessage
			}
			printError("audit failed: %s\n", msg)
			os.Exit(1)
		}
		printView(*s.View)
	}
}

func printView(v entity.View) {
	fmt.Printf("audit %s: %s\n", v.JobID, v.Status)
	if v.Summary == nil {
		fmt.Println("detailed results unavailable")
		return
	}
	fmt.Printf("items: %d total, %d compliant, %d divergent\n",
		v.Summary.Total, v.Summary.Compliant, v.Summary.Divergent)
	for _, it := range v.Items {
		marker := " "
		if len(it.Issues) > 0 {
			marker = "!"
		}
		fmt.Printf("%s %3d  %-14s %-30s %s\n", marker, it.Index, it.ProductCode, it.ProductName, it.Status)
		for _, issue := range it.Issues {
			fmt.Printf("        - %s\n", issue)
		}
	}
	for _, ce := range v.ConsistencyErrors {
		fmt.Printf("document inconsistency: %s (%s)\n", ce.Message, ce.Field)
	}
}

func runHistory(ctx context.Context, backend *client.Backend, logger *slog.Logger, args []string) {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	offset := fs.Int("offset", 0, "page offset")
	limit := fs.Int("limit", 20, "page size")
	_ = fs.Parse(args)

	store := history.NewStore(backend, logger)
	page, err := store.List(ctx, *offset, *limit)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	for _, js := range page {
		line := fmt.Sprintf("%s  %s  %-10s", js.JobID, js.CreatedAt.Format(time.RFC3339), js.Status)
		if js.Summary != nil {
			line += fmt.Sprintf("  %d/%d divergent", js.Summary.Divergent, js.Summary.Total)
		}
		fmt.Println(line)
	}
}

func runShow(ctx context.Context, backend *client.Backend, logger *slog.Logger, args []string) {
	if len(args) != 1 {
		printError("Error: show needs exactly one audit id\n")
		os.Exit(1)
	}
	store := history.NewStore(backend, logger)
	v, err := store.Load(ctx, args[0])
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	printView(v)
}

func runReport(ctx context.Context, backend *client.Backend, args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	out := fs.String("out", "", "output path (defaults to the report filename)")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		printError("Error: report needs exactly one audit id\n")
		os.Exit(1)
	}

	filename, content, err := backend.DownloadReport(ctx, fs.Arg(0))
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	path := *out
	if path == "" {
		path = filename
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		printError("Error: writing %s: %v\n", path, err)
		os.Exit(1)
	}
	fmt.Printf("report written to %s\n", path)
}

func runWatch(ctx context.Context, cfg *common.Config, backend *client.Backend, logger *slog.Logger, args []string) {
	if len(args) != 1 {
		printError("Error: watch needs exactly one directory\n")
		os.Exit(1)
	}

	paths, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       []string{args[0]},
		InitialScan: true,
		Debounce:    cfg.Ingest.Debounce,
	})
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	go func() {
		for werr := range errs {
			logger.Error("watch.error", "error", werr)
		}
	}()

	fmt.Printf("watching %s, press Ctrl-C to stop\n", args[0])
	ingest.NewSubmitter(backend, logger).Run(ctx, paths)
}
