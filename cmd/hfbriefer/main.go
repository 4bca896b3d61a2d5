package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/hfbriefer/pkg/config"
	"github.com/umputun/hfbriefer/pkg/docs"
	"github.com/umputun/hfbriefer/pkg/domain"
	"github.com/umputun/hfbriefer/pkg/hub"
	"github.com/umputun/hfbriefer/pkg/llm"
	"github.com/umputun/hfbriefer/pkg/pipeline"
	"github.com/umputun/hfbriefer/pkg/repository"
	"github.com/umputun/hfbriefer/pkg/scheduler"
	"github.com/umputun/hfbriefer/pkg/selector"
	"github.com/umputun/hfbriefer/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"hfbriefer.yml" description:"configuration file"`
	Once   bool   `long:"once" env:"ONCE" description:"generate a single report and exit"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug, opts.NoColor)
	log.Printf("[INFO] starting hfbriefer version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()
	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	log.Print("[INFO] shutdown complete")
}

// run wires all components and either generates one report or runs server with scheduler until ctx is done
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if secrets := cfg.Secrets(); len(secrets) > 0 {
		setupLog(opts.Debug, opts.NoColor, secrets...)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	hubClient := hub.NewClient(cfg.Hub)
	p := pipeline.New(pipeline.Params{
		Store:     repos.Report,
		Selector:  selector.New(hubClient),
		Docs:      docs.NewFetcher(hubClient),
		Generator: llm.NewGenerator(cfg.GetLLMConfig()),
	})
	sched := scheduler.NewScheduler(scheduler.Params{
		Runner:     p,
		Interval:   cfg.Schedule.Interval,
		RunOnStart: cfg.Schedule.RunOnStart,
	})

	if opts.Once {
		report, err := sched.RunNow(ctx)
		if err != nil {
			return fmt.Errorf("failed to generate report: %w", err)
		}
		printReport(os.Stdout, report)
		return nil
	}

	srv := server.New(cfg, repos.Report, sched, revision, opts.Debug)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sched.Start(gctx)
		<-gctx.Done()
		sched.Stop()
		return nil
	})
	g.Go(func() error {
		return srv.Run(gctx)
	})
	return g.Wait()
}

// printReport shows the generated report in the terminal
func printReport(w io.Writer, r *domain.Report) {
	summary := r.Summary
	if utf8.RuneCountInString(summary) > 200 {
		summary = string([]rune(summary)[:200]) + "..."
	}
	_, _ = fmt.Fprintf(w, "=== Final Report ===\nTitle: %s\nItem: %s (%s)\nSummary: %s\nIdeas:\n", r.Title, r.ItemName, r.ItemType, summary)
	for i, idea := range r.Ideas {
		_, _ = fmt.Fprintf(w, "  %d. %s\n", i+1, idea)
	}
	_, _ = fmt.Fprintf(w, "\nReport saved: %s (ID: %d)\n", r.Title, r.ID)
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
