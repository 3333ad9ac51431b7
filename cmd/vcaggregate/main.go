package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/cli/browser"
	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/vcaggregate/pkg/bookmarks"
	"github.com/umputun/vcaggregate/pkg/config"
	"github.com/umputun/vcaggregate/pkg/directory"
	"github.com/umputun/vcaggregate/pkg/repository"
	"github.com/umputun/vcaggregate/pkg/submission"
	"github.com/umputun/vcaggregate/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"path to YAML config file, built-in defaults if not set"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	DB     string `long:"db" env:"DB" description:"database DSN, overrides config"`
	Open   bool   `long:"open" description:"open the directory in a browser once the server is up"`

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
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	color.NoColor = color.NoColor || opts.NoColor
	setupLog(opts.Debug)

	log.Printf("[INFO] starting vcaggregate version %s", revision)

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

// run wires catalog, storage, bookmarks and submissions into the web server and blocks until ctx is done
func run(ctx context.Context, opts Opts) error {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.DB != "" {
		cfg.Database.DSN = opts.DB
	}

	catalog, err := directory.Load(cfg.Directory.Catalog)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	log.Printf("[INFO] loaded %d firms", catalog.Len())

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

	bm := bookmarks.NewManager(ctx, repos.Setting, cfg.Bookmarks.StorageKey)

	var clip submission.Clipboard = submission.SystemClipboard{}
	if cfg.Submission.NoClipboard {
		clip = nil
	}
	collector := submission.NewCollector(clip)

	srv, err := server.New(cfg, catalog, bm, collector, revision, opts.Debug)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	if opts.Open {
		g.Go(func() error {
			openBrowser(gctx, localURL(cfg.Server.Listen))
			return nil
		})
	}
	return g.Wait()
}

// openBrowser waits a moment for the listener and opens url, failures are only logged
func openBrowser(ctx context.Context, url string) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(500 * time.Millisecond):
	}
	if err := browser.OpenURL(url); err != nil {
		log.Printf("[WARN] can't open browser for %s: %v", url, err)
		return
	}
	log.Printf("[INFO] opened %s", url)
}

// localURL turns a listen address into a URL usable from this host
func localURL(listen string) string {
	host, port, err := net.SplitHostPort(listen)
	if err != nil {
		return "http://" + listen
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, port)
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
