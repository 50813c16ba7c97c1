// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/starford/findvisor/internal/api"
	"github.com/starford/findvisor/internal/book"
	"github.com/starford/findvisor/internal/history"
	"github.com/starford/findvisor/internal/logic"
	"github.com/starford/findvisor/internal/mcpserver"
	"github.com/starford/findvisor/internal/parser"
	"github.com/starford/findvisor/internal/sse"
	"github.com/starford/findvisor/internal/storage"
)

// ErrCommandFailed is returned by Exec when the command was rejected.
var ErrCommandFailed = errors.New("command failed")

const (
	welcomeMessage = "Welcome to FindVisor! Type help to see all commands."
	prompt         = "> "
)

// runtime holds the components shared by every entry point.
type runtime struct {
	cfg    *Config
	logger *slog.Logger
	db     *history.DB
	broker *sse.Broker
	engine *logic.Engine
}

func (rt *runtime) close() {
	rt.broker.Close()
	if err := rt.db.Close(); err != nil {
		rt.logger.Warn("history: close failed", slog.String("error", err.Error()))
	}
}

func newApplication(opts []Option) (*application, error) {
	app := &application{
		in:    os.Stdin,
		out:   os.Stdout,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return nil, fmt.Errorf("config is required")
	}
	return app, nil
}

// start wires storage, history, broker and engine from the configuration.
func (app *application) start() (*runtime, error) {
	cfg := app.config

	// Logs go to stderr; stdout carries command feedback or the MCP stream.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("book", filepath.Join(cfg.Book.Dir, cfg.Book.File)),
		slog.String("sqlite_path", cfg.SQLite.Path),
		slog.Bool("http_enabled", cfg.App.HTTP.Enabled),
		slog.String("delete_tag_policy", string(cfg.Commands.DeleteTagPolicy)),
		slog.String("log_level", cfg.App.LogLevel.String()))

	store, err := storage.NewFS(cfg.Book.Dir)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.SQLite.Path), 0o755); err != nil {
		return nil, fmt.Errorf("create sqlite dir: %w", err)
	}
	db, err := history.Open(cfg.SQLite.Path)
	if err != nil {
		return nil, fmt.Errorf("init history: %w", err)
	}
	if n, err := db.Count(); err == nil {
		logger.Info("History opened", slog.Int("commands", n))
	}

	broker := sse.NewBroker(time.Second)

	p := parser.New(
		parser.WithDeleteTagPolicy(cfg.Commands.DeleteTagPolicy),
		parser.WithHistoryLimit(cfg.Commands.HistoryLimit),
	)
	eng, err := logic.New(store, cfg.Book.File,
		logic.WithParser(p),
		logic.WithHistory(db),
		logic.WithPublisher(broker),
		logic.WithClock(app.clock),
		logic.WithLogger(logger),
	)
	if err != nil {
		broker.Close()
		db.Close()
		return nil, fmt.Errorf("init engine: %w", err)
	}
	logger.Info("Session started", slog.String("session", eng.Session()))

	return &runtime{cfg: cfg, logger: logger, db: db, broker: broker, engine: eng}, nil
}

// Run starts the interactive session, the book watcher and, when enabled,
// the HTTP API. It returns when the user exits, input ends or a shutdown
// signal arrives.
func Run(ctx context.Context, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	rt, err := app.start()
	if err != nil {
		return err
	}
	defer rt.close()
	cfg, logger := rt.cfg, rt.logger

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gCtx := errgroup.WithContext(ctx)

	// Reload the book when it is edited outside this process.
	g.Go(func() error {
		return book.Watch(gCtx, cfg.Book.Dir, cfg.Book.File, logger, func() {
			if _, err := rt.engine.Reload(); err != nil {
				logger.Warn("book: reload failed", slog.String("error", err.Error()))
			}
		})
	})

	if cfg.App.HTTP.Enabled {
		httpServer := &http.Server{
			Addr:    cfg.App.HTTP.Address(),
			Handler: newHTTPHandler(rt),
		}
		g.Go(func() error {
			logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("HTTP server error: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gCtx.Done()
			logger.Info("Shutting down HTTP server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
			}
			return nil
		})
	}

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
			cancel()
		case <-gCtx.Done():
		}
		return nil
	})

	g.Go(func() error {
		defer cancel()
		return repl(gCtx, rt.engine, app.in, app.out)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Session ended")
	return nil
}

// repl feeds lines from in to eng until exit, end of input or ctx is done.
func repl(ctx context.Context, eng *logic.Engine, in io.Reader, out io.Writer) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	fmt.Fprintln(out, welcomeMessage)
	for {
		fmt.Fprint(out, prompt)
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			resp := eng.Execute(line)
			fmt.Fprintln(out, resp.Feedback)
			if resp.Exit {
				return nil
			}
		}
	}
}

// Exec runs a single command line and writes its feedback.
// ErrCommandFailed is returned when the command is rejected.
func Exec(ctx context.Context, line string, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	rt, err := app.start()
	if err != nil {
		return err
	}
	defer rt.close()

	resp := rt.engine.Execute(line)
	fmt.Fprintln(app.out, resp.Feedback)
	if !resp.OK {
		return ErrCommandFailed
	}
	return nil
}

// ServeMCP exposes the engine as an MCP server over stdio.
func ServeMCP(ctx context.Context, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	rt, err := app.start()
	if err != nil {
		return err
	}
	defer rt.close()

	rt.logger.Info("MCP server starting on stdio")
	return mcpserver.New(rt.engine, rt.db).ServeStdio()
}

func newHTTPHandler(rt *runtime) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  log.New(os.Stderr, "", log.LstdFlags),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)

	// Health check endpoints (unauthenticated).
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Mount("/api", api.NewRouter(rt.engine, rt.db, rt.cfg.Auth.AuthEnabled(), rt.cfg.Auth.Token, rt.broker))
	return r
}
