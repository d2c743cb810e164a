package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"

	"github.com/katalvlaran/socialpath/core"
	"github.com/katalvlaran/socialpath/dijkstra"
	"github.com/katalvlaran/socialpath/dotload"
	"github.com/katalvlaran/socialpath/internal/config"
	"github.com/katalvlaran/socialpath/internal/ctxlog"
	"github.com/katalvlaran/socialpath/report"
)

// App owns one social graph and answers queries against it.
// It is safe for concurrent use; the graph does its own locking.
type App struct {
	cfg    config.Config
	fs     afero.Fs
	logger *slog.Logger
	graph  *core.Graph[string, int]
	engine *dijkstra.Engine[string, int]
}

// New builds an App with an empty graph. fs backs LoadFile (nil means the
// OS filesystem); logs go to logOut. cfg is validated first.
func New(cfg config.Config, fs afero.Fs, logOut io.Writer) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	policy, _ := cfg.DuplicatePolicy()
	dir, _ := cfg.TraversalDirection()
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if logOut == nil {
		logOut = io.Discard
	}

	g := core.NewGraph[string, int](core.WithDuplicatePolicy(policy))
	e, err := dijkstra.New[string, int](g, dijkstra.WithDirection(dir))
	if err != nil {
		return nil, fmt.Errorf("app: engine: %w", err)
	}

	a := &App{
		cfg:    cfg,
		fs:     fs,
		logger: NewLogger(cfg.LogLevel, cfg.LogFormat, logOut),
		graph:  g,
		engine: e,
	}
	a.logger.Debug("App configured.", "duplicates", policy, "direction", dir)

	return a, nil
}

// Config returns the configuration the App was built with.
func (a *App) Config() config.Config { return a.cfg }

// Logger returns the App's logger.
func (a *App) Logger() *slog.Logger { return a.logger }

// Context returns ctx carrying the App's logger.
func (a *App) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

// LoadFile reads path into the current graph, on top of anything already
// loaded. A file that cannot be opened yields dotload.ErrSourceUnavailable
// and leaves the graph untouched.
func (a *App) LoadFile(ctx context.Context, path string) (dotload.Result, error) {
	return dotload.Load[int](a.Context(ctx), a.fs, path, a.graph, dotload.WithWeight(float64(a.cfg.Weight)))
}

// Stats summarizes the current graph.
func (a *App) Stats() report.Stats {
	return report.Collect(a.graph)
}

// Closest finds the cheapest connection between two people.
func (a *App) Closest(from, to string) (report.Connection, error) {
	c, err := report.Closest(a.engine, from, to)
	if err != nil {
		a.logger.Debug("No connection.", "from", from, "to", to, "error", err)
		return report.Connection{}, err
	}

	return c, nil
}

// Renderer returns the Styled renderer when the configuration asks for it,
// bound to out, and Plain otherwise.
func (a *App) Renderer(out io.Writer) report.Renderer {
	if a.cfg.Styled {
		return report.NewStyled(lipgloss.NewRenderer(out))
	}

	return report.Plain{}
}
