package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialpath/dijkstra"
	"github.com/katalvlaran/socialpath/dotload"
	"github.com/katalvlaran/socialpath/internal/app"
	"github.com/katalvlaran/socialpath/internal/config"
	"github.com/katalvlaran/socialpath/report"
)

const campus = `graph campus {
    D -- G;
    D -- A;
    G -- L;
    I -- D;
    I -- L;
}
`

func newApp(t *testing.T, mutate func(*config.Config)) (*app.App, afero.Fs) {
	t.Helper()
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/campus.dot", []byte(campus), 0o644))

	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	a, err := app.New(cfg, mem, nil)
	require.NoError(t, err)

	return a, mem
}

func TestApp_LoadStatsClosest(t *testing.T) {
	a, _ := newApp(t, nil)
	assert.Equal(t, report.Stats{}, a.Stats())

	res, err := a.LoadFile(context.Background(), "/campus.dot")
	require.NoError(t, err)
	assert.Equal(t, 5, res.Edges)
	assert.Equal(t, report.Stats{Nodes: 5, Edges: 5, Average: 1}, a.Stats())

	c, err := a.Closest("L", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"L", "G", "D", "A"}, c.Path)
	assert.Equal(t, 2, c.Intermediaries)
}

func TestApp_WeightAndDirection(t *testing.T) {
	a, _ := newApp(t, func(c *config.Config) {
		c.Weight = 3
		c.Direction = "forward"
	})
	_, err := a.LoadFile(context.Background(), "/campus.dot")
	require.NoError(t, err)

	c, err := a.Closest("D", "L")
	require.NoError(t, err)
	assert.Equal(t, float64(6), c.Cost)

	_, err = a.Closest("L", "D")
	require.ErrorIs(t, err, dijkstra.ErrNoPathFound)
}

func TestApp_Duplicates(t *testing.T) {
	over, _ := newApp(t, nil)
	par, _ := newApp(t, func(c *config.Config) { c.Duplicates = "parallel" })
	for _, a := range []*app.App{over, par} {
		for i := 0; i < 2; i++ {
			_, err := a.LoadFile(context.Background(), "/campus.dot")
			require.NoError(t, err)
		}
	}
	assert.Equal(t, 5, over.Stats().Edges)
	assert.Equal(t, 10, par.Stats().Edges)
}

func TestApp_MissingFile(t *testing.T) {
	var logs bytes.Buffer
	a, err := app.New(config.Config{
		Weight:     1,
		Duplicates: "overwrite",
		Direction:  "bidirectional",
		LogLevel:   "warn",
		LogFormat:  "json",
	}, afero.NewMemMapFs(), &logs)
	require.NoError(t, err)

	_, err = a.LoadFile(context.Background(), "/missing.dot")
	require.ErrorIs(t, err, dotload.ErrSourceUnavailable)
	assert.Equal(t, report.Stats{}, a.Stats())

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(logs.String())), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "/missing.dot", entry["path"])
}

func TestApp_UnknownPerson(t *testing.T) {
	a, _ := newApp(t, nil)
	_, err := a.Closest("nobody", "D")
	require.ErrorIs(t, err, dijkstra.ErrUnknownLabel)
}

func TestApp_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Direction = "sideways"
	_, err := app.New(cfg, nil, nil)
	require.ErrorIs(t, err, config.ErrBadDirection)
}

func TestApp_Renderer(t *testing.T) {
	plain, _ := newApp(t, nil)
	assert.IsType(t, report.Plain{}, plain.Renderer(&bytes.Buffer{}))

	styled, _ := newApp(t, func(c *config.Config) { c.Styled = true })
	assert.IsType(t, &report.Styled{}, styled.Renderer(&bytes.Buffer{}))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := app.NewLogger("error", "text", &buf)
	l.Warn("hidden")
	l.Error("shown", "k", "v")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown k=v")

	buf.Reset()
	app.NewLogger("bogus", "json", &buf).Info("fallback")
	assert.Contains(t, buf.String(), `"msg":"fallback"`)
}
