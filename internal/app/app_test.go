package app

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/specialistvlad/patrolgrid/internal/grid"
	"github.com/specialistvlad/patrolgrid/internal/puzzle"
	"github.com/specialistvlad/patrolgrid/internal/simulator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Validation(t *testing.T) {
	t.Parallel()

	valid := Config{InputPath: "in.txt", LogFormat: "text", LogLevel: "info"}
	cfg, err := NewConfig(valid)
	require.NoError(t, err)
	assert.Equal(t, valid, *cfg)

	tests := []struct {
		name     string
		mutate   func(c *Config)
		contains string
	}{
		{"missing input", func(c *Config) { c.InputPath = "" }, "InputPath is a required"},
		{"bad part", func(c *Config) { c.Part = 3 }, "invalid part 3"},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }, "invalid log format"},
		{"bad level", func(c *Config) { c.LogLevel = "trace" }, "invalid log level"},
		{"bad port", func(c *Config) { c.HealthcheckPort = 70000 }, "invalid healthcheck port"},
	}
	for _, tc := range tests {
		c := valid
		tc.mutate(&c)
		_, err := NewConfig(c)
		require.Error(t, err, tc.name)
		assert.Contains(t, err.Error(), tc.contains, tc.name)
	}
}

func TestRun_ExampleMap(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	testApp, out, logs := setupAppTest(t, Config{InputPath: writeInput(t, exampleMap), WorkerCount: 4})

	// --- Act ---
	err := testApp.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "Part 1: 41\nPart 2: 6\n", out.String())
	assert.Contains(t, logs.String(), "Parsed input.")
	assert.Contains(t, logs.String(), "run_id="+testApp.RunID())
	assert.Equal(t, "91/91", testApp.Progress().String())
}

func TestRun_PartSelection(t *testing.T) {
	t.Parallel()

	path := writeInput(t, exampleMap)

	one, out1, _ := setupAppTest(t, Config{InputPath: path, Part: 1})
	require.NoError(t, one.Run(context.Background()))
	assert.Equal(t, "Part 1: 41\n", out1.String())

	two, out2, _ := setupAppTest(t, Config{InputPath: path, Part: 2})
	require.NoError(t, two.Run(context.Background()))
	assert.Equal(t, "Part 2: 6\n", out2.String())
}

func TestRun_SingleCell(t *testing.T) {
	t.Parallel()

	testApp, out, _ := setupAppTest(t, Config{InputPath: writeInput(t, "^\n")})
	require.NoError(t, testApp.Run(context.Background()))
	assert.Equal(t, "Part 1: 1\nPart 2: 0\n", out.String())
}

func TestRun_MalformedInputProducesNoAnswers(t *testing.T) {
	t.Parallel()

	testApp, out, _ := setupAppTest(t, Config{InputPath: writeInput(t, "..\n.*^\n")})

	err := testApp.Run(context.Background())
	require.ErrorIs(t, err, puzzle.ErrMalformedInput)
	assert.Empty(t, out.String())
}

func TestRun_MissingInput(t *testing.T) {
	t.Parallel()

	testApp, out, _ := setupAppTest(t, Config{InputPath: "/definitely/not/here.txt"})

	err := testApp.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read input file")
	assert.Empty(t, out.String())
}

func TestSolve_LoopingMapFailsPart1(t *testing.T) {
	t.Parallel()

	p, err := puzzle.Parse(".#.\n#^#\n.#.")
	require.NoError(t, err)
	testApp, _, _ := setupAppTest(t, Config{InputPath: "unused"})

	_, err = testApp.Solve(context.Background(), p)
	require.ErrorIs(t, err, simulator.ErrNonTerminatingWalk)
}

func TestSolve_ViewReceivesRoute(t *testing.T) {
	t.Parallel()

	p, err := puzzle.Parse(exampleMap)
	require.NoError(t, err)
	testApp, _, _ := setupAppTest(t, Config{InputPath: "unused", Part: 2, View: true})

	var shown int
	testApp.SetViewer(func(_ context.Context, got *puzzle.Puzzle, route *grid.Grid) error {
		assert.Same(t, p, got)
		shown = route.Count()
		return nil
	})

	answers, err := testApp.Solve(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, 41, shown, "view gets the part-1 route even when only part 2 is requested")
	assert.False(t, answers.Solved1)
	assert.True(t, answers.Solved2)
	assert.Equal(t, 6, answers.Part2)
}

func TestSolve_CancelledContext(t *testing.T) {
	t.Parallel()

	p, err := puzzle.Parse(exampleMap)
	require.NoError(t, err)
	testApp, _, _ := setupAppTest(t, Config{InputPath: "unused", Part: 2})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = testApp.Solve(ctx, p)
	require.ErrorIs(t, err, context.Canceled)
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	testApp, _, logs := setupAppTest(t, Config{InputPath: "unused"})
	server := httptest.NewServer(testApp.healthMux())
	defer server.Close()

	get := func(path string) (int, string) {
		resp, err := http.Get(server.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, string(body)
	}

	// --- Act & Assert ---
	code, body := get("/health")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "OK\n", body)

	code, body = get("/progress")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "0/0\n", body)

	assert.Contains(t, logs.String(), "Health check endpoint hit.")
}

func TestNewLogger_Formats(t *testing.T) {
	t.Parallel()

	buf := &SafeBuffer{}
	newLogger("warn", "json", buf).Info("hidden")
	newLogger("warn", "json", buf).Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"k":1`)

	text := &SafeBuffer{}
	newLogger("bogus", "text", text).Info("fallback level")
	assert.Contains(t, text.String(), "level=INFO")
}
