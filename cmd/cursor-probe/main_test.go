package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/winparam/engine"
	"github.com/lixenwraith/winparam/input"
	"github.com/lixenwraith/winparam/system"
)

const twoWindowScene = "../../scene/testdata/two_windows.toml"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEvaluate(t *testing.T) {
	world := engine.NewWorld()
	system.RegisterDefaults(world)

	rep, err := evaluate(world, twoWindowScene, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, "cursor_position: 10,20 (Window: 2)", rep.Raw)
	assert.Equal(t, "cursor_position: 10,280 (Window: 2)", rep.UI)
	// The palette camera renders into the hovered window
	assert.NotEqual(t, "none", rep.World)

	// Re-evaluating replaces the previous scene instead of stacking it
	_, err = evaluate(world, twoWindowScene, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, 2, world.Components.Window.Count())
}

func TestReportWriteTo(t *testing.T) {
	var buf bytes.Buffer
	rep := report{Raw: "a", UI: "b", World: "none"}
	_, err := rep.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "raw:   a\nui:    b\nworld: none\n", buf.String())
}

func TestTouchSummary(t *testing.T) {
	touches := input.NewTouches()
	assert.Equal(t, "touch 0: none (0 pressed)", touchSummary(touches, 0))

	touches.Press(0, math32.Vec2(4, 8))
	assert.Equal(t, "touch 0: started at 4,8 delta 0,0 drag 0,0 (1 pressed)", touchSummary(touches, 0))

	touches.ClearJustChanged()
	touches.Move(0, math32.Vec2(20, 8))
	touches.Move(0, math32.Vec2(24, 12))
	assert.Equal(t, "touch 0: moved at 24,12 delta 4,4 drag 20,4 (1 pressed)", touchSummary(touches, 0))

	touches.Release(0, math32.Vec2(24, 12))
	assert.Equal(t, "touch 0: ended", touchSummary(touches, 0))

	touches.ClearJustChanged()
	touches.Press(0, math32.Vec2(1, 1))
	touches.Cancel(0)
	assert.Equal(t, "touch 0: canceled", touchSummary(touches, 0))
}

func TestSetupLogging_Off(t *testing.T) {
	logger, closer, err := setupLogging("off", true)
	require.NoError(t, err)
	assert.Nil(t, closer)
	assert.NotNil(t, logger)
}

func TestSetupLogging_File(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	logger, closer, err := setupLogging("debug", true)
	require.NoError(t, err)
	logger.Debug("test message")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, logDir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "test message")
}

func TestSetupLogging_BadLevel(t *testing.T) {
	_, _, err := setupLogging("loud", false)
	assert.Error(t, err)
}

func TestWatchScene(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("windows:\n  - name: a\n    primary: true\n"), 0o644))

	world := engine.NewWorld()
	system.RegisterDefaults(world)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &syncBuffer{}
	done := make(chan error, 1)
	go func() { done <- watchScene(ctx, world, path, out, discardLogger()) }()

	// Give the watcher time to register before writing
	time.Sleep(100 * time.Millisecond)
	updated := "windows:\n  - name: a\n    primary: true\n    cursor: [3, 4]\n"
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "cursor position: 3,4 (Primary Window)")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}
