package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerFormat(t *testing.T) {
	var out bytes.Buffer
	log := slog.New(NewHandler(&out, nil))

	log.Info("Dead time: 0.11 s", "module", "config")
	line := out.String()
	assert.Regexp(t, `^\[\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}\] \[config\] Dead time: 0.11 s\n$`, line)
}

func TestHandlerLevelTag(t *testing.T) {
	var out bytes.Buffer
	log := slog.New(NewHandler(&out, &slog.HandlerOptions{Level: slog.LevelWarn}))

	log.Info("hidden")
	log.Warn("Dead time < 0", "module", "filter")
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "[WARN] [filter] Dead time < 0")
}

func TestLogger(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := New(&out, &errOut)

	logger.Info("Number of events: 10", "main")
	logger.Warning("PI information is lost during dead time filtering", "events")
	logger.Error("error reading events")

	assert.Contains(t, out.String(), "[main] Number of events: 10")
	assert.Contains(t, out.String(), "[WARN] [events] PI information is lost")
	assert.Contains(t, errOut.String(), `"msg":"error reading events"`)
	assert.Contains(t, errOut.String(), `"level":"ERROR"`)
	assert.NotContains(t, out.String(), "error reading events")
}
