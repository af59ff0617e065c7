package log_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/emberworks/loom/assert"
	"github.com/emberworks/loom/component"
	"github.com/emberworks/loom/log"
	"github.com/emberworks/loom/types"
)

type energy struct {
	Amount int64 `json:"amount"`
}

func (energy) Name() string { return "Energy" }

type fakeLoggable struct {
	components []types.ComponentMetadata
	systems    []string
}

func (f *fakeLoggable) GetRegisteredComponents() []types.ComponentMetadata { return f.components }
func (f *fakeLoggable) GetRegisteredSystems() []string                     { return f.systems }

func newLoggable(t *testing.T) *fakeLoggable {
	t.Helper()
	md, err := component.NewComponentMetadata[energy]()
	assert.NilError(t, err)
	assert.NilError(t, md.SetID(1))
	return &fakeLoggable{
		components: []types.ComponentMetadata{md},
		systems:    []string{"movementSystem", "decaySystem"},
	}
}

func TestWorldLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	log.World(&logger, newLoggable(t), zerolog.InfoLevel)

	out := buf.String()
	assert.Contains(t, out, `"total_components":1`)
	assert.Contains(t, out, `"component_name":"Energy"`)
	assert.Contains(t, out, `"component_id":1`)
	assert.Contains(t, out, `"total_systems":2`)
	assert.Contains(t, out, "movementSystem")
}

func TestEntityLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	target := newLoggable(t)

	e := types.Entity{ID: 4, Generation: 2}
	log.Entity(&logger, zerolog.DebugLevel, e, target.components)

	out := buf.String()
	assert.Contains(t, out, `"entity_id":4`)
	assert.Contains(t, out, `"entity_generation":2`)
	assert.Contains(t, out, `"component_name":"Energy"`)
}

func TestCreateSystemLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	sysLogger := log.CreateSystemLogger(&logger, "movementSystem")
	sysLogger.Info().Msg("tick")

	assert.Contains(t, buf.String(), `"system":"movementSystem"`)
}

func TestCreateTraceLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	traceLogger := log.CreateTraceLogger(&logger, "abc-123")
	traceLogger.Info().Msg("hop")

	line := buf.String()
	assert.Contains(t, line, `"trace_id":"abc-123"`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(line), "}"))
}
