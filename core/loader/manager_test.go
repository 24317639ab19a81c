package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(fiber.Router) error {
	s.loaded = true
	return s.err
}

func TestManager_LoadAll(t *testing.T) {
	history := &stubFeature{name: "history", enabled: true}
	archive := &stubFeature{name: "archive", enabled: false}

	m := NewManager(zap.NewNop())
	m.Register(history)
	m.Register(archive)

	loaded, err := m.LoadAll(fiber.New())
	require.NoError(t, err)
	assert.Equal(t, []string{"history"}, loaded)
	assert.True(t, history.loaded)
	assert.False(t, archive.loaded)
}

func TestManager_LoadAllStopsOnError(t *testing.T) {
	broken := &stubFeature{name: "broken", enabled: true, err: errors.New("boom")}
	after := &stubFeature{name: "after", enabled: true}

	m := NewManager(zap.NewNop())
	m.Register(broken)
	m.Register(after)

	loaded, err := m.LoadAll(fiber.New())
	assert.ErrorContains(t, err, "failed to load feature broken")
	assert.Empty(t, loaded)
	assert.False(t, after.loaded)
}
