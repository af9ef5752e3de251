package controller

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func update(t *testing.T, model lintModel, msg tea.Msg) (lintModel, tea.Cmd) {
	t.Helper()

	next, cmd := model.Update(msg)

	lm, ok := next.(lintModel)
	require.True(t, ok)

	return lm, cmd
}

func TestLintModel_Progress(t *testing.T) {
	model := newLintModel()

	model, _ = update(t, model, startMsg{mode: ModeFix, files: 2})
	model, _ = update(t, model, concurrencyMsg{parallel: 3, files: 2})
	model, _ = update(t, model, fileStartedMsg{path: "a.yaml"})

	assert.Equal(t, ModeFix, model.mode)
	assert.Equal(t, 3, model.parallel)
	assert.Equal(t, 2, model.total)
	assert.Contains(t, model.active, "a.yaml")
	assert.Contains(t, model.View(), "solint --fix")
	assert.Contains(t, model.View(), "a.yaml")

	model, _ = update(t, model, fileDoneMsg{path: "a.yaml", errors: 1, warnings: 2, fixed: 1, written: true})

	assert.NotContains(t, model.active, "a.yaml")
	assert.Equal(t, 1, model.done)
	assert.Equal(t, 1, model.errors)
	assert.Equal(t, 2, model.warnings)
	assert.Equal(t, 1, model.fixed)
	assert.InDelta(t, 0.5, model.percent(), 0.0001)
	assert.Contains(t, model.View(), "(written)")
}

func TestLintModel_RecentIsBounded(t *testing.T) {
	model := newLintModel()
	model.total = 10

	for i := 0; i < maxRecent+3; i++ {
		model, _ = update(t, model, fileDoneMsg{path: strings.Repeat("x", i+1)})
	}

	assert.Len(t, model.recent, maxRecent)
	assert.Equal(t, strings.Repeat("x", maxRecent+3), model.recent[maxRecent-1].path)
}

func TestLintModel_FinishQuits(t *testing.T) {
	model := newLintModel()

	model, cmd := update(t, model, finishedMsg{})

	require.NotNil(t, cmd)
	assert.True(t, model.finished)
	assert.Empty(t, model.View())
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = update(t, model, tickMsg(time.Now()))
	assert.Nil(t, cmd)
}

func TestLintModel_KeysQuit(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
	} {
		model, cmd := update(t, newLintModel(), key)

		require.NotNil(t, cmd, key.String())
		assert.True(t, model.quitting)
	}
}

func TestLintModel_TickReschedules(t *testing.T) {
	_, cmd := update(t, newLintModel(), tickMsg(time.Now()))
	assert.NotNil(t, cmd)
}

func TestLintModel_WindowSize(t *testing.T) {
	model, _ := update(t, newLintModel(), tea.WindowSizeMsg{Width: 30, Height: 10})
	model, _ = update(t, model, fileStartedMsg{path: strings.Repeat("long/", 20) + "file.yaml"})

	assert.Equal(t, 30, model.width)
	assert.Contains(t, model.View(), "…")
}

func TestLintModel_Waiting(t *testing.T) {
	assert.Contains(t, newLintModel().View(), "waiting…")
	assert.Equal(t, float64(0), newLintModel().percent())
}

func TestTruncateToWidth(t *testing.T) {
	assert.Equal(t, "", truncateToWidth("hello", 0))
	assert.Equal(t, "…", truncateToWidth("hello", 1))
	assert.Equal(t, "hello", truncateToWidth("hello", 10))
	assert.Equal(t, "he…", truncateToWidth("hello", 3))
}
