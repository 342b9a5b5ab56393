package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarunark/weekplan/internal/domain"
)

func TestNotesCommit_FromFlag(t *testing.T) {
	c, store := newTestContainer(t)
	seedTask(store, "240601_090000", "Task", domain.PriorityMedium, nil)

	stdout, _, err := execute(t, c, "notes", "commit", "240601_090000", "--text", "Agenda: budget review")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Committed notes for task 240601_090000")
	assert.Equal(t, "Agenda: budget review", store.Agg.Get("240601_090000").Notes)
}

func TestNotesCommit_UnknownTask(t *testing.T) {
	c, _ := newTestContainer(t)

	stdout, _, err := execute(t, c, "notes", "commit", "999999_000000", "--text", "x")

	require.NoError(t, err)
	assert.Contains(t, stdout, "not found")
}

func TestNotesShow_RoundTrip(t *testing.T) {
	c, store := newTestContainer(t)
	seedTask(store, "240601_090000", "Task", domain.PriorityMedium, nil)

	_, _, err := execute(t, c, "notes", "commit", "240601_090000", "--text", "line one")
	require.NoError(t, err)
	stdout, _, err := execute(t, c, "notes", "show", "240601_090000")
	require.NoError(t, err)

	assert.Contains(t, stdout, "line one")
}

func TestNotesShow_Empty(t *testing.T) {
	c, store := newTestContainer(t)
	seedTask(store, "240601_090000", "Task", domain.PriorityMedium, nil)

	stdout, _, err := execute(t, c, "notes", "show", "240601_090000")

	require.NoError(t, err)
	assert.Contains(t, stdout, "has no notes")
}

func TestNotesHistory_UnsupportedBackend(t *testing.T) {
	c, _ := newTestContainer(t)

	stdout, _, err := execute(t, c, "notes", "history", "240601_090000")

	require.NoError(t, err)
	assert.Contains(t, stdout, "keeps no history")
}

func TestResolveNotesText_Precedence(t *testing.T) {
	text, err := resolveNotesText(strings.NewReader("from stdin\n"), "from flag", "")
	require.NoError(t, err)
	assert.Equal(t, "from flag", text)

	text, err = resolveNotesText(strings.NewReader("from stdin\n"), "", "")
	require.NoError(t, err)
	assert.Equal(t, "from stdin", text, "trailing newline trimmed")
}
