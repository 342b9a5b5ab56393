package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarunark/weekplan/internal/domain"
	"github.com/tarunark/weekplan/internal/testutil"
)

// seedTask adds an active task to a mock store.
func seedTask(store *testutil.MockStore, id, title string, priority domain.Priority, parentID *string) {
	store.Agg.Add(&domain.Task{
		ID:       id,
		Title:    title,
		Priority: priority,
		State:    domain.StateActive,
		ParentID: parentID,
		Created:  testNow.AddDate(0, 0, -1),
	})
}

func TestNewCommand_CreatesTask(t *testing.T) {
	// Setup
	c, store := newTestContainer(t)

	// Execute
	stdout, _, err := execute(t, c, "new", "--title", "Quarterly report", "--priority", "High", "--tag", "work")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created task 240603_142500")
	created := store.Agg.Get("240603_142500")
	require.NotNil(t, created)
	assert.Equal(t, domain.PriorityHigh, created.Priority)
	assert.Equal(t, []string{"work"}, created.Tags)
}

func TestNewCommand_MissingTitle(t *testing.T) {
	c, _ := newTestContainer(t)

	_, _, err := execute(t, c, "new")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")
}

func TestNewCommand_FromFile(t *testing.T) {
	// Setup
	c, store := newTestContainer(t)
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	content := "- title: Plan sprint\n  priority: High\n- title: Write tickets\n  parent: \"1\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	// Execute
	stdout, _, err := execute(t, c, "new", "--from", path)

	// Assert
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created 2 task(s)")
	assert.Equal(t, 1, store.FlushCount, "one write per file")
}

func TestNewCommand_FromFile_DryRun(t *testing.T) {
	c, store := newTestContainer(t)
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- title: Plan sprint\n"), 0o644))

	stdout, _, err := execute(t, c, "new", "--from", path, "--dry-run")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Dry run")
	assert.Contains(t, stdout, "Plan sprint")
	assert.Equal(t, 0, store.FlushCount)
}

func TestListCommand_TreeIndentsChildren(t *testing.T) {
	// Setup
	c, store := newTestContainer(t)
	seedTask(store, "240601_090000", "Parent task", domain.PriorityHigh, nil)
	parent := "240601_090000"
	seedTask(store, "240601_100000", "Child task", domain.PriorityLow, &parent)

	// Execute
	stdout, _, err := execute(t, c, "list", "--tree")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, stdout, "ID")
	assert.Contains(t, stdout, "PRIORITY")
	assert.Contains(t, stdout, "Parent task")
	assert.Contains(t, stdout, "  Child task")
}

func TestShowCommand_NotFound(t *testing.T) {
	c, _ := newTestContainer(t)

	stdout, _, err := execute(t, c, "show", "999999_000000")

	require.NoError(t, err)
	assert.Contains(t, stdout, "not found")
}

func TestEditCommand_UpdatesTitle(t *testing.T) {
	c, store := newTestContainer(t)
	seedTask(store, "240601_090000", "Old title", domain.PriorityMedium, nil)

	stdout, _, err := execute(t, c, "edit", "240601_090000", "--title", "New title")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Updated task 240601_090000")
	assert.Equal(t, "New title", store.Agg.Get("240601_090000").Title)
}

func TestEditCommand_InvalidPriority(t *testing.T) {
	c, store := newTestContainer(t)
	seedTask(store, "240601_090000", "Task", domain.PriorityMedium, nil)

	_, _, err := execute(t, c, "edit", "240601_090000", "--priority", "urgent-ish")

	assert.ErrorIs(t, err, domain.ErrInvalidPriority)
	assert.Equal(t, domain.PriorityMedium, store.Agg.Get("240601_090000").Priority)
}

func TestEditCommand_NoFlags(t *testing.T) {
	c, store := newTestContainer(t)
	seedTask(store, "240601_090000", "Task", domain.PriorityMedium, nil)

	_, _, err := execute(t, c, "edit", "240601_090000")

	assert.ErrorIs(t, err, domain.ErrNoFieldsToUpdate)
}

func TestDoneCommand(t *testing.T) {
	c, store := newTestContainer(t)
	seedTask(store, "240601_090000", "Task", domain.PriorityMedium, nil)

	stdout, _, err := execute(t, c, "done", "240601_090000")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Completed task 240601_090000")
	assert.Equal(t, domain.StateCompleted, store.Agg.Get("240601_090000").State)
}

func TestDoneCommand_UnknownTaskIsNoOp(t *testing.T) {
	c, _ := newTestContainer(t)

	stdout, _, err := execute(t, c, "done", "999999_000000")

	require.NoError(t, err)
	assert.Contains(t, stdout, "not completed")
}

func TestDeleteCommand_ReparentsChildren(t *testing.T) {
	c, store := newTestContainer(t)
	seedTask(store, "240601_090000", "Parent", domain.PriorityMedium, nil)
	parent := "240601_090000"
	seedTask(store, "240601_100000", "Child", domain.PriorityMedium, &parent)

	_, _, err := execute(t, c, "delete", "240601_090000")

	require.NoError(t, err)
	assert.False(t, store.Agg.Has("240601_090000"))
	assert.Nil(t, store.Agg.Get("240601_100000").ParentID)
}

func TestMoveCommand_RejectsCycle(t *testing.T) {
	c, store := newTestContainer(t)
	seedTask(store, "240601_090000", "Parent", domain.PriorityMedium, nil)
	parent := "240601_090000"
	seedTask(store, "240601_100000", "Child", domain.PriorityMedium, &parent)

	_, _, err := execute(t, c, "move", "240601_090000", "--parent", "240601_100000")

	assert.ErrorIs(t, err, domain.ErrWouldCreateCycle)
}

func TestWarningGoesToStderr(t *testing.T) {
	c, store := newTestContainer(t)
	store.FlushErr = assert.AnError

	stdout, stderr, err := execute(t, c, "new", "--title", "Task")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Created task")
	assert.Contains(t, stderr, "Warning: ")
}
