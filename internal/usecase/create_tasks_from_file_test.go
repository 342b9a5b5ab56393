package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarunark/weekplan/internal/domain"
	"github.com/tarunark/weekplan/internal/testutil"
)

const tasksYAML = `
- title: Plan sprint
  priority: High
  tags: [work, planning]
- title: Write tickets
  parent: "1"
  description: Break the plan into tickets
- title: Groceries
  priority: Low
`

func TestCreateTasksFromFile_Execute_Success(t *testing.T) {
	store := testutil.NewMockStore()
	uc := NewCreateTasksFromFile(store, &testutil.MockClock{NowTime: fixedNow}, testutil.NopLogger{})

	out, err := uc.Execute(context.Background(), CreateTasksFromFileInput{Content: []byte(tasksYAML)})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 3)
	assert.NoError(t, out.Warning)

	first := store.Agg.Get(out.Tasks[0].ID)
	require.NotNil(t, first)
	assert.Equal(t, "Plan sprint", first.Title)
	assert.Equal(t, domain.PriorityHigh, first.Priority)
	assert.Equal(t, []string{"work", "planning"}, first.Tags)

	second := store.Agg.Get(out.Tasks[1].ID)
	require.NotNil(t, second)
	require.NotNil(t, second.ParentID, "parent: \"1\" resolves to the first entry")
	assert.Equal(t, first.ID, *second.ParentID)
	assert.Equal(t, domain.PriorityMedium, second.Priority, "missing priority defaults to Medium")

	// One file, one store write.
	assert.Equal(t, 1, store.FlushCount)
}

func TestCreateTasksFromFile_Execute_ExistingTaskAsParent(t *testing.T) {
	store := testutil.NewMockStore()
	store.Agg.Add(&domain.Task{ID: "240501_080000", Title: "Existing", State: domain.StateActive})
	uc := NewCreateTasksFromFile(store, &testutil.MockClock{NowTime: fixedNow}, testutil.NopLogger{})

	out, err := uc.Execute(context.Background(), CreateTasksFromFileInput{Content: []byte(`
- title: New child
  parent: "240501_080000"
`)})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)
	require.NotNil(t, out.Tasks[0].ParentID)
	assert.Equal(t, "240501_080000", *out.Tasks[0].ParentID)
}

func TestCreateTasksFromFile_Execute_UnknownParentRef(t *testing.T) {
	store := testutil.NewMockStore()
	uc := NewCreateTasksFromFile(store, &testutil.MockClock{NowTime: fixedNow}, testutil.NopLogger{})

	_, err := uc.Execute(context.Background(), CreateTasksFromFileInput{Content: []byte(`
- title: Orphan
  parent: "5"
`)})

	assert.ErrorIs(t, err, domain.ErrParentNotFound)
}

func TestCreateTasksFromFile_Execute_EmptyTitleRejected(t *testing.T) {
	store := testutil.NewMockStore()
	uc := NewCreateTasksFromFile(store, &testutil.MockClock{NowTime: fixedNow}, testutil.NopLogger{})

	_, err := uc.Execute(context.Background(), CreateTasksFromFileInput{Content: []byte(`
- title: Fine
- title: ""
`)})

	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
	assert.Empty(t, store.Agg.Tasks, "nothing is created when validation fails")
}

func TestCreateTasksFromFile_Execute_DryRun(t *testing.T) {
	store := testutil.NewMockStore()
	uc := NewCreateTasksFromFile(store, &testutil.MockClock{NowTime: fixedNow}, testutil.NopLogger{})

	out, err := uc.Execute(context.Background(), CreateTasksFromFileInput{
		Content: []byte(tasksYAML),
		DryRun:  true,
	})

	require.NoError(t, err)
	assert.Len(t, out.Tasks, 3)
	assert.Empty(t, store.Agg.Tasks)
	assert.Zero(t, store.FlushCount)
}

func TestCreateTasksFromFile_Execute_InvalidYAML(t *testing.T) {
	store := testutil.NewMockStore()
	uc := NewCreateTasksFromFile(store, &testutil.MockClock{NowTime: fixedNow}, testutil.NopLogger{})

	_, err := uc.Execute(context.Background(), CreateTasksFromFileInput{Content: []byte("title: not a list")})

	assert.Error(t, err)
}
