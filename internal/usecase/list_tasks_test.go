package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarunark/weekplan/internal/domain"
	"github.com/tarunark/weekplan/internal/testutil"
)

func newListTasks(store *testutil.MockStore, now time.Time) *ListTasks {
	return NewListTasks(store, domain.DefaultLifecyclePolicy(), &testutil.MockClock{NowTime: now}, testutil.NopLogger{})
}

func TestListTasks_Execute_RootsByPriority(t *testing.T) {
	store := testutil.NewMockStore()
	store.Agg.Add(&domain.Task{ID: "240601_090000", Title: "Low Task", Priority: domain.PriorityLow, State: domain.StateActive})
	store.Agg.Add(&domain.Task{ID: "240601_090001", Title: "Critical Task", Priority: domain.PriorityCritical, State: domain.StateActive})
	uc := newListTasks(store, fixedNow)

	out, err := uc.Execute(context.Background(), ListTasksInput{})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 2)
	assert.Equal(t, "Critical Task", out.Tasks[0].Task.Title)
	assert.Equal(t, "Low Task", out.Tasks[1].Task.Title)
}

func TestListTasks_Execute_ChildrenOfParent(t *testing.T) {
	store := testutil.NewMockStore()
	parent := "240601_090000"
	store.Agg.Add(&domain.Task{ID: parent, Title: "Parent", State: domain.StateActive})
	store.Agg.Add(&domain.Task{ID: "240601_090001", ParentID: &parent, Title: "Child", State: domain.StateActive})
	store.Agg.Add(&domain.Task{ID: "240601_090002", Title: "Unrelated", State: domain.StateActive})
	uc := newListTasks(store, fixedNow)

	out, err := uc.Execute(context.Background(), ListTasksInput{ParentID: &parent})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)
	assert.Equal(t, "Child", out.Tasks[0].Task.Title)
}

func TestListTasks_Execute_SubtreeDepths(t *testing.T) {
	store := testutil.NewMockStore()
	root := "240601_090000"
	child := "240601_090001"
	store.Agg.Add(&domain.Task{ID: root, Title: "Root", State: domain.StateActive})
	store.Agg.Add(&domain.Task{ID: child, ParentID: &root, Title: "Child", State: domain.StateActive})
	store.Agg.Add(&domain.Task{ID: "240601_090002", ParentID: &child, Title: "Grandchild", State: domain.StateActive})
	uc := newListTasks(store, fixedNow)

	out, err := uc.Execute(context.Background(), ListTasksInput{All: true})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 3)
	assert.Equal(t, 0, out.Tasks[0].Depth)
	assert.Equal(t, 1, out.Tasks[1].Depth)
	assert.Equal(t, 2, out.Tasks[2].Depth)
}

func TestListTasks_Execute_AdvancesLifecycle(t *testing.T) {
	store := testutil.NewMockStore()
	// Completed on a Wednesday; three weeks later it is past the archive window.
	completed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local)
	store.Agg.Add(&domain.Task{
		ID:        "240501_120000",
		Title:     "Stale",
		State:     domain.StateCompleted,
		Created:   completed,
		Completed: completed,
	})
	now := completed.AddDate(0, 0, 21)
	uc := newListTasks(store, now)

	out, err := uc.Execute(context.Background(), ListTasksInput{})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)
	assert.Equal(t, domain.StateArchived, out.Tasks[0].Task.State)
	// The lifecycle change was persisted.
	assert.Equal(t, 1, store.FlushCount)
}

func TestListTasks_Execute_LifecycleNoChangeNoFlush(t *testing.T) {
	store := testutil.NewMockStore()
	store.Agg.Add(&domain.Task{ID: "240601_090000", Title: "Fresh", State: domain.StateActive, Created: fixedNow})
	uc := newListTasks(store, fixedNow)

	_, err := uc.Execute(context.Background(), ListTasksInput{})

	require.NoError(t, err)
	assert.Zero(t, store.FlushCount)
}

func TestListTasks_Execute_DanglingParentListedAsRoot(t *testing.T) {
	store := testutil.NewMockStore()
	gone := "999999_000000"
	store.Agg.Add(&domain.Task{ID: "240601_090000", ParentID: &gone, Title: "Orphan", State: domain.StateActive})
	uc := newListTasks(store, fixedNow)

	out, err := uc.Execute(context.Background(), ListTasksInput{})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)
	assert.Equal(t, "Orphan", out.Tasks[0].Task.Title)
}
