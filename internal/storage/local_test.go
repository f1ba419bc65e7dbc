package storage

import (
	"context"
	"testing"

	"github.com/alexanderramin/weekboard/internal/domain"
	"github.com/alexanderramin/weekboard/internal/persist"
	"github.com/alexanderramin/weekboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalBackend(t *testing.T) *LocalBackend {
	t.Helper()
	blobs := persist.NewSQLiteBlobStore(testutil.NewTestDB(t))
	return NewLocalBackend(persist.NewSerializer(blobs, testutil.SilentLogger()))
}

func TestLocalBackend_EmptyMediumListsNoTasks(t *testing.T) {
	b := newLocalBackend(t)

	tasks, err := b.ListTasks(context.Background())

	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestLocalBackend_CreateFillsIDAndCreatedAt(t *testing.T) {
	ctx := context.Background()
	b := newLocalBackend(t)

	created, err := b.CreateTask(ctx, domain.Task{Title: "Buy milk", Column: "sunday"})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotZero(t, created.CreatedAt)

	tasks, err := b.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, created, tasks[0])
}

func TestLocalBackend_UpdatePersistsPatch(t *testing.T) {
	ctx := context.Background()
	b := newLocalBackend(t)
	created, err := b.CreateTask(ctx, testutil.NewTestTask("t1", "Old", "sunday"))
	require.NoError(t, err)

	title := "New"
	completed := true
	updated, err := b.UpdateTask(ctx, created.ID, domain.TaskPatch{Title: &title, Completed: &completed})

	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.True(t, updated.Completed)

	tasks, err := b.ListTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, tasks[0])
}

func TestLocalBackend_UpdateUnknownIDFailsNotFound(t *testing.T) {
	b := newLocalBackend(t)

	title := "x"
	_, err := b.UpdateTask(context.Background(), "ghost", domain.TaskPatch{Title: &title})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalBackend_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	b := newLocalBackend(t)
	created, err := b.CreateTask(ctx, testutil.NewTestTask("t1", "Task", "sunday"))
	require.NoError(t, err)

	require.NoError(t, b.DeleteTask(ctx, created.ID))
	require.NoError(t, b.DeleteTask(ctx, created.ID), "second delete is not an error")
	require.NoError(t, b.DeleteTask(ctx, "never-existed"))

	tasks, err := b.ListTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestLocalBackend_CorruptEnvelopeReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	blobs := persist.NewMemBlobStore()
	require.NoError(t, blobs.Put(ctx, persist.DefaultBlobName, []byte("garbage")))
	b := NewLocalBackend(persist.NewSerializer(blobs, testutil.SilentLogger()))

	tasks, err := b.ListTasks(ctx)

	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestLocalBackend_UnreachableMediumFailsUnavailable(t *testing.T) {
	b := NewLocalBackend(persist.NewSerializer(testutil.NewFailingBlobStore(), testutil.SilentLogger()))

	_, err := b.ListTasks(context.Background())

	assert.ErrorIs(t, err, ErrUnavailable)
}
