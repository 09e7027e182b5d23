package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/paperstack-io/paperless-client/internal/http"
	"github.com/paperstack-io/paperless-client/pkg/paperless"
)

func newTestTasksClient(serverURL string) *TasksClient {
	return NewTasksClient(internalhttp.NewClient(serverURL, nil))
}

func TestTasksClient_Get(t *testing.T) {
	t.Parallel()
	t.Run("found", func(t *testing.T) {
		t.Parallel()

		taskID := uuid.New()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/tasks/", request.URL.Path)
			assert.Equal(t, taskID.String(), request.URL.Query().Get("task_id"))

			_ = json.NewEncoder(writer).Encode([]paperless.Task{
				{ID: 1, TaskID: taskID, Status: paperless.TaskStatusStarted},
			})
		}))
		defer server.Close()

		tasks := newTestTasksClient(server.URL)

		task, err := tasks.Get(context.Background(), taskID)
		require.NoError(t, err)
		assert.Equal(t, taskID, task.TaskID)
		assert.Equal(t, paperless.TaskStatusStarted, task.Status)
	})

	t.Run("unknown task is not found", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode([]paperless.Task{})
		}))
		defer server.Close()

		tasks := newTestTasksClient(server.URL)

		_, err := tasks.Get(context.Background(), uuid.New())
		require.Error(t, err)
		assert.True(t, paperless.IsNotFound(err))
	})
}

func TestTasksClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/tasks/", request.URL.Path)

		page := paperless.Page[paperless.Task]{
			Count: 1,
			Results: []paperless.Task{
				{ID: 1, TaskID: uuid.New(), Status: paperless.TaskStatusSuccess},
			},
		}
		_ = json.NewEncoder(writer).Encode(page)
	}))
	defer server.Close()

	tasks := newTestTasksClient(server.URL)

	page, err := tasks.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Count)
}

func TestTasksClient_Wait(t *testing.T) {
	t.Parallel()
	t.Run("polls until terminal", func(t *testing.T) {
		t.Parallel()

		taskID := uuid.New()

		var polls atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			status := paperless.TaskStatusPending
			if polls.Add(1) >= 2 {
				status = paperless.TaskStatusSuccess
			}

			_ = json.NewEncoder(writer).Encode([]paperless.Task{
				{ID: 1, TaskID: taskID, Status: status},
			})
		}))
		defer server.Close()

		tasks := newTestTasksClient(server.URL)

		task, err := tasks.Wait(context.Background(), taskID)
		require.NoError(t, err)
		assert.Equal(t, paperless.TaskStatusSuccess, task.Status)
		assert.GreaterOrEqual(t, polls.Load(), int32(2))
	})

	t.Run("failure status still returned", func(t *testing.T) {
		t.Parallel()

		taskID := uuid.New()
		result := "document already exists"

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode([]paperless.Task{
				{ID: 1, TaskID: taskID, Status: paperless.TaskStatusFailure, Result: &result},
			})
		}))
		defer server.Close()

		tasks := newTestTasksClient(server.URL)

		task, err := tasks.Wait(context.Background(), taskID)
		require.NoError(t, err)
		assert.Equal(t, paperless.TaskStatusFailure, task.Status)
		require.NotNil(t, task.Result)
		assert.Equal(t, result, *task.Result)
	})

	t.Run("API error stops polling", func(t *testing.T) {
		t.Parallel()

		var polls atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			polls.Add(1)
			writer.WriteHeader(http.StatusUnauthorized)
			_, _ = writer.Write([]byte(`{"detail":"Invalid token."}`))
		}))
		defer server.Close()

		tasks := newTestTasksClient(server.URL)

		_, err := tasks.Wait(context.Background(), uuid.New())
		require.Error(t, err)
		assert.True(t, paperless.IsUnauthorized(err))
		assert.Equal(t, int32(1), polls.Load())
	})

	t.Run("cancelled context stops waiting", func(t *testing.T) {
		t.Parallel()

		taskID := uuid.New()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode([]paperless.Task{
				{ID: 1, TaskID: taskID, Status: paperless.TaskStatusPending},
			})
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		tasks := newTestTasksClient(server.URL)

		_, err := tasks.Wait(ctx, taskID)
		require.Error(t, err)
	})
}
