package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/paperstack-io/paperless-client/internal/constants"
	"github.com/paperstack-io/paperless-client/internal/http"
	"github.com/paperstack-io/paperless-client/pkg/paperless"
)

// TasksClient implements paperless.TasksClient.
type TasksClient struct {
	httpClient *http.Client
}

// NewTasksClient creates a new tasks client.
func NewTasksClient(httpClient *http.Client) *TasksClient {
	return &TasksClient{httpClient: httpClient}
}

// List implements paperless.TasksClient.List.
func (c *TasksClient) List(ctx context.Context, params *paperless.QueryParams) (*paperless.Page[paperless.Task], error) {
	return fetchPage[paperless.Task](ctx, c.httpClient, constants.APIPathTasks, params, "tasks")
}

// Get implements paperless.TasksClient.Get.
//
// The server filters by task UUID and answers with a JSON array; an empty
// array means the task is unknown.
func (c *TasksClient) Get(ctx context.Context, taskID uuid.UUID) (*paperless.Task, error) {
	query := url.Values{}
	query.Set("task_id", taskID.String())

	resp, err := c.httpClient.Get(ctx, constants.APIPathTasks, query)
	if err != nil {
		return nil, fmt.Errorf("getting task: %w", err)
	}

	var tasks []paperless.Task

	err = decode("task", resp.Body, &tasks)
	if err != nil {
		return nil, err
	}

	if len(tasks) == 0 {
		return nil, &paperless.Error{
			Code:   paperless.ErrorCodeNotFound,
			Detail: fmt.Sprintf("task %s not found", taskID),
		}
	}

	return &tasks[0], nil
}

// Wait implements paperless.TasksClient.Wait. It polls the task with
// exponential backoff until the task reaches a terminal status, the
// context is cancelled, or the poll budget runs out.
func (c *TasksClient) Wait(ctx context.Context, taskID uuid.UUID) (*paperless.Task, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = constants.TaskPollInitialInterval
	policy.MaxInterval = constants.TaskPollMaxInterval
	policy.MaxElapsedTime = constants.TaskPollMaxElapsed

	var task *paperless.Task

	operation := func() error {
		current, err := c.Get(ctx, taskID)
		if err != nil {
			return backoff.Permanent(err)
		}

		if !current.Status.Terminal() {
			return fmt.Errorf("task %s still %s", taskID, current.Status)
		}

		task = current

		return nil
	}

	err := backoff.Retry(operation, backoff.WithContext(policy, ctx))
	if err != nil {
		return nil, fmt.Errorf("waiting for task: %w", err)
	}

	return task, nil
}
