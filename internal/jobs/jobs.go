// AngelaMos | 2026
// jobs.go

// Package jobs defines the durable background task types and the client
// used to enqueue them. Tasks are persisted in Redis and survive process
// restarts; the worker binary consumes them.
package jobs

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// Queue names. Each feature owns its queue and the worker drains each with
// single-task concurrency so jobs within a feature never interleave.
const (
	QueueAdmin = "admin"
	QueueUser  = "user"
)

// Task types.
const (
	TypeAdminExport = "admin:export"
	TypeUserExport  = "user:export"
)

// ExportPayload asks the worker to write a CSV snapshot of one namespace's
// accounts. RequestedBy is the account id that triggered the export and
// receives the completion event.
type ExportPayload struct {
	RequestedBy string `json:"requestedBy"`
	Locale      string `json:"locale"`
}

func NewAdminExportTask(p ExportPayload) (*asynq.Task, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal export payload: %w", err)
	}
	return asynq.NewTask(
		TypeAdminExport,
		body,
		asynq.Queue(QueueAdmin),
		asynq.MaxRetry(3),
	), nil
}

func NewUserExportTask(p ExportPayload) (*asynq.Task, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal export payload: %w", err)
	}
	return asynq.NewTask(
		TypeUserExport,
		body,
		asynq.Queue(QueueUser),
		asynq.MaxRetry(3),
	), nil
}

// Enqueuer is what services depend on; tests swap in a recording fake.
type Enqueuer interface {
	Enqueue(task *asynq.Task) error
}

type Client struct {
	inner *asynq.Client
}

func NewClient(redisURL string) (*Client, error) {
	opt, err := asynq.ParseRedisURI(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis uri: %w", err)
	}
	return &Client{inner: asynq.NewClient(opt)}, nil
}

func (c *Client) Enqueue(task *asynq.Task) error {
	if _, err := c.inner.Enqueue(task); err != nil {
		return fmt.Errorf("enqueue %s: %w", task.Type(), err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.inner.Close()
}
