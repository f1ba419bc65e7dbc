package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/alexanderramin/weekboard/internal/domain"
)

// TokenSource supplies the bearer token attached to remote requests.
type TokenSource interface {
	Token() string
}

// RemoteConfig holds the remote task API settings.
type RemoteConfig struct {
	BaseURL   string
	TimeoutMs int
}

// RemoteBackend implements Backend against the remote task API: one
// HTTP-shaped request/response pair per operation.
type RemoteBackend struct {
	cfg    RemoteConfig
	tokens TokenSource
	http   *http.Client
}

// NewRemoteBackend creates a Backend talking to the task API at cfg.BaseURL.
func NewRemoteBackend(cfg RemoteConfig, tokens TokenSource) *RemoteBackend {
	if cfg.TimeoutMs <= 0 {
		cfg.TimeoutMs = 10000
	}
	return &RemoteBackend{
		cfg:    cfg,
		tokens: tokens,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
}

// wireTask is the transport representation. The only divergence from the
// internal shape is the column: the API calls it "date". The two-way mapping
// lives here and nowhere else, so transport vocabulary never leaks inward.
type wireTask struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	Order       int    `json:"order"`
	Completed   bool   `json:"completed"`
	CreatedAt   int64  `json:"createdAt,omitempty"`
	ProjectID   string `json:"projectId,omitempty"`
	ParentID    string `json:"parentId,omitempty"`
}

func toWire(t domain.Task) wireTask {
	return wireTask{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Date:        t.Column,
		Order:       t.Order,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		ProjectID:   t.ProjectID,
		ParentID:    t.ParentID,
	}
}

func fromWire(w wireTask) domain.Task {
	return domain.Task{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		Column:      w.Date,
		Order:       w.Order,
		Completed:   w.Completed,
		CreatedAt:   w.CreatedAt,
		ProjectID:   w.ProjectID,
		ParentID:    w.ParentID,
	}
}

// wirePatch mirrors domain.TaskPatch on the wire, with the same date/column
// rename.
type wirePatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty"`
	Order       *int    `json:"order,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
	ProjectID   *string `json:"projectId,omitempty"`
	ParentID    *string `json:"parentId,omitempty"`
}

func patchToWire(p domain.TaskPatch) wirePatch {
	return wirePatch{
		Title:       p.Title,
		Description: p.Description,
		Date:        p.Column,
		Order:       p.Order,
		Completed:   p.Completed,
		ProjectID:   p.ProjectID,
		ParentID:    p.ParentID,
	}
}

func (b *RemoteBackend) ListTasks(ctx context.Context) ([]domain.Task, error) {
	var wires []wireTask
	if err := b.do(ctx, http.MethodGet, "/tasks", nil, &wires); err != nil {
		return nil, err
	}
	tasks := make([]domain.Task, len(wires))
	for i, w := range wires {
		tasks[i] = fromWire(w)
	}
	return tasks, nil
}

func (b *RemoteBackend) CreateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	var created wireTask
	if err := b.do(ctx, http.MethodPost, "/tasks", toWire(task), &created); err != nil {
		return domain.Task{}, err
	}
	return fromWire(created), nil
}

func (b *RemoteBackend) UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (domain.Task, error) {
	var updated wireTask
	if err := b.do(ctx, http.MethodPatch, "/tasks/"+id, patchToWire(patch), &updated); err != nil {
		return domain.Task{}, err
	}
	return fromWire(updated), nil
}

func (b *RemoteBackend) DeleteTask(ctx context.Context, id string) error {
	// The API treats delete as idempotent; a 404 here still means the task
	// is gone.
	err := b.do(ctx, http.MethodDelete, "/tasks/"+id, nil, nil)
	if err != nil && isNotFound(err) {
		return nil
	}
	return err
}

func (b *RemoteBackend) do(ctx context.Context, method, path string, body, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(b.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.cfg.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := b.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := b.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrTransport, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, path, ErrNotFound)
	case resp.StatusCode >= 400:
		return fmt.Errorf("%w: %s %s returned status %d: %s", ErrTransport, method, path, resp.StatusCode, string(respBody))
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("%w: decoding response: %v", ErrTransport, err)
		}
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
