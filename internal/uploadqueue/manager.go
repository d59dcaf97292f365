package uploadqueue

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"portfolio/internal/client"
	"portfolio/internal/domain/category"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrTaskBusy      = errors.New("task is uploading")
	ErrRunInProgress = errors.New("an upload run is already in progress")
	ErrUnknownField  = errors.New("unknown task field")
)

// Uploader is satisfied by *client.Client.
type Uploader interface {
	Upload(ctx context.Context, kind category.Kind, req client.UploadRequest, out any) error
}

// Throttle is the pause between two consecutive uploads of a run.
type Throttle struct {
	Delay time.Duration
}

var DefaultThrottle = Throttle{Delay: time.Second}

type Config struct {
	Kind     category.Kind
	Owner    string // used in default descriptions
	Throttle Throttle
	Logger   *zap.Logger
}

// Summary counts the tasks a RunAll call attempted.
type Summary struct {
	Attempted int
	Succeeded int
	Failed    int
}

// Manager keeps an in-memory list of upload tasks for one media kind and
// uploads them strictly one at a time.
type Manager struct {
	mu       sync.Mutex
	order    []string
	tasks    map[string]*Task
	running  bool
	onChange func(Task)

	uploader Uploader
	kind     category.Kind
	owner    string
	throttle Throttle
	sem      *semaphore.Weighted
	logger   *zap.Logger
	now      func() time.Time
}

func New(uploader Uploader, cfg Config) (*Manager, error) {
	if !cfg.Kind.Valid() {
		return nil, fmt.Errorf("unknown media kind %q", cfg.Kind)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Throttle.Delay < 0 {
		cfg.Throttle.Delay = 0
	}
	return &Manager{
		tasks:    make(map[string]*Task),
		uploader: uploader,
		kind:     cfg.Kind,
		owner:    cfg.Owner,
		throttle: cfg.Throttle,
		sem:      semaphore.NewWeighted(1),
		logger:   cfg.Logger,
		now:      time.Now,
	}, nil
}

func (m *Manager) Kind() category.Kind { return m.kind }

// OnChange registers a hook called with a snapshot after every task change.
// It runs outside the lock and may call back into the Manager.
func (m *Manager) OnChange(fn func(Task)) {
	m.mu.Lock()
	m.onChange = fn
	m.mu.Unlock()
}

// Enqueue adds one pending task per file, all in category cat.
func (m *Manager) Enqueue(files []client.FileSource, cat string) ([]Task, error) {
	c, err := category.Parse(m.kind, cat)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	added := make([]Task, 0, len(files))
	for _, f := range files {
		now := m.now()
		t := &Task{
			ID:          newTaskID(now),
			File:        f,
			Title:       DefaultTitle(f.Name),
			Description: DefaultDescription(m.owner, m.kind),
			Category:    c,
			Status:      StatusPending,
			CreatedAt:   now,
		}
		m.tasks[t.ID] = t
		m.order = append(m.order, t.ID)
		added = append(added, *t)
	}
	m.mu.Unlock()

	for _, t := range added {
		m.logger.Debug("task queued", zap.String("task_id", t.ID), zap.String("file", t.File.Name))
		m.notify(t)
	}
	return added, nil
}

// UpdateField edits a task's metadata. Edits are rejected while the task
// is uploading and never change its status.
func (m *Manager) UpdateField(id string, field Field, value string) error {
	m.mu.Lock()
	t, ok := m.tasks[id]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	if t.Status.IsActive() {
		m.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrTaskBusy, id)
	}

	switch field {
	case FieldTitle:
		t.Title = value
	case FieldDescription:
		t.Description = value
	case FieldFeatured:
		featured, err := strconv.ParseBool(value)
		if err != nil {
			m.mu.Unlock()
			return fmt.Errorf("featured: %w", err)
		}
		t.Featured = featured
	default:
		m.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	snapshot := *t
	m.mu.Unlock()

	m.notify(snapshot)
	return nil
}

// Remove drops a task in any state. An upload already in flight is not
// cancelled; its result is discarded.
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tasks[id]; !ok {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	delete(m.tasks, id)
	for i, tid := range m.order {
		if tid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// ClearFinished removes successful tasks and returns how many were removed.
func (m *Manager) ClearFinished() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.order[:0]
	removed := 0
	for _, id := range m.order {
		if m.tasks[id].Status == StatusSuccess {
			delete(m.tasks, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	m.order = kept
	return removed
}

// Tasks returns a snapshot in insertion order.
func (m *Manager) Tasks() []Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Task, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, *m.tasks[id])
	}
	return out
}

func (m *Manager) Get(id string) (Task, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[id]
	if !ok {
		return Task{}, false
	}
	return *t, true
}

// Pending counts tasks that a run would still upload.
func (m *Manager) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, id := range m.order {
		if m.tasks[id].Status == StatusPending {
			n++
		}
	}
	return n
}

// RunAll uploads pending tasks in insertion order, one at a time, pausing
// Throttle.Delay between uploads. A failed task is marked and the run moves
// on. Tasks enqueued during the run are picked up too.
func (m *Manager) RunAll(ctx context.Context) (Summary, error) {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return Summary{}, ErrRunInProgress
	}
	m.running = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.running = false
		m.mu.Unlock()
	}()

	var summary Summary
	for {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if err := m.sem.Acquire(ctx, 1); err != nil {
			return summary, err
		}

		task, ok := m.claimNext()
		if !ok {
			m.sem.Release(1)
			break
		}
		m.notify(task)

		err := m.upload(ctx, task)
		m.sem.Release(1)

		summary.Attempted++
		if err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}

		if m.Pending() == 0 {
			break
		}
		if err := m.wait(ctx); err != nil {
			return summary, err
		}
	}

	m.logger.Info("upload run finished",
		zap.String("kind", string(m.kind)),
		zap.Int("attempted", summary.Attempted),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed),
	)
	return summary, nil
}

// claimNext moves the first pending task to uploading.
func (m *Manager) claimNext() (Task, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range m.order {
		t := m.tasks[id]
		if t.Status == StatusPending {
			t.Status = StatusUploading
			return *t, true
		}
	}
	return Task{}, false
}

func (m *Manager) upload(ctx context.Context, task Task) error {
	var created struct {
		ID string `json:"id"`
	}
	err := m.uploader.Upload(ctx, m.kind, client.UploadRequest{
		File:        task.File,
		Title:       task.Title,
		Description: task.Description,
		Category:    string(task.Category),
		Featured:    task.Featured,
	}, &created)

	if err != nil {
		m.logger.Warn("upload failed",
			zap.String("task_id", task.ID),
			zap.String("file", task.File.Name),
			zap.String("category", string(task.Category)),
			zap.Error(err),
		)
	} else {
		m.logger.Info("uploaded", zap.String("task_id", task.ID), zap.String("media_id", created.ID))
	}

	m.mu.Lock()
	t, ok := m.tasks[task.ID]
	if !ok {
		// removed while uploading
		m.mu.Unlock()
		return err
	}
	t.FinishedAt = m.now()
	if err != nil {
		t.Status = StatusError
		t.Error = client.Message(err)
	} else {
		t.Status = StatusSuccess
		t.Error = ""
		t.MediaID = created.ID
	}
	snapshot := *t
	m.mu.Unlock()

	m.notify(snapshot)
	return err
}

func (m *Manager) wait(ctx context.Context) error {
	if m.throttle.Delay <= 0 {
		return nil
	}
	timer := time.NewTimer(m.throttle.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (m *Manager) notify(t Task) {
	m.mu.Lock()
	fn := m.onChange
	m.mu.Unlock()
	if fn != nil {
		fn(t)
	}
}
