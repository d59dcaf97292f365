package uploadqueue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"portfolio/internal/client"
	"portfolio/internal/domain/category"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeUploader struct {
	mu       sync.Mutex
	calls    []client.UploadRequest
	fail     map[string]error
	inflight atomic.Int32
	maxSeen  atomic.Int32
	hook     func(req client.UploadRequest) // runs during the upload
}

func (f *fakeUploader) Upload(_ context.Context, _ category.Kind, req client.UploadRequest, out any) error {
	n := f.inflight.Add(1)
	defer f.inflight.Add(-1)
	for {
		seen := f.maxSeen.Load()
		if n <= seen || f.maxSeen.CompareAndSwap(seen, n) {
			break
		}
	}

	f.mu.Lock()
	f.calls = append(f.calls, req)
	err := f.fail[req.File.Name]
	hook := f.hook
	f.mu.Unlock()

	if hook != nil {
		hook(req)
	}
	time.Sleep(2 * time.Millisecond)
	if err != nil {
		return err
	}
	if p, ok := out.(*struct {
		ID string `json:"id"`
	}); ok {
		p.ID = "media-" + req.File.Name
	}
	return nil
}

func (f *fakeUploader) names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.File.Name)
	}
	return out
}

func files(names ...string) []client.FileSource {
	out := make([]client.FileSource, 0, len(names))
	for _, n := range names {
		out = append(out, client.BytesFile(n, []byte(n)))
	}
	return out
}

func newManager(t *testing.T, up Uploader, kind category.Kind, delay time.Duration) *Manager {
	t.Helper()
	m, err := New(up, Config{Kind: kind, Owner: "Jane", Throttle: Throttle{Delay: delay}, Logger: zaptest.NewLogger(t)})
	require.NoError(t, err)
	return m
}

func TestEnqueueDefaults(t *testing.T) {
	m := newManager(t, &fakeUploader{}, category.KindPhoto, 0)

	tasks, err := m.Enqueue(files("summer_cover-shoot.final.jpg", "b.png"), "covers")
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Equal(t, "summer cover shoot.final", tasks[0].Title)
	assert.Equal(t, "Jane's photography work", tasks[0].Description)
	assert.Equal(t, category.Covers, tasks[0].Category)
	assert.Equal(t, StatusPending, tasks[0].Status)
	assert.Regexp(t, regexp.MustCompile(`^task-\d+-[0-9a-f]{16}$`), tasks[0].ID)
	assert.NotEqual(t, tasks[0].ID, tasks[1].ID)

	_, err = m.Enqueue(files("x.jpg"), "tv-show")
	assert.ErrorIs(t, err, category.ErrUnknown)
	assert.Len(t, m.Tasks(), 2)
}

func TestDefaultDescription(t *testing.T) {
	assert.Equal(t, "Jane's video work", DefaultDescription("Jane", category.KindVideo))
	assert.Equal(t, "Photography work", DefaultDescription("", category.KindPhoto))
	assert.Equal(t, "Video work", DefaultDescription("", category.KindVideo))
}

func TestNewRejectsUnknownKind(t *testing.T) {
	_, err := New(&fakeUploader{}, Config{Kind: "audio"})
	assert.Error(t, err)
}

func TestRunAllSequentialInOrder(t *testing.T) {
	up := &fakeUploader{}
	m := newManager(t, up, category.KindPhoto, 0)
	_, err := m.Enqueue(files("1.jpg", "2.jpg", "3.jpg", "4.jpg"), "fashion")
	require.NoError(t, err)

	summary, err := m.RunAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Summary{Attempted: 4, Succeeded: 4}, summary)
	assert.Equal(t, []string{"1.jpg", "2.jpg", "3.jpg", "4.jpg"}, up.names())
	assert.Equal(t, int32(1), up.maxSeen.Load())

	for _, task := range m.Tasks() {
		assert.Equal(t, StatusSuccess, task.Status)
		assert.Equal(t, "media-"+task.File.Name, task.MediaID)
	}

	// nothing pending: a second run is a no-op
	summary, err = m.RunAll(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary.Attempted)
}

func TestRunAllIsolatesFailures(t *testing.T) {
	up := &fakeUploader{fail: map[string]error{"2.jpg": &client.Error{Kind: client.KindServer, Status: 500, Detail: "disk full"}}}
	m := newManager(t, up, category.KindPhoto, 0)
	_, err := m.Enqueue(files("1.jpg", "2.jpg", "3.jpg"), "editorial")
	require.NoError(t, err)

	summary, err := m.RunAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Summary{Attempted: 3, Succeeded: 2, Failed: 1}, summary)

	tasks := m.Tasks()
	assert.Equal(t, StatusSuccess, tasks[0].Status)
	assert.Equal(t, StatusError, tasks[1].Status)
	assert.Equal(t, "disk full", tasks[1].Error)
	assert.Equal(t, StatusSuccess, tasks[2].Status)

	// error is final: a new run does not retry it
	summary, err = m.RunAll(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary.Attempted)
}

func TestRunAllThrottles(t *testing.T) {
	up := &fakeUploader{}
	m := newManager(t, up, category.KindVideo, 30*time.Millisecond)
	_, err := m.Enqueue(files("a.mp4", "b.mp4", "c.mp4"), "interview")
	require.NoError(t, err)

	start := time.Now()
	_, err = m.RunAll(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond)
}

func TestRunAllStopsOnCancel(t *testing.T) {
	up := &fakeUploader{}
	m := newManager(t, up, category.KindPhoto, time.Hour)
	_, err := m.Enqueue(files("1.jpg", "2.jpg"), "fashion")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	summary, err := m.RunAll(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, summary.Attempted)
	assert.Equal(t, 1, m.Pending())
}

func TestConcurrentRunAllRejected(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	up := &fakeUploader{hook: func(client.UploadRequest) {
		close(started)
		<-release
	}}
	m := newManager(t, up, category.KindPhoto, 0)
	_, err := m.Enqueue(files("1.jpg"), "fashion")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := m.RunAll(context.Background())
		done <- err
	}()
	<-started

	_, err = m.RunAll(context.Background())
	assert.ErrorIs(t, err, ErrRunInProgress)

	close(release)
	require.NoError(t, <-done)
}

func TestEditWhileUploadingRejected(t *testing.T) {
	m := (*Manager)(nil)
	var editErr, pendingEditErr error
	var secondID string
	up := &fakeUploader{}
	up.hook = func(req client.UploadRequest) {
		if req.File.Name != "1.jpg" {
			return
		}
		first := m.Tasks()[0]
		editErr = m.UpdateField(first.ID, FieldTitle, "changed")
		pendingEditErr = m.UpdateField(secondID, FieldTitle, "Second look")
	}
	m = newManager(t, up, category.KindPhoto, 0)
	tasks, err := m.Enqueue(files("1.jpg", "2.jpg"), "fashion")
	require.NoError(t, err)
	secondID = tasks[1].ID

	_, err = m.RunAll(context.Background())
	require.NoError(t, err)

	assert.ErrorIs(t, editErr, ErrTaskBusy)
	assert.NoError(t, pendingEditErr)
	assert.Equal(t, "1", m.Tasks()[0].Title)
	assert.Equal(t, "Second look", up.calls[1].Title)
}

func TestUpdateFieldKeepsStatus(t *testing.T) {
	up := &fakeUploader{fail: map[string]error{"1.jpg": errors.New("boom")}}
	m := newManager(t, up, category.KindPhoto, 0)
	tasks, err := m.Enqueue(files("1.jpg"), "fashion")
	require.NoError(t, err)
	id := tasks[0].ID

	require.NoError(t, m.UpdateField(id, FieldDescription, "Backstage"))
	require.NoError(t, m.UpdateField(id, FieldFeatured, "true"))
	assert.Error(t, m.UpdateField(id, FieldFeatured, "perhaps"))
	assert.ErrorIs(t, m.UpdateField(id, "category", "covers"), ErrUnknownField)
	assert.ErrorIs(t, m.UpdateField("task-0-missing", FieldTitle, "x"), ErrTaskNotFound)

	_, err = m.RunAll(context.Background())
	require.NoError(t, err)
	require.NoError(t, m.UpdateField(id, FieldTitle, "after"))

	task, ok := m.Get(id)
	require.True(t, ok)
	assert.Equal(t, StatusError, task.Status)
	assert.Equal(t, "boom", task.Error)
	assert.Equal(t, "after", task.Title)
	assert.True(t, up.calls[0].Featured)
	assert.Equal(t, "Backstage", up.calls[0].Description)
}

func TestRemoveDuringUploadDropsResult(t *testing.T) {
	m := (*Manager)(nil)
	up := &fakeUploader{}
	up.hook = func(req client.UploadRequest) {
		if req.File.Name == "1.jpg" {
			require.NoError(t, m.Remove(m.Tasks()[0].ID))
		}
	}
	m = newManager(t, up, category.KindPhoto, 0)
	_, err := m.Enqueue(files("1.jpg", "2.jpg"), "fashion")
	require.NoError(t, err)

	summary, err := m.RunAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Attempted)

	tasks := m.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "2.jpg", tasks[0].File.Name)
	assert.Equal(t, StatusSuccess, tasks[0].Status)
}

func TestRemoveAndClearFinished(t *testing.T) {
	up := &fakeUploader{fail: map[string]error{"2.jpg": errors.New("nope")}}
	m := newManager(t, up, category.KindPhoto, 0)
	tasks, err := m.Enqueue(files("1.jpg", "2.jpg", "3.jpg"), "fashion")
	require.NoError(t, err)

	require.NoError(t, m.Remove(tasks[2].ID))
	assert.ErrorIs(t, m.Remove(tasks[2].ID), ErrTaskNotFound)

	_, err = m.RunAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"1.jpg", "2.jpg"}, up.names())

	assert.Equal(t, 1, m.ClearFinished())
	remaining := m.Tasks()
	require.Len(t, remaining, 1)
	assert.Equal(t, StatusError, remaining[0].Status)
}

func TestOnChangeSequence(t *testing.T) {
	m := newManager(t, &fakeUploader{}, category.KindPhoto, 0)
	var mu sync.Mutex
	var seen []Status
	m.OnChange(func(task Task) {
		mu.Lock()
		seen = append(seen, task.Status)
		mu.Unlock()
	})

	_, err := m.Enqueue(files("1.jpg"), "fashion")
	require.NoError(t, err)
	_, err = m.RunAll(context.Background())
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []Status{StatusPending, StatusUploading, StatusSuccess}, seen)
}

func TestRunAllAgainstHTTPBackend(t *testing.T) {
	var mu sync.Mutex
	var titles []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		title := r.FormValue("title")
		mu.Lock()
		titles = append(titles, title)
		mu.Unlock()
		if title == "broken" {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "disk full"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"id": fmt.Sprintf("id-%s", title)})
	}))
	defer srv.Close()

	c, err := client.New(srv.URL)
	require.NoError(t, err)
	m := newManager(t, c, category.KindPhoto, 0)
	_, err = m.Enqueue(files("ok_one.jpg", "broken.jpg", "ok-two.jpg"), "covers")
	require.NoError(t, err)

	summary, err := m.RunAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Summary{Attempted: 3, Succeeded: 2, Failed: 1}, summary)

	tasks := m.Tasks()
	assert.Equal(t, "id-ok one", tasks[0].MediaID)
	assert.Equal(t, "disk full", tasks[1].Error)
	assert.Equal(t, StatusSuccess, tasks[2].Status)
	assert.Equal(t, []string{"ok one", "broken", "ok two"}, titles)
}
