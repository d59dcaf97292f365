package portfolio

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"portfolio/internal/client"
	"portfolio/internal/domain/category"
	"portfolio/internal/domain/entities"
	"portfolio/internal/gallery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeSource struct {
	configured bool
	fail       map[string]error
	calls      atomic.Int32
	barrier    *sync.WaitGroup // when set, every fetch waits for all others
}

func (f *fakeSource) enter(resource string) error {
	f.calls.Add(1)
	if f.barrier != nil {
		f.barrier.Done()
		f.barrier.Wait()
	}
	return f.fail[resource]
}

func (f *fakeSource) Configured() bool              { return f.configured }
func (f *fakeSource) ResolveURL(path string) string { return "http://backend" + path }

func (f *fakeSource) Personal(context.Context) (*entities.PersonalInfo, error) {
	if err := f.enter("personal"); err != nil {
		return nil, err
	}
	return &entities.PersonalInfo{Name: "Jane Doe"}, nil
}

func (f *fakeSource) Social(context.Context) (*entities.SocialLinks, error) {
	if err := f.enter("social"); err != nil {
		return nil, err
	}
	return &entities.SocialLinks{Instagram: "https://instagram.com/jane"}, nil
}

func (f *fakeSource) Skills(context.Context) ([]entities.Skill, error) {
	if err := f.enter("skills"); err != nil {
		return nil, err
	}
	return []entities.Skill{{Name: "Lighting", Level: 90}}, nil
}

func (f *fakeSource) Experience(context.Context) ([]entities.Experience, error) {
	if err := f.enter("experience"); err != nil {
		return nil, err
	}
	return []entities.Experience{{Title: "Photographer", Company: "Studio"}}, nil
}

func (f *fakeSource) Projects(context.Context) ([]entities.Project, error) {
	if err := f.enter("projects"); err != nil {
		return nil, err
	}
	return []entities.Project{{Title: "Book"}}, nil
}

func (f *fakeSource) Awards(context.Context) ([]entities.Award, error) {
	if err := f.enter("awards"); err != nil {
		return nil, err
	}
	return []entities.Award{{Title: "Gold"}}, nil
}

func (f *fakeSource) Images(_ context.Context, cat category.Category) ([]entities.Image, error) {
	if err := f.enter("images:" + string(cat)); err != nil {
		return nil, err
	}
	return []entities.Image{{Title: string(cat) + " shot", Category: string(cat), ImageURL: "/api/uploads/images/" + string(cat) + "/1.jpg"}}, nil
}

func (f *fakeSource) Videos(context.Context, category.Category) ([]entities.Video, error) {
	if err := f.enter("videos"); err != nil {
		return nil, err
	}
	return []entities.Video{{Title: "Episode", Category: "tv-show", VideoURL: "/api/uploads/videos/tv-show/1.mp4"}}, nil
}

const fetchCount = 12

func TestLoadAllResources(t *testing.T) {
	src := &fakeSource{configured: true}
	page, err := NewLoader(src, zaptest.NewLogger(t)).Load(context.Background())
	require.NoError(t, err)

	assert.True(t, page.Complete())
	assert.Equal(t, int32(fetchCount), src.calls.Load())
	assert.Equal(t, "Jane Doe", page.Personal.Name)
	assert.Len(t, page.Skills, 1)
	assert.Len(t, page.Videos, 1)

	require.Len(t, page.Galleries, 5)
	assert.Equal(t, category.Fashion, page.Galleries[0].Category)
	assert.Equal(t, "Fashion Photography", page.Galleries[0].Label)
	assert.Equal(t, gallery.ThemeRed, page.Galleries[0].Theme)
	assert.Equal(t, gallery.ThemeBrown, page.Galleries[2].Theme)
	for _, g := range page.Galleries {
		require.Len(t, g.Items, 1)
		assert.Equal(t, string(g.Category), g.Items[0].Category)
	}
}

func TestLoadFetchesConcurrently(t *testing.T) {
	var barrier sync.WaitGroup
	barrier.Add(fetchCount)
	src := &fakeSource{configured: true, barrier: &barrier}

	done := make(chan struct{})
	go func() {
		_, _ = NewLoader(src, nil).Load(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("fetches did not run concurrently")
	}
}

func TestLoadDegradesPerResource(t *testing.T) {
	src := &fakeSource{configured: true, fail: map[string]error{
		"skills":        &client.Error{Kind: client.KindServer, Status: 500, Detail: "db down"},
		"images:covers": &client.Error{Kind: client.KindNetwork, Err: errors.New("refused")},
		"personal":      errors.New("weird"),
	}}
	page, err := NewLoader(src, zaptest.NewLogger(t)).Load(context.Background())
	require.NoError(t, err)

	assert.False(t, page.Complete())
	assert.Equal(t, map[string]string{
		"skills":        "db down",
		"images:covers": client.NetworkErrorMessage,
		"personal":      "weird",
	}, page.Degraded)

	assert.NotNil(t, page.Skills)
	assert.Empty(t, page.Skills)
	assert.Empty(t, page.Personal.Name)
	assert.Empty(t, page.Galleries[1].Items)
	assert.Len(t, page.Galleries[0].Items, 1)
	assert.Len(t, page.Awards, 1)
}

func TestLoadNotConfigured(t *testing.T) {
	src := &fakeSource{}
	page, err := NewLoader(src, nil).Load(context.Background())
	assert.ErrorIs(t, err, client.ErrNotConfigured)
	assert.Nil(t, page)
	assert.Zero(t, src.calls.Load())
}

func TestViewStatesAndRetry(t *testing.T) {
	src := &fakeSource{}
	view := NewView(NewLoader(src, nil))
	assert.Equal(t, StateLoading, view.Snapshot().State)

	require.Error(t, view.Refresh(context.Background()))
	snap := view.Snapshot()
	assert.Equal(t, StateError, snap.State)
	assert.ErrorIs(t, snap.Err, client.ErrNotConfigured)
	assert.Nil(t, snap.Page)

	src.configured = true
	require.NoError(t, view.Retry(context.Background()))
	snap = view.Snapshot()
	assert.Equal(t, StateReady, snap.State)
	assert.NoError(t, snap.Err)
	assert.Equal(t, int32(fetchCount), src.calls.Load())

	// a retry re-runs the whole set
	require.NoError(t, view.Retry(context.Background()))
	assert.Equal(t, int32(2*fetchCount), src.calls.Load())
}

func TestGallerySectionResolvesURLs(t *testing.T) {
	src := &fakeSource{configured: true}
	page, err := NewLoader(src, nil).Load(context.Background())
	require.NoError(t, err)

	sec := GallerySection(page.Galleries[0], src.ResolveURL)
	assert.Equal(t, "fashion", sec.ID)
	assert.Equal(t, "http://backend/api/uploads/images/fashion/1.jpg", sec.Items[0].URL)
}

func TestLoadOverHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/personal":
			_ = json.NewEncoder(w).Encode(map[string]any{"name": "Jane Doe"})
		case "/api/social":
			_ = json.NewEncoder(w).Encode(map[string]any{"website": "https://example.com"})
		case "/api/images":
			if r.URL.Query().Get("category") == "editorial" {
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]any{"detail": "disk full"})
				return
			}
			_ = json.NewEncoder(w).Encode([]map[string]any{{"id": "1", "title": "t", "image_url": "/api/uploads/x.jpg"}})
		default:
			_, _ = w.Write([]byte("[]"))
		}
	}))
	defer srv.Close()

	c, err := client.New(srv.URL)
	require.NoError(t, err)
	page, err := NewLoader(c, zaptest.NewLogger(t)).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", page.Personal.Name)
	assert.Equal(t, map[string]string{"images:editorial": "disk full"}, page.Degraded)
	assert.Len(t, page.Galleries[0].Items, 1)
	assert.Empty(t, page.Galleries[4].Items)
}
