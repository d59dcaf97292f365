package portfolio

import (
	"context"
	"sync"

	"portfolio/internal/client"
	"portfolio/internal/domain/category"
	"portfolio/internal/domain/dto"
	"portfolio/internal/domain/entities"
	"portfolio/internal/domain/mapper"
	"portfolio/internal/gallery"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Source is the read side of the content API; *client.Client implements it.
type Source interface {
	Configured() bool
	ResolveURL(path string) string
	Personal(ctx context.Context) (*entities.PersonalInfo, error)
	Social(ctx context.Context) (*entities.SocialLinks, error)
	Skills(ctx context.Context) ([]entities.Skill, error)
	Experience(ctx context.Context) ([]entities.Experience, error)
	Projects(ctx context.Context) ([]entities.Project, error)
	Awards(ctx context.Context) ([]entities.Award, error)
	Images(ctx context.Context, cat category.Category) ([]entities.Image, error)
	Videos(ctx context.Context, cat category.Category) ([]entities.Video, error)
}

// Gallery is one photo category of the page.
type Gallery struct {
	Category category.Category
	Label    string
	Theme    gallery.Theme
	Items    []dto.MediaItem
}

type Page struct {
	Personal   entities.PersonalInfo
	Social     entities.SocialLinks
	Skills     []entities.Skill
	Experience []entities.Experience
	Projects   []entities.Project
	Awards     []entities.Award
	Galleries  []Gallery // photo categories in display order
	Videos     []dto.MediaItem

	// Degraded maps a resource that failed to load to its error message.
	// The resource holds its empty default.
	Degraded map[string]string
}

// Complete reports whether every resource loaded.
func (p *Page) Complete() bool { return len(p.Degraded) == 0 }

// GallerySection converts g for the renderer, resolving media URLs.
func GallerySection(g Gallery, resolve func(string) string) gallery.Section {
	items := make([]gallery.Item, 0, len(g.Items))
	for _, m := range g.Items {
		items = append(items, gallery.Item{
			URL:          resolve(m.URL),
			ThumbnailURL: resolve(m.ThumbnailURL),
			Title:        m.Title,
		})
	}
	return gallery.Section{ID: string(g.Category), Title: g.Label, Items: items, Theme: g.Theme}
}

var themes = map[category.Category]gallery.Theme{
	category.Fashion:          gallery.ThemeRed,
	category.Covers:           gallery.ThemeGreen,
	category.StillLife:        gallery.ThemeBrown,
	category.ArtPhotoPainting: gallery.ThemeRed,
	category.Editorial:        gallery.ThemeGreen,
}

// ThemeFor returns the accent theme of a photo category.
func ThemeFor(c category.Category) gallery.Theme {
	return themes[c]
}

type Loader struct {
	src    Source
	logger *zap.Logger
}

func NewLoader(src Source, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{src: src, logger: logger}
}

func (l *Loader) Source() Source { return l.src }

// Load fetches every resource concurrently. A failed fetch leaves its empty
// default and is recorded in Page.Degraded; the only error Load returns
// is client.ErrNotConfigured.
func (l *Loader) Load(ctx context.Context) (*Page, error) {
	if !l.src.Configured() {
		return nil, client.ErrNotConfigured
	}

	photoCats := category.Options(category.KindPhoto)
	page := &Page{
		Skills:     []entities.Skill{},
		Experience: []entities.Experience{},
		Projects:   []entities.Project{},
		Awards:     []entities.Award{},
		Galleries:  make([]Gallery, len(photoCats)),
		Videos:     []dto.MediaItem{},
		Degraded:   map[string]string{},
	}

	var mu sync.Mutex
	degrade := func(resource string, err error) {
		l.logger.Warn("resource unavailable", zap.String("resource", resource), zap.Error(err))
		mu.Lock()
		page.Degraded[resource] = client.Message(err)
		mu.Unlock()
	}

	// Her fetch kendi hatasını tutar, group hiçbir zaman hata döndürmez
	var g errgroup.Group
	g.Go(func() error {
		if v, err := l.src.Personal(ctx); err != nil {
			degrade(client.ResourcePersonal, err)
		} else {
			page.Personal = *v
		}
		return nil
	})
	g.Go(func() error {
		if v, err := l.src.Social(ctx); err != nil {
			degrade(client.ResourceSocial, err)
		} else {
			page.Social = *v
		}
		return nil
	})
	g.Go(func() error {
		if v, err := l.src.Skills(ctx); err != nil {
			degrade(client.ResourceSkills, err)
		} else {
			page.Skills = v
		}
		return nil
	})
	g.Go(func() error {
		if v, err := l.src.Experience(ctx); err != nil {
			degrade(client.ResourceExperience, err)
		} else {
			page.Experience = v
		}
		return nil
	})
	g.Go(func() error {
		if v, err := l.src.Projects(ctx); err != nil {
			degrade(client.ResourceProjects, err)
		} else {
			page.Projects = v
		}
		return nil
	})
	g.Go(func() error {
		if v, err := l.src.Awards(ctx); err != nil {
			degrade(client.ResourceAwards, err)
		} else {
			page.Awards = v
		}
		return nil
	})
	for i, opt := range photoCats {
		page.Galleries[i] = Gallery{Category: opt.Value, Label: opt.Label, Theme: ThemeFor(opt.Value), Items: []dto.MediaItem{}}
		g.Go(func() error {
			if v, err := l.src.Images(ctx, opt.Value); err != nil {
				degrade(client.ResourceImages+":"+string(opt.Value), err)
			} else {
				page.Galleries[i].Items = mapper.ImagesToItems(v)
			}
			return nil
		})
	}
	g.Go(func() error {
		if v, err := l.src.Videos(ctx, ""); err != nil {
			degrade(client.ResourceVideos, err)
		} else {
			page.Videos = mapper.VideosToItems(v)
		}
		return nil
	})

	_ = g.Wait()
	return page, nil
}
