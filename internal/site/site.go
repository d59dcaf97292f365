// Package site serves the public portfolio page.
package site

import (
	"bytes"
	"errors"
	"html/template"

	"portfolio/internal/client"
	"portfolio/internal/domain/category"
	"portfolio/internal/domain/entities"
	"portfolio/internal/gallery"
	"portfolio/internal/portfolio"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"go.uber.org/zap"
)

type Server struct {
	view   *portfolio.View
	src    portfolio.Source
	md     goldmark.Markdown
	logger *zap.Logger
}

func New(loader *portfolio.Loader, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		view: portfolio.NewView(loader),
		src:  loader.Source(),
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
		),
		logger: logger,
	}
}

// App returns the fiber app serving the page at "/".
func (s *Server) App(accessLog bool) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	if accessLog {
		app.Use(logger.New())
	}
	app.Get("/", s.Index)
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

type videoView struct {
	URL    string
	Poster string
	Title  string
	Label  string
}

type linkView struct {
	Name string
	URL  string
}

type pageView struct {
	Personal   entities.PersonalInfo
	Bio        template.HTML
	Skills     []entities.Skill
	Experience []entities.Experience
	Awards     []entities.Award
	Galleries  []template.HTML
	Videos     []videoView
	Links      []linkView
	Degraded   map[string]string
}

// Index fetches fresh content and renders the page. Partial failures show
// empty sections; only an unusable backend renders the error page.
func (s *Server) Index(c *fiber.Ctx) error {
	c.Type("html", "utf-8")

	load := s.view.Refresh
	if c.QueryBool("retry") {
		load = s.view.Retry
	}
	if err := load(c.UserContext()); err != nil {
		s.logger.Error("portfolio load failed", zap.Error(err))
		msg := client.Message(err)
		if errors.Is(err, client.ErrNotConfigured) {
			msg = "The portfolio backend is not configured."
		}
		c.Status(fiber.StatusServiceUnavailable)
		return errorTmpl.Execute(c, map[string]string{"Message": msg})
	}

	page := s.view.Snapshot().Page
	pv, err := s.build(page)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, pv); err != nil {
		return err
	}
	return c.Send(buf.Bytes())
}

func (s *Server) build(page *portfolio.Page) (pageView, error) {
	pv := pageView{
		Personal:   page.Personal,
		Skills:     page.Skills,
		Experience: page.Experience,
		Awards:     page.Awards,
		Degraded:   page.Degraded,
	}

	bio, err := s.markdown(page.Personal.Bio)
	if err != nil {
		return pv, err
	}
	pv.Bio = bio

	for _, g := range page.Galleries {
		html, err := gallery.RenderString(portfolio.GallerySection(g, s.src.ResolveURL))
		if err != nil {
			return pv, err
		}
		pv.Galleries = append(pv.Galleries, html)
	}

	for _, v := range page.Videos {
		pv.Videos = append(pv.Videos, videoView{
			URL:    s.src.ResolveURL(v.URL),
			Poster: s.src.ResolveURL(v.ThumbnailURL),
			Title:  v.Title,
			Label:  category.Category(v.Category).Label(),
		})
	}

	social := page.Social
	for _, l := range []linkView{
		{"Website", social.Website},
		{"Magazine", social.Magazine},
		{"Instagram", social.Instagram},
		{"Facebook", social.Facebook},
		{"LinkedIn", social.Linkedin},
		{"Twitter", social.Twitter},
	} {
		if l.URL != "" {
			pv.Links = append(pv.Links, l)
		}
	}
	return pv, nil
}

// markdown renders the bio; raw HTML in the source is dropped.
func (s *Server) markdown(src string) (template.HTML, error) {
	if src == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
