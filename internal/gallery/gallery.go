// Package gallery renders a titled image grid as an HTML fragment.
package gallery

import (
	"html/template"
	"io"
	"strings"
)

// Theme selects the section accent color.
type Theme string

const (
	ThemeDefault Theme = ""
	ThemeRed     Theme = "red"
	ThemeGreen   Theme = "green"
	ThemeBrown   Theme = "brown"
)

var accents = map[Theme]string{
	ThemeRed:   "#b91c1c",
	ThemeGreen: "#15803d",
	ThemeBrown: "#78350f",
}

const defaultAccent = "#000000"

// Accent returns the CSS color for t; unknown themes fall back to black.
func (t Theme) Accent() string {
	if c, ok := accents[t]; ok {
		return c
	}
	return defaultAccent
}

func (t Theme) class() string {
	if _, ok := accents[t]; ok {
		return "gallery--" + string(t)
	}
	return "gallery--default"
}

type Item struct {
	URL          string
	ThumbnailURL string // optional; URL is used when empty
	Title        string
}

type Section struct {
	ID    string // anchor id; derived from Title when empty
	Title string
	Items []Item
	Theme Theme
}

type view struct {
	ID     string
	Title  string
	Class  string
	Accent string
	Items  []Item
}

var tmpl = template.Must(template.New("gallery").Parse(`<section class="gallery {{.Class}}" id="{{.ID}}" style="--accent: {{.Accent}}" data-reveal>
  <h2 class="gallery__title">{{.Title}}</h2>
  {{- if .Items}}
  <div class="gallery__grid">
    {{- range .Items}}
    <figure class="gallery__item" data-reveal>
      <a href="{{.URL}}" target="_blank" rel="noopener">
        <img src="{{if .ThumbnailURL}}{{.ThumbnailURL}}{{else}}{{.URL}}{{end}}" alt="{{.Title}}" loading="lazy">
      </a>
      {{- if .Title}}
      <figcaption>{{.Title}}</figcaption>
      {{- end}}
    </figure>
    {{- end}}
  </div>
  {{- else}}
  <p class="gallery__empty">No work to show yet.</p>
  {{- end}}
</section>
`))

// Render writes s as HTML. Items without a URL are skipped; a section with
// no usable items renders its empty state.
func Render(w io.Writer, s Section) error {
	items := make([]Item, 0, len(s.Items))
	for _, it := range s.Items {
		if strings.TrimSpace(it.URL) == "" {
			continue
		}
		items = append(items, it)
	}

	id := s.ID
	if id == "" {
		id = slug(s.Title)
	}
	return tmpl.Execute(w, view{
		ID:     id,
		Title:  s.Title,
		Class:  s.Theme.class(),
		Accent: s.Theme.Accent(),
		Items:  items,
	})
}

// RenderString is Render into a string, for embedding into a page template.
func RenderString(s Section) (template.HTML, error) {
	var b strings.Builder
	if err := Render(&b, s); err != nil {
		return "", err
	}
	return template.HTML(b.String()), nil
}

func slug(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
