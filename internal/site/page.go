package site

import (
	"html/template"
)

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{if .Personal.Name}}{{.Personal.Name}}{{else}}Portfolio{{end}}</title>
  <style>
    body { margin: 0; font-family: Georgia, serif; color: #111; }
    section { padding: 3rem 1.5rem; max-width: 1100px; margin: 0 auto; }
    .gallery__title { border-bottom: 3px solid var(--accent); display: inline-block; }
    .gallery__grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(220px, 1fr)); gap: 1rem; }
    .gallery__item img { width: 100%; aspect-ratio: 1; object-fit: cover; }
    [data-reveal] { animation: reveal .6s ease-out both; }
    @keyframes reveal { from { opacity: 0; transform: translateY(12px); } to { opacity: 1; transform: none; } }
    .notice { background: #fef3c7; padding: .75rem 1.5rem; }
    .skill__bar { background: #eee; height: 6px; }
    .skill__bar span { display: block; height: 6px; background: #111; }
  </style>
</head>
<body>
{{- if .Degraded}}
  <p class="notice">Some sections could not be loaded and are shown empty.</p>
{{- end}}
  <header id="hero" data-reveal>
    <section>
      <h1>{{.Personal.Name}}</h1>
      {{- with .Personal.Title}}<p class="hero__title">{{.}}</p>{{end}}
      {{- with .Personal.Tagline}}<p class="hero__tagline">{{.}}</p>{{end}}
      {{- with .Personal.Subtitle}}<p class="hero__subtitle">{{.}}</p>{{end}}
    </section>
  </header>

  <section id="about" data-reveal>
    <h2>About</h2>
    {{.Bio}}
    {{- with .Personal.Quote}}<blockquote>{{.}}</blockquote>{{end}}
    {{- with .Personal.Book}}<p class="about__book">{{.}}</p>{{end}}
  </section>

  {{- if .Skills}}
  <section id="skills" data-reveal>
    <h2>Skills</h2>
    {{- range .Skills}}
    <div class="skill">
      <span>{{.Name}}</span>{{with .Years}} <small>{{.}}</small>{{end}}
      <div class="skill__bar"><span style="width: {{.Level}}%"></span></div>
    </div>
    {{- end}}
  </section>
  {{- end}}

  {{- if .Experience}}
  <section id="experience" data-reveal>
    <h2>Experience</h2>
    {{- range .Experience}}
    <article>
      <h3>{{.Title}} · {{.Company}}</h3>
      <p><small>{{.Period}}{{with .Location}} · {{.}}{{end}}</small></p>
      {{- with .Description}}<p>{{.}}</p>{{end}}
      {{- if .Highlights}}
      <ul>{{range .Highlights}}<li>{{.}}</li>{{end}}</ul>
      {{- end}}
    </article>
    {{- end}}
  </section>
  {{- end}}

  <div id="work">
  {{- range .Galleries}}
  {{.}}
  {{- end}}
  </div>

  <section id="videos" data-reveal>
    <h2>Video</h2>
    {{- if .Videos}}
    <div class="gallery__grid">
      {{- range .Videos}}
      <figure data-reveal>
        <video controls preload="metadata" src="{{.URL}}"{{with .Poster}} poster="{{.}}"{{end}}></video>
        <figcaption>{{.Title}}{{with .Label}} <small>{{.}}</small>{{end}}</figcaption>
      </figure>
      {{- end}}
    </div>
    {{- else}}
    <p class="gallery__empty">No work to show yet.</p>
    {{- end}}
  </section>

  {{- if .Awards}}
  <section id="awards" data-reveal>
    <h2>Awards</h2>
    <ul>
    {{- range .Awards}}
      <li><strong>{{.Title}}</strong>{{with .Organization}}, {{.}}{{end}}{{with .Year}} ({{.}}){{end}}</li>
    {{- end}}
    </ul>
  </section>
  {{- end}}

  <footer id="contact" data-reveal>
    <section>
      <h2>Contact</h2>
      {{- with .Personal.Email}}<p><a href="mailto:{{.}}">{{.}}</a></p>{{end}}
      {{- with .Personal.Phone}}<p>{{.}}</p>{{end}}
      {{- with .Personal.Location}}<p>{{.}}</p>{{end}}
      <ul class="social">
        {{- range .Links}}
        <li><a href="{{.URL}}" target="_blank" rel="noopener">{{.Name}}</a></li>
        {{- end}}
      </ul>
    </section>
  </footer>
</body>
</html>
`))

var errorTmpl = template.Must(template.New("error").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Portfolio unavailable</title></head>
<body>
  <section>
    <h1>Portfolio unavailable</h1>
    <p>{{.Message}}</p>
    <p><a href="/?retry=1">Retry</a></p>
  </section>
</body>
</html>
`))
