package nav

import (
	"fmt"
	"html/template"
	"io"
)

// DefaultAriaLabel names the navigation landmark when the host does not
// configure one.
const DefaultAriaLabel = "Main navigation"

// partialTemplate is the server-rendered markup for the bottom
// navigation. Exactly the active link carries aria-current="page";
// icons are decorative and hidden from the accessible tree; every
// link's accessible name is its label text.
const partialTemplate = `<nav class="bottom-nav" aria-label="{{.AriaLabel}}">
  <ul class="bottom-nav__list">
{{- range .Items}}
    <li class="bottom-nav__item">
      <a class="bottom-nav__link{{if .Active}} is-active{{end}}" href="{{.URL}}"{{if .Active}} aria-current="page"{{end}}>
        {{- if .Icon}}
        <span class="bottom-nav__icon" aria-hidden="true" data-icon="{{.Icon}}"></span>
        {{- end}}
        <span class="bottom-nav__label">{{.Label}}</span>
        {{- with .Badge}}
        <span class="bottom-nav__badge">{{.String}}</span>
        {{- end}}
      </a>
    </li>
{{- end}}
  </ul>
</nav>
`

// Renderer produces the HTML navigation partial from a resolved item
// list. The template is parsed once at construction; Render is safe for
// concurrent use.
type Renderer struct {
	tmpl      *template.Template
	ariaLabel string
}

// NewRenderer creates a Renderer whose landmark is named ariaLabel.
// An empty label falls back to DefaultAriaLabel.
func NewRenderer(ariaLabel string) *Renderer {
	if ariaLabel == "" {
		ariaLabel = DefaultAriaLabel
	}

	return &Renderer{
		tmpl:      template.Must(template.New("bottomnav").Parse(partialTemplate)),
		ariaLabel: ariaLabel,
	}
}

// Render writes the navigation partial for the given resolved items.
func (r *Renderer) Render(w io.Writer, items []ResolvedItem) error {
	data := struct {
		AriaLabel string
		Items     []ResolvedItem
	}{
		AriaLabel: r.ariaLabel,
		Items:     items,
	}

	if err := r.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render navigation partial: %w", err)
	}

	return nil
}
