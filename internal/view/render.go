package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"time"

	"villa_site/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

type Options struct {
	// Currency is used when site settings don't name one.
	Currency string
	// WhatsAppMessage prefills chats when settings don't carry one.
	WhatsAppMessage string
	// Now is overridable for tests.
	Now func() time.Time
}

// Renderer owns the parsed templates and the image URL builder.
type Renderer struct {
	img  domain.ImageURLer
	opts Options
	tmpl *template.Template
}

var funcs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}

func New(img domain.ImageURLer, o Options) (*Renderer, error) {
	if o.Currency == "" {
		o.Currency = "USD"
	}
	t, err := template.New("site").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{img: img, opts: o, tmpl: t}, nil
}

func (r *Renderer) now() time.Time {
	if r.opts.Now != nil {
		return r.opts.Now()
	}
	return time.Now()
}

// Fragments are the live-patchable regions, keyed by element id.
const (
	FragNav          = "nav"
	FragRooms        = "rooms"
	FragGallery      = "gallery"
	FragTestimonials = "testimonials"
	FragFAQ          = "faq"
	FragLauncher     = "launcher"
)

func (r *Renderer) execute(w io.Writer, name string, data any) error {
	// Render into a buffer so a template error never leaves half a page.
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func (r *Renderer) RenderPage(w io.Writer, v PageView) error { return r.execute(w, "page", v) }

func (r *Renderer) RenderRoomPage(w io.Writer, v RoomPageView) error {
	return r.execute(w, "room_page", v)
}

// Fragment renders one section by name. A nil view yields empty output.
func (r *Renderer) Fragment(name string, v any) (string, error) {
	var buf bytes.Buffer
	if err := r.execute(&buf, name, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type errorView struct {
	Meta    Meta
	Status  int
	Message string
}

// RenderError writes a minimal standalone error page.
func (r *Renderer) RenderError(w io.Writer, status int, msg string) error {
	m := r.Meta(nil)
	m.Title = fmt.Sprintf("%d | %s", status, m.Title)
	return r.execute(w, "error_page", errorView{Meta: m, Status: status, Message: msg})
}

// Static serves the embedded stylesheet and live client.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
