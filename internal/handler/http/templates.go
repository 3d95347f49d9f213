package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-notice-web/internal/app"
	"github.com/yosssi/gohtml"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageHome    = "home.html"
	pageNotices = "notices.html"
)

// shared by every page
var layoutFiles = []string{"templates/layout.html", "templates/partials.html"}

var templateFuncs = template.FuncMap{
	"formatDate":     formatDate,
	"isDownloadable": isDownloadable,
	"percent":        percent,
	"isFalse":        isFalse,
}

// pageRenderer executes the embedded page templates. Each page is parsed
// into its own set together with the layout, so "content" can be defined
// once per page.
type pageRenderer struct {
	pages map[string]*template.Template

	// pretty re-indents the rendered HTML, used in development mode
	pretty bool
}

func newPageRenderer(pretty bool) (*pageRenderer, error) {
	pages := make(map[string]*template.Template)
	for _, page := range []string{pageHome, pageNotices} {
		files := append(append([]string{}, layoutFiles...), "templates/"+page)
		tmpl, err := template.New(page).Funcs(templateFuncs).ParseFS(templateFS, files...)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrParsingTemplate, page, err)
		}
		pages[page] = tmpl
	}

	return &pageRenderer{pages: pages, pretty: pretty}, nil
}

// render writes the page only after it has been executed completely, so a
// template error never leaves a half-written document behind.
func (p *pageRenderer) render(w http.ResponseWriter, status int, page string, data any) error {
	tmpl, ok := p.pages[page]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPage, page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("%w %s: %w", ErrRenderingTemplate, page, err)
	}

	out := buf.Bytes()
	if p.pretty {
		out = gohtml.FormatBytes(out)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := w.Write(out)
	return err
}

var kst = time.FixedZone("KST", 9*60*60)

// accepted by formatDate; values without a zone are read as Korean time
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// formatDate renders a backend timestamp the way the ko-KR locale prints
// dates, e.g. "2024. 1. 15. 오후 3:04:05". It accepts string, *string and
// time.Time values.
func formatDate(v any) string {
	var raw string
	switch d := v.(type) {
	case time.Time:
		return formatKoreanTime(d)
	case string:
		raw = d
	case *string:
		if d != nil {
			raw = *d
		}
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return app.MsgNoDate
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, kst); err == nil {
			return formatKoreanTime(t)
		}
	}
	return app.MsgInvalidDate
}

func formatKoreanTime(t time.Time) string {
	t = t.In(kst)

	period := "오전"
	if t.Hour() >= 12 {
		period = "오후"
	}
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}

	return fmt.Sprintf("%d. %d. %d. %s %d:%02d:%02d",
		t.Year(), int(t.Month()), t.Day(), period, hour, t.Minute(), t.Second())
}

// isDownloadable reports whether an attachment link can be offered as a
// download: a non-blank http or https URL.
func isDownloadable(link string) bool {
	if strings.TrimSpace(link) == "" {
		return false
	}
	return strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://")
}

func percent(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", *v)
}

func isFalse(v *bool) bool {
	return v != nil && !*v
}
