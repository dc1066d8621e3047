package handlers

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"urmonov-web/pkg/content"
	"urmonov-web/pkg/locale"
	"urmonov-web/pkg/logger"
)

// Sahifa shablonlari (templates/pages/<name>.html)
const (
	pageHome     = "home"
	pageAbout    = "about"
	pageBlogs    = "blogs"
	pageBlog     = "blog"
	pageNews     = "news"
	pageNewsItem = "new"
	pageServices = "services"
	pageNotFound = "notfound"
)

var pageNames = []string{pageHome, pageAbout, pageBlogs, pageBlog, pageNews, pageNewsItem, pageServices, pageNotFound}

// Renderer parses and executes the embedded templates.
type Renderer struct {
	fsys   fs.FS
	funcs  template.FuncMap
	splash *template.Template

	mu    sync.RWMutex
	pages map[string]*template.Template
}

// NewRenderer parses the splash page right away; page templates are parsed
// by Preload or on first use.
func NewRenderer(fsys fs.FS, assetHost string) (*Renderer, error) {
	r := &Renderer{
		fsys:  fsys,
		funcs: templateFuncs(assetHost),
		pages: make(map[string]*template.Template),
	}
	splash, err := template.New("splash.html").Funcs(r.funcs).ParseFS(fsys, "templates/splash.html")
	if err != nil {
		return nil, fmt.Errorf("parse splash: %w", err)
	}
	r.splash = splash
	return r, nil
}

func templateFuncs(assetHost string) template.FuncMap {
	funcs := template.FuncMap{
		"t": locale.T,
		"asset": func(image string) string {
			return content.AssetURL(assetHost, image)
		},
		"locales": locale.All,
	}
	for name, fn := range viewFuncs() {
		funcs[name] = fn
	}
	return funcs
}

// Preload parses every page template concurrently.
func (r *Renderer) Preload(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, name := range pageNames {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, err := r.page(name)
			return err
		})
	}
	return g.Wait()
}

func (r *Renderer) page(name string) (*template.Template, error) {
	r.mu.RLock()
	t, ok := r.pages[name]
	r.mu.RUnlock()
	if ok {
		return t, nil
	}

	t, err := template.New("layout.html").Funcs(r.funcs).ParseFS(r.fsys,
		"templates/layout.html",
		"templates/partials/*.html",
		"templates/pages/"+name+".html",
	)
	if err != nil {
		return nil, fmt.Errorf("parse page %s: %w", name, err)
	}

	r.mu.Lock()
	r.pages[name] = t
	r.mu.Unlock()
	return t, nil
}

// Render executes page name into w with the given status.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) {
	t, err := r.page(name)
	if err != nil {
		logger.Error("Template parse error", zap.String("page", name), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	r.write(w, status, t, "layout", data)
}

// RenderSplash writes the loader page with 503.
func (r *Renderer) RenderSplash(w http.ResponseWriter, data any) {
	r.write(w, http.StatusServiceUnavailable, r.splash, "splash.html", data)
}

func (r *Renderer) write(w http.ResponseWriter, status int, t *template.Template, name string, data any) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		logger.Error("Template execute error", zap.String("template", name), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
