// Package handlers serves the clinic website: server-rendered pages built
// from the content API, the visitor forms and the notification socket.
package handlers

import (
	"io/fs"
	"net/http"

	"urmonov-web/pkg/content"
	"urmonov-web/pkg/forms"
	"urmonov-web/pkg/locale"
	"urmonov-web/pkg/notify"
	"urmonov-web/pkg/ratelimit"
	"urmonov-web/pkg/websocket"
)

// Deps - Handler bog'liqliklari
type Deps struct {
	Content       *content.Client
	AssetHost     string
	Renderer      *Renderer
	Static        fs.FS
	Submitter     *forms.Submitter
	Drafts        *forms.Drafts
	Board         *notify.Board
	Hub           *websocket.Hub
	Limiter       ratelimit.Limiter
	Gate          *Gate
	DefaultLocale locale.Locale
	SecureCookies bool
}

// Handler holds everything the routes need.
type Handler struct {
	content   *content.Client
	assetHost string
	renderer  *Renderer
	static    fs.FS
	submitter *forms.Submitter
	drafts    *forms.Drafts
	board     *notify.Board
	hub       *websocket.Hub
	limiter   ratelimit.Limiter
	gate      *Gate
	defLocale locale.Locale
	secure    bool
}

// New creates a Handler.
func New(d Deps) *Handler {
	if d.Drafts == nil {
		d.Drafts = forms.NewDrafts()
	}
	if d.Gate == nil {
		d.Gate = NewGate()
		d.Gate.OpenNow()
	}
	return &Handler{
		content:   d.Content,
		assetHost: d.AssetHost,
		renderer:  d.Renderer,
		static:    d.Static,
		submitter: d.Submitter,
		drafts:    d.Drafts,
		board:     d.Board,
		hub:       d.Hub,
		limiter:   d.Limiter,
		gate:      d.Gate,
		defLocale: d.DefaultLocale,
		secure:    d.SecureCookies,
	}
}

// Routes - barcha marshrutlar va middleware zanjiri
func (h *Handler) Routes() http.Handler {
	pages := http.NewServeMux()
	pages.HandleFunc("GET /{$}", h.Home)
	pages.HandleFunc("GET /about", h.About)
	pages.HandleFunc("GET /blogs", h.Blogs)
	pages.HandleFunc("GET /blog/{id}", h.BlogDetail)
	pages.HandleFunc("GET /news", h.News)
	pages.HandleFunc("GET /new/{id}", h.NewsDetail)
	pages.HandleFunc("GET /services", h.Services)
	pages.HandleFunc("POST /contact", h.SubmitContact)
	pages.HandleFunc("POST /faq", h.SubmitQuestion)
	pages.HandleFunc("POST /review", h.SubmitReview)
	pages.HandleFunc("/", h.NotFound)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", h.Health)
	if h.static != nil {
		mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(h.static)))
	}
	if h.hub != nil {
		mux.Handle("GET /ws/notifications", websocketHandler(h.hub))
	}
	mux.Handle("/", h.gate.Middleware(h.Splash)(pages))

	return Chain(mux,
		Recover,
		RequestLogger,
		SecureHeaders,
		Locale(h.defLocale),
		Visitor(h.secure),
	)
}

func websocketHandler(hub *websocket.Hub) http.Handler {
	return websocket.HandleWebSocket(hub, VisitorID)
}
