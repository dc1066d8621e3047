package handlers

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"urmonov-web/pkg/apperror"
	"urmonov-web/pkg/content"
	"urmonov-web/pkg/forms"
	"urmonov-web/pkg/locale"
	"urmonov-web/pkg/notify"
	"urmonov-web/pkg/response"
)

// View - har bir sahifa shabloniga beriladigan ma'lumot
type View struct {
	Locale   locale.Locale
	Path     string
	Return   string // forma yuborilgandan keyin qaytiladigan yo'l (query bilan)
	Title    string
	Layout   Layout
	Notice   *notify.Notification
	NoticeMS int64
	Contact  ContactView
	Question QuestionView
	Review   ReviewView
	Body     any
}

// ContactView - kontakt formasi qiymatlari va holati
type ContactView struct {
	Form  forms.ContactForm
	State forms.State
}

// QuestionView - savol formasi
type QuestionView struct {
	Form  forms.QuestionForm
	State forms.State
}

// ReviewView - fikr formasi (rasm qayta ko'rsatilmaydi)
type ReviewView struct {
	Form  forms.ReviewForm
	State forms.State
}

// LangURL - joriy sahifani boshqa tilda ochish havolasi
func (v *View) LangURL(l locale.Locale) string {
	return v.Path + "?" + locale.LangParam + "=" + l.String()
}

// render fetches the layout and the page's own sections concurrently, then
// executes the page template. A section whose fetch failed renders empty.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, body any, load func(*errgroup.Group, context.Context)) {
	ctx := r.Context()
	v := h.view(r)

	var g errgroup.Group
	h.loadLayout(&g, ctx, &v.Layout)
	if load != nil {
		load(&g, ctx)
	}
	_ = g.Wait()

	v.Body = body
	h.renderer.Render(w, status, page, v)
}

func (h *Handler) view(r *http.Request) *View {
	l := locale.FromContext(r.Context())
	v := &View{
		Locale: l,
		Path:   r.URL.Path,
		Return: r.URL.Path,
		Title:  PageTitle(r.URL.Path, l),
	}
	if r.URL.RawQuery != "" {
		v.Return += "?" + r.URL.RawQuery
	}

	visitor := VisitorID(r)
	if n, ok := h.board.Current(visitor); ok {
		v.Notice = &n
		v.NoticeMS = max(time.Until(n.ExpiresAt).Milliseconds(), 0)
	}

	if d, ok := h.drafts.Take(visitor, forms.KeyContact); ok {
		if f, ok := d.Form.(*forms.ContactForm); ok {
			v.Contact = ContactView{Form: *f, State: d.State}
		}
	}
	if d, ok := h.drafts.Take(visitor, forms.KeyQuestion); ok {
		if f, ok := d.Form.(*forms.QuestionForm); ok {
			v.Question = QuestionView{Form: *f, State: d.State}
		}
	}
	if d, ok := h.drafts.Take(visitor, forms.KeyReview); ok {
		if f, ok := d.Form.(*forms.ReviewForm); ok {
			v.Review = ReviewView{Form: *f, State: d.State}
		}
	}
	return v
}

// Home - bosh sahifa: banner, biografiya, ommabop xizmatlar, fikrlar,
// videolar va savol-javoblar
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	d := &HomeData{}
	h.render(w, r, http.StatusOK, pageHome, d, func(g *errgroup.Group, ctx context.Context) {
		fetchOne(g, ctx, h.content, content.PathBanner, &d.Banner)
		fetchOne(g, ctx, h.content, content.PathAboutUs, &d.BioAbout)
		fetchOne(g, ctx, h.content, content.PathBiography, &d.Biography)
		fetchList(g, ctx, h.content, content.PathPopular, &d.Popular)
		fetchList(g, ctx, h.content, content.PathReviews, &d.Reviews)
		fetchList(g, ctx, h.content, content.PathSocialVideos, &d.Videos)
		fetchList(g, ctx, h.content, content.PathFAQs, &d.FAQs)
	})
}

// About - statistika, biografiya va tajriba yillari
func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	d := &AboutData{}
	h.render(w, r, http.StatusOK, pageAbout, d, func(g *errgroup.Group, ctx context.Context) {
		fetchOne(g, ctx, h.content, content.PathAboutUs, &d.StatsAbout)
		fetchList(g, ctx, h.content, content.PathStatistics, &d.Statistics)
		fetchOne(g, ctx, h.content, content.PathAboutUs, &d.BioAbout)
		fetchOne(g, ctx, h.content, content.PathBiography, &d.Biography)
		fetchOne(g, ctx, h.content, content.PathBiography, &d.YearsBio)
	})
}

// Blogs - blog maqolalari ro'yxati
func (h *Handler) Blogs(w http.ResponseWriter, r *http.Request) {
	d := &BlogsData{}
	h.render(w, r, http.StatusOK, pageBlogs, d, func(g *errgroup.Group, ctx context.Context) {
		fetchList(g, ctx, h.content, content.PathBlogs, &d.Posts)
	})
}

// BlogDetail - /blog/{id}: id to'g'ridan-to'g'ri /blog/{id} so'roviga beriladi
func (h *Handler) BlogDetail(w http.ResponseWriter, r *http.Request) {
	d := &BlogData{ID: r.PathValue("id")}
	h.render(w, r, http.StatusOK, pageBlog, d, func(g *errgroup.Group, ctx context.Context) {
		fetchOne(g, ctx, h.content, content.BlogPath(d.ID), &d.Post)
		fetchList(g, ctx, h.content, content.PathBlogs, &d.Posts)
	})
}

// News - yangiliklar ro'yxati
func (h *Handler) News(w http.ResponseWriter, r *http.Request) {
	d := &NewsListData{}
	h.render(w, r, http.StatusOK, pageNews, d, func(g *errgroup.Group, ctx context.Context) {
		fetchList(g, ctx, h.content, content.PathNews, &d.Items)
	})
}

// NewsDetail - /new/{id}: yangilik, teglar, sana, ulashish va boshqa yangiliklar
func (h *Handler) NewsDetail(w http.ResponseWriter, r *http.Request) {
	d := &NewsData{ID: r.PathValue("id"), ShareURL: absoluteURL(r)}
	h.render(w, r, http.StatusOK, pageNewsItem, d, func(g *errgroup.Group, ctx context.Context) {
		fetchOne(g, ctx, h.content, content.NewsPath(d.ID), &d.Item)
		fetchList(g, ctx, h.content, content.PathNews, &d.Items)
	})
}

// Services - xizmatlar ro'yxati; ?service=<uuid> tanlaydi
func (h *Handler) Services(w http.ResponseWriter, r *http.Request) {
	d := &ServicesData{SelectedID: r.URL.Query().Get("service")}
	h.render(w, r, http.StatusOK, pageServices, d, func(g *errgroup.Group, ctx context.Context) {
		fetchList(g, ctx, h.content, content.PathServices, &d.Services)
	})
}

// NotFound - noma'lum yo'l (JSON so'rovga JSON 404)
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	if wantsJSON(r) {
		l := locale.FromContext(r.Context())
		response.Error(w, r, apperror.NewNotFoundError(locale.T(l, "notFound")))
		return
	}
	h.render(w, r, http.StatusNotFound, pageNotFound, nil, nil)
}

// SplashView - yuklanish sahifasi
type SplashView struct {
	Locale     locale.Locale
	RetryAfter string
}

// Splash - darvoza ochilguncha ko'rsatiladigan loader
func (h *Handler) Splash(w http.ResponseWriter, r *http.Request) {
	h.renderer.RenderSplash(w, SplashView{
		Locale:     locale.FromContext(r.Context()),
		RetryAfter: w.Header().Get("Retry-After"),
	})
}

func absoluteURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.Path
}
