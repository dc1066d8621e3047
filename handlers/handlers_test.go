package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urmonov-web/pkg/content"
	"urmonov-web/pkg/forms"
	"urmonov-web/pkg/locale"
	"urmonov-web/pkg/notify"
	"urmonov-web/pkg/ratelimit"
	"urmonov-web/web"
)

var fixtures = map[string]string{
	content.PathBanner:       `{"image":"/media/banner.jpg","title_uz":"Shifokor","title_ru":"Врач","title_en":"Doctor","subtitle_en":"Urology clinic"}`,
	content.PathBiography:    `{"image":"bio.jpg","experience":"15","title_en":"Dr. Urmonov","description_en":"<p>Twenty years</p>"}`,
	content.PathAboutUs:      `{"phone":"+998770002626","email":"info@example.uz","address_en":"Tashkent","map_embed":"<iframe src=\"https://maps.example/embed\"></iframe>","description_en":"<p>About the clinic</p>"}`,
	content.PathSocials:      `{"telegram":"https://t.me/clinic","instagram":"https://instagram.com/clinic"}`,
	content.PathServices:     `[{"uuid":"s1","title_en":"Consultation","description_en":"<p>First visit</p>"},{"uuid":"s2","title_en":"Surgery","description_en":"<p>Operating room</p>"}]`,
	content.PathPopular:      `[{"uuid":"s1","popular":true,"title_en":"Popular consult"},{"uuid":"s2","popular":false,"title_en":"Hidden service"}]`,
	content.PathBlogs:        `[{"uuid":"b1","image":"b1.jpg","title_en":"First post"},{"uuid":"b2","image":"b2.jpg","title_en":"Second post"}]`,
	"/blog/b1":               `{"uuid":"b1","image":"b1.jpg","title_en":"First post","description_en":"<p>Body one</p>"}`,
	content.PathNews:         `[{"uuid":"n1","title_en":"Opening"},{"uuid":"n2","title_en":"New equipment"}]`,
	"/new/n1":                `{"uuid":"n1","title_en":"Opening","date":"2024-05-01","hashtags":[{"title_en":"clinic"}]}`,
	content.PathFAQs:         `[{"uuid":"f1","question_en":"Do you work on Sunday","answer_en":"No"}]`,
	content.PathReviews:      `[{"uuid":"r1","name":"Aziz","description_en":"Very attentive"}]`,
	content.PathStatistics:   `[{"uuid":"st1","value":"5000","title_en":"Patients"}]`,
	content.PathSocialVideos: `[{"uuid":"v1","link":"https://youtu.be/dQw4w9WgXcQ","title_en":"Interview"}]`,
	content.PathNavTitles:    `[{"uuid":"b2","type":"blog","title_en":"Featured article"}]`,
}

type recordedPost struct {
	Path        string
	ContentType string
	Body        []byte
}

type fakeAPI struct {
	mu     sync.Mutex
	hits   map[string]int
	posts  []recordedPost
	status int
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.hits[r.URL.Path]++
	if r.Method == http.MethodPost {
		body, _ := io.ReadAll(r.Body)
		f.posts = append(f.posts, recordedPost{Path: r.URL.Path, ContentType: r.Header.Get("Content-Type"), Body: body})
		if f.status != 0 {
			w.WriteHeader(f.status)
			return
		}
		w.WriteHeader(http.StatusCreated)
		return
	}

	body, ok := fixtures[r.URL.Path]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, body)
}

func (f *fakeAPI) hitCount(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[path]
}

func (f *fakeAPI) recorded() []recordedPost {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedPost(nil), f.posts...)
}

type testEnv struct {
	api     *fakeAPI
	handler *Handler
	server  http.Handler
	board   *notify.Board
	gate    *Gate
	visitor string
}

func newTestEnv(t *testing.T, limiter ratelimit.Limiter) *testEnv {
	t.Helper()

	api := &fakeAPI{hits: make(map[string]int)}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	client := content.NewClient(srv.URL, 5*time.Second)
	renderer, err := NewRenderer(web.Templates, "assets.example.uz")
	require.NoError(t, err)

	board := notify.NewBoard(time.Minute, nil)
	gate := NewGate()
	gate.OpenNow()

	h := New(Deps{
		Content:       client,
		AssetHost:     "assets.example.uz",
		Renderer:      renderer,
		Submitter:     forms.NewSubmitter(client, nil),
		Board:         board,
		Limiter:       limiter,
		Gate:          gate,
		DefaultLocale: locale.English,
	})

	return &testEnv{
		api:     api,
		handler: h,
		server:  h.Routes(),
		board:   board,
		gate:    gate,
		visitor: uuid.New().String(),
	}
}

func (e *testEnv) do(r *http.Request) *httptest.ResponseRecorder {
	r.AddCookie(&http.Cookie{Name: VisitorCookie, Value: e.visitor})
	rec := httptest.NewRecorder()
	e.server.ServeHTTP(rec, r)
	return rec
}

func (e *testEnv) get(path string) *httptest.ResponseRecorder {
	return e.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (e *testEnv) postForm(path string, values url.Values, accept string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if accept != "" {
		r.Header.Set("Accept", accept)
	}
	return e.do(r)
}

func TestHomeRendersEverySection(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.get("/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, "<h1>Doctor</h1>")
	assert.Contains(t, body, "https://assets.example.uz/media/banner.jpg")
	assert.Contains(t, body, "<p>Twenty years</p>")
	assert.Contains(t, body, "Popular consult")
	assert.NotContains(t, body, "Hidden service")
	assert.Contains(t, body, "Very attentive")
	assert.Contains(t, body, "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg")
	assert.Contains(t, body, "Do you work on Sunday")
	assert.Contains(t, body, `href="/blog/b2"`)
	assert.Contains(t, body, `src="https://maps.example/embed"`)
}

func TestSectionsFetchIndependently(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.get("/")
	require.Equal(t, http.StatusOK, rec.Code)

	// navbar, contact section and footer each fetch socials
	assert.Equal(t, 3, env.api.hitCount(content.PathSocials))
	// contact section, footer and biography each fetch about-us
	assert.Equal(t, 3, env.api.hitCount(content.PathAboutUs))

	env.get("/")
	assert.Equal(t, 6, env.api.hitCount(content.PathSocials))
}

func TestFailedSectionRendersEmpty(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.get("/blog/missing")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
	assert.Contains(t, rec.Body.String(), "First post")
}

func TestLocaleQueryPersistsCookie(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.get("/?lang=ru")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ru", rec.Header().Get("Content-Language"))
	assert.Contains(t, rec.Body.String(), "Врач")

	var found bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == locale.CookieName {
			found = true
			assert.Equal(t, "ru", c.Value)
		}
	}
	assert.True(t, found)
}

func TestVisitorCookieIssued(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := httptest.NewRecorder()
	env.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/about", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var visitor *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == VisitorCookie {
			visitor = c
		}
	}
	require.NotNil(t, visitor)
	_, err := uuid.Parse(visitor.Value)
	assert.NoError(t, err)
	assert.True(t, visitor.HttpOnly)
}

func TestAboutPage(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.get("/about")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "5000")
	assert.Contains(t, body, "Patients")
	assert.Contains(t, body, "15+")
	assert.Contains(t, body, "breadcrumb__current\">About")
}

func TestBlogDetailExcludesCurrentFromRelated(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.get("/blog/b1")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<p>Body one</p>")
	assert.Contains(t, body, `href="/blog/b2"`)
	assert.NotContains(t, body, `href="/blog/b1"`)
	assert.Equal(t, 1, env.api.hitCount("/blog/b1"))
}

func TestNewsDetail(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.get("/new/n1")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "2024-05-01")
	assert.Contains(t, body, "#clinic")
	assert.Contains(t, body, "https://t.me/share/url?url="+url.QueryEscape("http://example.com/new/n1"))
	assert.Contains(t, body, "New equipment")
}

func TestServicesSelection(t *testing.T) {
	env := newTestEnv(t, nil)

	body := env.get("/services").Body.String()
	assert.Contains(t, body, "<p>First visit</p>")

	body = env.get("/services?service=s2").Body.String()
	assert.Contains(t, body, "<p>Operating room</p>")
	assert.NotContains(t, body, "<p>First visit</p>")

	body = env.get("/services?service=unknown").Body.String()
	assert.NotContains(t, body, "<p>First visit</p>")
	assert.NotContains(t, body, "<p>Operating room</p>")
}

func TestUnknownPathIsNotFound(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.get("/no/such/page")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
}

func TestUnknownPathJSON(t *testing.T) {
	env := newTestEnv(t, nil)

	r := httptest.NewRequest(http.MethodGet, "/no/such/page", nil)
	r.Header.Set("Accept", "application/json")
	rec := env.do(r)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.Contains(t, rec.Body.String(), `"code":"NOT_FOUND"`)
	assert.Contains(t, rec.Body.String(), "Page not found")
}

func TestVisitorCookieSecure(t *testing.T) {
	h := Visitor(true)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, VisitorCookie, cookies[0].Name)
	assert.True(t, cookies[0].Secure)
}

func TestSubmitContactSuccess(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.postForm("/contact", url.Values{
		"full_name": {"Ali Valiyev"},
		"phone":     {"+99890123456"},
		"message":   {"Appointment please"},
		"return":    {"/about"},
	}, "")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/about", rec.Header().Get("Location"))

	posts := env.api.recorded()
	require.Len(t, posts, 1)
	assert.Equal(t, content.PathSubmitContact, posts[0].Path)
	assert.Contains(t, posts[0].ContentType, "application/json")

	var sent map[string]string
	require.NoError(t, json.Unmarshal(posts[0].Body, &sent))
	assert.Equal(t, "Ali Valiyev", sent["full_name"])
	assert.Equal(t, "+99890123456", sent["phone"])

	n, ok := env.board.Current(env.visitor)
	require.True(t, ok)
	assert.Equal(t, notify.Success, n.Kind)
	assert.Equal(t, "Sent successfully!", n.Message)

	page := env.get("/about").Body.String()
	assert.Contains(t, page, "notice--success")
	assert.Contains(t, page, "Sent successfully!")
	assert.NotContains(t, page, `class="modal is-open"`)
}

func TestSubmitContactInvalidPhoneKeepsValues(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.postForm("/contact", url.Values{
		"full_name": {"Ali"},
		"phone":     {"12345"},
		"message":   {"Hello"},
		"return":    {"/services"},
	}, "")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Empty(t, env.api.recorded())

	n, ok := env.board.Current(env.visitor)
	require.True(t, ok)
	assert.Equal(t, notify.Error, n.Kind)
	assert.Equal(t, "Invalid phone number format", n.Message)

	page := env.get("/services").Body.String()
	assert.Contains(t, page, `id="contact-modal" class="modal is-open"`)
	assert.Contains(t, page, `value="Ali"`)
	assert.Contains(t, page, `value="12345"`)

	// the draft is consumed by the first page view
	page = env.get("/services").Body.String()
	assert.NotContains(t, page, `value="Ali"`)
}

func TestSubmitQuestionRedirectsToFAQ(t *testing.T) {
	env := newTestEnv(t, nil)

	r := httptest.NewRequest(http.MethodPost, "/faq", strings.NewReader(url.Values{"question": {"Is parking available"}}.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.Header.Set("Referer", "http://example.com/?lang=en")
	rec := env.do(r)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/?lang=en#faq", rec.Header().Get("Location"))

	posts := env.api.recorded()
	require.Len(t, posts, 1)
	assert.Equal(t, content.PathSubmitFAQ, posts[0].Path)
	assert.Contains(t, posts[0].ContentType, "multipart/form-data")
	assert.Contains(t, string(posts[0].Body), "Is parking available")
}

func TestSubmitJSONMode(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.postForm("/contact", url.Values{"full_name": {"Ali"}}, "application/json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "Please fill in all fields", resp.Error.Message)

	rec = env.postForm("/contact", url.Values{
		"full_name": {"Ali"},
		"phone":     {"901234567"},
		"message":   {"Hi"},
	}, "application/json")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestSubmitUpstreamFailure(t *testing.T) {
	env := newTestEnv(t, nil)
	env.api.status = http.StatusInternalServerError

	rec := env.postForm("/contact", url.Values{
		"full_name": {"Ali"},
		"phone":     {"+99890123456"},
		"message":   {"Hi"},
	}, "application/json")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "UPSTREAM_ERROR")
	assert.Len(t, env.api.recorded(), 1)
}

func TestSubmitRateLimited(t *testing.T) {
	env := newTestEnv(t, ratelimit.NewMemoryLimiter(1, time.Hour))
	valid := url.Values{
		"full_name": {"Ali"},
		"phone":     {"+99890123456"},
		"message":   {"Hi"},
	}

	rec := env.postForm("/contact", valid, "application/json")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.postForm("/contact", valid, "application/json")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "RATE_LIMIT_EXCEEDED")
	assert.Len(t, env.api.recorded(), 1)
}

func TestSubmitRateLimitedKeepsValues(t *testing.T) {
	env := newTestEnv(t, ratelimit.NewMemoryLimiter(1, time.Hour))

	rec := env.postForm("/contact", url.Values{
		"full_name": {"Ali"},
		"phone":     {"901234567"},
		"message":   {"Hi"},
		"return":    {"/about"},
	}, "")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Len(t, env.api.recorded(), 1)

	rec = env.postForm("/contact", url.Values{
		"full_name": {"Rustam"},
		"phone":     {"901234568"},
		"message":   {"Second try"},
		"return":    {"/about"},
	}, "")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/about", rec.Header().Get("Location"))
	assert.Len(t, env.api.recorded(), 1)

	n, ok := env.board.Current(env.visitor)
	require.True(t, ok)
	assert.Equal(t, notify.Error, n.Kind)

	page := env.get("/about").Body.String()
	assert.Contains(t, page, `id="contact-modal" class="modal is-open"`)
	assert.Contains(t, page, `value="Rustam"`)
	assert.Contains(t, page, `value="901234568"`)
	assert.Contains(t, page, "Second try")
}

func TestReturnPathKeepsQuery(t *testing.T) {
	env := newTestEnv(t, nil)

	page := env.get("/services?service=s2").Body.String()
	assert.Contains(t, page, `name="return" value="/services?service=s2"`)

	rec := env.postForm("/contact", url.Values{
		"full_name": {"Ali"},
		"phone":     {"12345"},
		"message":   {"Hi"},
		"return":    {"/services?service=s2"},
	}, "")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/services?service=s2", rec.Header().Get("Location"))
}

func TestReturnPathRejectsOtherHosts(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.postForm("/contact", url.Values{"return": {"//evil.example"}}, "")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestSplashUntilGateOpens(t *testing.T) {
	env := newTestEnv(t, nil)
	env.gate = NewGate()
	env.handler.gate = env.gate
	env.server = env.handler.Routes()

	rec := env.get("/")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "Loading...")
	assert.Zero(t, env.api.hitCount(content.PathBanner))

	rec = env.get("/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	env.gate.OpenNow()

	rec = env.get("/")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = env.get("/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"gate_open":true`)
}

func TestGateOpensAfterDelayEvenIfPreloadFails(t *testing.T) {
	g := NewGate()
	g.Start(t.Context(), 10*time.Millisecond, func(ctx context.Context) error {
		return assert.AnError
	})

	select {
	case <-g.Ready():
	case <-time.After(time.Second):
		t.Fatal("gate did not open")
	}
	assert.True(t, g.IsOpen())
}

func TestPageTitle(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/", "Home"},
		{"/about", "About"},
		{"/blogs", "Blog"},
		{"/blog/abc", "Blog"},
		{"/news", "News"},
		{"/new/abc", "News"},
		{"/services", "Services"},
		{"/contacts", "Contacts"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, PageTitle(tt.path, locale.English))
		})
	}
	assert.Equal(t, "Новости", PageTitle("/new/1", locale.Russian))
}

func TestPreloadParsesEveryPage(t *testing.T) {
	r, err := NewRenderer(web.Templates, "assets.example.uz")
	require.NoError(t, err)
	require.NoError(t, r.Preload(context.Background()))

	for _, name := range pageNames {
		_, err := r.page(name)
		assert.NoError(t, err, name)
	}
}
