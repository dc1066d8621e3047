package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urmonov-web/pkg/locale"
)

func TestBannerFallsBackToEnglish(t *testing.T) {
	b := &Banner{TitleUZ: "Salom", TitleRU: "Привет", TitleEN: "Hello"}

	assert.Equal(t, "Salom", b.GetTitle(locale.Uzbek))
	assert.Equal(t, "Привет", b.GetTitle(locale.Russian))
	assert.Equal(t, "Hello", b.GetTitle(locale.English))
	assert.Equal(t, "Hello", b.GetTitle(locale.Locale("de")))

	var nilBanner *Banner
	assert.Equal(t, "", nilBanner.GetTitle(locale.Uzbek))
}

func TestDecodeLocalizedFields(t *testing.T) {
	body := `{"uuid":"a1","image":"media/x.jpg","title_uz":"Uz","title_ru":"Ru","title_en":"En",
		"description_uz":"<p>uz</p>","description_ru":"<p>ru</p>","description_en":"<p>en</p>",
		"date":"2025-01-02","hashtags":[{"title_uz":"sog'liq","title_ru":"здоровье","title_en":"health"}]}`

	var item NewsItem
	require.NoError(t, json.Unmarshal([]byte(body), &item))

	assert.Equal(t, "a1", item.ID())
	assert.Equal(t, "Ru", item.GetTitle(locale.Russian))
	assert.Equal(t, "<p>en</p>", string(item.GetDescription(locale.English)))
	require.Len(t, item.Hashtags, 1)
	assert.Equal(t, "здоровье", item.Hashtags[0].GetTitle(locale.Russian))
}

func TestServiceSummaryStripsTags(t *testing.T) {
	s := Service{DescriptionEN: "<p>Laser <b>therapy</b></p>"}
	assert.Equal(t, "Laser therapy", s.GetSummary(locale.English))
	assert.Equal(t, "<p>Laser <b>therapy</b></p>", string(s.GetDescription(locale.English)))

	long := Service{DescriptionUZ: strings.Repeat("a", ServiceSummaryLength+10)}
	assert.Len(t, []rune(long.GetSummary(locale.Uzbek)), ServiceSummaryLength+3)
}

func TestFindService(t *testing.T) {
	services := []Service{{UUID: "a"}, {UUID: "b", Popular: true}}

	assert.Equal(t, "b", FindService(services, "b").UUID)
	assert.Equal(t, "a", FindService(services, "").UUID)
	assert.Nil(t, FindService(services, "missing"))
	assert.Nil(t, FindService(nil, "a"))

	popular := PopularOnly(services)
	require.Len(t, popular, 1)
	assert.Equal(t, "b", popular[0].UUID)
}

func TestOthers(t *testing.T) {
	posts := []BlogPost{
		{Post: Post{UUID: "1"}},
		{Post: Post{UUID: "2"}},
		{Post: Post{UUID: "3"}},
	}

	rest := Others(posts, "2")
	require.Len(t, rest, 2)
	assert.Equal(t, "1", rest[0].UUID)
	assert.Equal(t, "3", rest[1].UUID)
}

func TestCardTitle(t *testing.T) {
	p := &Post{TitleEN: "A very long blog title that certainly exceeds fifty characters"}
	assert.Len(t, []rune(p.GetCardTitle(locale.English)), CardTitleLength)
}

func TestMapSrc(t *testing.T) {
	a := &AboutUs{MapEmbed: `<iframe src="https://yandex.uz/map-widget/v1/?ll=69.2" width="600"></iframe>`}
	assert.Equal(t, "https://yandex.uz/map-widget/v1/?ll=69.2", a.MapSrc())
	assert.Equal(t, "", (&AboutUs{MapEmbed: "<div></div>"}).MapSrc())

	var nilAbout *AboutUs
	assert.Equal(t, "", nilAbout.MapSrc())
	assert.Equal(t, "", nilAbout.GetAddress(locale.Russian))
}

func TestVideoID(t *testing.T) {
	tests := []struct {
		link string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/abc-_12", "abc-_12"},
		{"youtube.com/watch?v=XYZ", "XYZ"},
		{"https://vimeo.com/123", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.link, func(t *testing.T) {
			v := &VideoLink{Link: tt.link}
			assert.Equal(t, tt.want, v.VideoID())
		})
	}

	v := &VideoLink{Link: "https://youtu.be/abc"}
	assert.Equal(t, "https://img.youtube.com/vi/abc/hqdefault.jpg", v.Thumbnail())
	assert.Equal(t, "https://www.youtube.com/embed/abc?autoplay=1", v.EmbedURL())
}

func TestNavTitle(t *testing.T) {
	items := []NavItem{
		{Type: "blog", TitleUZ: "Maqolalar", TitleEN: "Articles"},
		{Type: "news", TitleEN: "Latest"},
	}
	assert.Equal(t, "Maqolalar", NavTitle(items, "blog", locale.Uzbek))
	assert.Equal(t, "Latest", NavTitle(items, "news", locale.English))
	assert.Equal(t, "", NavTitle(items, "about", locale.English))
}

func TestNavItemHref(t *testing.T) {
	assert.Equal(t, "/new/n1", (&NavItem{Type: "news", UUID: "n1"}).Href())
	assert.Equal(t, "/blog/b1", (&NavItem{Type: "blog", UUID: "b1"}).Href())
	assert.Equal(t, "/services", (&NavItem{Type: "services", UUID: "x"}).Href())

	n := &NavItem{TitleRU: "Очень длинный заголовок"}
	assert.Equal(t, "Очень длинны", n.GetShortTitle(locale.Russian))
}

func TestShareLinks(t *testing.T) {
	links := ShareLinks("https://example.uz/new/1")
	require.Len(t, links, 6)
	assert.Equal(t, "telegram", links[0].Network)
	assert.Equal(t, "https://t.me/share/url?url=https%3A%2F%2Fexample.uz%2Fnew%2F1", links[0].URL)
}
