package handlers

import (
	"context"

	"golang.org/x/sync/errgroup"

	"urmonov-web/models"
	"urmonov-web/pkg/content"
)

// fetchOne - bo'limning bitta yozuvini alohida so'rov bilan oladi
func fetchOne[T any](g *errgroup.Group, ctx context.Context, c *content.Client, path string, dst **T) {
	g.Go(func() error {
		*dst = content.One[T](c, path).Fetch(ctx).Data
		return nil
	})
}

// fetchList - bo'lim ro'yxatini alohida so'rov bilan oladi
func fetchList[T any](g *errgroup.Group, ctx context.Context, c *content.Client, path string, dst *[]T) {
	g.Go(func() error {
		*dst = content.List[T](c, path).Fetch(ctx).Data
		return nil
	})
}

// Layout - har bir sahifadagi navbar, kontakt bo'limi va footer
type Layout struct {
	NavTitles     []models.NavItem
	NavSocial     *models.Social
	Contact       *models.AboutUs
	ContactSocial *models.Social
	Footer        *models.AboutUs
	FooterSocial  *models.Social
}

// loadLayout - navbar, kontakt va footer o'z ma'lumotini mustaqil oladi
func (h *Handler) loadLayout(g *errgroup.Group, ctx context.Context, l *Layout) {
	// Navbar
	fetchList(g, ctx, h.content, content.PathNavTitles, &l.NavTitles)
	fetchOne(g, ctx, h.content, content.PathSocials, &l.NavSocial)
	// ContactSection
	fetchOne(g, ctx, h.content, content.PathAboutUs, &l.Contact)
	fetchOne(g, ctx, h.content, content.PathSocials, &l.ContactSocial)
	// Footer
	fetchOne(g, ctx, h.content, content.PathAboutUs, &l.Footer)
	fetchOne(g, ctx, h.content, content.PathSocials, &l.FooterSocial)
}

// HomeData - bosh sahifa bo'limlari
type HomeData struct {
	Banner    *models.Banner
	BioAbout  *models.AboutUs
	Biography *models.Biography
	Popular   []models.Service
	Reviews   []models.Review
	Videos    []models.VideoLink
	FAQs      []models.FAQ
}

// PopularCards - /services/popular/ javobidan faqat popular=true
func (d *HomeData) PopularCards() []models.Service {
	return models.PopularOnly(d.Popular)
}

// AboutData - "Biz haqimizda" sahifasi
type AboutData struct {
	StatsAbout *models.AboutUs
	Statistics []models.Statistic
	BioAbout   *models.AboutUs
	Biography  *models.Biography
	YearsBio   *models.Biography
}

// BlogsData - blog ro'yxati
type BlogsData struct {
	Posts []models.BlogPost
}

// BlogData - bitta maqola va boshqa maqolalar
type BlogData struct {
	ID    string
	Post  *models.BlogPost
	Posts []models.BlogPost
}

// Related - joriy maqoladan boshqa maqolalar
func (d *BlogData) Related() []models.BlogPost {
	return models.Others(d.Posts, d.ID)
}

// NewsListData - yangiliklar ro'yxati
type NewsListData struct {
	Items []models.NewsItem
}

// NewsData - bitta yangilik
type NewsData struct {
	ID       string
	Item     *models.NewsItem
	Items    []models.NewsItem
	ShareURL string
}

// Related - joriy yangilikdan boshqa yangiliklar
func (d *NewsData) Related() []models.NewsItem {
	return models.Others(d.Items, d.ID)
}

// Share - ulashish havolalari
func (d *NewsData) Share() []models.ShareLink {
	return models.ShareLinks(d.ShareURL)
}

// ServicesData - xizmatlar sahifasi
type ServicesData struct {
	Services   []models.Service
	SelectedID string
}

// Selected - tanlangan xizmat (bo'sh tanlovda birinchisi)
func (d *ServicesData) Selected() *models.Service {
	return models.FindService(d.Services, d.SelectedID)
}
