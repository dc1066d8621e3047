package content

import (
	"net/url"
	"strings"
)

// Content API endpoints
const (
	PathBanner        = "/banner/"
	PathBiography     = "/biography/"
	PathAboutUs       = "/about-us/"
	PathSocials       = "/socials/"
	PathServices      = "/services/"
	PathPopular       = "/services/popular/"
	PathBlogs         = "/blogs/"
	PathNews          = "/news/"
	PathFAQs          = "/faqs/"
	PathReviews       = "/reviews/"
	PathStatistics    = "/statistics/"
	PathSocialVideos  = "/social-videos/"
	PathNavTitles     = "/nav-title/"
	PathSubmitFAQ     = "/faq/"
	PathSubmitContact = "/contact/"
	PathSubmitReview  = "/review/"
)

// BlogPath - bitta blog maqolasi
func BlogPath(id string) string {
	return "/blog/" + url.PathEscape(id)
}

// NewsPath - bitta yangilik
func NewsPath(id string) string {
	return "/new/" + url.PathEscape(id)
}

// AssetURL resolves a record's relative image path against the asset host.
// The result is not checked for existence.
func AssetURL(host, image string) string {
	return "https://" + host + "/" + strings.TrimPrefix(image, "/")
}
