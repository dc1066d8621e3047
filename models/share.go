package models

import "net/url"

// ShareLink - ijtimoiy tarmoqda ulashish havolasi
type ShareLink struct {
	Network string
	URL     string
}

// ShareLinks - sahifa manzilini ulashish havolalari
func ShareLinks(pageURL string) []ShareLink {
	u := url.QueryEscape(pageURL)
	return []ShareLink{
		{Network: "telegram", URL: "https://t.me/share/url?url=" + u},
		{Network: "whatsapp", URL: "https://api.whatsapp.com/send?text=" + u},
		{Network: "facebook", URL: "https://www.facebook.com/sharer/sharer.php?u=" + u},
		{Network: "twitter", URL: "https://twitter.com/intent/tweet?url=" + u},
		{Network: "instagram", URL: "https://www.instagram.com/?url=" + u},
		{Network: "tiktok", URL: "https://www.tiktok.com/share?url=" + u},
	}
}
