package inkstone

import (
	"encoding/xml"
	"fmt"
	"io"
	"time"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// WriteRSS writes an RSS 2.0 feed of the posts to w. Callers pass a public
// view such as Collection.Published; drafts have no business in a feed.
func WriteRSS(w io.Writer, cfg SiteConfig, posts []*Post) error {
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		postURL := buildURL(cfg.BaseURL, "posts", p.Slug)
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        postURL,
			Description: p.Description,
			PubDate:     p.PubDatetime.Format(time.RFC1123Z),
			GUID:        postURL,
		})
	}

	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       cfg.Title,
			Link:        cfg.BaseURL,
			Description: cfg.Description,
			Items:       items,
		},
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("failed to write feed header: %w", err)
	}
	if err := xml.NewEncoder(w).Encode(feed); err != nil {
		return fmt.Errorf("failed to encode feed: %w", err)
	}
	return nil
}

// WriteSitemap writes a sitemap of the site root plus the given posts to w.
func WriteSitemap(w io.Writer, cfg SiteConfig, posts []*Post) error {
	urls := []sitemapURL{
		{Loc: buildURL(cfg.BaseURL)},
	}
	for _, p := range posts {
		urls = append(urls, sitemapURL{
			Loc:     buildURL(cfg.BaseURL, "posts", p.Slug),
			LastMod: p.PubDatetime.Format("2006-01-02"),
		})
	}

	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("failed to write sitemap header: %w", err)
	}
	if err := xml.NewEncoder(w).Encode(sitemap); err != nil {
		return fmt.Errorf("failed to encode sitemap: %w", err)
	}
	return nil
}
