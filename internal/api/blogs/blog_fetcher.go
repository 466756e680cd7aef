package blogs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/wanderplan/go-travel-planner/internal/types"
)

// blogSource is one curated travel blog the fetcher searches.
type blogSource struct {
	name    string
	baseURL string
}

var defaultBlogSources = []blogSource{
	{name: "hawaii_vacation_guide", baseURL: "https://thehawaiivacationguide.com"},
	{name: "awanderlustforlife", baseURL: "https://www.awanderlustforlife.com"},
	{name: "toeuropeandbeyond", baseURL: "https://www.toeuropeandbeyond.com"},
	{name: "nomadic_matt", baseURL: "https://www.nomadicmatt.com"},
}

const maxArticlesPerSource = 3

// Fetcher retrieves destination-related articles from travel blogs.
type Fetcher interface {
	FetchArticles(ctx context.Context, destination string) ([]types.BlogArticle, error)
}

// HTTPFetcher searches each curated blog's WordPress-style search endpoint
// and pulls plain text out of the matched articles.
type HTTPFetcher struct {
	logger  *slog.Logger
	client  *http.Client
	sources []blogSource
}

// NewHTTPFetcher creates a fetcher with a 30 second request timeout.
func NewHTTPFetcher(logger *slog.Logger) *HTTPFetcher {
	return &HTTPFetcher{
		logger:  logger,
		client:  &http.Client{Timeout: 30 * time.Second},
		sources: defaultBlogSources,
	}
}

// NewHTTPFetcherWithSources is used by tests pointing at local servers.
func NewHTTPFetcherWithSources(sources map[string]string, logger *slog.Logger) *HTTPFetcher {
	f := NewHTTPFetcher(logger)
	f.sources = f.sources[:0]
	for name, base := range sources {
		f.sources = append(f.sources, blogSource{name: name, baseURL: base})
	}
	return f
}

// FetchArticles returns destination-relevant articles across all sources.
// A source failing is logged and skipped; the error is non-nil only when
// every source failed.
func (f *HTTPFetcher) FetchArticles(ctx context.Context, destination string) ([]types.BlogArticle, error) {
	var articles []types.BlogArticle
	var lastErr error

	for _, source := range f.sources {
		found, err := f.fetchFromSource(ctx, source, destination)
		if err != nil {
			lastErr = err
			f.logger.WarnContext(ctx, "blog source unavailable",
				slog.String("source", source.name), slog.Any("error", err))
			continue
		}
		articles = append(articles, found...)
	}

	if len(articles) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return articles, nil
}

func (f *HTTPFetcher) fetchFromSource(ctx context.Context, source blogSource, destination string) ([]types.BlogArticle, error) {
	searchURL := fmt.Sprintf("%s/?s=%s", source.baseURL, url.QueryEscape(destination))
	root, err := f.getHTML(ctx, searchURL)
	if err != nil {
		return nil, err
	}

	links := extractArticleLinks(root, source.baseURL, destination)
	if len(links) > maxArticlesPerSource {
		links = links[:maxArticlesPerSource]
	}

	var articles []types.BlogArticle
	for _, link := range links {
		page, err := f.getHTML(ctx, link.href)
		if err != nil {
			f.logger.DebugContext(ctx, "skipping unreachable article",
				slog.String("url", link.href), slog.Any("error", err))
			continue
		}
		articles = append(articles, types.BlogArticle{
			Title:  link.title,
			URL:    link.href,
			Source: source.name,
			Text:   extractText(page),
		})
	}
	return articles, nil
}

func (f *HTTPFetcher) getHTML(ctx context.Context, rawURL string) (*html.Node, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", "wanderplan/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &types.UpstreamError{Source: "travel-blogs", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &types.UpstreamError{
			Source:     "travel-blogs",
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %d from %s", resp.StatusCode, rawURL),
		}
	}

	root, err := html.Parse(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return nil, &types.UpstreamError{Source: "travel-blogs", Err: fmt.Errorf("parsing html: %w", err)}
	}
	return root, nil
}

type articleLink struct {
	href  string
	title string
}

// extractArticleLinks walks anchors and keeps those whose text or URL
// mentions the destination.
func extractArticleLinks(root *html.Node, baseURL, destination string) []articleLink {
	needle := strings.ToLower(destination)
	slug := strings.ReplaceAll(needle, " ", "-")
	seen := map[string]bool{}
	var links []articleLink

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			var href string
			for _, attr := range n.Attr {
				if attr.Key == "href" {
					href = attr.Val
					break
				}
			}
			title := strings.TrimSpace(nodeText(n))
			if href != "" && title != "" {
				lowTitle := strings.ToLower(title)
				lowHref := strings.ToLower(href)
				if strings.Contains(lowTitle, needle) || strings.Contains(lowHref, slug) {
					full := resolveURL(baseURL, href)
					if full != "" && !seen[full] {
						seen[full] = true
						links = append(links, articleLink{href: full, title: title})
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return links
}

func resolveURL(base, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if ref.IsAbs() {
		return ref.String()
	}
	b, err := url.Parse(base)
	if err != nil {
		return ""
	}
	return b.ResolveReference(ref).String()
}

// extractText flattens a parsed document to whitespace-normalized text,
// skipping script and style content.
func extractText(root *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
