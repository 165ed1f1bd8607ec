package repository

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"golang-equity-advisor/internal/advisor/config"
	"golang-equity-advisor/internal/advisor/dto"
	"golang-equity-advisor/pkg/decoder"
	"golang-equity-advisor/pkg/logger"
	"golang-equity-advisor/pkg/utils"

	"github.com/PuerkitoBio/goquery"
	"github.com/mauidude/go-readability"
	"github.com/mmcdole/gofeed"
	gocache "github.com/patrickmn/go-cache"
)

type newsRepository struct {
	cfg           *config.Config
	logger        *logger.Logger
	decoder       *decoder.GoogleDecoder
	client        *http.Client
	inmemoryCache *gocache.Cache
}

// NewNewsRepository creates a NewsRepository backed by the Google News RSS
// feed. Harvested items are cached per ticker for a short window so a batch
// run does not refetch the same feed.
func NewNewsRepository(cfg *config.Config, log *logger.Logger, googleDecoder *decoder.GoogleDecoder) NewsRepository {
	return &newsRepository{
		cfg:           cfg,
		logger:        log,
		decoder:       googleDecoder,
		client:        &http.Client{Timeout: 30 * time.Second},
		inmemoryCache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

// FindRecentNews returns up to News.MaxNews cleaned articles for the ticker
// published within the configured window.
func (r *newsRepository) FindRecentNews(ctx context.Context, ticker string) ([]dto.NewsItem, error) {
	if cached, found := r.inmemoryCache.Get(ticker); found {
		return cached.([]dto.NewsItem), nil
	}

	query := strings.TrimSuffix(strings.TrimSuffix(ticker, ".NS"), ".BO")
	feedURL := fmt.Sprintf("https://news.google.com/rss/search?q=%s+stock&hl=en-IN&gl=IN&ceid=IN:en", url.QueryEscape(query))

	fp := gofeed.NewParser()
	feed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSS feed: %w", err)
	}

	sort.Slice(feed.Items, func(i, j int) bool {
		if feed.Items[i].PublishedParsed == nil || feed.Items[j].PublishedParsed == nil {
			return false
		}
		return feed.Items[i].PublishedParsed.After(*feed.Items[j].PublishedParsed)
	})

	cutoff := time.Now().Add(-time.Duration(r.cfg.News.WindowDays) * 24 * time.Hour)

	var items []dto.NewsItem
	for _, item := range feed.Items {
		if !utils.ShouldContinue(ctx, r.logger) {
			break
		}
		if len(items) >= r.cfg.News.MaxNews {
			break
		}
		if item.PublishedParsed == nil || item.PublishedParsed.Before(cutoff) {
			continue
		}

		newsItem, err := r.processFeedItem(ctx, item)
		if err != nil {
			r.logger.Warn("Failed to process news item", logger.ErrorField(err), logger.StringField("title", item.Title))
			continue
		}
		if newsItem == nil {
			continue
		}
		items = append(items, *newsItem)
	}

	r.inmemoryCache.Set(ticker, items, gocache.DefaultExpiration)
	return items, nil
}

func (r *newsRepository) processFeedItem(ctx context.Context, item *gofeed.Item) (*dto.NewsItem, error) {
	decodeResult := r.decoder.DecodeGoogleNewsURL(item.Link, 0)
	if !decodeResult.Status {
		return nil, fmt.Errorf("failed to decode google rss link: %s", decodeResult.Message)
	}
	decodedURL := decodeResult.DecodedURL

	parsedURL, err := url.Parse(decodedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse decoded URL: %w", err)
	}

	if utils.ContainsString(r.cfg.News.BlacklistedDomains, parsedURL.Hostname()) {
		r.logger.Debug("Skip news from blacklisted domain", logger.StringField("domain", parsedURL.Hostname()))
		return nil, nil
	}

	newsItem := &dto.NewsItem{
		Title:       utils.CleanToValidUTF8(item.Title),
		Link:        decodedURL,
		Source:      parsedURL.Hostname(),
		PublishedAt: *item.PublishedParsed,
	}

	content, err := r.extractContent(ctx, decodedURL)
	if err != nil {
		// Headline and source still carry signal without the body.
		r.logger.Debug("Failed to extract article content", logger.ErrorField(err), logger.StringField("url", decodedURL))
		return newsItem, nil
	}
	newsItem.Content = content
	return newsItem, nil
}

func (r *newsRepository) extractContent(ctx context.Context, articleURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, articleURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request for news item: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch news content: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch news content, status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	doc, err := readability.NewDocument(string(body))
	if err != nil {
		return "", fmt.Errorf("failed to parse news content: %w", err)
	}
	docHTML, err := goquery.NewDocumentFromReader(bytes.NewReader([]byte(doc.Content())))
	if err != nil {
		return "", fmt.Errorf("failed to parse news content: %w", err)
	}

	content := strings.TrimSpace(docHTML.Text())
	content = strings.ReplaceAll(content, "\n", "")
	content = strings.ReplaceAll(content, "\t", "")
	content = strings.ReplaceAll(content, "\r", "")
	return utils.SafeText(content), nil
}
