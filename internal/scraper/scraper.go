package scraper

import (
	"context"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cockroachdb/errors"
	"github.com/pfrederiksen/hockey-fixtures/internal/logger"
)

const (
	UserAgent = "hockey-fixtures-cli/1.0 (github.com/pfrederiksen/hockey-fixtures)"
	Timeout   = 30 * time.Second

	calendarType = "text/calendar"
	htmlType     = "text/html"

	// maxBodySize bounds a single response; a season's feed is well under this.
	maxBodySize = 10 << 20
)

var (
	ErrNotCalendar      = errors.New("not a text/calendar URL")
	ErrNoCalendarLink   = errors.New("no calendar link found on page")
	ErrUnexpectedStatus = errors.New("unexpected status code")
)

// Scraper handles fetching the fixture feed
type Scraper struct {
	client *http.Client
	url    string
}

// New creates a Scraper for the given feed URL. A non-positive timeout uses
// the default.
func New(feedURL string, timeout time.Duration) *Scraper {
	if timeout <= 0 {
		timeout = Timeout
	}
	return &Scraper{
		client: &http.Client{
			Timeout: timeout,
		},
		url: feedURL,
	}
}

// URL returns the configured feed URL.
func (s *Scraper) URL() string {
	return s.url
}

// FetchFeed returns the full text of the calendar feed.
func (s *Scraper) FetchFeed(ctx context.Context) (string, error) {
	body, contentType, err := s.get(ctx, s.url)
	if err != nil {
		return "", err
	}

	switch mediaType(contentType) {
	case calendarType:
		return body, nil
	case htmlType:
	default:
		return "", errors.Wrapf(ErrNotCalendar, "%q is of type %q", s.url, contentType)
	}

	link, err := findCalendarLink(strings.NewReader(body), s.url)
	if err != nil {
		return "", errors.Wrapf(err, "page %q", s.url)
	}

	logger.Debug("Following calendar link", logger.Fields{
		"page": s.url,
		"link": link,
	})

	body, contentType, err = s.get(ctx, link)
	if err != nil {
		return "", err
	}
	if mediaType(contentType) != calendarType {
		return "", errors.Wrapf(ErrNotCalendar, "%q is of type %q", link, contentType)
	}

	return body, nil
}

// get performs a GET and returns the body and Content-Type header.
func (s *Scraper) get(ctx context.Context, target string) (string, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", "", errors.Wrap(err, "creating request")
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", "", errors.Wrapf(err, "unable to read URL %q", target)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", errors.Wrapf(ErrUnexpectedStatus, "%q returned %d", target, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", "", errors.Wrapf(err, "reading %q", target)
	}

	return string(data), resp.Header.Get("Content-Type"), nil
}

// findCalendarLink returns the absolute URL of the first calendar link on an
// HTML page: a <link type="text/calendar"> first, then any anchor to a .ics
// file. webcal:// links are fetched over http.
func findCalendarLink(r io.Reader, pageURL string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", errors.Wrap(err, "parsing HTML")
	}

	href, ok := doc.Find(`link[type="text/calendar"][href]`).First().Attr("href")
	if !ok {
		href, ok = doc.Find(`a[href$=".ics"]`).First().Attr("href")
	}
	href = strings.TrimSpace(href)
	if !ok || href == "" {
		return "", ErrNoCalendarLink
	}

	if strings.HasPrefix(strings.ToLower(href), "webcal://") {
		href = "http://" + href[len("webcal://"):]
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return "", errors.Wrap(err, "parsing page URL")
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", errors.Wrapf(err, "parsing calendar link %q", href)
	}

	return base.ResolveReference(ref).String(), nil
}

func mediaType(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mt
}
