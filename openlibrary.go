package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Book is one search hit as the cards display it
type Book struct {
	Key              string   // Work key, e.g. "/works/OL45804W"
	Title            string   // Book title
	Authors          []string // Author names in response order
	FirstPublishYear *int     // nil when Open Library has no year
	CoverID          *int     // nil when the book has no cover
}

// Author returns the first listed author
func (b Book) Author() string {
	if len(b.Authors) == 0 || b.Authors[0] == "" {
		return "Unknown Author"
	}
	return b.Authors[0]
}

// Year returns the first publish year for display
func (b Book) Year() string {
	if b.FirstPublishYear == nil || *b.FirstPublishYear == 0 {
		return "N/A"
	}
	return strconv.Itoa(*b.FirstPublishYear)
}

// Cover returns the cover id when the book has a usable one.
// Open Library uses 0 as well as a missing field for "no cover".
func (b Book) Cover() (int, bool) {
	if b.CoverID == nil || *b.CoverID == 0 {
		return 0, false
	}
	return *b.CoverID, true
}

// WorkDetails is the subset of a work record the details view shows
type WorkDetails struct {
	Key         string
	Title       string
	Description string
	Subjects    []string
}

// ============================================================================
// WIRE FORMAT
// ============================================================================

type searchResponse struct {
	Docs *[]searchDoc `json:"docs"` // nil when the body has no docs array
}

type searchDoc struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name"`
	FirstPublishYear *int     `json:"first_publish_year"`
	CoverI           *int     `json:"cover_i"`
}

type workResponse struct {
	Key         string      `json:"key"`
	Title       string      `json:"title"`
	Description textOrValue `json:"description"`
	Subjects    []string    `json:"subjects"`
}

// textOrValue accepts both "text" and {"type": "/type/text", "value": "text"}
type textOrValue string

func (t *textOrValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = textOrValue(s)
		return nil
	}
	var obj struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("description: %w", err)
	}
	*t = textOrValue(obj.Value)
	return nil
}

// ============================================================================
// CLIENT
// ============================================================================

// Client talks to the Open Library search and works endpoints
type Client struct {
	http      *http.Client
	baseURL   string
	coversURL string
	userAgent string
	log       *logrus.Logger
}

// NewClient builds a client from the config.
// A zero RequestTimeout leaves requests unbounded.
func NewClient(cfg Config, log *logrus.Logger) *Client {
	return &Client{
		http:      &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:   strings.TrimRight(cfg.APIURL, "/"),
		coversURL: strings.TrimRight(cfg.CoversURL, "/"),
		userAgent: cfg.UserAgent,
		log:       log,
	}
}

// SearchByTitle runs a title search and keeps the first limit docs in
// response order. A limit of zero or less keeps everything.
func (c *Client) SearchByTitle(ctx context.Context, query string, limit int) ([]Book, error) {
	endpoint := c.baseURL + "/search.json?title=" + url.QueryEscape(query)

	entry := c.log.WithFields(logrus.Fields{"query": query, "limit": limit})
	defer track(entry, "search")()

	var resp searchResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		entry.WithError(err).Warn("search failed")
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	if resp.Docs == nil {
		err := errors.New("decode response: missing docs")
		entry.WithError(err).Warn("search failed")
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	docs := *resp.Docs
	if limit > 0 && len(docs) > limit {
		docs = docs[:limit]
	}

	books := make([]Book, 0, len(docs))
	for _, d := range docs {
		books = append(books, Book{
			Key:              d.Key,
			Title:            d.Title,
			Authors:          d.AuthorName,
			FirstPublishYear: d.FirstPublishYear,
			CoverID:          d.CoverI,
		})
	}
	entry.WithField("results", len(books)).Info("search settled")
	return books, nil
}

// Work fetches the work record behind a search hit
func (c *Client) Work(ctx context.Context, key string) (WorkDetails, error) {
	if !strings.HasPrefix(key, "/works/") {
		return WorkDetails{}, fmt.Errorf("not a work key: %q", key)
	}

	entry := c.log.WithField("work", key)
	defer track(entry, "work lookup")()

	var resp workResponse
	if err := c.getJSON(ctx, c.baseURL+key+".json", &resp); err != nil {
		entry.WithError(err).Warn("work lookup failed")
		return WorkDetails{}, fmt.Errorf("work %s: %w", key, err)
	}

	return WorkDetails{
		Key:         resp.Key,
		Title:       resp.Title,
		Description: string(resp.Description),
		Subjects:    resp.Subjects,
	}, nil
}

// CoverURL returns the cover image URL for a cover id.
// Size is one of "S", "M" or "L".
func (c *Client) CoverURL(id int, size string) string {
	return fmt.Sprintf("%s/b/id/%d-%s.jpg", c.coversURL, id, size)
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	c.log.WithFields(logrus.Fields{
		"url":    endpoint,
		"status": resp.StatusCode,
		"took":   time.Since(start),
	}).Debug("http.request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
