// Package ticketmaster is a client for the Ticketmaster Discovery API,
// covering the two calls this application makes: geo-filtered event search
// and single-event lookup.
package ticketmaster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
)

const DefaultBaseURL = "https://app.ticketmaster.com/discovery/v2"

// DefaultPageSize caps the number of events requested per search
const DefaultPageSize = 50

// ErrNotFound is returned when the upstream reports no event for an ID
var ErrNotFound = errors.New("ticketmaster: event not found")

// SearchQuery holds the normalized parameters sent upstream for a search.
// Radius is in miles; the request always carries an explicit unit=miles so
// the upstream contract never depends on a default.
type SearchQuery struct {
	Latitude    float64
	Longitude   float64
	RadiusMiles int
	EventTypes  []string // classification names, comma-joined upstream
	StartDate   string   // calendar date YYYY-MM-DD, inclusive
	EndDate     string   // calendar date YYYY-MM-DD, inclusive
	Size        int      // 0 means DefaultPageSize
}

type Client struct {
	http    *http.Client
	baseURL *url.URL
	apiKey  string
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithBaseURL(raw string) Option {
	return func(c *Client) {
		if u, err := url.Parse(raw); err == nil {
			c.baseURL = u
		}
	}
}

func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("apiKey required")
	}
	u, _ := url.Parse(DefaultBaseURL)
	c := &Client{
		http:    http.DefaultClient,
		baseURL: u,
		apiKey:  apiKey,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// SearchEvents runs a geo-point search. Date bounds expand to the full day:
// the start bound at 00:00:00Z, the end bound at 23:59:59Z.
func (c *Client) SearchEvents(ctx context.Context, q SearchQuery) (*SearchResponse, error) {
	size := q.Size
	if size <= 0 {
		size = DefaultPageSize
	}

	params := map[string]string{
		"geoPoint": formatFloat(q.Latitude) + "," + formatFloat(q.Longitude),
		"radius":   strconv.Itoa(q.RadiusMiles),
		"unit":     "miles",
		"size":     strconv.Itoa(size),
	}
	if len(q.EventTypes) > 0 {
		params["classificationName"] = strings.Join(q.EventTypes, ",")
	}
	if q.StartDate != "" {
		params["startDateTime"] = q.StartDate + "T00:00:00Z"
	}
	if q.EndDate != "" {
		params["endDateTime"] = q.EndDate + "T23:59:59Z"
	}

	var resp SearchResponse
	if err := c.doJSON(ctx, "events.json", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetEvent fetches a single event by its upstream identifier.
// Returns ErrNotFound when the upstream reports 404.
func (c *Client) GetEvent(ctx context.Context, eventID string) (*Event, error) {
	var ev Event
	if err := c.doJSON(ctx, "events/"+url.PathEscape(eventID)+".json", nil, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

func (c *Client) doJSON(ctx context.Context, p string, q map[string]string, out any) error {
	u := *c.baseURL
	u.Path = path.Join(u.Path, p)
	qq := u.Query()
	qq.Set("apikey", c.apiKey)
	for k, v := range q {
		qq.Set(k, v)
	}
	u.RawQuery = qq.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		return json.Unmarshal(body, out)
	case http.StatusNotFound:
		return ErrNotFound
	default:
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("GET %s: %s: %s", p, resp.Status, string(b))
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
