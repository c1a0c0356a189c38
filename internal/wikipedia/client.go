package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// Client fetches articles and page images from the MediaWiki action API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	userAgent   string
	rateLimiter *rateLimiter
}

type rateLimiter struct {
	mu       sync.Mutex
	lastCall time.Time
	interval time.Duration
}

func newRateLimiter(interval time.Duration) *rateLimiter {
	return &rateLimiter{interval: interval}
}

func (r *rateLimiter) wait() {
	r.mu.Lock()
	defer r.mu.Unlock()

	since := time.Since(r.lastCall)
	if since < r.interval {
		time.Sleep(r.interval - since)
	}
	r.lastCall = time.Now()
}

// NewClient creates a Wikipedia API client with rate limiting.
func NewClient(baseURL, userAgent string) *Client {
	if baseURL == "" {
		baseURL = "https://en.wikipedia.org"
	}
	if userAgent == "" {
		userAgent = "awardpool/1.0 (https://github.com/awardpool/awardpool)"
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL:     baseURL,
		userAgent:   userAgent,
		rateLimiter: newRateLimiter(200 * time.Millisecond),
	}
}

type parseResponse struct {
	Parse struct {
		Title    string `json:"title"`
		Wikitext string `json:"wikitext"`
	} `json:"parse"`
	Error *struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

// GetPage fetches an article by title and returns its structured form.
// A missing page or transport failure yields an *APIError.
func (c *Client) GetPage(ctx context.Context, title string) (*Page, error) {
	c.rateLimiter.wait()

	params := url.Values{}
	params.Set("action", "parse")
	params.Set("page", title)
	params.Set("prop", "wikitext")
	params.Set("format", "json")
	params.Set("formatversion", "2")
	params.Set("redirects", "1")

	var result parseResponse
	if err := c.get(ctx, params, &result); err != nil {
		return nil, err
	}

	if result.Error != nil {
		if result.Error.Code == "missingtitle" || result.Error.Code == "invalidtitle" {
			return nil, &APIError{Message: fmt.Sprintf("page %q not found", title), Err: ErrPageNotFound}
		}
		return nil, &APIError{Message: result.Error.Info}
	}
	if result.Parse.Wikitext == "" {
		return nil, &APIError{Message: fmt.Sprintf("page %q returned no content", title)}
	}

	return ParseWikitext(result.Parse.Title, result.Parse.Wikitext), nil
}

type pageImageResponse struct {
	Query struct {
		Pages []struct {
			Thumbnail *struct {
				Source string `json:"source"`
			} `json:"thumbnail"`
		} `json:"pages"`
	} `json:"query"`
}

// GetImageURL returns the representative thumbnail URL for an article, or
// an empty string when the article has none.
func (c *Client) GetImageURL(ctx context.Context, title string) (string, error) {
	c.rateLimiter.wait()

	params := url.Values{}
	params.Set("action", "query")
	params.Set("titles", title)
	params.Set("prop", "pageimages")
	params.Set("piprop", "thumbnail")
	params.Set("pithumbsize", "500")
	params.Set("format", "json")
	params.Set("formatversion", "2")
	params.Set("redirects", "1")

	var result pageImageResponse
	if err := c.get(ctx, params, &result); err != nil {
		return "", err
	}

	for _, page := range result.Query.Pages {
		if page.Thumbnail != nil {
			return page.Thumbnail.Source, nil
		}
	}
	return "", nil
}

func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	endpoint := fmt.Sprintf("%s/w/api.php?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &APIError{Message: "create request", Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &APIError{Message: fmt.Sprintf("unexpected status: %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Message: "decode response", Err: err}
	}
	return nil
}
