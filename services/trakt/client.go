// Package trakt implements the Trakt v2 API surface used for reconciling
// local media records against the user's remote state: OAuth token exchange,
// batched sync dispatch, and read-side queries.
package trakt

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/avast/retry-go/v4"
	"golang.org/x/time/rate"
)

const (
	apiBaseURL = "https://api.trakt.tv"
	apiVersion = "2"

	// redirectURI is the out-of-band redirect used by the pin flow.
	redirectURI = "urn:ietf:wg:oauth:2.0:oob"
)

// Client is one authenticated session against the API. It owns the custom
// request header set (API key, API version and, after Authenticate, the
// bearer token), so nothing about authentication is process-global. All
// operations are synchronous blocking round trips; the client issues no
// concurrent requests of its own.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	clientID     string
	clientSecret string
	headers      map[string]string
	limiter      *rate.Limiter
}

// NewClient creates a client for the production API.
func NewClient(clientID, clientSecret string) *Client {
	return NewClientWithBaseURL(apiBaseURL, clientID, clientSecret)
}

// NewClientWithBaseURL creates a client against an alternate base URL. Tests
// point this at an httptest server.
func NewClientWithBaseURL(baseURL, clientID, clientSecret string) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		baseURL:      baseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		headers: map[string]string{
			"trakt-api-key":     clientID,
			"trakt-api-version": apiVersion,
		},
		// The API budget is roughly 1000 calls per 5 minutes; pace below it.
		limiter: rate.NewLimiter(rate.Every(300*time.Millisecond), 10),
	}
}

// setHeaders applies the session header set plus content type to a request.
// Login requests skip the Authorization header.
func (c *Client) setHeaders(req *http.Request, isLogin bool) {
	req.Header.Set("Content-Type", "application/json")
	for k, v := range c.headers {
		if isLogin && k == "Authorization" {
			continue
		}
		req.Header.Set(k, v)
	}
}

// do runs one request with pacing and transient-failure retries. Server
// errors (5xx) and 429 are retried; everything else is returned as-is.
func (c *Client) do(req *http.Request, body []byte) (*http.Response, error) {
	if err := c.limiter.Wait(context.Background()); err != nil {
		return nil, err
	}

	var resp *http.Response
	err := retry.Do(
		func() error {
			if body != nil {
				req.Body = io.NopCloser(bytes.NewReader(body))
			}
			var err error
			resp, err = c.httpClient.Do(req)
			if err != nil {
				return err
			}
			if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
				resp.Body.Close()
				return fmt.Errorf("server error: %s", resp.Status)
			}
			return nil
		},
		retry.Attempts(3),
		retry.Delay(time.Second),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// getFromTrakt GETs path and returns the response body.
func (c *Client) getFromTrakt(path string) ([]byte, error) {
	body, _, err := c.getWithHeaders(path)
	return body, err
}

// getWithHeaders GETs path and returns the response body together with the
// response headers, for endpoints that answer pagination metadata out of band.
func (c *Client) getWithHeaders(path string) ([]byte, http.Header, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req, false)

	resp, err := c.do(req, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("trakt api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, nil, fmt.Errorf("trakt get %s failed: %s - %s", path, resp.Status, string(respBody))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read response: %w", err)
	}
	return body, resp.Header, nil
}

// postToTrakt POSTs a JSON body to path and returns the response body.
func (c *Client) postToTrakt(path string, jsonBody []byte, isLogin bool) ([]byte, error) {
	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req, isLogin)

	resp, err := c.do(req, jsonBody)
	if err != nil {
		return nil, fmt.Errorf("trakt api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("trakt post %s failed: %s - %s", path, resp.Status, string(respBody))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}

// deleteFromTrakt issues a DELETE and reports whether the service accepted it.
func (c *Client) deleteFromTrakt(path string) (bool, error) {
	req, err := http.NewRequest(http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return false, fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req, false)

	resp, err := c.do(req, nil)
	if err != nil {
		return false, fmt.Errorf("trakt api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		log.Printf("[trakt] delete %s: %s", path, resp.Status)
		return false, nil
	}
	return true, nil
}

// readPageMeta extracts pagination metadata from a response header set. A
// paginated response without valid metadata is indistinguishable from total
// failure at this layer, so the caller fails the whole fetch. Kept in one
// place on purpose: if that coupling is ever relaxed, this is the only spot
// to change.
func readPageMeta(headers http.Header) (totalPages, totalItems int, err error) {
	totalPages, err = strconv.Atoi(headers.Get("X-Pagination-Page-Count"))
	if err != nil {
		return 0, 0, fmt.Errorf("bad X-Pagination-Page-Count header: %w", err)
	}
	totalItems, err = strconv.Atoi(headers.Get("X-Pagination-Item-Count"))
	if err != nil {
		return 0, 0, fmt.Errorf("bad X-Pagination-Item-Count header: %w", err)
	}
	return totalPages, totalItems, nil
}
