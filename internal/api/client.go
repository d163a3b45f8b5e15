// Package api is the OSEEK REST client. One method per backend endpoint,
// no retries, no batching; the HTTP status plus a message string is the whole
// error contract.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/mehmetcc/oseek/internal/config"
	"github.com/mehmetcc/oseek/internal/httpx"
	"go.uber.org/zap"
)

// maxErrorBody caps how much of a failure response we are willing to parse.
const maxErrorBody = 1 << 20 // 1MB

// TokenSource hands out the current bearer token, or "" when logged out.
// The credential store implements it.
type TokenSource interface {
	Token() string
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     *zap.Logger
}

func NewClient(cfg *config.APIConfig, tokens TokenSource, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		tokens: tokens,
		logger: logger,
	}
}

// do runs one JSON request/response round trip. in and out may be nil.
// Transport failures come back wrapped in ErrNetwork; non-2xx responses come
// back as *Error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	resp, err := c.roundTrip(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeFailure(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Warn("undecodable success body",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// download streams a binary response (CV / profile PDFs) into w.
func (c *Client) download(ctx context.Context, path string, w io.Writer) error {
	resp, err := c.roundTrip(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeFailure(resp)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if t := c.tokens.Token(); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request did not reach the server",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return resp, nil
}

func (c *Client) decodeFailure(resp *http.Response) error {
	apiErr := &Error{Status: resp.StatusCode}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err == nil {
		var body httpx.ErrorBody
		if jsonErr := json.Unmarshal(b, &body); jsonErr == nil {
			apiErr.Message = body.Message
			apiErr.MessageCode = body.MessageCode
		}
	}
	if apiErr.Message == "" {
		// no message contract honored, fall back to the status line
		apiErr.Message = fmt.Sprintf("request failed: %s", http.StatusText(resp.StatusCode))
	}
	return apiErr
}
