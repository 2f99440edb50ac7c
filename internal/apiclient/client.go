package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bookshelf_cli/config"
	"bookshelf_cli/utils"
)

// Client is the shared gateway to the catalog backend: one base URL, JSON
// content type and the bearer token attached after login. Every domain
// service issues its requests through it.
//
// The token lives in memory; a new process must re-attach it from the session
// store during startup restore. Single writer (the auth service), readers are
// the domain services, all on the UI goroutine.
type Client struct {
	baseUrl   string
	client    *http.Client
	authToken string
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseUrl: strings.TrimRight(cfg.Api.BaseUrl, "/"),
		client:  &http.Client{Timeout: time.Duration(cfg.Api.TimeoutSec) * time.Second},
	}
}

func (c *Client) SetAuthToken(token string) {
	c.authToken = token
}

func (c *Client) ClearAuthToken() {
	c.authToken = ""
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	op := "apiclient.do"
	rqID := utils.GetRequestIDFromCtx(ctx)

	reqUrl := c.baseUrl + path
	if len(query) > 0 {
		reqUrl += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: marshal request body - %w", op, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqUrl, reqBody)
	if err != nil {
		return fmt.Errorf("%s: build request - %w", op, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	slog.Debug("request start", slog.String("rqID", rqID), slog.String("op", op), slog.String("method", method), slog.String("url", reqUrl))

	resp, err := c.client.Do(req)
	if err != nil {
		slog.Error("request failed", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return fmt.Errorf("%s: %s %s - %w", op, method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read response body - %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}

		errResp := errorResponse{}
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			apiErr.Message = errResp.Error
		}

		slog.Error(
			"api error",
			slog.String("rqID", rqID),
			slog.String("op", op),
			slog.String("method", method),
			slog.String("url", reqUrl),
			slog.Int("status", resp.StatusCode),
			slog.String("message", apiErr.Message),
		)
		return apiErr
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			slog.Error("can't unmarshall response", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
			return fmt.Errorf("%s: unmarshal response - %w", op, err)
		}
	}

	slog.Debug("request completed", slog.String("rqID", rqID), slog.String("op", op), slog.Int("status", resp.StatusCode))

	return nil
}
