package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/jobwire/jobwire/pkg/api"
)

const defaultListTimeout = 10 * time.Second

// Client is the HTTP client for the portal backend. All endpoints live
// under {baseURL}/api; bearer tokens are passed per call, never stored
// here.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	listTimeout time.Duration
	cacheBust   atomic.Int64
}

// NewClient creates a new API client. listTimeout bounds user-list
// enumeration calls; values <= 0 fall back to 10 seconds.
func NewClient(baseURL string, listTimeout time.Duration) *Client {
	if listTimeout <= 0 {
		listTimeout = defaultListTimeout
	}
	return &Client{
		baseURL:     baseURL,
		listTimeout: listTimeout,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Keep the Authorization header across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// bustCache appends a monotonically increasing _t query parameter so
// intermediate caches cannot serve a stale profile after a mutation.
func (c *Client) bustCache(path string) string {
	now := time.Now().UnixMilli()
	for {
		prev := c.cacheBust.Load()
		next := now
		if next <= prev {
			next = prev + 1
		}
		if c.cacheBust.CompareAndSwap(prev, next) {
			sep := "?"
			if strings.ContainsRune(path, '?') {
				sep = "&"
			}
			return path + sep + "_t=" + strconv.FormatInt(next, 10)
		}
	}
}

// listContext bounds a list-enumeration call. Expiry surfaces as
// context.DeadlineExceeded, which callers classify as degraded, never
// as an auth rejection.
func (c *Client) listContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.listTimeout)
}

// doRequest performs an HTTP request and classifies the response.
// A 401/403 wraps ErrUnauthorized; any other non-2xx becomes a
// *StatusError; transport failures are returned wrapped so callers can
// inspect timeouts.
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result any) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.setCommonHeaders(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := classifyStatus(resp.StatusCode, respBody); err != nil {
		return err
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// doUpload performs a multipart file upload.
func (c *Client) doUpload(ctx context.Context, path, token, fieldName, fileName string, file io.Reader, result any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to copy file contents: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.setCommonHeaders(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := classifyStatus(resp.StatusCode, respBody); err != nil {
		return err
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func (c *Client) setCommonHeaders(req *http.Request, token string) {
	req.Header.Set("X-Request-Id", uuid.New().String())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func classifyStatus(statusCode int, body []byte) error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}

	message := ""
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		message = errResp.Message
		if message == "" {
			message = errResp.Error
		}
	}

	if statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		if message != "" {
			return fmt.Errorf("%w (%d): %s", ErrUnauthorized, statusCode, message)
		}
		return fmt.Errorf("%w (%d)", ErrUnauthorized, statusCode)
	}

	return &StatusError{StatusCode: statusCode, Message: message}
}
