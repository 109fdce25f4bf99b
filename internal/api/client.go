package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"phrasebot/internal/domain"

	"go.uber.org/zap"
)

// DefaultPageSize is used when a search is requested without a page size
const DefaultPageSize = 10

// Client talks to the language trainer REST API. It performs no caching;
// every call goes to the backend and every response body is validated
// before being trusted.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient creates a REST client for the given base URL
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// itemPageBody is the wire shape of a paginated search response. Some
// backends echo a nextPage hint; it is accepted but ignored, the short
// page rule below is authoritative.
type itemPageBody struct {
	Items    []domain.LanguageItem `json:"items"`
	Total    int                   `json:"total"`
	NextPage *int                  `json:"nextPage,omitempty"`
}

// SearchItems fetches one page of items matching the search text. An empty
// search matches all items. Page is 1-based and defaults to 1; limit
// defaults to DefaultPageSize. The returned page carries a next-page number
// only when it came back full-sized.
func (c *Client) SearchItems(ctx context.Context, search string, page, limit int) (*domain.ItemPage, error) {
	const op = "search items"

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}

	q := url.Values{}
	q.Set("search", search)
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	resp, err := c.get(ctx, c.baseURL+"/items?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Op: op, Status: resp.StatusCode}
	}

	var body itemPageBody
	if err := decodeStrict(resp.Body, &body); err != nil {
		return nil, c.shapeErr(op, err)
	}
	for i := range body.Items {
		if err := body.Items[i].Validate(); err != nil {
			return nil, c.shapeErr(op, err)
		}
	}

	result := &domain.ItemPage{
		Items: body.Items,
		Total: body.Total,
	}
	// A full page is the only signal that more pages may exist
	if len(body.Items) == limit {
		next := page + 1
		result.NextPage = &next
	}
	return result, nil
}

// CreateItem creates a new item. The backend must answer with 201
// specifically; any other status, successful or not, is a failure.
func (c *Client) CreateItem(ctx context.Context, draft domain.ItemDraft) (*domain.LanguageItem, error) {
	const op = "create item"

	if err := draft.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.send(ctx, http.MethodPost, c.baseURL+"/items", draft)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, &StatusError{Op: op, Status: resp.StatusCode}
	}

	return c.decodeItem(op, resp.Body)
}

// UpdateItem applies a partial update to the item with the given id
func (c *Client) UpdateItem(ctx context.Context, id string, update domain.ItemUpdate) (*domain.LanguageItem, error) {
	const op = "update item"

	resp, err := c.send(ctx, http.MethodPut, c.baseURL+"/items/"+url.PathEscape(id), update)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Op: op, Status: resp.StatusCode}
	}

	return c.decodeItem(op, resp.Body)
}

// DeleteItem removes the item with the given id. The backend must answer
// with 204 specifically; a 200 with a body is treated as failure.
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	const op = "delete item"

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/items/"+url.PathEscape(id), nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return &StatusError{Op: op, Status: resp.StatusCode}
	}
	return nil
}

// FetchGuessExercise fetches a fresh multiple-choice question
func (c *Client) FetchGuessExercise(ctx context.Context) (*domain.GuessExercise, error) {
	const op = "fetch guess exercise"

	resp, err := c.get(ctx, c.baseURL+"/exercises/guess")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Op: op, Status: resp.StatusCode}
	}

	var exercise domain.GuessExercise
	if err := decodeStrict(resp.Body, &exercise); err != nil {
		return nil, c.shapeErr(op, err)
	}
	if err := exercise.Validate(); err != nil {
		return nil, c.shapeErr(op, err)
	}
	return &exercise, nil
}

// CheckGuessExercise submits a chosen answer for the given prompt and
// returns the backend's verdict
func (c *Client) CheckGuessExercise(ctx context.Context, content, answer string) (*domain.GuessResult, error) {
	const op = "check guess exercise"

	payload := domain.GuessAnswer{Content: content, Answer: answer}
	resp, err := c.send(ctx, http.MethodPost, c.baseURL+"/exercises/guess", payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Op: op, Status: resp.StatusCode}
	}

	var result domain.GuessResult
	if err := decodeStrict(resp.Body, &result); err != nil {
		return nil, c.shapeErr(op, err)
	}
	if err := result.Validate(); err != nil {
		return nil, c.shapeErr(op, err)
	}
	return &result, nil
}

func (c *Client) get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	return c.http.Do(req)
}

func (c *Client) send(ctx context.Context, method, rawURL string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.http.Do(req)
}

func (c *Client) decodeItem(op string, r io.Reader) (*domain.LanguageItem, error) {
	var item domain.LanguageItem
	if err := decodeStrict(r, &item); err != nil {
		return nil, c.shapeErr(op, err)
	}
	if err := item.Validate(); err != nil {
		return nil, c.shapeErr(op, err)
	}
	return &item, nil
}

func (c *Client) shapeErr(op string, cause error) error {
	c.logger.Warn("Response body failed validation",
		zap.String("op", op),
		zap.Error(cause),
	)
	return &ShapeError{Op: op, Cause: cause}
}

// decodeStrict decodes a JSON body rejecting unknown fields, so a response
// that drifts from the contract fails loudly instead of being half-read
func decodeStrict(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
