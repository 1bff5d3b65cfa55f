package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Adhya2325/letter-generation/internal/instructions"
	"github.com/Adhya2325/letter-generation/internal/letters"
)

// Client calls the letter generation API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an API client for the given base URL. The request
// timeout is generous because generation spans three model inferences.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Minute},
	}
}

// Types fetches the letter types available for generation.
func (c *Client) Types(ctx context.Context) ([]instructions.LetterType, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/letters/types", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch letter types: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var types []instructions.LetterType
	if err := json.NewDecoder(resp.Body).Decode(&types); err != nil {
		return nil, fmt.Errorf("decode letter types: %w", err)
	}

	return types, nil
}

// Generate posts a letter request and returns the generated letter.
func (c *Client) Generate(ctx context.Context, request letters.Request) (*letters.Letter, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost,
		c.baseURL+"/letters",
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("generate letter: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, apiError(resp)
	}

	var letter letters.Letter
	if err := json.NewDecoder(resp.Body).Decode(&letter); err != nil {
		return nil, fmt.Errorf("decode letter: %w", err)
	}

	return &letter, nil
}

func apiError(resp *http.Response) error {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(data) == 0 {
		return fmt.Errorf("server returned %s", resp.Status)
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error != "" {
		return fmt.Errorf("server returned %s: %s", resp.Status, payload.Error)
	}

	return fmt.Errorf("server returned %s: %s", resp.Status, bytes.TrimSpace(data))
}
