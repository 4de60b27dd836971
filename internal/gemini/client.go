// Package gemini is the outbound client for the generative-AI endpoint. All
// calls are single-shot generateContent requests with a strict JSON response
// schema: no retries, no deduplication, cancellation via the context.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// User-facing failure values, one per operation. Callers surface these
// verbatim and treat them as terminal for the triggering action.
var (
	ErrClassification = errors.New("failed to analyze the image")
	ErrRecommendation = errors.New("failed to generate an outfit")
	ErrWeather        = errors.New("could not fetch weather information")
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// CallRecorder observes the outcome of each remote call. A nil recorder
// disables observation.
type CallRecorder interface {
	RecordGeminiCall(operation string, duration time.Duration, success bool)
}

// Client calls the Gemini generateContent API.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	recorder   CallRecorder
}

// NewClient creates a Gemini client. baseURL may be empty, in which case the
// public endpoint is used.
func NewClient(baseURL, apiKey, modelName string, recorder CallRecorder) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      modelName,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		recorder:   recorder,
	}
}

type httpError struct {
	StatusCode int
	Body       string
}

func (e *httpError) Error() string {
	return fmt.Sprintf("gemini http %d: %s", e.StatusCode, e.Body)
}

// Wire types for the generateContent request and response.

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   *schema `json:"responseSchema,omitempty"`
}

type schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
	Properties  map[string]*schema `json:"properties,omitempty"`
	Items       *schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// generate performs one generateContent call and unmarshals the candidate
// text into out.
func (c *Client) generate(ctx context.Context, operation string, req generateRequest, out any) error {
	start := time.Now()
	err := c.doGenerate(ctx, req, out)
	if c.recorder != nil {
		c.recorder.RecordGeminiCall(operation, time.Since(start), err == nil)
	}
	if err != nil {
		slog.Warn("gemini call failed", "operation", operation, "error", err)
	}
	return err
}

func (c *Client) doGenerate(ctx context.Context, genReq generateRequest, out any) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(genReq); err != nil {
		return err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &httpError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var genResp generateResponse
	if err := json.Unmarshal(raw, &genResp); err != nil {
		return fmt.Errorf("decoding response envelope: %w", err)
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return errors.New("response contains no candidates")
	}

	text := genResp.Candidates[0].Content.Parts[0].Text
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("decoding candidate JSON: %w", err)
	}
	return nil
}
