package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	reportout "lifeos/internal/modules/report/port/out"
	apperrors "lifeos/internal/platform/errors"
)

const chatModel = "deepseek-chat"

// ChatNarrator calls an OpenAI-compatible chat completions endpoint. Every
// failure mode folds into apperrors.ErrNarrator so the engine treats a dead
// generator as a lost narrative, never as corrupted state.
type ChatNarrator struct {
	apiKey  string
	baseURL string
	timeout time.Duration
	client  *http.Client
}

func NewChatNarrator(apiKey, baseURL string, timeout time.Duration) reportout.Narrator {
	return &ChatNarrator{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		client:  &http.Client{},
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (n *ChatNarrator) Generate(ctx context.Context, prompt string) (string, error) {
	if n.apiKey == "" {
		return "", fmt.Errorf("%w: no api key configured", apperrors.ErrNarrator)
	}
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	body, err := json.Marshal(chatRequest{
		Model: chatModel,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a warm, slightly humorous personal coach writing weekly reviews."},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: encode request: %v", apperrors.ErrNarrator, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", apperrors.ErrNarrator, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+n.apiKey)

	resp, err := n.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrNarrator, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Read a short slice of the body for the error, the full payload is
		// of no use to the caller.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return "", fmt.Errorf("%w: status %d: %s", apperrors.ErrNarrator, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", apperrors.ErrNarrator, err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: empty completion", apperrors.ErrNarrator)
	}
	return parsed.Choices[0].Message.Content, nil
}
