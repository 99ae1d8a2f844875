package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/roosce/monday-question/internal/model"
)

const (
	defaultAPIURL  = "https://api.openai.com/v1/chat/completions"
	defaultModel   = "gpt-4o-mini"
	requestTimeout = 30 * time.Second

	questionCount = 3
)

// Client talks to an OpenAI-compatible chat-completions endpoint and turns
// replies into candidate icebreaker questions.
type Client struct {
	apiKey     string
	apiURL     string
	model      string
	httpClient *http.Client
}

// NewClient builds a client for the given endpoint. Empty apiURL/model fall
// back to the defaults.
func NewClient(apiKey, apiURL, modelName string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("missing API key")
	}
	if strings.TrimSpace(apiURL) == "" {
		apiURL = defaultAPIURL
	}
	if strings.TrimSpace(modelName) == "" {
		modelName = defaultModel
	}
	return &Client{
		apiKey:     apiKey,
		apiURL:     apiURL,
		model:      modelName,
		httpClient: &http.Client{Timeout: requestTimeout},
	}, nil
}

// NewClientFromEnv reads MONDAYQ_API_KEY (OPENAI_API_KEY as fallback),
// MONDAYQ_API_URL and MONDAYQ_MODEL. A missing key is an error; callers are
// expected to fall back to the built-in question list.
func NewClientFromEnv() (*Client, error) {
	key := os.Getenv("MONDAYQ_API_KEY")
	if key == "" {
		key = os.Getenv("OPENAI_API_KEY")
	}
	return NewClient(key, os.Getenv("MONDAYQ_API_URL"), os.Getenv("MONDAYQ_MODEL"))
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponseChoice struct {
	Message chatMessage `json:"message"`
}

type chatResponse struct {
	Choices []chatResponseChoice `json:"choices"`
}

// BuildPrompt constructs the generation prompt from the best-rated history
// entries. Seed may be empty on a fresh install.
func BuildPrompt(seed []model.HistoryEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Suggest %d new icebreaker questions for a weekly team meeting.\n", questionCount)
	b.WriteString("Reply with exactly one question per line and nothing else: no numbering, no commentary.\n")
	if len(seed) > 0 {
		b.WriteString("These past questions were rated highest by the team, so aim for a similar feel:\n")
		for _, e := range seed {
			fmt.Fprintf(&b, "- %s (rated %d/10)\n", e.Question, e.Rating)
		}
	}
	return b.String()
}

// GenerateQuestions asks the endpoint for new candidate questions seeded by
// the given history entries. Any failure (transport, auth, non-2xx, or a
// reply that does not contain exactly the expected number of lines) is
// returned as an error; partial results are never returned.
func (c *Client) GenerateQuestions(ctx context.Context, seed []model.HistoryEntry) ([]string, error) {
	reqBody := chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: BuildPrompt(seed)}},
	}
	reqJSON, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(reqJSON))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("generation request failed with status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Choices) == 0 {
		return nil, errors.New("no choices in generation response")
	}

	return parseQuestions(parsed.Choices[0].Message.Content)
}

// parseQuestions expects exactly questionCount non-empty lines.
func parseQuestions(content string) ([]string, error) {
	var questions []string
	for _, line := range strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		questions = append(questions, line)
	}
	if len(questions) != questionCount {
		return nil, fmt.Errorf("expected %d questions, got %d", questionCount, len(questions))
	}
	return questions, nil
}
