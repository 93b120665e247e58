// Package llm talks to the primary generative service, an OpenAI-compatible
// chat completions endpoint.
package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrUnavailable wraps every failure to obtain a reply from the model, so
// callers can switch to another answer source.
var ErrUnavailable = errors.New("generative service unavailable")

// DefaultSystemPrompt frames the model as the nutrition assistant.
const DefaultSystemPrompt = "You are a friendly nutrition assistant. Give practical, evidence-based answers about food, " +
	"diet and healthy eating. Keep answers concise and remind users to consult a registered dietitian or doctor " +
	"for personal medical advice."

// Client is a client for a chat completions API.
type Client struct {
	BaseURL      string
	APIKey       string
	Model        string
	SystemPrompt string
	client       *http.Client
}

// NewClient creates a new LLM client. A zero timeout means no client-side limit.
func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:      strings.TrimRight(baseURL, "/"),
		APIKey:       apiKey,
		Model:        model,
		SystemPrompt: DefaultSystemPrompt,
		client:       &http.Client{Timeout: timeout},
	}
}

// Message represents a single message in a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest represents the request payload for chat completions.
type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream,omitempty"`
}

// ChatChoice represents a single choice in the chat response.
type ChatChoice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// ChatResponse represents the response from the chat completions API.
type ChatResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Choices []ChatChoice `json:"choices"`
}

func (c *Client) messages(message string) []Message {
	msgs := make([]Message, 0, 2)
	if c.SystemPrompt != "" {
		msgs = append(msgs, Message{Role: "system", Content: c.SystemPrompt})
	}
	return append(msgs, Message{Role: "user", Content: message})
}

func (c *Client) newRequest(ctx context.Context, payload ChatRequest) (*http.Request, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to send request: %v", ErrUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: bad status %d: %s", ErrUnavailable, resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return resp, nil
}

// Chat sends a chat completion request and returns the first choice.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	req, err := c.newRequest(ctx, ChatRequest{
		Model:    c.Model,
		Messages: c.messages(message),
	})
	if err != nil {
		return "", err
	}

	resp, err := c.do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var chatResp ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrUnavailable, err)
	}

	if len(chatResp.Choices) == 0 || strings.TrimSpace(chatResp.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("%w: no choices returned", ErrUnavailable)
	}

	return chatResp.Choices[0].Message.Content, nil
}

// StreamChat sends a streaming chat completion request.
// It reads Server-Sent Events from the response and calls callback for each content chunk.
func (c *Client) StreamChat(ctx context.Context, message string, callback func(chunk string) error) error {
	req, err := c.newRequest(ctx, ChatRequest{
		Model:    c.Model,
		Messages: c.messages(message),
		Stream:   true,
	})
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	const dataPrefix = "data: "
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, dataPrefix) {
			continue
		}

		data := strings.TrimPrefix(line, dataPrefix)
		if data == "[DONE]" {
			break
		}

		var streamResp struct {
			Choices []struct {
				Delta struct {
					Content string `json:"content"`
				} `json:"delta"`
				FinishReason string `json:"finish_reason"`
			} `json:"choices"`
		}
		if err := json.Unmarshal([]byte(data), &streamResp); err != nil {
			// Skip malformed JSON chunks
			continue
		}
		if len(streamResp.Choices) == 0 {
			continue
		}

		if chunk := streamResp.Choices[0].Delta.Content; chunk != "" {
			if err := callback(chunk); err != nil {
				return fmt.Errorf("callback error: %w", err)
			}
		}
		if streamResp.Choices[0].FinishReason != "" {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: failed to read stream: %v", ErrUnavailable, err)
	}

	return nil
}
