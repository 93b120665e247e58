package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_llm_client.go -package=mocks nutrition-assistant/internal/service LLMClient
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_retriever.go -package=mocks nutrition-assistant/internal/service Retriever
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chat_service.go -package=mocks -mock_names=ChatService=MockChatService nutrition-assistant/internal/service ChatService

import (
	"context"
	"strings"

	"nutrition-assistant/internal/contextutil"
)

// Reply sources reported in ChatResponse.Source.
const (
	SourceLLM  = "llm"
	SourceFAQ  = "faq"
	SourceNone = "none"
)

// DefaultFallbackMessage is shown when neither the model nor the FAQ can answer.
const DefaultFallbackMessage = "Sorry, I can't answer that right now. Try rephrasing your question, " +
	"or ask about meal plans, protein, hydration or healthy snacks."

// LLMClient is an interface for interacting with an LLM API.
// This interface is defined from the service layer's perspective (consumer-first).
type LLMClient interface {
	// Chat sends a message to the LLM and returns the reply.
	Chat(ctx context.Context, message string) (string, error)
	// StreamChat sends a message to the LLM and streams the reply via callback.
	StreamChat(ctx context.Context, message string, callback func(chunk string) error) error
}

// Retriever returns a stored answer for a query, or false when nothing
// matches confidently.
type Retriever interface {
	Retrieve(query string) (string, bool)
}

// ChatRequest represents a chat request in the domain layer.
type ChatRequest struct {
	Message string `validate:"required"`
}

// ChatResponse represents a chat response in the domain layer.
type ChatResponse struct {
	Reply  string
	Source string
}

// ChatService provides chat functionality.
type ChatService interface {
	// ProcessChat processes a chat request and returns a response.
	ProcessChat(ctx context.Context, req ChatRequest) (ChatResponse, error)
	// StreamChat processes a chat request and streams the response via callback.
	StreamChat(ctx context.Context, req ChatRequest, callback func(chunk string) error) error
}

// Options configures the chat service fallback behavior.
type Options struct {
	// FallbackEnabled answers from the FAQ when the model fails.
	FallbackEnabled bool
	// FallbackMessage replies when the FAQ has no confident match.
	// DefaultFallbackMessage is used when empty.
	FallbackMessage string
}

// chatService implements ChatService.
type chatService struct {
	llmClient LLMClient
	retriever Retriever
	opts      Options
}

// NewChatService creates a new ChatService. llmClient may be nil, in which
// case every request is answered from the retriever.
func NewChatService(llmClient LLMClient, retriever Retriever, opts Options) ChatService {
	if opts.FallbackMessage == "" {
		opts.FallbackMessage = DefaultFallbackMessage
	}
	return &chatService{
		llmClient: llmClient,
		retriever: retriever,
		opts:      opts,
	}
}

func validate(req ChatRequest) error {
	if strings.TrimSpace(req.Message) == "" {
		return &ValidationError{
			Field:   "message",
			Message: "cannot be empty",
		}
	}
	return nil
}

// fallback answers from the retriever. It never fails: a miss yields the
// configured fallback message.
func (s *chatService) fallback(ctx context.Context, message string) ChatResponse {
	logger := contextutil.LoggerFromContext(ctx)

	if s.retriever != nil {
		if answer, ok := s.retriever.Retrieve(message); ok {
			logger.InfoContext(ctx, "answered from FAQ fallback", "message_length", len(message))
			return ChatResponse{Reply: answer, Source: SourceFAQ}
		}
	}
	logger.InfoContext(ctx, "no confident FAQ match", "message_length", len(message))
	return ChatResponse{Reply: s.opts.FallbackMessage, Source: SourceNone}
}

// ProcessChat processes a chat request.
func (s *chatService) ProcessChat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := validate(req); err != nil {
		logger.WarnContext(ctx, "empty message in chat request")
		return ChatResponse{}, err
	}

	if s.llmClient == nil {
		return s.fallback(ctx, req.Message), nil
	}

	reply, err := s.llmClient.Chat(ctx, req.Message)
	if err != nil {
		if !s.opts.FallbackEnabled {
			logger.ErrorContext(ctx, "failed to get LLM response", "error", err)
			return ChatResponse{}, WrapError(externalError(err), "failed to get LLM response")
		}
		logger.WarnContext(ctx, "LLM unavailable, using FAQ fallback", "error", err)
		return s.fallback(ctx, req.Message), nil
	}

	logger.InfoContext(ctx, "chat request processed successfully", "message_length", len(req.Message), "reply_length", len(reply))
	return ChatResponse{
		Reply:  reply,
		Source: SourceLLM,
	}, nil
}

// StreamChat processes a chat request and streams the response. If the model
// fails before sending anything the fallback reply is sent as a single chunk;
// a failure mid-stream is returned to the caller.
func (s *chatService) StreamChat(ctx context.Context, req ChatRequest, callback func(chunk string) error) error {
	logger := contextutil.LoggerFromContext(ctx)

	if err := validate(req); err != nil {
		logger.WarnContext(ctx, "empty message in streaming chat request")
		return err
	}

	if s.llmClient == nil {
		return callback(s.fallback(ctx, req.Message).Reply)
	}

	sent := 0
	err := s.llmClient.StreamChat(ctx, req.Message, func(chunk string) error {
		sent++
		return callback(chunk)
	})
	if err == nil {
		logger.InfoContext(ctx, "streaming chat request processed successfully", "message_length", len(req.Message), "chunks", sent)
		return nil
	}

	if sent > 0 || !s.opts.FallbackEnabled {
		logger.ErrorContext(ctx, "failed to stream LLM response", "error", err, "chunks_sent", sent)
		return WrapError(externalError(err), "failed to stream LLM response")
	}

	logger.WarnContext(ctx, "LLM stream unavailable, using FAQ fallback", "error", err)
	return callback(s.fallback(ctx, req.Message).Reply)
}
