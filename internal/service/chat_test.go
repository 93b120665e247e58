package service_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"nutrition-assistant/internal/contextutil"
	"nutrition-assistant/internal/llm"
	"nutrition-assistant/internal/service"
	"nutrition-assistant/internal/service/mocks"

	"go.uber.org/mock/gomock"
)

func init() {
	// Set default logger to discard output for cleaner test output
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testContext() context.Context {
	return context.Background()
}

var errModelDown = errors.Join(llm.ErrUnavailable, errors.New("connection refused"))

func TestNewChatService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewChatService(mocks.NewMockLLMClient(ctrl), mocks.NewMockRetriever(ctrl), service.Options{})
	if svc == nil {
		t.Fatal("NewChatService() returned nil")
	}
}

func TestChatService_ProcessChat(t *testing.T) {
	tests := []struct {
		name         string
		req          service.ChatRequest
		opts         service.Options
		mockSetup    func(llmClient *mocks.MockLLMClient, retriever *mocks.MockRetriever)
		wantErr      bool
		checkErrType func(error) bool
		wantReply    string
		wantSource   string
	}{
		{
			name: "successful chat",
			req:  service.ChatRequest{Message: "Is oatmeal healthy?"},
			opts: service.Options{FallbackEnabled: true},
			mockSetup: func(llmClient *mocks.MockLLMClient, retriever *mocks.MockRetriever) {
				llmClient.EXPECT().
					Chat(gomock.Any(), "Is oatmeal healthy?").
					Return("Yes, in moderation.", nil)
			},
			wantReply:  "Yes, in moderation.",
			wantSource: service.SourceLLM,
		},
		{
			name: "empty message",
			req:  service.ChatRequest{Message: "   "},
			opts: service.Options{FallbackEnabled: true},
			mockSetup: func(llmClient *mocks.MockLLMClient, retriever *mocks.MockRetriever) {
				// No mock call expected
			},
			wantErr: true,
			checkErrType: func(err error) bool {
				var validationErr *service.ValidationError
				return errors.As(err, &validationErr) && validationErr.Field == "message"
			},
		},
		{
			name: "LLM error falls back to FAQ",
			req:  service.ChatRequest{Message: "high protein snacks"},
			opts: service.Options{FallbackEnabled: true},
			mockSetup: func(llmClient *mocks.MockLLMClient, retriever *mocks.MockRetriever) {
				llmClient.EXPECT().
					Chat(gomock.Any(), "high protein snacks").
					Return("", errModelDown)
				retriever.EXPECT().
					Retrieve("high protein snacks").
					Return("Greek yogurt and nuts.", true)
			},
			wantReply:  "Greek yogurt and nuts.",
			wantSource: service.SourceFAQ,
		},
		{
			name: "LLM error and no FAQ match",
			req:  service.ChatRequest{Message: "what time is it"},
			opts: service.Options{FallbackEnabled: true, FallbackMessage: "Try again later."},
			mockSetup: func(llmClient *mocks.MockLLMClient, retriever *mocks.MockRetriever) {
				llmClient.EXPECT().
					Chat(gomock.Any(), "what time is it").
					Return("", errModelDown)
				retriever.EXPECT().
					Retrieve("what time is it").
					Return("", false)
			},
			wantReply:  "Try again later.",
			wantSource: service.SourceNone,
		},
		{
			name: "default fallback message",
			req:  service.ChatRequest{Message: "what time is it"},
			opts: service.Options{FallbackEnabled: true},
			mockSetup: func(llmClient *mocks.MockLLMClient, retriever *mocks.MockRetriever) {
				llmClient.EXPECT().Chat(gomock.Any(), gomock.Any()).Return("", errModelDown)
				retriever.EXPECT().Retrieve(gomock.Any()).Return("", false)
			},
			wantReply:  service.DefaultFallbackMessage,
			wantSource: service.SourceNone,
		},
		{
			name: "LLM error with fallback disabled",
			req:  service.ChatRequest{Message: "Hello"},
			opts: service.Options{FallbackEnabled: false},
			mockSetup: func(llmClient *mocks.MockLLMClient, retriever *mocks.MockRetriever) {
				llmClient.EXPECT().
					Chat(gomock.Any(), "Hello").
					Return("", errModelDown)
			},
			wantErr: true,
			checkErrType: func(err error) bool {
				return errors.Is(err, service.ErrExternalService) && errors.Is(err, llm.ErrUnavailable)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			llmClient := mocks.NewMockLLMClient(ctrl)
			retriever := mocks.NewMockRetriever(ctrl)
			tt.mockSetup(llmClient, retriever)
			svc := service.NewChatService(llmClient, retriever, tt.opts)

			resp, err := svc.ProcessChat(testContext(), tt.req)

			if tt.wantErr {
				if err == nil {
					t.Errorf("ProcessChat() expected error, got nil")
					return
				}
				if tt.checkErrType != nil && !tt.checkErrType(err) {
					t.Errorf("ProcessChat() error type mismatch: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ProcessChat() unexpected error: %v", err)
			}
			if resp.Reply != tt.wantReply {
				t.Errorf("ProcessChat() reply = %v, want %v", resp.Reply, tt.wantReply)
			}
			if resp.Source != tt.wantSource {
				t.Errorf("ProcessChat() source = %v, want %v", resp.Source, tt.wantSource)
			}
		})
	}
}

func TestChatService_ProcessChat_WithoutLLM(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	retriever := mocks.NewMockRetriever(ctrl)
	retriever.EXPECT().Retrieve("drink water").Return("Aim for regular water intake.", true)

	svc := service.NewChatService(nil, retriever, service.Options{})
	resp, err := svc.ProcessChat(testContext(), service.ChatRequest{Message: "drink water"})
	if err != nil {
		t.Fatalf("ProcessChat() error = %v", err)
	}
	if resp.Source != service.SourceFAQ {
		t.Errorf("ProcessChat() source = %v, want %v", resp.Source, service.SourceFAQ)
	}
}

func TestChatService_ProcessChat_WithLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	llmClient := mocks.NewMockLLMClient(ctrl)
	retriever := mocks.NewMockRetriever(ctrl)
	svc := service.NewChatService(llmClient, retriever, service.Options{FallbackEnabled: true})

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := contextutil.WithLogger(context.Background(), logger)

	llmClient.EXPECT().Chat(gomock.Any(), "test").Return("", errModelDown)
	retriever.EXPECT().Retrieve("test").Return("answer", true)

	if _, err := svc.ProcessChat(ctx, service.ChatRequest{Message: "test"}); err != nil {
		t.Fatalf("ProcessChat() error = %v", err)
	}
	if !strings.Contains(buf.String(), "using FAQ fallback") {
		t.Errorf("expected fallback to be logged through the context logger, got %q", buf.String())
	}
}

func streamChunks(chunks ...string) func(ctx context.Context, msg string, callback func(chunk string) error) error {
	return func(ctx context.Context, msg string, callback func(chunk string) error) error {
		for _, chunk := range chunks {
			if err := callback(chunk); err != nil {
				return err
			}
		}
		return nil
	}
}

func TestChatService_StreamChat(t *testing.T) {
	tests := []struct {
		name         string
		req          service.ChatRequest
		opts         service.Options
		mockSetup    func(llmClient *mocks.MockLLMClient, retriever *mocks.MockRetriever)
		wantErr      bool
		checkErrType func(error) bool
		chunks       []string
	}{
		{
			name: "successful streaming",
			req:  service.ChatRequest{Message: "Hello"},
			opts: service.Options{FallbackEnabled: true},
			mockSetup: func(llmClient *mocks.MockLLMClient, retriever *mocks.MockRetriever) {
				llmClient.EXPECT().
					StreamChat(gomock.Any(), "Hello", gomock.Any()).
					DoAndReturn(streamChunks("Hello", " ", "world", "!"))
			},
			chunks: []string{"Hello", " ", "world", "!"},
		},
		{
			name: "empty message",
			req:  service.ChatRequest{Message: ""},
			opts: service.Options{FallbackEnabled: true},
			mockSetup: func(llmClient *mocks.MockLLMClient, retriever *mocks.MockRetriever) {
				// No mock call expected
			},
			wantErr: true,
			checkErrType: func(err error) bool {
				return errors.Is(err, service.ErrInvalidInput)
			},
		},
		{
			name: "error before first chunk falls back",
			req:  service.ChatRequest{Message: "fiber"},
			opts: service.Options{FallbackEnabled: true},
			mockSetup: func(llmClient *mocks.MockLLMClient, retriever *mocks.MockRetriever) {
				llmClient.EXPECT().
					StreamChat(gomock.Any(), "fiber", gomock.Any()).
					Return(errModelDown)
				retriever.EXPECT().Retrieve("fiber").Return("Eat whole grains.", true)
			},
			chunks: []string{"Eat whole grains."},
		},
		{
			name: "error mid-stream is returned",
			req:  service.ChatRequest{Message: "fiber"},
			opts: service.Options{FallbackEnabled: true},
			mockSetup: func(llmClient *mocks.MockLLMClient, retriever *mocks.MockRetriever) {
				llmClient.EXPECT().
					StreamChat(gomock.Any(), "fiber", gomock.Any()).
					DoAndReturn(func(ctx context.Context, msg string, callback func(chunk string) error) error {
						_ = callback("Eat")
						return errModelDown
					})
			},
			wantErr: true,
			checkErrType: func(err error) bool {
				return errors.Is(err, service.ErrExternalService)
			},
			chunks: []string{"Eat"},
		},
		{
			name: "error with fallback disabled",
			req:  service.ChatRequest{Message: "Hello"},
			opts: service.Options{FallbackEnabled: false},
			mockSetup: func(llmClient *mocks.MockLLMClient, retriever *mocks.MockRetriever) {
				llmClient.EXPECT().
					StreamChat(gomock.Any(), "Hello", gomock.Any()).
					Return(errModelDown)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			llmClient := mocks.NewMockLLMClient(ctrl)
			retriever := mocks.NewMockRetriever(ctrl)
			tt.mockSetup(llmClient, retriever)
			svc := service.NewChatService(llmClient, retriever, tt.opts)

			var receivedChunks []string
			err := svc.StreamChat(testContext(), tt.req, func(chunk string) error {
				receivedChunks = append(receivedChunks, chunk)
				return nil
			})

			if tt.wantErr {
				if err == nil {
					t.Errorf("StreamChat() expected error, got nil")
				} else if tt.checkErrType != nil && !tt.checkErrType(err) {
					t.Errorf("StreamChat() error type mismatch: %v", err)
				}
			} else if err != nil {
				t.Fatalf("StreamChat() unexpected error: %v", err)
			}
			if strings.Join(receivedChunks, "|") != strings.Join(tt.chunks, "|") {
				t.Errorf("StreamChat() chunks = %q, want %q", receivedChunks, tt.chunks)
			}
		})
	}
}
