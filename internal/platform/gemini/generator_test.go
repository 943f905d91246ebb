package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/studybuddy-api/internal/config"
	"github.com/phrazzld/studybuddy-api/internal/generation"
	"github.com/phrazzld/studybuddy-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type mockModels struct {
	mock.Mock
}

func (m *mockModels) GenerateContent(
	ctx context.Context,
	model string,
	contents []*genai.Content,
	cfg *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	args := m.Called(ctx, model, contents, cfg)
	resp, _ := args.Get(0).(*genai.GenerateContentResponse)
	return resp, args.Error(1)
}

func textResponse(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{Role: "model"}
	for _, p := range parts {
		content.Parts = append(content.Parts, &genai.Part{Text: p})
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: content, FinishReason: genai.FinishReasonStop}},
	}
}

func TestGenerateConcatenatesParts(t *testing.T) {
	t.Parallel()

	l, _ := logger.GetTestLogger(t)
	models := &mockModels{}
	models.On("GenerateContent", mock.Anything, "gemini-test", genai.Text("the prompt"),
		(*genai.GenerateContentConfig)(nil)).
		Return(textResponse("Q1: What?\n", "A: That"), nil).Once()

	text, err := newGenerator(l, models, "gemini-test").Generate(context.Background(), "the prompt")

	require.NoError(t, err)
	assert.Equal(t, "Q1: What?\nA: That", text)
	models.AssertExpectations(t)
}

func TestGenerateErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		resp    *genai.GenerateContentResponse
		callErr error
		wantErr error
	}{
		{
			name:    "api error",
			callErr: errors.New("connection reset"),
			wantErr: generation.ErrTransientFailure,
		},
		{
			name:    "nil response",
			wantErr: generation.ErrInvalidResponse,
		},
		{
			name:    "no candidates",
			resp:    &genai.GenerateContentResponse{},
			wantErr: generation.ErrInvalidResponse,
		},
		{
			name: "safety finish reason",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonSafety}},
			},
			wantErr: generation.ErrContentBlocked,
		},
		{
			name: "blocked prompt",
			resp: &genai.GenerateContentResponse{
				PromptFeedback: &genai.GenerateContentResponsePromptFeedback{BlockReason: "SAFETY"},
			},
			wantErr: generation.ErrContentBlocked,
		},
		{
			name: "candidate without content",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonStop}},
			},
			wantErr: generation.ErrInvalidResponse,
		},
		{
			name:    "content without text",
			resp:    textResponse(),
			wantErr: generation.ErrInvalidResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _ := logger.GetTestLogger(t)
			models := &mockModels{}
			models.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
				Return(tt.resp, tt.callErr).Once()

			text, err := newGenerator(l, models, "m").Generate(context.Background(), "p")

			assert.Empty(t, text)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, generation.ErrUnavailable)
			models.AssertNumberOfCalls(t, "GenerateContent", 1)
		})
	}
}

func TestNewGenerator(t *testing.T) {
	t.Parallel()

	l, _ := logger.GetTestLogger(t)

	tests := []struct {
		name    string
		cfg     config.LLMConfig
		wantErr error
	}{
		{
			name:    "missing api key",
			cfg:     config.LLMConfig{ModelName: "gemini-2.0-flash"},
			wantErr: generation.ErrInvalidConfig,
		},
		{
			name:    "missing model",
			cfg:     config.LLMConfig{GeminiAPIKey: "key"},
			wantErr: generation.ErrInvalidConfig,
		},
		{
			name: "valid",
			cfg:  config.LLMConfig{GeminiAPIKey: "test-api-key", ModelName: "gemini-2.0-flash"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGenerator(context.Background(), l, tt.cfg)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, g)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, g)
		})
	}

	t.Run("nil logger", func(t *testing.T) {
		_, err := NewGenerator(context.Background(), nil, config.LLMConfig{GeminiAPIKey: "k", ModelName: "m"})
		assert.Error(t, err)
	})
}
