package openrouter

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultBaseURL is OpenRouter's OpenAI-compatible API root.
	DefaultBaseURL = "https://openrouter.ai/api/v1"

	// DefaultModel is the model used when none is configured.
	DefaultModel = "anthropic/claude-3.5-sonnet"

	defaultTimeout = 30 * time.Second

	// Generation is tuned for factual consistency over creativity, and
	// the synopsis is capped well below the model maximum.
	temperature         = 0.3
	maxCompletionTokens = 300
)

// Options configure the OpenRouter connection. APIKey is required and is
// never written to any log; everything else has a default.
type Options struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	// Referer and Title are OpenRouter's optional attribution headers.
	Referer string
	Title   string
}

// Completion is the extracted result of one chat completion call.
type Completion struct {
	Text  string
	Model string
}

// ProviderError is an error payload the provider reported inside an
// otherwise successful response. OpenRouter surfaces some upstream
// failures this way, with a 200 status and no choices.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}

// Client submits chat completion requests to OpenRouter through its
// OpenAI-compatible surface.
type Client struct {
	api    openai.Client
	model  string
	logger *logrus.Logger
}

func NewClient(opts Options, logger *logrus.Logger) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := opts.Model
	if model == "" {
		model = DefaultModel
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	requestOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(timeout),
	}
	if opts.Referer != "" {
		requestOpts = append(requestOpts, option.WithHeader("HTTP-Referer", opts.Referer))
	}
	if opts.Title != "" {
		requestOpts = append(requestOpts, option.WithHeader("X-Title", opts.Title))
	}

	return &Client{
		api:    openai.NewClient(requestOpts...),
		model:  model,
		logger: logger,
	}
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// CreateCompletion submits a single user-role prompt and extracts the
// first generated message.
func (c *Client) CreateCompletion(ctx context.Context, prompt string) (*Completion, error) {
	c.logger.WithFields(logrus.Fields{
		"model":         c.model,
		"prompt_length": len(prompt),
	}).Debug("Submitting chat completion")

	completion, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxCompletionTokens),
	})
	if err != nil {
		return nil, err
	}

	if len(completion.Choices) == 0 {
		return nil, &ProviderError{Message: messageFromBody(completion.RawJSON())}
	}

	model := completion.Model
	if model == "" {
		model = "Unknown Model"
	}
	return &Completion{
		Text:  completion.Choices[0].Message.Content,
		Model: model,
	}, nil
}

// ProviderMessage returns the provider-reported error message when err
// originated from the provider itself, either an error payload or a
// non-2xx response. Transport failures report false.
func ProviderMessage(err error) (string, bool) {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.Message, true
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		if msg := strings.TrimSpace(apiErr.Message); msg != "" {
			return msg, true
		}
		if msg := messageFromBody(apiErr.RawJSON()); msg != "Unknown error" {
			return msg, true
		}
		return "Unknown error", true
	}

	return "", false
}

// messageFromBody digs the error message out of a raw response body of the
// form {"error": {"message": ...}}, tolerating a flat {"message": ...}.
func messageFromBody(raw string) string {
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err == nil {
		if msg := strings.TrimSpace(payload.Error.Message); msg != "" {
			return msg
		}
		if msg := strings.TrimSpace(payload.Message); msg != "" {
			return msg
		}
	}
	return "Unknown error"
}
