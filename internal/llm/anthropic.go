package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/cediwise/backend/internal/types"
)

// Config configures the Anthropic completer.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int64
	Temperature float64
	Timeout     time.Duration
}

// Anthropic is a Completer backed by the Anthropic Messages API.
type Anthropic struct {
	client    anthropic.Client
	config    Config
	available bool
}

var _ Completer = (*Anthropic)(nil)

// NewAnthropic creates a new Anthropic completer.
//
// Retries are disabled in the SDK since callers implement their own
// retry policy.
func NewAnthropic(cfg Config) *Anthropic {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}

	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	return &Anthropic{
		client:    anthropic.NewClient(opts...),
		config:    cfg,
		available: cfg.APIKey != "",
	}
}

// Complete sends the request to the Messages API and returns the text of the answer.
func (a *Anthropic) Complete(ctx context.Context, req Request) (string, error) {
	if !a.available {
		return "", ErrNotConfigured
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(a.config.Model),
		MaxTokens:   a.config.MaxTokens,
		Messages:    messages(req.History, req.Prompt),
		Temperature: anthropic.Float(a.config.Temperature),
	}

	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	msg, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return "", translate(err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}

	if b.Len() == 0 {
		return "", errors.New("the model returned no text")
	}

	return b.String(), nil
}

// Ping lists the available models.
func (a *Anthropic) Ping(ctx context.Context) error {
	if !a.available {
		return ErrNotConfigured
	}

	_, err := a.client.Models.List(ctx, anthropic.ModelListParams{Limit: anthropic.Int(1)})
	if err != nil {
		return translate(err)
	}

	return nil
}

// messages converts the conversation history and the new prompt.
//
// The Messages API requires the conversation to start with a user
// message, so leading assistant messages are skipped.
func messages(history []types.Message, prompt string) []anthropic.MessageParam {
	params := make([]anthropic.MessageParam, 0, len(history)+1)

	for _, m := range history {
		switch m.Role {
		case types.RoleUser:
			params = append(params, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		case types.RoleAssistant:
			if len(params) == 0 {
				continue
			}
			params = append(params, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		}
	}

	return append(params, anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)))
}

// translate prefixes provider errors with a stable description of
// their cause.
func translate(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusTooManyRequests:
			return fmt.Errorf("rate_limit exceeded: %w", err)
		case apiErr.StatusCode == http.StatusPaymentRequired, strings.Contains(strings.ToLower(apiErr.Error()), "credit balance"):
			return fmt.Errorf("insufficient_quota: %w", err)
		default:
			return err
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("request timeout: %w", err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return fmt.Errorf("request timeout: %w", err)
		}
		return fmt.Errorf("network error: %w", err)
	}

	return err
}
