package assistant

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultMaxAttempts is the number of attempts for a request, including the first one.
const DefaultMaxAttempts = 3

// Caller performs a single request to the advisor.
type Caller interface {
	Call(context.Context, Request) (Response, error)
}

// ConnectionStatus is the result of the last request to the advisor.
type ConnectionStatus string

const (
	ConnectionUnknown ConnectionStatus = "unknown"
	ConnectionSuccess ConnectionStatus = "success"
	ConnectionFailed  ConnectionStatus = "failed"
)

// SessionState is the state of the client for one chat session. It is
// owned by the caller and updated by every request.
type SessionState struct {
	RetryCount       int              `json:"retryCount" example:"0"`             // Number of consecutive requests that failed after all attempts
	ConnectionStatus ConnectionStatus `json:"connectionStatus" example:"success"` // Result of the last request
}

// Phase is a state of a request in the client.
type Phase string

const (
	PhaseAttempting Phase = "attempting"
	PhaseWaiting    Phase = "waiting"
	PhaseSucceeded  Phase = "succeeded"
	PhaseFailed     Phase = "failed"
)

// Backoff returns the delay before retrying after the given failed attempt.
// The first retry waits 2 seconds, the second one 4 seconds.
func Backoff(attempt int) time.Duration {
	return time.Duration(1<<attempt) * time.Second
}

// Client sends requests to the advisor, retrying failed attempts with
// exponential backoff.
type Client struct {
	Caller      Caller
	MaxAttempts int

	// Sleep waits for the given duration or until the context is done.
	Sleep func(context.Context, time.Duration) error

	// Now returns the current time. It is used to measure latencies.
	Now func() time.Time

	// Fallback generates a response when all attempts failed. If it is
	// nil, no fallback response is generated.
	Fallback func(context.Context, Request) Response
}

// NewClient creates a client with the default number of attempts.
func NewClient(caller Caller) *Client {
	return &Client{
		Caller:      caller,
		MaxAttempts: DefaultMaxAttempts,
		Sleep:       sleep,
		Now:         time.Now,
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// attempt performs one call. A response that reports a failure is
// treated as an error.
func (c *Client) attempt(ctx context.Context, req Request) (Response, error) {
	resp, err := c.Caller.Call(ctx, req)
	if err == nil && !resp.Success {
		err = errors.New(resp.Error)
		if resp.Error == "" {
			err = errors.New("the advisor reported a failure without an error message")
		}
	}

	if err != nil {
		attemptCount.WithLabelValues("failure").Inc()
		return resp, err
	}

	attemptCount.WithLabelValues("success").Inc()
	return resp, nil
}

// Send sends the request, retrying failed attempts.
//
// On success, the retry count of the state is reset. When all attempts
// failed, the retry count is incremented and a *ClassifiedError for the
// last error is returned.
func (c *Client) Send(ctx context.Context, req Request, state *SessionState) (Response, error) {
	var (
		phase   = PhaseAttempting
		attempt = 1
		resp    Response
		err     error
	)

	for {
		switch phase {
		case PhaseAttempting:
			resp, err = c.attempt(ctx, req)
			switch {
			case err == nil:
				phase = PhaseSucceeded
			case attempt < c.MaxAttempts && ctx.Err() == nil:
				phase = PhaseWaiting
			default:
				phase = PhaseFailed
			}

		case PhaseWaiting:
			delay := Backoff(attempt)
			log.Debug().Err(err).Int("attempt", attempt).Dur("delay", delay).Msg("Advisor")

			if sleepErr := c.Sleep(ctx, delay); sleepErr != nil {
				err = sleepErr
				phase = PhaseFailed
				continue
			}

			attempt++
			phase = PhaseAttempting

		case PhaseSucceeded:
			state.RetryCount = 0
			state.ConnectionStatus = ConnectionSuccess
			return resp, nil

		case PhaseFailed:
			state.RetryCount++
			state.ConnectionStatus = ConnectionFailed

			classified := newClassifiedError(err)
			failureCount.WithLabelValues(string(classified.Kind)).Inc()
			log.Warn().Err(err).Int("attempts", attempt).Str("kind", string(classified.Kind)).Msg("Advisor")

			return resp, classified
		}
	}
}

// Reply is the answer to a chat message.
type Reply struct {
	Response
	Fallback bool             // The response was generated by the fallback responder
	Failure  *ClassifiedError // The error if all attempts failed
}

// Ask sends the request and falls back to a generated response if all
// attempts fail and a Fallback is configured.
func (c *Client) Ask(ctx context.Context, req Request, state *SessionState) Reply {
	resp, err := c.Send(ctx, req, state)
	if err == nil {
		return Reply{Response: resp}
	}

	var failure *ClassifiedError
	if !errors.As(err, &failure) {
		failure = newClassifiedError(err)
	}

	if c.Fallback == nil {
		resp.Success = false
		if resp.Error == "" {
			resp.Error = failure.Error()
		}
		return Reply{Response: resp, Failure: failure}
	}

	fallbackCount.Inc()
	return Reply{
		Response: c.Fallback(ctx, req),
		Fallback: true,
		Failure:  failure,
	}
}

// ConnectionResult is the result of a connection test.
type ConnectionResult struct {
	Success bool
	Latency time.Duration
	Message string
	Failure *ClassifiedError
}

// TestConnection sends a single probe request without retries and
// measures its latency. Only the connection status of the state is updated.
func (c *Client) TestConnection(ctx context.Context, state *SessionState) ConnectionResult {
	start := c.Now()
	resp, err := c.attempt(ctx, Request{Message: TestConnectionMessage})
	latency := c.Now().Sub(start)

	if err != nil {
		state.ConnectionStatus = ConnectionFailed
		return ConnectionResult{Latency: latency, Failure: newClassifiedError(err)}
	}

	state.ConnectionStatus = ConnectionSuccess
	return ConnectionResult{Success: true, Latency: latency, Message: resp.Response}
}
