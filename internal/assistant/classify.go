package assistant

import (
	"context"
	"errors"
	"strings"
)

// ErrorKind is the classification of a failed request to the advisor.
type ErrorKind string

const (
	KindQuotaExceeded ErrorKind = "quota_exceeded"
	KindRateLimited   ErrorKind = "rate_limited"
	KindNetwork       ErrorKind = "network_error"
	KindTimeout       ErrorKind = "timeout"
	KindUnknown       ErrorKind = "unknown"
)

type explanation struct {
	title       string
	description string
}

var explanations = map[ErrorKind]explanation{
	KindQuotaExceeded: {"Service Temporarily Unavailable", "AI service is at capacity. Please try again in a few minutes."},
	KindRateLimited:   {"Rate Limited", "Please wait a moment before sending another message."},
	KindNetwork:       {"Connection Error", "Please check your internet connection and try again. Use the Test Connection button to diagnose issues."},
	KindTimeout:       {"Request Timeout", "The request took too long. Please try again with a shorter message."},
	KindUnknown:       {"Error", "Failed to get response from financial advisor"},
}

// Title is the user-facing title of the error kind.
func (k ErrorKind) Title() string {
	return explanations[k].title
}

// Description is the user-facing description of the error kind.
func (k ErrorKind) Description() string {
	return explanations[k].description
}

// classification rules, evaluated in order. The first rule with a
// matching substring wins.
var rules = []struct {
	kind       ErrorKind
	substrings []string
}{
	{KindQuotaExceeded, []string{"quota", "insufficient_quota"}},
	{KindRateLimited, []string{"rate_limit"}},
	{KindNetwork, []string{"network", "fetch", "Failed to fetch"}},
	{KindTimeout, []string{"timeout"}},
}

// Classify returns the kind of err based on its message.
//
// Exceeded context deadlines are always classified as timeouts.
func Classify(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}

	message := err.Error()
	for _, rule := range rules {
		for _, s := range rule.substrings {
			if strings.Contains(message, s) {
				return rule.kind
			}
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}

	return KindUnknown
}

// ClassifiedError is the final error of a request after all attempts failed.
type ClassifiedError struct {
	Kind ErrorKind
	Err  error
}

func newClassifiedError(err error) *ClassifiedError {
	return &ClassifiedError{Kind: Classify(err), Err: err}
}

func (e *ClassifiedError) Error() string {
	return e.Err.Error()
}

func (e *ClassifiedError) Unwrap() error {
	return e.Err
}

func (e *ClassifiedError) Title() string {
	return e.Kind.Title()
}

func (e *ClassifiedError) Description() string {
	return e.Kind.Description()
}
