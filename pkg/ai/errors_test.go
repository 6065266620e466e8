package ai_test

import (
	"context"
	"errors"
	"net/url"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"laborlaw-line-bot/pkg/ai"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ai.FailureKind
	}{
		{
			name: "Deadline exceeded",
			err:  context.DeadlineExceeded,
			want: ai.FailureTimeout,
		},
		{
			name: "Server error 503",
			err:  &openai.APIError{HTTPStatusCode: 503},
			want: ai.FailureServerError,
		},
		{
			name: "Rate limited",
			err:  &openai.APIError{HTTPStatusCode: 429},
			want: ai.FailureRateLimited,
		},
		{
			name: "Auth failure",
			err:  &openai.APIError{HTTPStatusCode: 401},
			want: ai.FailureClientError,
		},
		{
			name: "Bad request",
			err:  &openai.RequestError{HTTPStatusCode: 400},
			want: ai.FailureClientError,
		},
		{
			name: "Connection refused",
			err:  &url.Error{Op: "Post", URL: "https://api.openai.com", Err: errors.New("connection refused")},
			want: ai.FailureConnection,
		},
		{
			name: "Unknown",
			err:  errors.New("weird"),
			want: ai.FailureUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ai.Classify(tt.err)
			if got.Kind != tt.want {
				t.Errorf("Classify() kind = %s, want %s", got.Kind, tt.want)
			}
		})
	}
}

func TestIsTransient(t *testing.T) {
	transient := []error{
		context.DeadlineExceeded,
		&openai.APIError{HTTPStatusCode: 500},
		&openai.APIError{HTTPStatusCode: 429},
		&url.Error{Op: "Post", URL: "x", Err: errors.New("reset")},
	}
	for _, err := range transient {
		if !ai.IsTransient(err) {
			t.Errorf("expected transient: %v", err)
		}
	}

	permanent := []error{
		&openai.APIError{HTTPStatusCode: 401},
		&openai.RequestError{HTTPStatusCode: 400},
		errors.New("weird"),
	}
	for _, err := range permanent {
		if ai.IsTransient(err) {
			t.Errorf("expected non-transient: %v", err)
		}
	}
}

func TestClassifyIdempotent(t *testing.T) {
	inner := ai.Classify(&openai.APIError{HTTPStatusCode: 502})
	outer := ai.Classify(inner)
	if outer.Kind != ai.FailureServerError {
		t.Errorf("re-classifying wrapped error changed kind: %s", outer.Kind)
	}
}
