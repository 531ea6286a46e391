package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/narraforge/narraforge/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{
			name: "agent schema error",
			err:  NewAgentError(ErrorKindSchema, "bad json", nil),
			want: ErrorKindSchema,
		},
		{
			name: "wrapped agent quality error",
			err:  fmt.Errorf("stage: %w", NewAgentError(ErrorKindQuality, "score too low", nil)),
			want: ErrorKindQuality,
		},
		{
			name: "budget exceeded",
			err:  fmt.Errorf("call: %w", model.ErrBudgetExceeded),
			want: ErrorKindCostExceeded,
		},
		{
			name: "context cancelled",
			err:  context.Canceled,
			want: ErrorKindCancelled,
		},
		{
			name: "deadline exceeded",
			err:  context.DeadlineExceeded,
			want: ErrorKindCancelled,
		},
		{
			name: "transient api error",
			err:  &model.APIError{Class: model.ErrorClassTransient},
			want: ErrorKindTransport,
		},
		{
			name: "rate limited api error",
			err:  &model.APIError{Class: model.ErrorClassRateLimited},
			want: ErrorKindTransport,
		},
		{
			name: "permanent api error",
			err:  &model.APIError{Class: model.ErrorClassPermanent},
			want: ErrorKindPermanent,
		},
		{
			name: "exhausted chain ending on transient",
			err: fmt.Errorf("%w: %w", model.ErrAllProvidersFailed,
				&model.APIError{Class: model.ErrorClassTransient}),
			want: ErrorKindTransport,
		},
		{
			name: "exhausted chain ending on permanent",
			err: fmt.Errorf("%w: %w", model.ErrAllProvidersFailed,
				&model.APIError{Class: model.ErrorClassPermanent}),
			want: ErrorKindPermanent,
		},
		{
			name: "unknown error",
			err:  errors.New("mystery"),
			want: ErrorKindPermanent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestErrorKind_Policies(t *testing.T) {
	assert.True(t, ErrorKindTransport.Retryable())
	assert.False(t, ErrorKindTransport.UpgradesTier())

	for _, kind := range []ErrorKind{ErrorKindSchema, ErrorKindQuality, ErrorKindValidation} {
		assert.True(t, kind.Retryable(), kind)
		assert.True(t, kind.UpgradesTier(), kind)
	}

	for _, kind := range []ErrorKind{ErrorKindCostExceeded, ErrorKindCancelled, ErrorKindPermanent} {
		assert.False(t, kind.Retryable(), kind)
	}

	assert.True(t, ErrorKindCostExceeded.BlocksResume())
	assert.True(t, ErrorKindPermanent.BlocksResume())
	assert.False(t, ErrorKindCancelled.BlocksResume())
}

func TestStageError_Message(t *testing.T) {
	err := &StageError{
		Stage:     7,
		Kind:      ErrorKindQuality,
		Attempts:  3,
		LastCause: errors.New("coherence 0.71 below 0.85"),
	}
	assert.Contains(t, err.Error(), "stage 7")
	assert.Contains(t, err.Error(), "quality")
	assert.Contains(t, err.Error(), "3 attempt")
	assert.ErrorContains(t, err, "coherence")
}
