package ai

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimited throttles calls to the wrapped generator
type RateLimited struct {
	next    Generator
	limiter *rate.Limiter
}

// NewRateLimited allows perSecond calls with the given burst
func NewRateLimited(next Generator, perSecond float64, burst int) *RateLimited {
	if burst < 1 {
		burst = 1
	}
	return &RateLimited{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

// Generate waits for a token, then delegates
func (r *RateLimited) Generate(ctx context.Context, prompt string) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return r.next.Generate(ctx, prompt)
}
