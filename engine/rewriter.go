package engine

import (
	"context"

	"golang.org/x/time/rate"
)

// Rewriter is the external step that turns normalized text into markup,
// typically a language model. The engine treats it as opaque.
type Rewriter interface {
	Rewrite(ctx context.Context, text string) (string, error)
}

// RewriterFunc adapts a function to the Rewriter interface.
type RewriterFunc func(ctx context.Context, text string) (string, error)

// Rewrite calls f(ctx, text).
func (f RewriterFunc) Rewrite(ctx context.Context, text string) (string, error) {
	return f(ctx, text)
}

// Identity returns its input unchanged. It suits pipelines whose input is
// already markup or where rewriting happens outside the process.
var Identity Rewriter = RewriterFunc(func(_ context.Context, text string) (string, error) {
	return text, nil
})

// RateLimit wraps rw so that calls share a token bucket of perSecond
// calls with the given burst. A waiting call returns ctx's error when ctx
// ends first. A non-positive rate returns rw unchanged.
func RateLimit(rw Rewriter, perSecond float64, burst int) Rewriter {
	if rw == nil {
		rw = Identity
	}
	if perSecond <= 0 {
		return rw
	}
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)
	return RewriterFunc(func(ctx context.Context, text string) (string, error) {
		if err := limiter.Wait(ctx); err != nil {
			return "", err
		}
		return rw.Rewrite(ctx, text)
	})
}
