package retrier

import (
	"context"
	"time"
)

// Retrier повторяет операцию до успеха или исчерпания бюджета ожидания.
type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// nil — ретраятся все ошибки, иначе только те, где функция вернула true.
	ShouldRetry ShouldRetryFunc
}
