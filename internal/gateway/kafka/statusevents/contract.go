//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=statusevents_test
package statusevents

import (
	"context"
)

type producer interface {
	Send(topic, key string, value []byte) error
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
