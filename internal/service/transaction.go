package service

import "context"

// TransactionManager wraps multi-statement flows, such as registration and the
// bootcamp upsert, in a single database transaction.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
