package databases

import (
	"context"
	"fmt"
)

// Transactor runs fn so that every database write made with the context it receives
// commits or rolls back together
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type mongoTransactor struct {
	client ClientHelper
}

// NewTransactor returns a Transactor backed by mongo sessions. Transactions need a
// replica set or sharded cluster.
func NewTransactor(client ClientHelper) Transactor {
	return &mongoTransactor{client: client}
}

func (t *mongoTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := t.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	return session.WithTransaction(ctx, fn)
}
