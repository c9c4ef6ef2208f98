package ports

import "context"

// TxManager runs fn inside a storage transaction. Repositories resolve
// the transaction handle from the context fn receives.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
