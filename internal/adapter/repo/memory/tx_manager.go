package memory

import "context"

// TxManager serializes access to the store. There is no rollback; the
// in-memory adapter trades atomicity for simplicity in tests and the
// CLI.
type TxManager struct {
	store *Store
}

func NewTxManager(store *Store) TxManager {
	return TxManager{store: store}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	return fn(ctx)
}
