package repository

import (
	"context"
	"time"

	"fueldepot/internal/idgen"
	"fueldepot/internal/model"
	"fueldepot/internal/storage"
)

// TransactionRepository defines data access for the ledger. Entries are
// append-only, stored newest-first, and never mutated post-creation.
type TransactionRepository interface {
	GetAll(ctx context.Context) []model.Transaction
	Add(ctx context.Context, tx model.Transaction) (model.Transaction, bool)
	ReplaceAll(ctx context.Context, txs []model.Transaction) bool
}

type transactionRepository struct {
	store storage.Store
}

// NewTransactionRepository returns a TransactionRepository over the given store.
func NewTransactionRepository(store storage.Store) TransactionRepository {
	return &transactionRepository{store: store}
}

func (r *transactionRepository) GetAll(ctx context.Context) []model.Transaction {
	var txs []model.Transaction
	storage.ReadJSON(ctx, r.store, storage.KeyTransactions, &txs)
	return txs
}

func (r *transactionRepository) Add(ctx context.Context, tx model.Transaction) (model.Transaction, bool) {
	txs := r.GetAll(ctx)
	tx.ID = idgen.New("TXN")
	tx.TransactionDate = time.Now()
	txs = append([]model.Transaction{tx}, txs...)
	return tx, r.store.Write(ctx, storage.KeyTransactions, txs)
}

// ReplaceAll overwrites the ledger wholesale. Only the import path uses it.
func (r *transactionRepository) ReplaceAll(ctx context.Context, txs []model.Transaction) bool {
	return r.store.Write(ctx, storage.KeyTransactions, txs)
}
