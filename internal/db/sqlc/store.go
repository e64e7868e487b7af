package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store provides all functions to execute db queries and transactions.
type Store interface {
	Querier
	PlaceBidTx(ctx context.Context, arg PlaceBidTxParams) (PlaceBidTxResult, error)
	CompleteAuctionTx(ctx context.Context, arg CompleteAuctionTxParams) (CompleteAuctionTxResult, error)
	Ping(ctx context.Context) error
}

type SQLStore struct {
	*Queries
	connPool *pgxpool.Pool
}

// NewStore creates a new Store.
func NewStore(db *pgxpool.Pool) Store {
	return &SQLStore{
		Queries:  New(db),
		connPool: db,
	}
}

type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// execTx runs fn inside a single database transaction.
// The transaction is rolled back if fn returns an error.
func execTx(ctx context.Context, db txBeginner, fn func(*Queries) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}

	q := New(tx)
	if err = fn(q); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("tx err: %w, rb err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit(ctx)
}

// execAuctionTx runs fn in a transaction while holding a session-level advisory lock
// on the auction. afterCommit runs after a successful commit and before the lock is
// released, so whatever it does is ordered the same way the commits are, across every
// process sharing the database.
func (store *SQLStore) execAuctionTx(ctx context.Context, auctionID uuid.UUID, fn func(*Queries) error, afterCommit func()) error {
	conn, err := store.connPool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	q := New(conn)
	key := auctionID.String()
	if err = q.AcquireAuctionLock(ctx, key); err != nil {
		return fmt.Errorf("failed to lock auction: %w", err)
	}
	defer func() {
		unlocked, unlockErr := q.ReleaseAuctionLock(context.WithoutCancel(ctx), key)
		if unlockErr != nil || !unlocked {
			// The lock outlives the transaction, so the session must not go back to the pool.
			_ = conn.Conn().Close(context.WithoutCancel(ctx))
		}
	}()

	if err = execTx(ctx, conn, fn); err != nil {
		return err
	}

	if afterCommit != nil {
		afterCommit()
	}

	return nil
}

// Ping checks if the database connection is alive.
func (store *SQLStore) Ping(ctx context.Context) error {
	return store.connPool.Ping(ctx)
}
