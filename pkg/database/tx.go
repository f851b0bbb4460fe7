package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// TxFunc is a unit of work executed inside a transaction.
type TxFunc func(tx *sqlx.Tx) error

// WithTx runs fn inside a transaction. The transaction is committed only when fn
// returns nil; any error or panic rolls it back before WithTx returns.
func WithTx(ctx context.Context, db *sqlx.DB, fn TxFunc) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && err != nil {
			err = fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		if p := recover(); p != nil {
			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	err = tx.Commit()
	committed = true
	if err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
