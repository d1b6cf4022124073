package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/putaway-api/internal/application/putaway"
	"github.com/jhoicas/putaway-api/internal/domain/repository"
)

// Ensure TxRunner implements putaway.TxRunner.
var _ putaway.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL con
// aislamiento REPEATABLE READ (el motor de traslados relee y muta los mismos
// saldos que bloqueó).
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	balanceRepo repository.LotBalanceRepository,
	ledgerRepo repository.LedgerRepository,
	docRepo repository.TransferDocumentRepository,
	glRepo repository.GLEntryRepository,
	seqRepo repository.SequenceRepository,
) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	balanceRepo := NewLotBalanceRepository(tx)
	ledgerRepo := NewLedgerRepository(tx)
	docRepo := NewTransferDocumentRepository(tx)
	glRepo := NewGLEntryRepository(tx)
	seqRepo := NewSequenceRepository(tx)

	if err := fn(balanceRepo, ledgerRepo, docRepo, glRepo, seqRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
