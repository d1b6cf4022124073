package putaway

import (
	"context"

	"github.com/jhoicas/putaway-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con aislamiento
// REPEATABLE READ, pasando repositorios atados a esa tx. Garantiza atomicidad
// para el motor de traslados: los seis pasos mutadores se confirman todos o
// ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		balanceRepo repository.LotBalanceRepository,
		ledgerRepo repository.LedgerRepository,
		docRepo repository.TransferDocumentRepository,
		glRepo repository.GLEntryRepository,
		seqRepo repository.SequenceRepository,
	) error) error
}
