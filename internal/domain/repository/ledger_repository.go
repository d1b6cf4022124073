package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/putaway-api/internal/domain/entity"
)

// LedgerRepository puerto del ledger de auditoría (append-only).
type LedgerRepository interface {
	// CreateIssue persiste el asiento de salida en el bin origen y devuelve su
	// identificador generado, usado como referencia cruzada en el documento de
	// traslado.
	CreateIssue(e *entity.LedgerEntry) (int64, error)

	// CreateReceipt persiste el asiento de entrada en el bin destino.
	CreateReceipt(e *entity.LedgerEntry) error

	// ReassignOpenIssues corrige el bin de los asientos de salida abiertos
	// (Processed = 'N') de un lote, moviéndolos del bin origen al destino. Es la
	// única mutación permitida sobre el ledger y solo la usa la variante de
	// stock comprometido: el compromiso vivo debe seguir a la unidad física.
	// Solo se reasignan los asientos preexistentes (excluyendo excludeTranNo,
	// el asiento de salida del propio traslado) cuya cantidad acumulada, en
	// orden de creación, quepa en maxQty; los no cubiertos permanecen en el
	// origen respaldando el compromiso residual.
	ReassignOpenIssues(lotNo, binFrom, binTo string, maxQty decimal.Decimal, excludeTranNo int64) error

	// ListOpenByLotAndBin lista los asientos abiertos de un lote en un bin (vista
	// para la UI, con nombre legible del tipo de transacción).
	ListOpenByLotAndBin(lotNo, binNo string) ([]*entity.LedgerView, error)
}

// TransferDocumentRepository puerto de documentos de traslado (write-once).
type TransferDocumentRepository interface {
	Create(d *entity.TransferDocument) error
}

// GLEntryRepository puerto del rastro contable de movimientos.
type GLEntryRepository interface {
	Create(e *entity.GLEntry) error
}

// SequenceRepository puerto del asignador de números de documento.
type SequenceRepository interface {
	// Next incrementa el contador nombrado y devuelve el nuevo valor en el mismo
	// viaje al store (read-modify-return atómico). Dos llamadas concurrentes
	// nunca reciben el mismo número. Un contador inexistente es un problema de
	// integridad de datos, no contención transitoria: se devuelve DatabaseError
	// y nunca se reintenta.
	Next(name string) (int64, error)
}
