package putaway

import "fmt"

// SequenceName nombre del contador de documentos de traslado de bin en la tabla
// de secuencias.
const SequenceName = "BT"

// TransferDescription descripción estampada en el registro contable.
const TransferDescription = "Bin Transfer"

// FormatDocumentNo formatea un número de documento: prefijo fijo más la
// secuencia con ceros a la izquierda (ej. BT-00001234).
func FormatDocumentNo(seq int64) string {
	return fmt.Sprintf("BT-%08d", seq)
}
