package putaway

// Cuentas del plan contable usadas por el rastro GL de traslados.
const (
	// NLAccount cuenta del libro mayor para movimientos de inventario.
	NLAccount = "1100"
	// defaultInventoryAccount cuenta de inventario cuando la clase del ítem no
	// tiene mapeo explícito.
	defaultInventoryAccount = "1130"
)

// inClassToAccount mapeo clase de inventario -> cuenta de inventario.
var inClassToAccount = map[string]string{
	"1000": "1140", // materia prima
	"2000": "1130", // producto terminado
	"3000": "1135", // empaque
}

// MapItemClassToAccount devuelve la cuenta de inventario para la clase del ítem
// en su ubicación (INAcct del registro contable).
func MapItemClassToAccount(inClassKey string) string {
	if acct, ok := inClassToAccount[inClassKey]; ok {
		return acct
	}
	return defaultInventoryAccount
}
