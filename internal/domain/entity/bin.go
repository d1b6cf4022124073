package entity

import "time"

// Bin posición física de almacenamiento dentro de una ubicación. Datos maestros
// de solo lectura para el motor de traslados (solo chequeos de existencia).
type Bin struct {
	Location    string
	BinNo       string
	Description string
	Aisle       string
	Row         string
	Rack        string
	RecDate     time.Time
}

// BinSummary resultado de búsqueda de bins. LotStatus se llena solo cuando la
// búsqueda lleva contexto de lote (muestra si el bin ya contiene ese lote, útil
// para elegir destinos de consolidación).
type BinSummary struct {
	BinNo       string
	Location    string
	Description string
	Aisle       string
	Row         string
	Rack        string
	LotStatus   *string
}
