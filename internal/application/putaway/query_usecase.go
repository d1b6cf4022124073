package putaway

import (
	"github.com/jhoicas/putaway-api/internal/application/dto"
	"github.com/jhoicas/putaway-api/internal/domain"
	"github.com/jhoicas/putaway-api/internal/domain/repository"
)

// QueryUseCase consultas de solo lectura del módulo de putaway: lookup y
// búsqueda de lotes, búsqueda y validación de bins, asientos abiertos y
// observaciones predefinidas.
type QueryUseCase struct {
	balanceRepo repository.LotBalanceRepository
	binRepo     repository.BinRepository
	ledgerRepo  repository.LedgerRepository
	remarkRepo  repository.RemarkRepository
}

// NewQueryUseCase construye el caso de uso de consultas.
func NewQueryUseCase(
	balanceRepo repository.LotBalanceRepository,
	binRepo repository.BinRepository,
	ledgerRepo repository.LedgerRepository,
	remarkRepo repository.RemarkRepository,
) *QueryUseCase {
	return &QueryUseCase{
		balanceRepo: balanceRepo,
		binRepo:     binRepo,
		ledgerRepo:  ledgerRepo,
		remarkRepo:  remarkRepo,
	}
}

// FindLot busca la posición con saldo de un lote por su número y la devuelve
// con los datos maestros del ítem (punto de entrada del escaneo en la UI).
func (uc *QueryUseCase) FindLot(lotNo string) (*dto.LotResponse, error) {
	if lotNo == "" {
		return nil, domain.NewValidationError("el número de lote es obligatorio")
	}
	balance, item, err := uc.balanceRepo.FindByLotNo(lotNo)
	if err != nil {
		return nil, err
	}
	if balance == nil {
		return nil, domain.ErrNotFound
	}

	resp := &dto.LotResponse{
		LotNo:          balance.LotNo,
		ItemKey:        balance.ItemKey,
		Location:       balance.LocationKey,
		BinNo:          balance.BinNo,
		QtyOnHand:      balance.QtyOnHand,
		QtyCommitSales: balance.QtyCommitSales,
		QtyAvailable:   balance.Available(),
		VendorLotNo:    balance.VendorLotNo,
		LotStatus:      balance.LotStatus,
	}
	if !balance.DateReceived.IsZero() {
		d := balance.DateReceived
		resp.DateReceived = &d
	}
	if !balance.DateExpiry.IsZero() {
		d := balance.DateExpiry
		resp.DateExpiry = &d
	}
	if item != nil {
		resp.ItemDescription = item.Desc1
		resp.UOM = item.StockUOM
	}
	return resp, nil
}

// SearchLots lista lotes con saldo positivo, con filtro de texto libre opcional
// (número de lote, ítem o descripción) y paginación.
func (uc *QueryUseCase) SearchLots(query string, page dto.PageRequest) (*dto.LotSearchResponse, error) {
	page.Normalize()
	rows, total, err := uc.balanceRepo.Search(query, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LotSearchItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.LotSearchItem{
			LotNo:           r.LotNo,
			ItemKey:         r.ItemKey,
			ItemDescription: r.ItemDescription,
			Location:        r.Location,
			BinNo:           r.BinNo,
			QtyOnHand:       r.QtyOnHand,
			QtyAvailable:    r.QtyAvailable,
			DateReceived:    r.DateReceived,
			DateExpiry:      r.DateExpiry,
			UOM:             r.UOM,
			LotStatus:       r.LotStatus,
		})
	}
	return &dto.LotSearchResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// SearchBins lista bins con filtro de texto libre opcional. Si viene contexto de
// lote, cada bin expone el estado del lote cuando ya lo contiene (ayuda a elegir
// destinos de consolidación).
func (uc *QueryUseCase) SearchBins(query string, lotCtx *repository.BinLotContext, page dto.PageRequest) (*dto.BinSearchResponse, error) {
	page.Normalize()
	rows, total, err := uc.binRepo.Search(query, lotCtx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BinSearchItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.BinSearchItem{
			BinNo:       r.BinNo,
			Location:    r.Location,
			Description: r.Description,
			Aisle:       r.Aisle,
			Row:         r.Row,
			Rack:        r.Rack,
			LotStatus:   r.LotStatus,
		})
	}
	return &dto.BinSearchResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// ValidateBin verifica que un bin exista en una ubicación.
func (uc *QueryUseCase) ValidateBin(location, binNo string) (*dto.BinValidateResponse, error) {
	if location == "" || binNo == "" {
		return nil, domain.NewValidationError("ubicación y bin son obligatorios")
	}
	ok, err := uc.binRepo.Exists(location, binNo)
	if err != nil {
		return nil, err
	}
	return &dto.BinValidateResponse{Valid: ok, BinNo: binNo, Location: location}, nil
}

// ListOpenTransactions lista los asientos abiertos de un lote en un bin.
func (uc *QueryUseCase) ListOpenTransactions(lotNo, binNo string) ([]dto.LedgerEntryResponse, error) {
	if lotNo == "" || binNo == "" {
		return nil, domain.NewValidationError("lote y bin son obligatorios")
	}
	rows, err := uc.ledgerRepo.ListOpenByLotAndBin(lotNo, binNo)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LedgerEntryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.LedgerEntryResponse{
			LotTranNo:       r.LotTranNo,
			LotNo:           r.LotNo,
			BinNo:           r.BinNo,
			DocNo:           r.DocNo,
			DocLineNo:       r.DocLineNo,
			Qty:             r.Qty,
			TransactionType: r.TransactionType,
			TranTypeName:    r.TranTypeName,
			RecDate:         r.RecDate,
		})
	}
	return out, nil
}

// ListRemarks lista las observaciones activas para el dropdown de traslados.
func (uc *QueryUseCase) ListRemarks() ([]dto.RemarkResponse, error) {
	rows, err := uc.remarkRepo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]dto.RemarkResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.RemarkResponse{ID: r.ID, Name: r.Name})
	}
	return out, nil
}
