package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/putaway-api/internal/application/dto"
	"github.com/jhoicas/putaway-api/internal/application/putaway"
	"github.com/jhoicas/putaway-api/internal/domain"
	"github.com/jhoicas/putaway-api/internal/domain/repository"
	"github.com/jhoicas/putaway-api/pkg/logger"
)

// PutawayHandler maneja las peticiones HTTP del módulo de putaway (protegido).
type PutawayHandler struct {
	transferUC *putaway.TransferUseCase
	queryUC    *putaway.QueryUseCase
	log        *logger.Logger
}

// NewPutawayHandler construye el handler.
func NewPutawayHandler(transferUC *putaway.TransferUseCase, queryUC *putaway.QueryUseCase, log *logger.Logger) *PutawayHandler {
	return &PutawayHandler{transferUC: transferUC, queryUC: queryUC, log: log}
}

// GetLot godoc
// @Summary      Buscar lote por número
// @Tags         putaway
// @Security     Bearer
// @Produce      json
// @Param        lot_no  path  string  true  "Número de lote"
// @Success      200  {object}  dto.LotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/putaway/lot/{lot_no} [get]
func (h *PutawayHandler) GetLot(c *fiber.Ctx) error {
	out, err := h.queryUC.FindLot(c.Params("lot_no"))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// SearchLots godoc
// @Summary      Buscar lotes con saldo
// @Tags         putaway
// @Security     Bearer
// @Produce      json
// @Param        query   query  string  false  "Texto libre: lote, ítem o descripción"
// @Param        limit   query  int     false  "Tamaño de página (default 25, máx 100)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.LotSearchResponse
// @Router       /api/putaway/lots/search [get]
func (h *PutawayHandler) SearchLots(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.queryUC.SearchLots(c.Query("query"), page)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// SearchBins godoc
// @Summary      Buscar bins
// @Tags         putaway
// @Security     Bearer
// @Produce      json
// @Param        query     query  string  false  "Texto libre: bin o descripción"
// @Param        lot_no    query  string  false  "Contexto de lote (junto con item_key y location)"
// @Param        item_key  query  string  false  "Contexto de lote"
// @Param        location  query  string  false  "Contexto de lote"
// @Param        limit     query  int     false  "Tamaño de página (default 25, máx 100)"
// @Param        offset    query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.BinSearchResponse
// @Router       /api/putaway/bins/search [get]
func (h *PutawayHandler) SearchBins(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	var lotCtx *repository.BinLotContext
	if lotNo := c.Query("lot_no"); lotNo != "" {
		lotCtx = &repository.BinLotContext{
			LotNo:    lotNo,
			ItemKey:  c.Query("item_key"),
			Location: c.Query("location"),
		}
	}
	out, err := h.queryUC.SearchBins(c.Query("query"), lotCtx, page)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// ValidateBin godoc
// @Summary      Validar existencia de un bin
// @Tags         putaway
// @Security     Bearer
// @Produce      json
// @Param        location  path  string  true  "Ubicación"
// @Param        bin_no    path  string  true  "Número de bin"
// @Success      200  {object}  dto.BinValidateResponse
// @Router       /api/putaway/bin/{location}/{bin_no} [get]
func (h *PutawayHandler) ValidateBin(c *fiber.Ctx) error {
	out, err := h.queryUC.ValidateBin(c.Params("location"), c.Params("bin_no"))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// ValidateTransfer godoc
// @Summary      Validar un traslado sin ejecutarlo
// @Tags         putaway
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValidateTransferRequest  true  "lot_no, item_key, location, bin_from, bin_to, transfer_qty"
// @Success      200  {object}  dto.ValidateTransferResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/putaway/transfer/validate [post]
func (h *PutawayHandler) ValidateTransfer(c *fiber.Ctx) error {
	var in dto.ValidateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.transferUC.ValidateTransfer(c.Context(), in)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// Transfer godoc
// @Summary      Ejecutar traslado de bin (cantidad disponible)
// @Tags         putaway
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "lot_no, item_key, location, bin_from, bin_to, transfer_qty, remarks"
// @Success      201  {object}  dto.TransferResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/putaway/transfer [post]
func (h *PutawayHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.transferUC.ExecuteTransfer(c.Context(), GetUserID(c), in)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// TransferCommitted godoc
// @Summary      Ejecutar traslado de stock comprometido
// @Tags         putaway
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "lot_no, item_key, location, bin_from, bin_to, transfer_qty, remarks"
// @Success      201  {object}  dto.TransferResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/putaway/transfer/committed [post]
func (h *PutawayHandler) TransferCommitted(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.transferUC.ExecuteCommittedTransfer(c.Context(), GetUserID(c), in)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListTransactions godoc
// @Summary      Asientos abiertos de un lote en un bin
// @Tags         putaway
// @Security     Bearer
// @Produce      json
// @Param        lot_no  path  string  true  "Número de lote"
// @Param        bin_no  path  string  true  "Número de bin"
// @Success      200  {array}  dto.LedgerEntryResponse
// @Router       /api/putaway/transactions/{lot_no}/{bin_no} [get]
func (h *PutawayHandler) ListTransactions(c *fiber.Ctx) error {
	out, err := h.queryUC.ListOpenTransactions(c.Params("lot_no"), c.Params("bin_no"))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// ListRemarks godoc
// @Summary      Observaciones predefinidas para traslados
// @Tags         putaway
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RemarkResponse
// @Router       /api/putaway/remarks [get]
func (h *PutawayHandler) ListRemarks(c *fiber.Ctx) error {
	out, err := h.queryUC.ListRemarks()
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// mapError traduce errores de dominio a respuestas HTTP. Los errores de store y
// de transacción se loguean completos pero al cliente solo llega un mensaje
// genérico, nunca el detalle crudo del driver.
func (h *PutawayHandler) mapError(c *fiber.Ctx, err error) error {
	var valErr *domain.ValidationError
	if errors.As(err, &valErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: valErr.Reason})
	}
	var binErr *domain.InvalidBinError
	if errors.As(err, &binErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BIN", Message: binErr.Error()})
	}
	var qtyErr *domain.InsufficientQuantityError
	if errors.As(err, &qtyErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_QUANTITY", Message: qtyErr.Error()})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	}

	var dbErr *domain.DatabaseError
	var txErr *domain.TransactionError
	switch {
	case errors.As(err, &txErr):
		h.log.Error().Err(err).Str("step", txErr.Step).Msg("traslado revertido por error de transacción")
	case errors.As(err, &dbErr):
		h.log.Error().Err(err).Str("op", dbErr.Op).Msg("error de base de datos")
	default:
		h.log.Error().Err(err).Msg("error no clasificado")
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
