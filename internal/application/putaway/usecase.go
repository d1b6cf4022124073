package putaway

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhoicas/putaway-api/internal/application/dto"
	"github.com/jhoicas/putaway-api/internal/domain"
	"github.com/jhoicas/putaway-api/internal/domain/entity"
	domputaway "github.com/jhoicas/putaway-api/internal/domain/putaway"
	"github.com/jhoicas/putaway-api/internal/domain/repository"
	"github.com/jhoicas/putaway-api/pkg/clock"
	"github.com/jhoicas/putaway-api/pkg/logger"
)

// TransferUseCase ejecuta traslados de bin de forma transaccional: bloqueo de
// fila (SELECT FOR UPDATE en orden de bin), número de documento secuencial,
// doble asiento en el ledger, documento de traslado, rastro GL y mutación de
// saldos, todo bajo Commit/Rollback.
type TransferUseCase struct {
	txRunner    TxRunner
	balanceRepo repository.LotBalanceRepository
	binRepo     repository.BinRepository
	itemLocRepo repository.ItemLocationRepository
	clk         clock.Clock
	log         *logger.Logger
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(
	txRunner TxRunner,
	balanceRepo repository.LotBalanceRepository,
	binRepo repository.BinRepository,
	itemLocRepo repository.ItemLocationRepository,
	clk clock.Clock,
	log *logger.Logger,
) *TransferUseCase {
	return &TransferUseCase{
		txRunner:    txRunner,
		balanceRepo: balanceRepo,
		binRepo:     binRepo,
		itemLocRepo: itemLocRepo,
		clk:         clk,
		log:         log,
	}
}

// ValidateTransfer valida un traslado sin ejecutarlo: existencia del bin
// destino, existencia del balance origen y suficiencia de cantidad. Paso puro
// de lectura para que la UI confirme antes de disparar la transacción.
func (uc *TransferUseCase) ValidateTransfer(ctx context.Context, in dto.ValidateTransferRequest) (*dto.ValidateTransferResponse, error) {
	if err := uc.checkRequest(in.BinFrom, in.BinTo, in.Location); err != nil {
		return nil, err
	}

	src, err := uc.balanceRepo.Get(entity.LotKey{
		LotNo: in.LotNo, ItemKey: in.ItemKey, LocationKey: in.Location, BinNo: in.BinFrom,
	})
	if err != nil {
		return nil, err
	}
	if src == nil {
		return nil, domain.NewValidationError(
			"el lote '%s' no tiene saldo en el bin '%s'", in.LotNo, in.BinFrom)
	}

	plan, err := domputaway.PlanTransfer(src.QtyOnHand, src.QtyCommitSales, in.TransferQty)
	if err != nil {
		return nil, err
	}

	return &dto.ValidateTransferResponse{
		Valid:        true,
		ActualQty:    plan.ActualQty,
		FullTransfer: plan.FullTransfer,
		QtyOnHand:    src.QtyOnHand,
		QtyAvailable: src.Available(),
	}, nil
}

// ExecuteTransfer ejecuta un traslado de cantidad disponible (protocolo
// estándar): solo QtyOnHand se mueve y los asientos del ledger nacen aplicados.
func (uc *TransferUseCase) ExecuteTransfer(ctx context.Context, userID string, in dto.TransferRequest) (*dto.TransferResponse, error) {
	return uc.execute(ctx, userID, in, domputaway.PolicyAvailableQty)
}

// ExecuteCommittedTransfer ejecuta un traslado de stock comprometido: QtyOnHand
// y QtyCommitSales viajan juntos, los asientos nacen abiertos ('N') y los
// asientos abiertos preexistentes del lote se reasignan al bin destino.
func (uc *TransferUseCase) ExecuteCommittedTransfer(ctx context.Context, userID string, in dto.TransferRequest) (*dto.TransferResponse, error) {
	return uc.execute(ctx, userID, in, domputaway.PolicyCommittedStock)
}

func (uc *TransferUseCase) execute(ctx context.Context, userID string, in dto.TransferRequest, policy domputaway.MovementPolicy) (*dto.TransferResponse, error) {
	actor, err := entity.NewActorRef(userID)
	if err != nil {
		return nil, domain.NewValidationError("%s", err.Error())
	}
	if err := uc.checkRequest(in.BinFrom, in.BinTo, in.Location); err != nil {
		return nil, err
	}

	// Datos maestros leídos fuera de la transacción: parametrización contable
	// del ítem en la ubicación. Su ausencia es un problema de integridad.
	itemLoc, err := uc.itemLocRepo.Get(in.ItemKey, in.Location)
	if err != nil {
		return nil, err
	}

	key := entity.LotKey{LotNo: in.LotNo, ItemKey: in.ItemKey, LocationKey: in.Location, BinNo: in.BinFrom}
	now := uc.clk.Now()

	var docNo string
	var plan *domputaway.TransferPlan

	err = uc.txRunner.Run(ctx, func(
		balanceRepo repository.LotBalanceRepository,
		ledgerRepo repository.LedgerRepository,
		docRepo repository.TransferDocumentRepository,
		glRepo repository.GLEntryRepository,
		seqRepo repository.SequenceRepository,
	) error {
		// 1. Número de documento: incremento atómico del contador.
		seq, err := seqRepo.Next(domputaway.SequenceName)
		if err != nil {
			return err
		}
		docNo = domputaway.FormatDocumentNo(seq)

		// 2. Bloqueo exclusivo de los balances origen y destino en una sola
		// sentencia, en orden ascendente de bin. La validación y el plan se
		// recalculan sobre las filas bloqueadas: lo leído antes del lock pudo
		// cambiar bajo concurrencia.
		locked, err := balanceRepo.LockPair(key, in.BinTo)
		if err != nil {
			return err
		}
		var src, dest *entity.LotBalance
		for _, b := range locked {
			switch b.BinNo {
			case in.BinFrom:
				src = b
			case in.BinTo:
				dest = b
			}
		}
		if src == nil {
			return domain.NewValidationError(
				"el lote '%s' no tiene saldo en el bin '%s'", in.LotNo, in.BinFrom)
		}

		plan, err = domputaway.PlanTransfer(src.QtyOnHand, src.QtyCommitSales, in.TransferQty)
		if err != nil {
			return err
		}

		// Copia del origen antes de mutarlo: un traslado total borra el
		// registro y la siembra del destino necesita sus campos descriptivos.
		srcSnapshot := *src

		// 3. Rastro contable del movimiento.
		gl := &entity.GLEntry{
			ID:          uuid.New().String(),
			ItemKey:     in.ItemKey,
			LocationKey: in.Location,
			DocNo:       docNo,
			DocDate:     now,
			TrnDesc:     domputaway.TransferDescription,
			NLAcct:      domputaway.NLAccount,
			INAcct:      domputaway.MapItemClassToAccount(itemLoc.InClassKey),
			StdCost:     itemLoc.StdCost,
			RecUserID:   actor.String(),
			RecDate:     now,
		}
		if err := glRepo.Create(gl); err != nil {
			return err
		}

		// 4. Asiento de salida en el bin origen (tipo 9).
		issue := &entity.LedgerEntry{
			LotNo:           in.LotNo,
			ItemKey:         in.ItemKey,
			LocationKey:     in.Location,
			BinNo:           in.BinFrom,
			TransactionType: entity.TxTypeIssue,
			IssueDocNo:      docNo,
			IssueDocLineNo:  1,
			IssueDate:       now,
			QtyIssued:       plan.ActualQty,
			DateReceived:    srcSnapshot.DateReceived,
			DateExpiry:      srcSnapshot.DateExpiry,
			VendorKey:       srcSnapshot.VendorKey,
			VendorLotNo:     srcSnapshot.VendorLotNo,
			Processed:       policy.ProcessedFlag(),
			RecUserID:       actor.String(),
			RecDate:         now,
		}
		lotTranNo, err := ledgerRepo.CreateIssue(issue)
		if err != nil {
			return err
		}

		// 5. Asiento de entrada en el bin destino (tipo 8).
		receipt := &entity.LedgerEntry{
			LotNo:            in.LotNo,
			ItemKey:          in.ItemKey,
			LocationKey:      in.Location,
			BinNo:            in.BinTo,
			TransactionType:  entity.TxTypeReceipt,
			ReceiptDocNo:     docNo,
			ReceiptDocLineNo: 1,
			QtyReceived:      plan.ActualQty,
			DateReceived:     srcSnapshot.DateReceived,
			DateExpiry:       srcSnapshot.DateExpiry,
			VendorKey:        srcSnapshot.VendorKey,
			VendorLotNo:      srcSnapshot.VendorLotNo,
			Processed:        policy.ProcessedFlag(),
			RecUserID:        actor.String(),
			RecDate:          now,
		}
		if err := ledgerRepo.CreateReceipt(receipt); err != nil {
			return err
		}

		// 6. Documento de traslado, con referencia cruzada al asiento de salida
		// y el saldo del origen antes de mutar.
		doc := &entity.TransferDocument{
			ID:          uuid.New().String(),
			DocumentNo:  docNo,
			ItemKey:     in.ItemKey,
			LocationKey: in.Location,
			LotNo:       in.LotNo,
			BinFrom:     in.BinFrom,
			BinTo:       in.BinTo,
			LotTranNo:   lotTranNo,
			QtyOnHand:   srcSnapshot.QtyOnHand,
			TransferQty: plan.ActualQty,
			RecUserID:   actor.String(),
			RecDate:     now,
			Remarks:     in.Remarks,
			Reference:   in.Reference,
		}
		if err := docRepo.Create(doc); err != nil {
			return err
		}

		// 7. Mutación del balance origen: actualizar o eliminar si quedó en cero.
		mut := policy.ReduceSource(srcSnapshot.QtyOnHand, srcSnapshot.QtyCommitSales, plan.ActualQty)
		if mut.Delete {
			if err := balanceRepo.Delete(key); err != nil {
				return err
			}
		} else {
			if err := balanceRepo.UpdateQuantities(key, mut.QtyOnHand, mut.QtyCommitSales, docNo, entity.TxTypeIssue, actor, now); err != nil {
				return err
			}
		}

		// 8. Mutación del balance destino: consolidar sobre el existente o
		// sembrar uno nuevo desde la copia del origen.
		destKey := entity.LotKey{LotNo: in.LotNo, ItemKey: in.ItemKey, LocationKey: in.Location, BinNo: in.BinTo}
		if dest != nil {
			newOnHand, newCommit := policy.MergeDestination(dest.QtyOnHand, dest.QtyCommitSales, plan.ActualQty)
			if err := balanceRepo.UpdateQuantities(destKey, newOnHand, newCommit, docNo, entity.TxTypeReceipt, actor, now); err != nil {
				return err
			}
		} else {
			seed := policy.SeedDestination(&srcSnapshot, in.BinTo, plan.ActualQty, docNo, actor, now)
			if err := balanceRepo.Insert(seed); err != nil {
				return err
			}
		}

		// 9. Solo stock comprometido: los asientos abiertos preexistentes
		// cubiertos por la cantidad movida siguen a la unidad física al bin
		// destino; los no cubiertos permanecen en el origen respaldando el
		// compromiso residual.
		if policy == domputaway.PolicyCommittedStock {
			if err := ledgerRepo.ReassignOpenIssues(in.LotNo, in.BinFrom, in.BinTo, plan.ActualQty, lotTranNo); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.TransferResponse{
		DocumentNo:    docNo,
		LotNo:         in.LotNo,
		ItemKey:       in.ItemKey,
		BinFrom:       in.BinFrom,
		BinTo:         in.BinTo,
		TransferQty:   plan.ActualQty,
		FullTransfer:  plan.FullTransfer,
		TransferredAt: now,
	}

	// Lecturas de enriquecimiento post-commit: el traslado ya está confirmado,
	// un fallo aquí solo se registra y nunca se propaga al caller.
	if status, err := uc.balanceRepo.GetStatus(key); err != nil {
		uc.log.Warn().Err(err).Str("doc_no", docNo).Msg("lectura post-commit de estado del bin origen falló")
	} else if status != nil {
		resp.SourceLotStatus = *status
	}
	destKey := entity.LotKey{LotNo: in.LotNo, ItemKey: in.ItemKey, LocationKey: in.Location, BinNo: in.BinTo}
	if status, err := uc.balanceRepo.GetStatus(destKey); err != nil {
		uc.log.Warn().Err(err).Str("doc_no", docNo).Msg("lectura post-commit de estado del bin destino falló")
	} else if status != nil {
		resp.DestLotStatus = *status
	}

	uc.log.Info().
		Str("doc_no", docNo).
		Str("lot_no", in.LotNo).
		Str("bin_from", in.BinFrom).
		Str("bin_to", in.BinTo).
		Str("qty", plan.ActualQty.String()).
		Bool("full_transfer", plan.FullTransfer).
		Msg("traslado de bin aplicado")

	return resp, nil
}

// checkRequest validaciones estructurales comunes y existencia del bin destino.
func (uc *TransferUseCase) checkRequest(binFrom, binTo, location string) error {
	if binFrom == binTo {
		return domain.NewValidationError("el bin origen y el bin destino no pueden ser el mismo")
	}
	ok, err := uc.binRepo.Exists(location, binTo)
	if err != nil {
		return err
	}
	if !ok {
		return &domain.InvalidBinError{BinNo: binTo, Location: location}
	}
	return nil
}
