package http_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/putaway-api/internal/application/putaway"
	"github.com/jhoicas/putaway-api/internal/domain"
	"github.com/jhoicas/putaway-api/internal/domain/entity"
	"github.com/jhoicas/putaway-api/internal/domain/repository"
	apphttp "github.com/jhoicas/putaway-api/internal/interfaces/http"
	"github.com/jhoicas/putaway-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs de repositorios de consulta (cada test configura el resultado)
// ──────────────────────────────────────────────────────────────────────────────

type stubBalanceRepo struct {
	balance *entity.LotBalance
	item    *entity.Item
	err     error
}

func (r *stubBalanceRepo) Get(entity.LotKey) (*entity.LotBalance, error) { return r.balance, r.err }
func (r *stubBalanceRepo) FindByLotNo(string) (*entity.LotBalance, *entity.Item, error) {
	return r.balance, r.item, r.err
}
func (r *stubBalanceRepo) LockPair(entity.LotKey, string) ([]*entity.LotBalance, error) {
	return nil, r.err
}
func (r *stubBalanceRepo) Insert(*entity.LotBalance) error { return r.err }
func (r *stubBalanceRepo) UpdateQuantities(entity.LotKey, decimal.Decimal, decimal.Decimal, string, int16, entity.ActorRef, time.Time) error {
	return r.err
}
func (r *stubBalanceRepo) Delete(entity.LotKey) error            { return r.err }
func (r *stubBalanceRepo) GetStatus(entity.LotKey) (*string, error) { return nil, r.err }
func (r *stubBalanceRepo) Search(string, int, int) ([]*entity.LotSummary, int, error) {
	return nil, 0, r.err
}

type stubBinRepo struct {
	exists bool
	err    error
}

func (r *stubBinRepo) Exists(string, string) (bool, error) { return r.exists, r.err }
func (r *stubBinRepo) Search(string, *repository.BinLotContext, int, int) ([]*entity.BinSummary, int, error) {
	return nil, 0, r.err
}

type stubLedgerRepo struct{ err error }

func (r *stubLedgerRepo) CreateIssue(*entity.LedgerEntry) (int64, error) { return 0, r.err }
func (r *stubLedgerRepo) CreateReceipt(*entity.LedgerEntry) error        { return r.err }
func (r *stubLedgerRepo) ReassignOpenIssues(string, string, string, decimal.Decimal, int64) error {
	return r.err
}
func (r *stubLedgerRepo) ListOpenByLotAndBin(string, string) ([]*entity.LedgerView, error) {
	return nil, r.err
}

type stubRemarkRepo struct{ err error }

func (r *stubRemarkRepo) ListActive() ([]*entity.Remark, error) { return nil, r.err }

// buildQueryApp arma una app con el handler de consultas sobre stubs.
func buildQueryApp(balRepo *stubBalanceRepo, binRepo *stubBinRepo, ledRepo *stubLedgerRepo) *fiber.App {
	queryUC := putaway.NewQueryUseCase(balRepo, binRepo, ledRepo, &stubRemarkRepo{})
	handler := apphttp.NewPutawayHandler(nil, queryUC, logger.Nop())

	app := fiber.New()
	app.Get("/lot/:lot_no", handler.GetLot)
	app.Get("/bin/:location/:bin_no", handler.ValidateBin)
	app.Get("/transactions/:lot_no/:bin_no", handler.ListTransactions)
	return app
}

func get(t *testing.T, app *fiber.App, path string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	return resp, string(body)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mapeo de errores de dominio a HTTP
// ──────────────────────────────────────────────────────────────────────────────

// Lote existente → 200 con los datos del lote y del ítem.
func TestGetLot_Encontrado(t *testing.T) {
	balRepo := &stubBalanceRepo{
		balance: &entity.LotBalance{
			LotNo: "L-001", ItemKey: "ITEM-A", LocationKey: "WH1", BinNo: "A-01",
			QtyOnHand: decimal.NewFromInt(10), LotStatus: "P",
		},
		item: &entity.Item{ItemKey: "ITEM-A", Desc1: "Harina de trigo", StockUOM: "KG"},
	}
	app := buildQueryApp(balRepo, &stubBinRepo{exists: true}, &stubLedgerRepo{})

	resp, body := get(t, app, "/lot/L-001")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "L-001")
	assert.Contains(t, body, "Harina de trigo")
}

// Lote inexistente → 404 NOT_FOUND.
func TestGetLot_NoEncontrado_Retorna404(t *testing.T) {
	app := buildQueryApp(&stubBalanceRepo{}, &stubBinRepo{}, &stubLedgerRepo{})

	resp, body := get(t, app, "/lot/L-NOPE")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "NOT_FOUND")
}

// Error del store → 500 con mensaje genérico, sin detalle del driver.
func TestGetLot_ErrorDeStore_Retorna500Generico(t *testing.T) {
	balRepo := &stubBalanceRepo{
		err: domain.NewDatabaseError("find lot by number", errors.New("dial tcp 10.0.0.5:5432: i/o timeout")),
	}
	app := buildQueryApp(balRepo, &stubBinRepo{}, &stubLedgerRepo{})

	resp, body := get(t, app, "/lot/L-001")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, body, "INTERNAL")
	assert.NotContains(t, body, "dial tcp",
		"el mensaje crudo del driver nunca debe llegar al cliente")
}

// Validación de bin existente e inexistente.
func TestValidateBin(t *testing.T) {
	app := buildQueryApp(&stubBalanceRepo{}, &stubBinRepo{exists: true}, &stubLedgerRepo{})
	resp, body := get(t, app, "/bin/WH1/A-01")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"valid":true`)

	app = buildQueryApp(&stubBalanceRepo{}, &stubBinRepo{exists: false}, &stubLedgerRepo{})
	resp, body = get(t, app, "/bin/WH1/ZZZ")
	assert.Equal(t, http.StatusOK, resp.StatusCode, "bin inexistente es un veredicto, no un error")
	assert.Contains(t, body, `"valid":false`)
}

// Error de transacción en listados → 500 genérico.
func TestListTransactions_ErrorDeStore_Retorna500(t *testing.T) {
	ledRepo := &stubLedgerRepo{err: domain.NewDatabaseError("list open ledger entries", errors.New("boom"))}
	app := buildQueryApp(&stubBalanceRepo{}, &stubBinRepo{}, ledRepo)

	resp, body := get(t, app, "/transactions/L-001/A-01")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.NotContains(t, body, "boom")
}
