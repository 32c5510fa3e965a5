package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturacion-api/internal/application/billing"
	"github.com/jhoicas/facturacion-api/internal/domain/search"
	"github.com/jhoicas/facturacion-api/internal/infrastructure/memory"
	"github.com/jhoicas/facturacion-api/internal/infrastructure/metrics"
	"github.com/jhoicas/facturacion-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/facturacion-api/internal/interfaces/http"
	"github.com/jhoicas/facturacion-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp arma la aplicación completa sobre el almacenamiento en memoria.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store := memory.NewStore()
	criteria := search.NewBuilder(time.UTC)
	return apphttp.NewApp(apphttp.AppConfig{Name: "test", Location: time.UTC}, apphttp.RouterDeps{
		CustomerUC: billing.NewCustomerUseCase(store.Customers(), criteria),
		InvoiceUC:  billing.NewInvoiceUseCase(store.Invoices(), store.Customers(), criteria),
		InvoicePDF: billing.NewPDFUseCase(store.Invoices(), pdf.NewMarotoPDFGenerator("Test")),
		Metrics:    metrics.NewHTTPMetrics("facturacion_test"),
		Log:        logger.Nop(),
	})
}

// do ejecuta la petición y decodifica el cuerpo JSON en out (si no es nil).
func do(t *testing.T, app *fiber.App, method, path string, body any, out any) int {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, out), string(raw))
	}
	return resp.StatusCode
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type customerBody struct {
	ID                   string `json:"id"`
	NombreCliente        string `json:"nombreCliente"`
	TipoIdentificacion   string `json:"tipoIdentificacion"`
	NumeroIdentificacion string `json:"numeroIdentificacion"`
	Observaciones        string `json:"observaciones"`
}

type invoiceBody struct {
	ID             string        `json:"id"`
	ClienteID      string        `json:"clienteId"`
	Cliente        *customerBody `json:"cliente"`
	Fecha          string        `json:"fecha"`
	NombreProducto string        `json:"nombreProducto"`
	ValorTotal     json.Number   `json:"valorTotal"`
}

func createCustomer(t *testing.T, app *fiber.App, name string) customerBody {
	t.Helper()
	var c customerBody
	status := do(t, app, http.MethodPost, "/v1/clientes", map[string]any{
		"nombreCliente":        name,
		"tipoIdentificacion":   "CC",
		"numeroIdentificacion": "123456",
	}, &c)
	require.Equal(t, fiber.StatusCreated, status)
	return c
}

func createInvoice(t *testing.T, app *fiber.App, customerID, fecha string) invoiceBody {
	t.Helper()
	var inv invoiceBody
	status := do(t, app, http.MethodPost, "/v1/facturas", map[string]any{
		"clienteId":      customerID,
		"fecha":          fecha,
		"nombreProducto": "Laptop",
		"precio":         1200,
		"valorDescuento": 10,
		"iva":            19,
		"valorTotal":     1319,
	}, &inv)
	require.Equal(t, fiber.StatusCreated, status)
	return inv
}

// ──────────────────────────────────────────────────────────────────────────────
// Health y métricas
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	app := buildTestApp(t)
	for _, path := range []string{"/", "/health"} {
		var body map[string]string
		assert.Equal(t, fiber.StatusOK, do(t, app, http.MethodGet, path, nil, &body))
		assert.Equal(t, "ON", body["status"])
		assert.NotEmpty(t, body["time"])
		assert.NotEmpty(t, body["date"])
	}
}

func TestMetrics_CuentaPorPatronDeRuta(t *testing.T) {
	app := buildTestApp(t)
	c := createCustomer(t, app, "Ana")
	do(t, app, http.MethodGet, "/v1/clientes/"+c.ID, nil, nil)
	do(t, app, http.MethodGet, "/no-existe", nil, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	out := string(raw)
	assert.Contains(t, out, `facturacion_test_http_requests_total{method="GET",route="/v1/clientes/:id",status="200"} 1`)
	assert.Contains(t, out, `route="unmatched",status="404"`)
	assert.Contains(t, out, "facturacion_test_http_request_duration_seconds")
}

func TestRutaInexistente(t *testing.T) {
	app := buildTestApp(t)
	var body errorBody
	assert.Equal(t, fiber.StatusNotFound, do(t, app, http.MethodGet, "/v2/nada", nil, &body))
	assert.Equal(t, "NOT_FOUND", body.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestClientes_CrearYObtener(t *testing.T) {
	app := buildTestApp(t)
	created := createCustomer(t, app, "Juan Perez")
	assert.NotEmpty(t, created.ID)

	var got customerBody
	assert.Equal(t, fiber.StatusOK, do(t, app, http.MethodGet, "/v1/clientes/"+created.ID, nil, &got))
	assert.Equal(t, created, got)

	var list []customerBody
	assert.Equal(t, fiber.StatusOK, do(t, app, http.MethodGet, "/v1/clientes", nil, &list))
	assert.Len(t, list, 1)
}

func TestClientes_LimiteDelNombre(t *testing.T) {
	app := buildTestApp(t)

	var ok customerBody
	status := do(t, app, http.MethodPost, "/v1/clientes", map[string]any{
		"nombreCliente": strings.Repeat("a", 100), "tipoIdentificacion": "CC", "numeroIdentificacion": "1",
	}, &ok)
	assert.Equal(t, fiber.StatusCreated, status)

	var body errorBody
	status = do(t, app, http.MethodPost, "/v1/clientes", map[string]any{
		"nombreCliente": strings.Repeat("a", 101), "tipoIdentificacion": "CC", "numeroIdentificacion": "1",
	}, &body)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body.Message, "muy largo")
}

func TestClientes_CuerpoInvalido(t *testing.T) {
	app := buildTestApp(t)
	req := httptest.NewRequest(http.MethodPost, "/v1/clientes", strings.NewReader("{no json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body errorBody
	assert.Equal(t, fiber.StatusBadRequest, do(t, app, http.MethodPost, "/v1/clientes", nil, &body))
	assert.Equal(t, "Faltan campos obligatorios", body.Message)
}

func TestClientes_NumeroIdentificacionNumerico(t *testing.T) {
	app := buildTestApp(t)

	var c customerBody
	status := do(t, app, http.MethodPost, "/v1/clientes", map[string]any{
		"nombreCliente": "Juan Perez", "tipoIdentificacion": "NIT", "numeroIdentificacion": 123456789,
	}, &c)
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "123456789", c.NumeroIdentificacion)

	var updated customerBody
	status = do(t, app, http.MethodPut, "/v1/clientes/"+c.ID, map[string]any{"numeroIdentificacion": 900123456}, &updated)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "900123456", updated.NumeroIdentificacion)
	assert.Equal(t, "Juan Perez", updated.NombreCliente)

	var body errorBody
	status = do(t, app, http.MethodPost, "/v1/clientes", map[string]any{
		"nombreCliente": "Ana", "tipoIdentificacion": "CC", "numeroIdentificacion": true,
	}, &body)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestClientes_ActualizarSoloObservaciones(t *testing.T) {
	app := buildTestApp(t)
	c := createCustomer(t, app, "Ana")

	var updated customerBody
	status := do(t, app, http.MethodPut, "/v1/clientes/"+c.ID, map[string]any{"observaciones": "nota"}, &updated)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "nota", updated.Observaciones)
	assert.Equal(t, c.NombreCliente, updated.NombreCliente)
	assert.Equal(t, c.TipoIdentificacion, updated.TipoIdentificacion)
	assert.Equal(t, c.NumeroIdentificacion, updated.NumeroIdentificacion)

	var body errorBody
	assert.Equal(t, fiber.StatusBadRequest, do(t, app, http.MethodPut, "/v1/clientes/"+c.ID, map[string]any{}, &body))
	assert.Equal(t, "Falta el cuerpo de la petición", body.Message)
}

func TestClientes_NoEncontrado(t *testing.T) {
	app := buildTestApp(t)
	for _, id := range []string{"6a1b2c3d-1111-4222-8333-944455566677", "no-es-uuid"} {
		var body errorBody
		assert.Equal(t, fiber.StatusNotFound, do(t, app, http.MethodGet, "/v1/clientes/"+id, nil, &body))
		assert.Equal(t, "Cliente no encontrado", body.Message)
		assert.Equal(t, fiber.StatusNotFound, do(t, app, http.MethodDelete, "/v1/clientes/"+id, nil, nil))
		assert.Equal(t, fiber.StatusNotFound, do(t, app, http.MethodPut, "/v1/clientes/"+id, map[string]any{"nombreCliente": "x"}, nil))
	}
}

func TestClientes_EliminarConFacturasEsConflicto(t *testing.T) {
	app := buildTestApp(t)
	c := createCustomer(t, app, "Ana")
	inv := createInvoice(t, app, c.ID, "2024-08-10")

	var body errorBody
	assert.Equal(t, fiber.StatusConflict, do(t, app, http.MethodDelete, "/v1/clientes/"+c.ID, nil, &body))
	assert.Equal(t, "El cliente tiene facturas asociadas", body.Message)

	assert.Equal(t, fiber.StatusOK, do(t, app, http.MethodDelete, "/v1/facturas/"+inv.ID, nil, nil))
	var msg map[string]string
	assert.Equal(t, fiber.StatusOK, do(t, app, http.MethodDelete, "/v1/clientes/"+c.ID, nil, &msg))
	assert.Equal(t, "Cliente eliminado", msg["message"])
}

func TestClientes_SeleccionYTipos(t *testing.T) {
	app := buildTestApp(t)
	createCustomer(t, app, "Beto")
	createCustomer(t, app, "Ana")

	var opts []map[string]string
	assert.Equal(t, fiber.StatusOK, do(t, app, http.MethodGet, "/v1/clientes/seleccion", nil, &opts))
	require.Len(t, opts, 2)
	assert.Equal(t, "Ana", opts[0]["label"])

	var types []map[string]string
	assert.Equal(t, fiber.StatusOK, do(t, app, http.MethodGet, "/v1/clientes/tipos-identificacion", nil, &types))
	assert.Len(t, types, 5)
}

func TestClientes_Paginacion(t *testing.T) {
	app := buildTestApp(t)
	for i := 0; i < 12; i++ {
		createCustomer(t, app, "cliente")
	}

	var page struct {
		Data  []customerBody `json:"data"`
		Total int            `json:"total"`
	}
	assert.Equal(t, fiber.StatusOK, do(t, app, http.MethodGet, "/v1/clientes/paginacion?page=2&limit=5", nil, &page))
	assert.Equal(t, 12, page.Total)
	assert.Len(t, page.Data, 5)

	assert.Equal(t, fiber.StatusOK, do(t, app, http.MethodGet, "/v1/clientes/paginacion?page=9&limit=5", nil, &page))
	assert.Equal(t, 12, page.Total)
	assert.Empty(t, page.Data)

	var body errorBody
	assert.Equal(t, fiber.StatusBadRequest, do(t, app, http.MethodGet, "/v1/clientes/paginacion?startDate=99/99/2024", nil, &body))
	assert.Equal(t, "VALIDATION", body.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Facturas
// ──────────────────────────────────────────────────────────────────────────────

func TestFacturas_TotalSeGuardaTalCual(t *testing.T) {
	app := buildTestApp(t)
	c := createCustomer(t, app, "Juan")
	inv := createInvoice(t, app, c.ID, "10/08/2024")
	assert.Equal(t, "2024-08-10", inv.Fecha)

	var got invoiceBody
	assert.Equal(t, fiber.StatusOK, do(t, app, http.MethodGet, "/v1/facturas/"+inv.ID, nil, &got))
	assert.Equal(t, "1319", got.ValorTotal.String())
	require.NotNil(t, got.Cliente)
	assert.Equal(t, "Juan", got.Cliente.NombreCliente)
}

func TestFacturas_ClienteInexistente(t *testing.T) {
	app := buildTestApp(t)
	var body errorBody
	status := do(t, app, http.MethodPost, "/v1/facturas", map[string]any{
		"clienteId": "6a1b2c3d-1111-4222-8333-944455566677", "fecha": "2024-08-10",
		"nombreProducto": "x", "precio": 10, "valorTotal": 10,
	}, &body)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Cliente no encontrado", body.Message)
}

func TestFacturas_ClienteIDEnMayusculas(t *testing.T) {
	app := buildTestApp(t)
	c := createCustomer(t, app, "Juan")
	upper := strings.ToUpper(c.ID)

	var got customerBody
	require.Equal(t, fiber.StatusOK, do(t, app, http.MethodGet, "/v1/clientes/"+upper, nil, &got))

	inv := createInvoice(t, app, upper, "2024-08-10")
	assert.Equal(t, c.ID, inv.ClienteID)

	var body errorBody
	status := do(t, app, http.MethodPost, "/v1/facturas", map[string]any{
		"clienteId": "no-es-uuid", "fecha": "2024-08-10",
		"nombreProducto": "x", "precio": 10, "valorTotal": 10,
	}, &body)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "El ID del cliente no es válido", body.Message)
}

func TestFacturas_PaginacionPorCliente(t *testing.T) {
	app := buildTestApp(t)
	a := createCustomer(t, app, "Cliente A")
	b := createCustomer(t, app, "Cliente B")
	invA := createInvoice(t, app, a.ID, "2024-08-10")
	createInvoice(t, app, b.ID, "2024-08-11")

	var page struct {
		Data []struct {
			ID            string `json:"id"`
			NombreCliente string `json:"nombreCliente"`
			Fecha         string `json:"fecha"`
		} `json:"data"`
		Total int `json:"total"`
	}
	assert.Equal(t, fiber.StatusOK, do(t, app, http.MethodGet, "/v1/facturas/paginacion?id="+a.ID, nil, &page))
	assert.Equal(t, 1, page.Total)
	require.Len(t, page.Data, 1)
	assert.Equal(t, invA.ID, page.Data[0].ID)
	assert.Equal(t, "Cliente A", page.Data[0].NombreCliente)

	path := "/v1/facturas/paginacion?startDate=11/08/2024&endDate=11/08/2024"
	assert.Equal(t, fiber.StatusOK, do(t, app, http.MethodGet, path, nil, &page))
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, "2024-08-11", page.Data[0].Fecha)
}

func TestFacturas_ActualizarYEliminar(t *testing.T) {
	app := buildTestApp(t)
	c := createCustomer(t, app, "Juan")
	inv := createInvoice(t, app, c.ID, "2024-08-10")

	var updated invoiceBody
	status := do(t, app, http.MethodPut, "/v1/facturas/"+inv.ID, map[string]any{"nombreProducto": "Monitor"}, &updated)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Monitor", updated.NombreProducto)
	assert.Equal(t, "1319", updated.ValorTotal.String())

	var body errorBody
	status = do(t, app, http.MethodPut, "/v1/facturas/"+inv.ID, map[string]any{"valorDescuento": 51}, &body)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "El descuento debe estar entre 0 y 50", body.Message)

	var msg map[string]string
	assert.Equal(t, fiber.StatusOK, do(t, app, http.MethodDelete, "/v1/facturas/"+inv.ID, nil, &msg))
	assert.Equal(t, "Factura eliminada", msg["message"])
	assert.Equal(t, fiber.StatusNotFound, do(t, app, http.MethodDelete, "/v1/facturas/"+inv.ID, nil, nil))
}

func TestFacturas_PDF(t *testing.T) {
	app := buildTestApp(t)
	c := createCustomer(t, app, "Juan")
	inv := createInvoice(t, app, c.ID, "2024-08-10")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/v1/facturas/"+inv.ID+"/pdf", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "factura-2024-08-10-")
	raw, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))

	assert.Equal(t, fiber.StatusNotFound, do(t, app, http.MethodGet, "/v1/facturas/6a1b2c3d-1111-4222-8333-944455566677/pdf", nil, nil))
}
