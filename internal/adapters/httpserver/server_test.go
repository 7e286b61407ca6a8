package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Vinaypunani/build-gaming/internal/adapters/session/memory"
	"github.com/Vinaypunani/build-gaming/internal/compat"
	"github.com/Vinaypunani/build-gaming/internal/domain"
	"github.com/Vinaypunani/build-gaming/internal/pricing"
	"github.com/Vinaypunani/build-gaming/internal/usecase"
)

type catalogStub struct {
	mu    sync.Mutex
	items map[string]domain.Component
	last  domain.ComponentFilter
}

func (c *catalogStub) List(_ context.Context, f domain.ComponentFilter) ([]domain.Component, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.last = f
	out := []domain.Component{}
	for _, s := range domain.Slots() {
		for _, it := range c.items {
			if it.Category == s && (f.Category == "" || f.Category == s) {
				out = append(out, it)
			}
		}
	}
	return out, nil
}

func (c *catalogStub) FindByID(_ context.Context, id string) (*domain.Component, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	it, ok := c.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &it, nil
}

func (c *catalogStub) Save(_ context.Context, it *domain.Component) error {
	c.mu.Lock()
	c.items[it.ID] = *it
	c.mu.Unlock()
	return nil
}

func (c *catalogStub) Count(context.Context) (int64, error) { return int64(len(c.items)), nil }

type cartStub struct {
	mu    sync.Mutex
	items []domain.CartItem
}

func (c *cartStub) SubmitLineItem(_ context.Context, owner string, li domain.LineItem) (*domain.Confirmation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	row := domain.CartItem{ID: uuid.New(), Owner: owner, LineItemID: li.ID, Name: li.Name, Price: li.Price, Image: li.Image, Quantity: 1, Parts: li.Parts, CreatedAt: li.CreatedAt}
	c.items = append(c.items, row)
	return &domain.Confirmation{CartItemID: row.ID, LineItemID: li.ID, SubmittedAt: time.Now()}, nil
}

func (c *cartStub) ListByOwner(_ context.Context, owner string) ([]domain.CartItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := []domain.CartItem{}
	for _, it := range c.items {
		if it.Owner == owner {
			out = append(out, it)
		}
	}
	return out, nil
}

func (c *cartStub) Remove(_ context.Context, owner string, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if it.Owner == owner && it.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func part(id string, slot domain.Slot, price, image string, specs map[string]string) domain.Component {
	return domain.Component{ID: id, Name: id, Brand: "B", Category: slot, Image: image, Price: decimal.RequireFromString(price), Rating: 4, Specs: specs}
}

func testParts() []domain.Component {
	return []domain.Component{
		part("cpu-1", domain.SlotCPU, "699.99", "/img/cpu.webp", map[string]string{"socket": "AM5", "tdp": "170W"}),
		part("cpu-intel", domain.SlotCPU, "589.99", "/img/cpu2.webp", map[string]string{"socket": "LGA 1700", "tdp": "125W"}),
		part("mb-1", domain.SlotMotherboard, "499.99", "/img/mb.webp", map[string]string{"socket": "AM5", "formFactor": "ATX"}),
		part("ram-1", domain.SlotMemory, "189.99", "/img/ram.webp", map[string]string{"type": "DDR5"}),
		part("ssd-1", domain.SlotStorage, "179.99", "/img/ssd.webp", nil),
		part("gpu-1", domain.SlotGPU, "1599.99", "/img/gpu.webp", map[string]string{"length": "337mm", "power": "450W"}),
		part("case-1", domain.SlotCase, "129.99", "/img/case.webp", map[string]string{"gpuClearance": "400mm", "motherboardSupport": "ATX"}),
		part("psu-1", domain.SlotPowerSupply, "199.99", "/img/psu.webp", map[string]string{"wattage": "1000W"}),
		part("cool-1", domain.SlotCooling, "149.99", "/img/cool.webp", nil),
	}
}

type harness struct {
	handler http.Handler
	catalog *catalogStub
	cart    *cartStub
	cookie  *http.Cookie
}

func newHarness(opts ...func(*Deps)) *harness {
	cat := &catalogStub{items: map[string]domain.Component{}}
	for _, p := range testParts() {
		cat.items[p.ID] = p
	}
	cart := &cartStub{}
	builder := usecase.NewBuilder(pricing.DefaultPolicy(), compat.Default(), "")
	d := Deps{
		Catalog:    &usecase.CatalogUC{Components: cat},
		Builder:    usecase.NewBuilderUC(memory.New(0), cat, cart, builder),
		Quotes:     usecase.NewQuoteUC(),
		Imports:    &usecase.ImportUC{Components: cat},
		Cart:       &usecase.CartUC{Cart: cart},
		AdminToken: "secret",
	}
	for _, o := range opts {
		o(&d)
	}
	h := New(d)
	return &harness{handler: h, catalog: cat, cart: cart}
}

func (h *harness) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	if h.cookie != nil {
		req.AddCookie(h.cookie)
	}
	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookie {
			h.cookie = c
		}
	}
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealthz(t *testing.T) {
	rec := newHarness().do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, 200, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestAPIComponents(t *testing.T) {
	h := newHarness()

	rec := h.do(t, http.MethodGet, "/api/components?slot=CPU", nil)
	require.Equal(t, 200, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "cpu", body["slot"])
	assert.Equal(t, "Processor", body["label"])
	assert.Equal(t, float64(2), body["total"])

	assert.Equal(t, 400, h.do(t, http.MethodGet, "/api/components?slot=toaster", nil).Code)
	assert.Equal(t, 400, h.do(t, http.MethodGet, "/api/components?slot=cpu&sort=stock", nil).Code)
	assert.Equal(t, 400, h.do(t, http.MethodGet, "/api/components?slot=cpu&in_stock=maybe", nil).Code)
	assert.Equal(t, 405, h.do(t, http.MethodPost, "/api/components?slot=cpu", nil).Code)

	assert.Equal(t, 200, h.do(t, http.MethodGet, "/api/components/gpu-1", nil).Code)
	assert.Equal(t, 404, h.do(t, http.MethodGet, "/api/components/nope", nil).Code)
}

func TestAPIComponentsInStock(t *testing.T) {
	h := newHarness()

	require.Equal(t, 200, h.do(t, http.MethodGet, "/api/components?slot=gpu&in_stock=true&sort=price&order=desc", nil).Code)
	assert.Equal(t, domain.ComponentFilter{Category: domain.SlotGPU, Sort: "price", Desc: true, InStock: true}, h.catalog.last)

	require.Equal(t, 200, h.do(t, http.MethodGet, "/api/components?slot=gpu", nil).Code)
	assert.False(t, h.catalog.last.InStock)
}

func TestAPIBuilder_SessionCookieAndSelect(t *testing.T) {
	h := newHarness()

	rec := h.do(t, http.MethodGet, "/api/builder", nil)
	require.Equal(t, 200, rec.Code)
	require.NotNil(t, h.cookie)
	assert.True(t, h.cookie.HttpOnly)
	first := h.cookie.Value

	rec = h.do(t, http.MethodPost, "/api/builder/select", map[string]string{"slot": "cpu", "component_id": "cpu-1"})
	require.Equal(t, 200, rec.Code)
	assert.Equal(t, first, h.cookie.Value)
	body := decode(t, rec)
	assert.Equal(t, float64(1), body["completed"])
	assert.Equal(t, "699.99", body["breakdown"].(map[string]any)["subtotal"])

	rec = h.do(t, http.MethodPost, "/api/builder/select", map[string]string{"slot": "gpu", "component_id": "cpu-1"})
	assert.Equal(t, 400, rec.Code)

	rec = h.do(t, http.MethodPost, "/api/builder/select", map[string]string{"slot": "cpu", "component_id": "missing"})
	assert.Equal(t, 404, rec.Code)

	rec = h.do(t, http.MethodPost, "/api/builder/clear", map[string]string{"slot": "Processor"})
	require.Equal(t, 200, rec.Code)
	assert.Equal(t, float64(0), decode(t, rec)["completed"])
}

func TestAPIBuilder_IncompatibleSelectionReported(t *testing.T) {
	h := newHarness()
	h.do(t, http.MethodPost, "/api/builder/select", map[string]string{"slot": "cpu", "component_id": "cpu-intel"})
	rec := h.do(t, http.MethodPost, "/api/builder/select", map[string]string{"slot": "motherboard", "component_id": "mb-1"})
	require.Equal(t, 200, rec.Code)

	report := decode(t, rec)["compatibility"].(map[string]any)
	assert.Equal(t, false, report["pass"])
	violations := report["violations"].([]any)
	require.Len(t, violations, 1)
	assert.Equal(t, []any{"cpu", "motherboard"}, violations[0].(map[string]any)["slots"])
}

func TestAPIBuilder_CommitFlow(t *testing.T) {
	h := newHarness()

	rec := h.do(t, http.MethodPost, "/api/builder/commit", nil)
	require.Equal(t, 422, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "build_not_ready", body["error"])
	assert.Len(t, body["missing"], 8)

	for _, id := range []string{"cpu-1", "mb-1", "ram-1", "ssd-1", "gpu-1", "case-1", "psu-1", "cool-1"} {
		p := h.catalog.items[id]
		require.Equal(t, 200, h.do(t, http.MethodPost, "/api/builder/select", map[string]string{"slot": string(p.Category), "component_id": id}).Code)
	}

	rec = h.do(t, http.MethodPost, "/api/builder/commit", nil)
	require.Equal(t, 201, rec.Code)
	item := decode(t, rec)["item"].(map[string]any)
	assert.Equal(t, "Custom PC Build (8 parts)", item["name"])
	assert.Equal(t, "3749.91", item["price"])
	assert.Equal(t, "/img/case.webp", item["image"])

	rec = h.do(t, http.MethodGet, "/api/cart", nil)
	require.Equal(t, 200, rec.Code)
	cart := decode(t, rec)
	assert.Equal(t, float64(1), cart["total"])

	snap := decode(t, h.do(t, http.MethodGet, "/api/builder", nil))
	assert.Equal(t, float64(0), snap["completed"])

	cartID := cart["items"].([]any)[0].(map[string]any)["id"]
	assert.Equal(t, 204, h.do(t, http.MethodPost, "/api/cart/remove", map[string]any{"id": cartID}).Code)
	assert.Equal(t, 404, h.do(t, http.MethodPost, "/api/cart/remove", map[string]any{"id": cartID}).Code)
}

func TestAPIBuilder_Reset(t *testing.T) {
	h := newHarness()
	h.do(t, http.MethodPost, "/api/builder/select", map[string]string{"slot": "cpu", "component_id": "cpu-1"})

	assert.Equal(t, 405, h.do(t, http.MethodGet, "/api/builder/reset", nil).Code)
	rec := h.do(t, http.MethodPost, "/api/builder/reset", nil)
	require.Equal(t, 200, rec.Code)
	assert.Equal(t, float64(0), decode(t, rec)["completed"])
}

func TestAPIBuilder_QuoteXLSX(t *testing.T) {
	h := newHarness()
	h.do(t, http.MethodPost, "/api/builder/select", map[string]string{"slot": "gpu", "component_id": "gpu-1"})

	rec := h.do(t, http.MethodGet, "/api/builder/quote.xlsx", nil)
	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "pc-build-quote.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	v, err := f.GetCellValue("Quote", "B6")
	require.NoError(t, err)
	assert.Equal(t, "gpu-1", v)
}

func TestAdminImportXLSX(t *testing.T) {
	h := newHarness()

	wb := excelize.NewFile()
	require.NoError(t, wb.SetSheetName("Sheet1", "GPU"))
	require.NoError(t, wb.SetSheetRow("GPU", "A1", &[]any{"id", "name", "price", "length"}))
	require.NoError(t, wb.SetSheetRow("GPU", "A2", &[]any{"gpu-2", "RX 7900 XTX", "999.99", "287mm"}))
	var xlsx bytes.Buffer
	require.NoError(t, wb.Write(&xlsx))
	wb.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "catalog.xlsx")
	require.NoError(t, err)
	_, err = fw.Write(xlsx.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	send := func(token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/admin/import/xlsx", bytes.NewReader(body.Bytes()))
		req.Header.Set("Content-Type", mw.FormDataContentType())
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		h.handler.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, 401, send("").Code)
	assert.Equal(t, 401, send("wrong").Code)

	rec := send("secret")
	require.Equal(t, 200, rec.Code)
	assert.Equal(t, float64(1), decode(t, rec)["created"])
	assert.Equal(t, "287mm", h.catalog.items["gpu-2"].Specs["length"])
}

func TestAdminImportXLSXTooLarge(t *testing.T) {
	h := newHarness(func(d *Deps) { d.MaxImportBytes = 1024 })

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "catalog.xlsx")
	require.NoError(t, err)
	_, err = fw.Write(bytes.Repeat([]byte("x"), 2048))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/import/xlsx", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "too_large", decode(t, rec)["error"])
	assert.Empty(t, h.catalog.items["gpu-2"].ID)
}

func TestRecoveryMiddleware(t *testing.T) {
	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }), Recovery, RequestID, Logging)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, 500, rec.Code)
}
