package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"github.com/kanruethaiii/backend-cat/custom/storage"
	"github.com/kanruethaiii/backend-cat/custom/util"
	"github.com/kanruethaiii/backend-cat/dal"
	"github.com/kanruethaiii/backend-cat/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func memoryStore(name string, tables ...string) util.StoreConfig {
	return util.StoreConfig{
		Name:   name,
		Driver: storage.DRIVER_SQLITE,
		DSN:    "file:" + name + "?mode=memory&cache=shared",
		Tables: tables,
	}
}

// newTestServer mirrors the production layout of four stores, all in memory.
func newTestServer(t *testing.T, prefix string) (http.Handler, *dal.Query) {
	stores, err := storage.Open([]util.StoreConfig{
		memoryStore(prefix+"_cat_shop", model.TableBreeds, model.TableCats),
		memoryStore(prefix+"_employees", model.TableCustomers, model.TableEmployees),
		memoryStore(prefix+"_order", model.TableOrders),
		memoryStore(prefix+"_detail", model.TableOrderDetails),
	})
	require.Nil(t, err)
	t.Cleanup(func() { stores.Close() })
	require.Nil(t, stores.Migrate())

	db, err := stores.DB()
	require.Nil(t, err)
	q := dal.Use(db)
	return New(util.DefaultServerConfig(), q, stores).Routes(), q
}

func send(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		b, err := json.Marshal(body)
		require.Nil(t, err)
		reader = bytes.NewReader(b)
	}
	r := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), dst))
}

func seedCat(t *testing.T, h http.Handler) model.Cat {
	w := send(t, h, http.MethodPost, "/breeds", map[string]interface{}{"name": "Siamese"})
	require.Equal(t, http.StatusCreated, w.Code)
	breed := model.Breed{}
	decode(t, w, &breed)

	w = send(t, h, http.MethodPost, "/cats", map[string]interface{}{
		"name": "Whiskers", "breed_id": breed.ID, "age": 2, "color": "white", "price": 100,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	cat := model.Cat{}
	decode(t, w, &cat)
	return cat
}

func seedCustomer(t *testing.T, h http.Handler) model.Customer {
	w := send(t, h, http.MethodPost, "/customers", map[string]interface{}{
		"username": "alice", "firstName": "Alice", "lastName": "Smith",
		"email": "alice@example.com", "phoneNumber": "0812345678",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	customer := model.Customer{}
	decode(t, w, &customer)
	return customer
}

func TestCatLifecycle(t *testing.T) {
	h, _ := newTestServer(t, "cat_lifecycle")
	cat := seedCat(t, h)
	assert.Equal(t, "Available", cat.Availability)

	w := send(t, h, http.MethodGet, "/cats/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	got := model.Cat{}
	decode(t, w, &got)
	assert.Equal(t, "Whiskers", got.Name)
	assert.Equal(t, 2, got.Age)
	assert.Equal(t, 100.0, got.Price)
	assert.Equal(t, "Available", got.Availability)

	// falsy age is "not provided", so only color changes
	w = send(t, h, http.MethodPut, "/cats/1", map[string]interface{}{"age": 0, "color": "black"})
	assert.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &got)
	assert.Equal(t, 2, got.Age)
	assert.Equal(t, "black", got.Color)

	w = send(t, h, http.MethodDelete, "/cats/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = send(t, h, http.MethodGet, "/cats/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Cat not found\n", w.Body.String())
}

func TestOrderSnapshotsNamesAndTotal(t *testing.T) {
	h, _ := newTestServer(t, "order_snapshot")
	cat := seedCat(t, h)
	customer := seedCustomer(t, h)

	w := send(t, h, http.MethodPost, "/orders", map[string]interface{}{
		"cat": cat.ID, "customer": customer.ID, "quantity": 3, "unitPrice": 50,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	order := model.Order{}
	decode(t, w, &order)
	assert.Equal(t, 150.0, order.TotalAmount)
	assert.Equal(t, "alice", order.CustomerName)
	assert.Equal(t, "Whiskers", order.CatName)

	w = send(t, h, http.MethodPut, "/orders/1", map[string]interface{}{"quantity": 0, "unitPrice": 60})
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &order)
	assert.Equal(t, 3, order.Quantity)
	assert.Equal(t, 180.0, order.TotalAmount)

	w = send(t, h, http.MethodPost, "/orders", map[string]interface{}{
		"cat": 99, "customer": customer.ID, "quantity": 1, "unitPrice": 50,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = send(t, h, http.MethodDelete, "/orders/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Order deleted"}`, w.Body.String())
}

func seedOrders(t *testing.T, q *dal.Query, dates []time.Time, totals []float64) {
	for i := range dates {
		err := q.Order.Create(&model.Order{
			CustomerId:   1,
			CustomerName: "alice",
			CatId:        1,
			CatName:      "Whiskers",
			Quantity:     1,
			UnitPrice:    totals[i],
			OrderDate:    dates[i],
			TotalAmount:  totals[i],
		})
		require.Nil(t, err)
	}
}

func TestReportsGroupByDay(t *testing.T) {
	h, q := newTestServer(t, "reports_group")
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	seedOrders(t, q,
		[]time.Time{day.Add(9 * time.Hour), day.Add(12 * time.Hour), day.Add(18 * time.Hour)},
		[]float64{10, 20, 30})

	w := send(t, h, http.MethodGet, "/reports", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"order_date":"2024-01-01","total":60}]`, w.Body.String())
}

func TestReportsNewestDayFirst(t *testing.T) {
	h, q := newTestServer(t, "reports_order")
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	lastMoment := day.Add(24*time.Hour - time.Millisecond)
	seedOrders(t, q,
		[]time.Time{day.Add(-2 * time.Hour), lastMoment, day.Add(26 * time.Hour), day.Add(10 * time.Hour)},
		[]float64{5, 15, 25, 35})

	w := send(t, h, http.MethodGet, "/reports", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"order_date":"2024-01-02","total":25},
		{"order_date":"2024-01-01","total":50},
		{"order_date":"2023-12-31","total":5}
	]`, w.Body.String())

	w = send(t, h, http.MethodGet, "/reports/detail?date=2024-01-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rows := []map[string]interface{}{}
	decode(t, w, &rows)
	require.Len(t, rows, 2)
	assert.Equal(t, "O004", rows[0]["order_id"])
	assert.Equal(t, "O002", rows[1]["order_id"])
}

func TestReportDetailForOneDay(t *testing.T) {
	h, q := newTestServer(t, "reports_detail")
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	seedOrders(t, q,
		[]time.Time{day.Add(8 * time.Hour), day.Add(15 * time.Hour), day.Add(30 * time.Hour)},
		[]float64{10, 20, 40})

	w := send(t, h, http.MethodGet, "/reports/detail?date=2024-01-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rows := []map[string]interface{}{}
	decode(t, w, &rows)
	require.Len(t, rows, 2)
	assert.Equal(t, "O001", rows[0]["order_id"])
	assert.Equal(t, "O002", rows[1]["order_id"])

	w = send(t, h, http.MethodGet, "/reports/detail", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = send(t, h, http.MethodGet, "/reports/detail/pdf?date=2024-01-02", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestInactiveBreedHiddenFromList(t *testing.T) {
	h, _ := newTestServer(t, "breed_inactive")
	send(t, h, http.MethodPost, "/breeds", map[string]interface{}{"name": "Persian"})
	send(t, h, http.MethodPost, "/breeds", map[string]interface{}{"name": "Sphynx"})

	w := send(t, h, http.MethodDelete, "/breeds/2", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = send(t, h, http.MethodGet, "/breeds", nil)
	breeds := []model.Breed{}
	decode(t, w, &breeds)
	require.Len(t, breeds, 1)
	assert.Equal(t, "Persian", breeds[0].Name)

	w = send(t, h, http.MethodGet, "/breeds/2", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	breed := model.Breed{}
	decode(t, w, &breed)
	assert.False(t, breed.IsActive)
}

func TestRouterFallbacks(t *testing.T) {
	h, _ := newTestServer(t, "fallbacks")

	w := send(t, h, http.MethodGet, "/dogs", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = send(t, h, http.MethodPatch, "/cats/1", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = send(t, h, http.MethodGet, "/cats/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthz(t *testing.T) {
	h, _ := newTestServer(t, "healthz")
	w := send(t, h, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(REQUEST_ID_HEADER))
}

type downStores struct{}

func (downStores) Ping(ctx context.Context) error {
	return errors.New("store employees: database is locked")
}

func TestHealthzReportsUnavailableStore(t *testing.T) {
	h := New(util.DefaultServerConfig(), nil, downStores{}).Routes()
	w := send(t, h, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "database is locked")
}
