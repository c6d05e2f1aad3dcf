package report

import (
	"bytes"
	"encoding/json"
	"github.com/kanruethaiii/backend-cat/custom/util"
	"github.com/kanruethaiii/backend-cat/dal"
	"github.com/kanruethaiii/backend-cat/model"
	"github.com/stretchr/testify/assert"
	"gopkg.in/DATA-DOG/go-sqlmock.v1"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

var (
	day         = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	dailySQL    = `^SELECT DATE\(.+order_date.+\) AS .+order_date.+,SUM\(.+total_amount.+\) AS .+total.+ FROM "orders" GROUP BY DATE\(.+\) ORDER BY DATE\(.+\) DESC`
	detailSQL   = `^SELECT \* FROM "orders" WHERE "orders"\."order_date" >= .+ AND "orders"\."order_date" < .+ ORDER BY "orders"\."order_date"`
	firstOrders = []interface{}{
		model.Order{OrderId: 1, CustomerName: "alice", CatName: "Whiskers", Quantity: 1, UnitPrice: 10, OrderDate: day.Add(9 * time.Hour), TotalAmount: 10},
		model.Order{OrderId: 2, CustomerName: "bob", CatName: "Tom", Quantity: 2, UnitPrice: 10, OrderDate: day.Add(10 * time.Hour), TotalAmount: 20},
		model.Order{OrderId: 12, CustomerName: "carol", CatName: "Luna", Quantity: 1, UnitPrice: 30, OrderDate: day.Add(11 * time.Hour), TotalAmount: 30},
	}
)

func TestGetDailyTotals(t *testing.T) {
	sqlDB, _, mock := util.DbMock(t)
	defer sqlDB.Close()
	handlerCtx := HandlerContext{}
	handlerCtx.InitialHandlerContext(dal.Q)

	rows := sqlmock.NewRows([]string{"order_date", "total"}).
		AddRow(day.Add(24*time.Hour), 15.5).
		AddRow(day, 60.000000001)
	mock.ExpectQuery(dailySQL).WillReturnRows(rows)

	w := httptest.NewRecorder()
	handlerCtx.GetDailyTotals(w, httptest.NewRequest(http.MethodGet, "/reports", nil))

	actualResp := []DailyTotal{}
	json.Unmarshal(w.Body.Bytes(), &actualResp)

	assert.Nil(t, mock.ExpectationsWereMet())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []DailyTotal{
		{OrderDate: "2024-01-02", Total: 15.5},
		{OrderDate: "2024-01-01", Total: 60},
	}, actualResp)
}

func TestGetDailyTotalsEmpty(t *testing.T) {
	sqlDB, _, mock := util.DbMock(t)
	defer sqlDB.Close()
	handlerCtx := HandlerContext{}
	handlerCtx.InitialHandlerContext(dal.Q)

	mock.ExpectQuery(dailySQL).WillReturnRows(sqlmock.NewRows([]string{"order_date", "total"}))

	w := httptest.NewRecorder()
	handlerCtx.GetDailyTotals(w, httptest.NewRequest(http.MethodGet, "/reports", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestGetDetailByDate(t *testing.T) {
	sqlDB, _, mock := util.DbMock(t)
	defer sqlDB.Close()
	handlerCtx := HandlerContext{}
	handlerCtx.InitialHandlerContext(dal.Q)

	rows, _ := util.ObjectToRows(firstOrders...)
	mock.ExpectQuery(detailSQL).WithArgs(day, day.Add(24*time.Hour)).WillReturnRows(rows)

	w := httptest.NewRecorder()
	handlerCtx.GetDetailByDate(w, httptest.NewRequest(http.MethodGet, "/reports/detail?date=2024-01-01", nil))

	actualResp := []DetailRow{}
	json.Unmarshal(w.Body.Bytes(), &actualResp)

	assert.Nil(t, mock.ExpectationsWereMet())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, actualResp, 3)
	assert.Equal(t, DetailRow{OrderId: "O001", CustomerName: "alice", CatName: "Whiskers", Quantity: 1, UnitPrice: 10, TotalAmount: 10}, actualResp[0])
	assert.Equal(t, "O002", actualResp[1].OrderId)
	assert.Equal(t, "O012", actualResp[2].OrderId)
}

func TestGetDetailByDateRequiresDate(t *testing.T) {
	sqlDB, _, mock := util.DbMock(t)
	defer sqlDB.Close()
	handlerCtx := HandlerContext{}
	handlerCtx.InitialHandlerContext(dal.Q)

	for _, target := range []string{"/reports/detail", "/reports/detail?date=", "/reports/detail?date=2024-13-01", "/reports/detail?date=2024-1-1", "/reports/detail/pdf"} {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, target, nil)
		if bytes.HasSuffix([]byte(target), []byte("/pdf")) {
			handlerCtx.GetDetailPDF(w, r)
		} else {
			handlerCtx.GetDetailByDate(w, r)
		}
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestGetDetailPDF(t *testing.T) {
	sqlDB, _, mock := util.DbMock(t)
	defer sqlDB.Close()
	handlerCtx := HandlerContext{}
	handlerCtx.InitialHandlerContext(dal.Q)

	rows, _ := util.ObjectToRows(firstOrders...)
	mock.ExpectQuery(detailSQL).WithArgs(day, day.Add(24*time.Hour)).WillReturnRows(rows)

	w := httptest.NewRecorder()
	handlerCtx.GetDetailPDF(w, httptest.NewRequest(http.MethodGet, "/reports/detail/pdf?date=2024-01-01", nil))

	assert.Nil(t, mock.ExpectationsWereMet())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "sales_2024-01-01.pdf")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}
