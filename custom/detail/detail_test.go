package detail

import (
	"bytes"
	"encoding/json"
	"github.com/kanruethaiii/backend-cat/custom/util"
	"github.com/kanruethaiii/backend-cat/dal"
	"github.com/kanruethaiii/backend-cat/model"
	"github.com/stretchr/testify/assert"
	"gopkg.in/DATA-DOG/go-sqlmock.v1"
	"gorm.io/gorm"
	"net/http"
	"net/http/httptest"
	"testing"
)

var (
	testDetail      = model.OrderDetail{DetailId: 4, OrderId: 1, CatId: 7, Quantity: 2, UnitPrice: 50}
	selectOrderSQL  = `^SELECT \* FROM "orders" WHERE "orders"\."order_id" = .+ LIMIT .+`
	selectCatSQL    = `^SELECT \* FROM "cats" WHERE "cats"\."id" = .+ LIMIT .+`
	selectDetailSQL = `^SELECT \* FROM "order_details" WHERE "order_details"\."detail_id" = .+ LIMIT .+`
)

func TestCreateDetailSuccess(t *testing.T) {
	sqlDB, _, mock := util.DbMock(t)
	defer sqlDB.Close()
	handlerCtx := HandlerContext{}
	handlerCtx.InitialHandlerContext(dal.Q)

	orderRows, _ := util.ObjectToRows(model.Order{OrderId: 1, CustomerId: 1, CatId: 7, Quantity: 1, UnitPrice: 50})
	catRows, _ := util.ObjectToRows(model.Cat{ID: 7, Name: "Whiskers"})
	mock.ExpectQuery(selectOrderSQL).WithArgs(1, 1).WillReturnRows(orderRows)
	mock.ExpectQuery(selectCatSQL).WithArgs(7, 1).WillReturnRows(catRows)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "order_details" .+ VALUES .+`).WillReturnRows(sqlmock.NewRows([]string{"detail_id"}).AddRow(4))
	mock.ExpectCommit()

	w := httptest.NewRecorder()
	reqBody := []byte(`{"order_id":1,"cat_id":7,"quantity":2,"unitPrice":50}`)
	handlerCtx.CreateDetail(w, httptest.NewRequest(http.MethodPost, "/details", bytes.NewBuffer(reqBody)))

	actualResp := model.OrderDetail{}
	json.Unmarshal(w.Body.Bytes(), &actualResp)

	assert.Nil(t, mock.ExpectationsWereMet())
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.EqualValues(t, 4, actualResp.DetailId)
	assert.Equal(t, 2, actualResp.Quantity)
}

func TestCreateDetailMissingFields(t *testing.T) {
	sqlDB, _, _ := util.DbMock(t)
	defer sqlDB.Close()
	handlerCtx := HandlerContext{}
	handlerCtx.InitialHandlerContext(dal.Q)

	w := httptest.NewRecorder()
	handlerCtx.CreateDetail(w, httptest.NewRequest(http.MethodPost, "/details", bytes.NewBuffer([]byte(`{"cat_id":7}`))))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":{"order_id":"is required","quantity":"is required","unitPrice":"is required"}}`, w.Body.String())
}

func TestCreateDetailFractionalQuantity(t *testing.T) {
	sqlDB, _, mock := util.DbMock(t)
	defer sqlDB.Close()
	handlerCtx := HandlerContext{}
	handlerCtx.InitialHandlerContext(dal.Q)

	w := httptest.NewRecorder()
	reqBody := []byte(`{"order_id":1,"cat_id":7,"quantity":0.5,"unitPrice":50}`)
	handlerCtx.CreateDetail(w, httptest.NewRequest(http.MethodPost, "/details", bytes.NewBuffer(reqBody)))

	assert.Nil(t, mock.ExpectationsWereMet())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":{"quantity":"must be at least 1"}}`, w.Body.String())
}

func TestCreateDetailUnknownOrder(t *testing.T) {
	sqlDB, _, mock := util.DbMock(t)
	defer sqlDB.Close()
	handlerCtx := HandlerContext{}
	handlerCtx.InitialHandlerContext(dal.Q)

	mock.ExpectQuery(selectOrderSQL).WithArgs(3, 1).WillReturnError(gorm.ErrRecordNotFound)

	w := httptest.NewRecorder()
	reqBody := []byte(`{"order_id":3,"cat_id":7,"quantity":2,"unitPrice":50}`)
	handlerCtx.CreateDetail(w, httptest.NewRequest(http.MethodPost, "/details", bytes.NewBuffer(reqBody)))

	assert.Nil(t, mock.ExpectationsWereMet())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"order not found"}`, w.Body.String())
}

func TestGetDetailSuccess(t *testing.T) {
	sqlDB, _, mock := util.DbMock(t)
	defer sqlDB.Close()
	handlerCtx := HandlerContext{}
	handlerCtx.InitialHandlerContext(dal.Q)

	rows, _ := util.ObjectToRows(testDetail)
	mock.ExpectQuery(selectDetailSQL).WithArgs(testDetail.DetailId, 1).WillReturnRows(rows)

	w := httptest.NewRecorder()
	handlerCtx.GetDetail(w, util.WithID(httptest.NewRequest(http.MethodGet, "/details/4", nil), "4"))

	actualResp := model.OrderDetail{}
	json.Unmarshal(w.Body.Bytes(), &actualResp)

	assert.Nil(t, mock.ExpectationsWereMet())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, testDetail, actualResp)
}

func TestUpdateDetailChecksChangedCat(t *testing.T) {
	sqlDB, _, mock := util.DbMock(t)
	defer sqlDB.Close()
	handlerCtx := HandlerContext{}
	handlerCtx.InitialHandlerContext(dal.Q)

	mock.ExpectQuery(selectCatSQL).WithArgs(8, 1).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := httptest.NewRecorder()
	r := util.WithID(httptest.NewRequest(http.MethodPut, "/details/4", bytes.NewBuffer([]byte(`{"cat_id":8}`))), "4")
	handlerCtx.UpdateDetail(w, r)

	assert.Nil(t, mock.ExpectationsWereMet())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"cat not found"}`, w.Body.String())
}

func TestUpdateDetailQuantity(t *testing.T) {
	sqlDB, _, mock := util.DbMock(t)
	defer sqlDB.Close()
	handlerCtx := HandlerContext{}
	handlerCtx.InitialHandlerContext(dal.Q)

	updated := testDetail
	updated.Quantity = 5
	mock.ExpectBegin()
	mock.ExpectExec(`^UPDATE "order_details" SET "quantity"=.+,"updated_at"=.+ WHERE "order_details"\."detail_id" = .+`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	rows, _ := util.ObjectToRows(updated)
	mock.ExpectQuery(selectDetailSQL).WillReturnRows(rows)

	w := httptest.NewRecorder()
	r := util.WithID(httptest.NewRequest(http.MethodPut, "/details/4", bytes.NewBuffer([]byte(`{"quantity":5}`))), "4")
	handlerCtx.UpdateDetail(w, r)

	actualResp := model.OrderDetail{}
	json.Unmarshal(w.Body.Bytes(), &actualResp)

	assert.Nil(t, mock.ExpectationsWereMet())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, actualResp.Quantity)
}

func TestDeleteDetailSuccess(t *testing.T) {
	sqlDB, _, mock := util.DbMock(t)
	defer sqlDB.Close()
	handlerCtx := HandlerContext{}
	handlerCtx.InitialHandlerContext(dal.Q)

	mock.ExpectBegin()
	mock.ExpectExec(`^DELETE FROM "order_details" WHERE "order_details"\."detail_id" = .+`).WithArgs(4).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := httptest.NewRecorder()
	handlerCtx.DeleteDetail(w, util.WithID(httptest.NewRequest(http.MethodDelete, "/details/4", nil), "4"))

	assert.Nil(t, mock.ExpectationsWereMet())
	assert.Equal(t, http.StatusNoContent, w.Code)
}
