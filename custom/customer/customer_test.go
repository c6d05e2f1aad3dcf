package customer

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
	testCustomer = model.Customer{
		ID: 1,
		Person: model.Person{
			Username:    "alice",
			FirstName:   "Alice",
			LastName:    "Smith",
			Email:       "alice@mail.com",
			PhoneNumber: "0812345678",
		},
	}
	selectCustomerSQL = `^SELECT \* FROM \"customers\" WHERE \"customers\"\.\"id\" \= .* .* LIMIT .*`
)

func TestGetCustomerSuccess(t *testing.T) {
	sqlDB, _, mock := util.DbMock(t)
	defer sqlDB.Close()
	handlerCtx := HandlerContext{}
	handlerCtx.InitialHandlerContext(dal.Q)

	returnData, _ := util.ObjectToRows(testCustomer)
	mock.ExpectQuery(selectCustomerSQL).WithArgs(testCustomer.ID, 1).WillReturnRows(returnData)

	w := httptest.NewRecorder()
	r := util.WithID(httptest.NewRequest(http.MethodGet, "/customers/1", nil), "1")
	handlerCtx.GetCustomer(w, r)

	actualResp := model.Customer{}
	json.Unmarshal(w.Body.Bytes(), &actualResp)

	assert.Nil(t, mock.ExpectationsWereMet())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, testCustomer, actualResp, "Unexpected result")
}

func TestGetCustomerWithoutID(t *testing.T) {
	sqlDB, _, _ := util.DbMock(t)
	defer sqlDB.Close()
	handlerCtx := HandlerContext{}
	handlerCtx.InitialHandlerContext(dal.Q)

	w := httptest.NewRecorder()
	handlerCtx.GetCustomer(w, httptest.NewRequest(http.MethodGet, "/customers/", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCustomerNotFound(t *testing.T) {
	sqlDB, _, mock := util.DbMock(t)
	defer sqlDB.Close()
	handlerCtx := HandlerContext{}
	handlerCtx.InitialHandlerContext(dal.Q)

	mock.ExpectQuery(selectCustomerSQL).WithArgs(testCustomer.ID, 1).WillReturnError(gorm.ErrRecordNotFound)

	w := httptest.NewRecorder()
	r := util.WithID(httptest.NewRequest(http.MethodGet, "/customers/1", nil), "1")
	handlerCtx.GetCustomer(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateCustomerSuccess(t *testing.T) {
	sqlDB, _, mock := util.DbMock(t)
	defer sqlDB.Close()
	handlerCtx := HandlerContext{}
	handlerCtx.InitialHandlerContext(dal.Q)

	creatCustomerSQL := "INSERT INTO \"customers\" .+ VALUES .+"
	mock.ExpectBegin()
	mock.ExpectQuery(creatCustomerSQL).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	w := httptest.NewRecorder()
	reqBody, _ := json.Marshal(testCustomer)
	handlerCtx.CreateCustomer(w, httptest.NewRequest(http.MethodPost, "/customers", bytes.NewBuffer(reqBody)))

	actualResp := model.Customer{}
	json.Unmarshal(w.Body.Bytes(), &actualResp)

	assert.Nil(t, mock.ExpectationsWereMet())
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, testCustomer.Person, actualResp.Person)
}

func TestCreateCustomerMissingFields(t *testing.T) {
	sqlDB, _, _ := util.DbMock(t)
	defer sqlDB.Close()
	handlerCtx := HandlerContext{}
	handlerCtx.InitialHandlerContext(dal.Q)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewBuffer([]byte(`{"username":"alice"}`)))
	handlerCtx.CreateCustomer(w, r)

	actualResp := map[string]map[string]string{}
	json.Unmarshal(w.Body.Bytes(), &actualResp)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, actualResp["error"], 4)
}

func TestCreateCustomerInvalidEmailAndPhone(t *testing.T) {
	sqlDB, _, _ := util.DbMock(t)
	defer sqlDB.Close()
	handlerCtx := HandlerContext{}
	handlerCtx.InitialHandlerContext(dal.Q)

	invalid := testCustomer
	invalid.Email = "alice.mail.com"
	invalid.PhoneNumber = "081-234"
	reqBody, _ := json.Marshal(invalid)

	w := httptest.NewRecorder()
	handlerCtx.CreateCustomer(w, httptest.NewRequest(http.MethodPost, "/customers", bytes.NewBuffer(reqBody)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":{"email":"must be a valid email address","phoneNumber":"must contain digits only"}}`, w.Body.String())
}

func TestCreateCustomerUsernameExisting(t *testing.T) {
	sqlDB, _, mock := util.DbMock(t)
	defer sqlDB.Close()
	handlerCtx := HandlerContext{}
	handlerCtx.InitialHandlerContext(dal.Q)

	creatCustomerSQL := "INSERT INTO \"customers\" .+ VALUES .+"
	mock.ExpectBegin()
	mock.ExpectQuery(creatCustomerSQL).WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	w := httptest.NewRecorder()
	reqBody, _ := json.Marshal(testCustomer)
	handlerCtx.CreateCustomer(w, httptest.NewRequest(http.MethodPost, "/customers", bytes.NewBuffer(reqBody)))

	assert.Nil(t, mock.ExpectationsWereMet())
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestUpdateCustomerValidatesGivenEmail(t *testing.T) {
	sqlDB, _, mock := util.DbMock(t)
	defer sqlDB.Close()
	handlerCtx := HandlerContext{}
	handlerCtx.InitialHandlerContext(dal.Q)

	w := httptest.NewRecorder()
	r := util.WithID(httptest.NewRequest(http.MethodPut, "/customers/1", bytes.NewBuffer([]byte(`{"email":"nope"}`))), "1")
	handlerCtx.UpdateCustomer(w, r)

	assert.Nil(t, mock.ExpectationsWereMet())
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCustomerSuccess(t *testing.T) {
	sqlDB, _, mock := util.DbMock(t)
	defer sqlDB.Close()
	handlerCtx := HandlerContext{}
	handlerCtx.InitialHandlerContext(dal.Q)

	updated := testCustomer
	updated.LastName = "Jones"
	mock.ExpectBegin()
	mock.ExpectExec(`^UPDATE "customers" SET "last_name"=.+,"updated_at"=.+ WHERE "customers"\."id" = .+`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	returnData, _ := util.ObjectToRows(updated)
	mock.ExpectQuery(selectCustomerSQL).WithArgs(testCustomer.ID, 1).WillReturnRows(returnData)

	w := httptest.NewRecorder()
	r := util.WithID(httptest.NewRequest(http.MethodPut, "/customers/1", bytes.NewBuffer([]byte(`{"lastName":"Jones","email":""}`))), "1")
	handlerCtx.UpdateCustomer(w, r)

	actualResp := model.Customer{}
	json.Unmarshal(w.Body.Bytes(), &actualResp)

	assert.Nil(t, mock.ExpectationsWereMet())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, updated, actualResp)
}

func TestDeleteCustomerNotFound(t *testing.T) {
	sqlDB, _, mock := util.DbMock(t)
	defer sqlDB.Close()
	handlerCtx := HandlerContext{}
	handlerCtx.InitialHandlerContext(dal.Q)

	mock.ExpectBegin()
	mock.ExpectExec(`^DELETE FROM "customers" WHERE "customers"\."id" = .+`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	w := httptest.NewRecorder()
	handlerCtx.DeleteCustomer(w, util.WithID(httptest.NewRequest(http.MethodDelete, "/customers/1", nil), "1"))

	assert.Nil(t, mock.ExpectationsWereMet())
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListEmployees(t *testing.T) {
	sqlDB, _, mock := util.DbMock(t)
	defer sqlDB.Close()
	handlerCtx := HandlerContext{}
	handlerCtx.InitialHandlerContext(dal.Q)

	employee := model.Employee{ID: 2, Person: testCustomer.Person}
	returnData, _ := util.ObjectToRows(employee)
	mock.ExpectQuery(`^SELECT \* FROM "employees" ORDER BY "employees"\."id"`).WillReturnRows(returnData)

	w := httptest.NewRecorder()
	handlerCtx.ListEmployees(w, httptest.NewRequest(http.MethodGet, "/employees", nil))

	actualResp := []model.Employee{}
	json.Unmarshal(w.Body.Bytes(), &actualResp)

	assert.Nil(t, mock.ExpectationsWereMet())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, []model.Employee{employee}, actualResp)
}

func TestCreateEmployeeSuccess(t *testing.T) {
	sqlDB, _, mock := util.DbMock(t)
	defer sqlDB.Close()
	handlerCtx := HandlerContext{}
	handlerCtx.InitialHandlerContext(dal.Q)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "employees" .+ VALUES .+`).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectCommit()

	w := httptest.NewRecorder()
	reqBody, _ := json.Marshal(testCustomer.Person)
	handlerCtx.CreateEmployee(w, httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBuffer(reqBody)))

	actualResp := model.Employee{}
	json.Unmarshal(w.Body.Bytes(), &actualResp)

	assert.Nil(t, mock.ExpectationsWereMet())
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.EqualValues(t, 2, actualResp.ID)
}

func TestGetEmployeeNotFound(t *testing.T) {
	sqlDB, _, mock := util.DbMock(t)
	defer sqlDB.Close()
	handlerCtx := HandlerContext{}
	handlerCtx.InitialHandlerContext(dal.Q)

	mock.ExpectQuery(`^SELECT \* FROM "employees" WHERE "employees"\."id" = .+`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := httptest.NewRecorder()
	handlerCtx.GetEmployee(w, util.WithID(httptest.NewRequest(http.MethodGet, "/employees/9", nil), "9"))

	assert.Nil(t, mock.ExpectationsWereMet())
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Employee not found\n", w.Body.String())
}
