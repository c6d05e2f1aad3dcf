package customer

import (
	"github.com/kanruethaiii/backend-cat/constants"
	"github.com/kanruethaiii/backend-cat/custom/util"
	"github.com/kanruethaiii/backend-cat/custom/validator"
	"github.com/kanruethaiii/backend-cat/dal"
	"github.com/kanruethaiii/backend-cat/model"
	"github.com/romana/rlog"
	"net/http"
)

// HandlerContext serves customers and employees. Both share the model.Person shape.
type HandlerContext struct {
	db *dal.Query
}

func (ctx *HandlerContext) InitialHandlerContext(db *dal.Query) {
	ctx.db = db
}

// validatePerson checks required fields on create and the format of any non-empty field.
func validatePerson(v *validator.Validator, p *model.Person, create bool) {
	if create {
		v.Required(p.Username != "", "username")
		v.Required(p.FirstName != "", "firstName")
		v.Required(p.LastName != "", "lastName")
		v.Required(p.Email != "", "email")
		v.Required(p.PhoneNumber != "", "phoneNumber")
	}
	if p.Email != "" {
		v.Check(validator.Matches(p.Email, validator.EmailRX), "email", "must be a valid email address")
	}
	if p.PhoneNumber != "" {
		v.Check(validator.Matches(p.PhoneNumber, validator.NumericRX), "phoneNumber", "must contain digits only")
	}
}

func fetchPerson(w http.ResponseWriter, r *http.Request, create bool) (*model.Person, bool) {
	req := model.Person{}
	if err := util.FetchReqObject(r, &req); err != nil {
		util.WriteError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	v := validator.New()
	validatePerson(v, &req, create)
	if !v.Valid() {
		util.WriteError(w, http.StatusBadRequest, v.Errors)
		return nil, false
	}
	return &req, true
}

func (ctx *HandlerContext) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := ctx.db.Customer.Order(ctx.db.Customer.ID).Find()
	if err != nil {
		util.WriteStorageError(w, err, constants.CUSTOMER_NOT_FOUND)
		return
	}
	util.WriteJSON(w, http.StatusOK, customers)
}

func (ctx *HandlerContext) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := util.ReadIDParam(r)
	if err != nil {
		util.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	customerInfo, err := ctx.db.Customer.Where(ctx.db.Customer.ID.Eq(id)).First()
	if err != nil {
		util.WriteStorageError(w, err, constants.CUSTOMER_NOT_FOUND)
		return
	}
	util.WriteJSON(w, http.StatusOK, customerInfo)
}

func (ctx *HandlerContext) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	person, ok := fetchPerson(w, r, true)
	if !ok {
		return
	}

	newCustomer := model.Customer{Person: *person}
	if err := ctx.db.Customer.Create(&newCustomer); err != nil {
		util.WriteStorageError(w, err, constants.CUSTOMER_NOT_FOUND)
		return
	}
	rlog.Infof("Customer %d (%s) created", newCustomer.ID, newCustomer.Username)
	util.WriteJSON(w, http.StatusCreated, newCustomer)
}

func (ctx *HandlerContext) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := util.ReadIDParam(r)
	if err != nil {
		util.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	person, ok := fetchPerson(w, r, false)
	if !ok {
		return
	}

	result, err := ctx.db.Customer.Where(ctx.db.Customer.ID.Eq(id)).Updates(&model.Customer{Person: *person})
	if err != nil {
		util.WriteStorageError(w, err, constants.CUSTOMER_NOT_FOUND)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, constants.CUSTOMER_NOT_FOUND, http.StatusNotFound)
		return
	}

	customerInfo, err := ctx.db.Customer.Where(ctx.db.Customer.ID.Eq(id)).First()
	if err != nil {
		util.WriteStorageError(w, err, constants.CUSTOMER_NOT_FOUND)
		return
	}
	util.WriteJSON(w, http.StatusOK, customerInfo)
}

func (ctx *HandlerContext) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := util.ReadIDParam(r)
	if err != nil {
		util.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := ctx.db.Customer.Where(ctx.db.Customer.ID.Eq(id)).Delete()
	if err != nil {
		util.WriteStorageError(w, err, constants.CUSTOMER_NOT_FOUND)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, constants.CUSTOMER_NOT_FOUND, http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (ctx *HandlerContext) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := ctx.db.Employee.Order(ctx.db.Employee.ID).Find()
	if err != nil {
		util.WriteStorageError(w, err, constants.EMPLOYEE_NOT_FOUND)
		return
	}
	util.WriteJSON(w, http.StatusOK, employees)
}

func (ctx *HandlerContext) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := util.ReadIDParam(r)
	if err != nil {
		util.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	employee, err := ctx.db.Employee.Where(ctx.db.Employee.ID.Eq(id)).First()
	if err != nil {
		util.WriteStorageError(w, err, constants.EMPLOYEE_NOT_FOUND)
		return
	}
	util.WriteJSON(w, http.StatusOK, employee)
}

func (ctx *HandlerContext) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	person, ok := fetchPerson(w, r, true)
	if !ok {
		return
	}

	newEmployee := model.Employee{Person: *person}
	if err := ctx.db.Employee.Create(&newEmployee); err != nil {
		util.WriteStorageError(w, err, constants.EMPLOYEE_NOT_FOUND)
		return
	}
	rlog.Infof("Employee %d (%s) created", newEmployee.ID, newEmployee.Username)
	util.WriteJSON(w, http.StatusCreated, newEmployee)
}
