package order

import (
	"github.com/kanruethaiii/backend-cat/constants"
	"github.com/kanruethaiii/backend-cat/custom/util"
	"github.com/kanruethaiii/backend-cat/custom/validator"
	"github.com/kanruethaiii/backend-cat/dal"
	"github.com/kanruethaiii/backend-cat/model"
	"github.com/romana/rlog"
	"net/http"
	"time"
)

type HandlerContext struct {
	db *dal.Query
}

// OrderRequest references the customer and cat by id. Zero values mean "not provided".
type OrderRequest struct {
	Cat       uint       `json:"cat"`
	Customer  uint       `json:"customer"`
	Quantity  float64    `json:"quantity"`
	UnitPrice float64    `json:"unitPrice"`
	OrderDate *time.Time `json:"order_date,omitempty"`
}

func (ctx *HandlerContext) InitialHandlerContext(db *dal.Query) {
	ctx.db = db
}

func (req *OrderRequest) validate(v *validator.Validator, create bool) {
	if create {
		v.Required(req.Cat != 0, "cat")
		v.Required(req.Customer != 0, "customer")
		v.Required(req.Quantity != 0, "quantity")
		v.Required(req.UnitPrice != 0, "unitPrice")
	}
	// a provided quantity must still be a whole cat after flooring
	if req.Quantity != 0 {
		v.Check(floorQuantity(req.Quantity) >= 1, "quantity", "must be at least 1")
	}
	v.Check(req.UnitPrice >= 0, "unitPrice", "must be positive")
}

// resolveCustomer writes a 400 when the customer does not exist.
func (ctx *HandlerContext) resolveCustomer(w http.ResponseWriter, id uint) (*model.Customer, bool) {
	customer, err := ctx.db.Customer.Where(ctx.db.Customer.ID.Eq(id)).First()
	if err != nil {
		util.WriteReferenceError(w, err, constants.REF_CUSTOMER_NOT_FOUND)
		return nil, false
	}
	return customer, true
}

func (ctx *HandlerContext) resolveCat(w http.ResponseWriter, id uint) (*model.Cat, bool) {
	cat, err := ctx.db.Cat.Where(ctx.db.Cat.ID.Eq(id)).First()
	if err != nil {
		util.WriteReferenceError(w, err, constants.REF_CAT_NOT_FOUND)
		return nil, false
	}
	return cat, true
}

func (ctx *HandlerContext) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := ctx.db.Order.Order(ctx.db.Order.OrderId).Find()
	if err != nil {
		util.WriteStorageError(w, err, constants.ORDER_NOT_FOUND)
		return
	}
	util.WriteJSON(w, http.StatusOK, orders)
}

func (ctx *HandlerContext) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := util.ReadIDParam(r)
	if err != nil {
		util.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	orderInfo, err := ctx.db.Order.Where(ctx.db.Order.OrderId.Eq(id)).First()
	if err != nil {
		util.WriteStorageError(w, err, constants.ORDER_NOT_FOUND)
		return
	}
	util.WriteJSON(w, http.StatusOK, orderInfo)
}

// CreateOrder copies the customer's username and the cat's name into the order
// and stores the computed total.
func (ctx *HandlerContext) CreateOrder(w http.ResponseWriter, r *http.Request) {
	req := OrderRequest{}
	if err := util.FetchReqObject(r, &req); err != nil {
		util.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	v := validator.New()
	req.validate(v, true)
	if !v.Valid() {
		util.WriteError(w, http.StatusBadRequest, v.Errors)
		return
	}

	customer, ok := ctx.resolveCustomer(w, req.Customer)
	if !ok {
		return
	}
	cat, ok := ctx.resolveCat(w, req.Cat)
	if !ok {
		return
	}

	quantity := floorQuantity(req.Quantity)
	newOrder := model.Order{
		CustomerId:   customer.ID,
		CustomerName: customer.Username,
		CatId:        cat.ID,
		CatName:      cat.Name,
		Quantity:     quantity,
		UnitPrice:    req.UnitPrice,
		OrderDate:    time.Now().UTC(),
		TotalAmount:  lineTotal(quantity, req.UnitPrice),
	}
	if req.OrderDate != nil {
		newOrder.OrderDate = req.OrderDate.UTC()
	}

	if err := ctx.db.Order.Create(&newOrder); err != nil {
		util.WriteStorageError(w, err, constants.ORDER_NOT_FOUND)
		return
	}
	rlog.Infof("Order %d created for customer %d, total %.2f", newOrder.OrderId, newOrder.CustomerId, newOrder.TotalAmount)
	util.WriteJSON(w, http.StatusCreated, newOrder)
}

// UpdateOrder merges the non-zero request fields into the stored order and
// recomputes the total.
func (ctx *HandlerContext) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := util.ReadIDParam(r)
	if err != nil {
		util.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	req := OrderRequest{}
	if err = util.FetchReqObject(r, &req); err != nil {
		util.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	v := validator.New()
	req.validate(v, false)
	if !v.Valid() {
		util.WriteError(w, http.StatusBadRequest, v.Errors)
		return
	}

	existing, err := ctx.db.Order.Where(ctx.db.Order.OrderId.Eq(id)).First()
	if err != nil {
		util.WriteStorageError(w, err, constants.ORDER_NOT_FOUND)
		return
	}

	if req.Customer != 0 {
		customer, ok := ctx.resolveCustomer(w, req.Customer)
		if !ok {
			return
		}
		existing.CustomerId = customer.ID
		existing.CustomerName = customer.Username
	}
	if req.Cat != 0 {
		cat, ok := ctx.resolveCat(w, req.Cat)
		if !ok {
			return
		}
		existing.CatId = cat.ID
		existing.CatName = cat.Name
	}
	if req.Quantity != 0 {
		existing.Quantity = floorQuantity(req.Quantity)
	}
	if req.UnitPrice != 0 {
		existing.UnitPrice = req.UnitPrice
	}
	if req.OrderDate != nil && !req.OrderDate.IsZero() {
		existing.OrderDate = req.OrderDate.UTC()
	}
	existing.TotalAmount = lineTotal(existing.Quantity, existing.UnitPrice)

	o := ctx.db.Order
	// a zero key keeps gorm from adding its own primary key condition
	changes := *existing
	changes.OrderId = 0
	result, err := o.Where(o.OrderId.Eq(id)).
		Select(o.CustomerId, o.CustomerName, o.CatId, o.CatName, o.Quantity, o.UnitPrice, o.OrderDate, o.TotalAmount, o.UpdatedAt).
		Updates(&changes)
	if err != nil {
		util.WriteStorageError(w, err, constants.ORDER_NOT_FOUND)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, constants.ORDER_NOT_FOUND, http.StatusNotFound)
		return
	}

	orderInfo, err := o.Where(o.OrderId.Eq(id)).First()
	if err != nil {
		util.WriteStorageError(w, err, constants.ORDER_NOT_FOUND)
		return
	}
	util.WriteJSON(w, http.StatusOK, orderInfo)
}

func (ctx *HandlerContext) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := util.ReadIDParam(r)
	if err != nil {
		util.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := ctx.db.Order.Where(ctx.db.Order.OrderId.Eq(id)).Delete()
	if err != nil {
		util.WriteStorageError(w, err, constants.ORDER_NOT_FOUND)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, constants.ORDER_NOT_FOUND, http.StatusNotFound)
		return
	}
	util.WriteJSON(w, http.StatusOK, util.MessageResponse{Message: constants.ORDER_DELETED})
}
