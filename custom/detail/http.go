package detail

import (
	"github.com/kanruethaiii/backend-cat/constants"
	"github.com/kanruethaiii/backend-cat/custom/util"
	"github.com/kanruethaiii/backend-cat/custom/validator"
	"github.com/kanruethaiii/backend-cat/dal"
	"github.com/kanruethaiii/backend-cat/model"
	"github.com/romana/rlog"
	"math"
	"net/http"
)

type HandlerContext struct {
	db *dal.Query
}

type DetailRequest struct {
	OrderId   uint    `json:"order_id"`
	CatId     uint    `json:"cat_id"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

func (ctx *HandlerContext) InitialHandlerContext(db *dal.Query) {
	ctx.db = db
}

func (req *DetailRequest) validate(v *validator.Validator, create bool) {
	if create {
		v.Required(req.OrderId != 0, "order_id")
		v.Required(req.CatId != 0, "cat_id")
		v.Required(req.Quantity != 0, "quantity")
		v.Required(req.UnitPrice != 0, "unitPrice")
	}
	if req.Quantity != 0 {
		v.Check(math.Floor(req.Quantity) >= 1, "quantity", "must be at least 1")
	}
	v.Check(req.UnitPrice >= 0, "unitPrice", "must be positive")
}

// checkReferences verifies every non-zero key in req. It writes the response on failure.
func (ctx *HandlerContext) checkReferences(w http.ResponseWriter, req *DetailRequest) bool {
	if req.OrderId != 0 {
		if _, err := ctx.db.Order.Where(ctx.db.Order.OrderId.Eq(req.OrderId)).First(); err != nil {
			util.WriteReferenceError(w, err, constants.REF_ORDER_NOT_FOUND)
			return false
		}
	}
	if req.CatId != 0 {
		if _, err := ctx.db.Cat.Where(ctx.db.Cat.ID.Eq(req.CatId)).First(); err != nil {
			util.WriteReferenceError(w, err, constants.REF_CAT_NOT_FOUND)
			return false
		}
	}
	return true
}

func (req *DetailRequest) toModel() *model.OrderDetail {
	return &model.OrderDetail{
		OrderId:   req.OrderId,
		CatId:     req.CatId,
		Quantity:  int(math.Floor(req.Quantity)),
		UnitPrice: req.UnitPrice,
	}
}

func (ctx *HandlerContext) ListDetails(w http.ResponseWriter, r *http.Request) {
	details, err := ctx.db.OrderDetail.Order(ctx.db.OrderDetail.DetailId).Find()
	if err != nil {
		util.WriteStorageError(w, err, constants.DETAIL_NOT_FOUND)
		return
	}
	util.WriteJSON(w, http.StatusOK, details)
}

func (ctx *HandlerContext) GetDetail(w http.ResponseWriter, r *http.Request) {
	id, err := util.ReadIDParam(r)
	if err != nil {
		util.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	detail, err := ctx.db.OrderDetail.Where(ctx.db.OrderDetail.DetailId.Eq(id)).First()
	if err != nil {
		util.WriteStorageError(w, err, constants.DETAIL_NOT_FOUND)
		return
	}
	util.WriteJSON(w, http.StatusOK, detail)
}

func (ctx *HandlerContext) CreateDetail(w http.ResponseWriter, r *http.Request) {
	req := DetailRequest{}
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
	if !ctx.checkReferences(w, &req) {
		return
	}

	newDetail := req.toModel()
	if err := ctx.db.OrderDetail.Create(newDetail); err != nil {
		util.WriteStorageError(w, err, constants.DETAIL_NOT_FOUND)
		return
	}
	rlog.Infof("Detail %d added to order %d", newDetail.DetailId, newDetail.OrderId)
	util.WriteJSON(w, http.StatusCreated, newDetail)
}

func (ctx *HandlerContext) UpdateDetail(w http.ResponseWriter, r *http.Request) {
	id, err := util.ReadIDParam(r)
	if err != nil {
		util.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	req := DetailRequest{}
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
	if !ctx.checkReferences(w, &req) {
		return
	}

	result, err := ctx.db.OrderDetail.Where(ctx.db.OrderDetail.DetailId.Eq(id)).Updates(req.toModel())
	if err != nil {
		util.WriteStorageError(w, err, constants.DETAIL_NOT_FOUND)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, constants.DETAIL_NOT_FOUND, http.StatusNotFound)
		return
	}

	detail, err := ctx.db.OrderDetail.Where(ctx.db.OrderDetail.DetailId.Eq(id)).First()
	if err != nil {
		util.WriteStorageError(w, err, constants.DETAIL_NOT_FOUND)
		return
	}
	util.WriteJSON(w, http.StatusOK, detail)
}

func (ctx *HandlerContext) DeleteDetail(w http.ResponseWriter, r *http.Request) {
	id, err := util.ReadIDParam(r)
	if err != nil {
		util.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := ctx.db.OrderDetail.Where(ctx.db.OrderDetail.DetailId.Eq(id)).Delete()
	if err != nil {
		util.WriteStorageError(w, err, constants.DETAIL_NOT_FOUND)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, constants.DETAIL_NOT_FOUND, http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
