package cat

import (
	"github.com/kanruethaiii/backend-cat/constants"
	"github.com/kanruethaiii/backend-cat/custom/util"
	"github.com/kanruethaiii/backend-cat/custom/validator"
	"github.com/kanruethaiii/backend-cat/dal"
	"github.com/kanruethaiii/backend-cat/model"
	"github.com/romana/rlog"
	"net/http"
)

type HandlerContext struct {
	db *dal.Query
}

// CatRequest is the writable part of a cat. Zero values mean "not provided".
type CatRequest struct {
	Name         string  `json:"name"`
	BreedId      uint    `json:"breed_id"`
	Age          int     `json:"age"`
	Color        string  `json:"color"`
	Price        float64 `json:"price"`
	Availability string  `json:"availability"`
}

func (ctx *HandlerContext) InitialHandlerContext(db *dal.Query) {
	ctx.db = db
}

func (req *CatRequest) validate(v *validator.Validator, create bool) {
	if create {
		v.Required(req.Name != "", "name")
		v.Required(req.BreedId != 0, "breed_id")
		v.Required(req.Color != "", "color")
		v.Required(req.Price != 0, "price")
	}
	v.Check(req.Age >= 0, "age", "must not be negative")
	v.Check(req.Price >= 0, "price", "must not be negative")
}

func (req *CatRequest) toModel() *model.Cat {
	return &model.Cat{
		Name:         req.Name,
		BreedId:      req.BreedId,
		Age:          req.Age,
		Color:        req.Color,
		Price:        req.Price,
		Availability: req.Availability,
	}
}

// ListCats returns every cat ordered by id.
func (ctx *HandlerContext) ListCats(w http.ResponseWriter, r *http.Request) {
	cats, err := ctx.db.Cat.Order(ctx.db.Cat.ID).Find()
	if err != nil {
		util.WriteStorageError(w, err, constants.CAT_NOT_FOUND)
		return
	}
	util.WriteJSON(w, http.StatusOK, cats)
}

func (ctx *HandlerContext) GetCat(w http.ResponseWriter, r *http.Request) {
	id, err := util.ReadIDParam(r)
	if err != nil {
		util.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	cat, err := ctx.db.Cat.Where(ctx.db.Cat.ID.Eq(id)).First()
	if err != nil {
		util.WriteStorageError(w, err, constants.CAT_NOT_FOUND)
		return
	}
	util.WriteJSON(w, http.StatusOK, cat)
}

func (ctx *HandlerContext) CreateCat(w http.ResponseWriter, r *http.Request) {
	req := CatRequest{}
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

	if _, err := ctx.db.Breed.Where(ctx.db.Breed.ID.Eq(req.BreedId)).First(); err != nil {
		util.WriteReferenceError(w, err, constants.REF_BREED_NOT_FOUND)
		return
	}

	newCat := req.toModel()
	if newCat.Availability == "" {
		newCat.Availability = constants.CAT_AVAILABLE
	}
	if err := ctx.db.Cat.Create(newCat); err != nil {
		util.WriteStorageError(w, err, constants.CAT_NOT_FOUND)
		return
	}
	rlog.Infof("Cat %d (%s) created", newCat.ID, newCat.Name)
	util.WriteJSON(w, http.StatusCreated, newCat)
}

// UpdateCat overwrites only the fields given with a non-zero value.
func (ctx *HandlerContext) UpdateCat(w http.ResponseWriter, r *http.Request) {
	id, err := util.ReadIDParam(r)
	if err != nil {
		util.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	req := CatRequest{}
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

	if req.BreedId != 0 {
		if _, err = ctx.db.Breed.Where(ctx.db.Breed.ID.Eq(req.BreedId)).First(); err != nil {
			util.WriteReferenceError(w, err, constants.REF_BREED_NOT_FOUND)
			return
		}
	}

	result, err := ctx.db.Cat.Where(ctx.db.Cat.ID.Eq(id)).Updates(req.toModel())
	if err != nil {
		util.WriteStorageError(w, err, constants.CAT_NOT_FOUND)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, constants.CAT_NOT_FOUND, http.StatusNotFound)
		return
	}

	cat, err := ctx.db.Cat.Where(ctx.db.Cat.ID.Eq(id)).First()
	if err != nil {
		util.WriteStorageError(w, err, constants.CAT_NOT_FOUND)
		return
	}
	util.WriteJSON(w, http.StatusOK, cat)
}

func (ctx *HandlerContext) DeleteCat(w http.ResponseWriter, r *http.Request) {
	id, err := util.ReadIDParam(r)
	if err != nil {
		util.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := ctx.db.Cat.Where(ctx.db.Cat.ID.Eq(id)).Delete()
	if err != nil {
		util.WriteStorageError(w, err, constants.CAT_NOT_FOUND)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, constants.CAT_NOT_FOUND, http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
