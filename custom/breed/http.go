package breed

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

type BreedRequest struct {
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

func (ctx *HandlerContext) InitialHandlerContext(db *dal.Query) {
	ctx.db = db
}

// ListBreeds returns active breeds only.
func (ctx *HandlerContext) ListBreeds(w http.ResponseWriter, r *http.Request) {
	breeds, err := ctx.db.Breed.Where(ctx.db.Breed.IsActive.Is(true)).Order(ctx.db.Breed.ID).Find()
	if err != nil {
		util.WriteStorageError(w, err, constants.BREED_NOT_FOUND)
		return
	}
	util.WriteJSON(w, http.StatusOK, breeds)
}

// GetBreed also returns inactive breeds.
func (ctx *HandlerContext) GetBreed(w http.ResponseWriter, r *http.Request) {
	id, err := util.ReadIDParam(r)
	if err != nil {
		util.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	breed, err := ctx.db.Breed.Where(ctx.db.Breed.ID.Eq(id)).First()
	if err != nil {
		util.WriteStorageError(w, err, constants.BREED_NOT_FOUND)
		return
	}
	util.WriteJSON(w, http.StatusOK, breed)
}

func (ctx *HandlerContext) CreateBreed(w http.ResponseWriter, r *http.Request) {
	req := BreedRequest{}
	if err := util.FetchReqObject(r, &req); err != nil {
		util.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	v := validator.New()
	v.Required(req.Name != "", "name")
	if !v.Valid() {
		util.WriteError(w, http.StatusBadRequest, v.Errors)
		return
	}

	// New breeds always start active.
	newBreed := model.Breed{Name: req.Name, IsActive: true}
	if err := ctx.db.Breed.Create(&newBreed); err != nil {
		util.WriteStorageError(w, err, constants.BREED_NOT_FOUND)
		return
	}
	rlog.Infof("Breed %d (%s) created", newBreed.ID, newBreed.Name)
	util.WriteJSON(w, http.StatusCreated, newBreed)
}

func (ctx *HandlerContext) UpdateBreed(w http.ResponseWriter, r *http.Request) {
	id, err := util.ReadIDParam(r)
	if err != nil {
		util.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	req := BreedRequest{}
	if err = util.FetchReqObject(r, &req); err != nil {
		util.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := ctx.db.Breed.Where(ctx.db.Breed.ID.Eq(id)).Updates(&model.Breed{Name: req.Name, IsActive: req.IsActive})
	if err != nil {
		util.WriteStorageError(w, err, constants.BREED_NOT_FOUND)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, constants.BREED_NOT_FOUND, http.StatusNotFound)
		return
	}

	breed, err := ctx.db.Breed.Where(ctx.db.Breed.ID.Eq(id)).First()
	if err != nil {
		util.WriteStorageError(w, err, constants.BREED_NOT_FOUND)
		return
	}
	util.WriteJSON(w, http.StatusOK, breed)
}

// DeleteBreed deactivates the breed. The row stays readable by id.
func (ctx *HandlerContext) DeleteBreed(w http.ResponseWriter, r *http.Request) {
	id, err := util.ReadIDParam(r)
	if err != nil {
		util.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := ctx.db.Breed.Where(ctx.db.Breed.ID.Eq(id)).Update(ctx.db.Breed.IsActive, false)
	if err != nil {
		util.WriteStorageError(w, err, constants.BREED_NOT_FOUND)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, constants.BREED_NOT_FOUND, http.StatusNotFound)
		return
	}
	rlog.Infof("Breed %d deactivated", id)
	w.WriteHeader(http.StatusNoContent)
}
