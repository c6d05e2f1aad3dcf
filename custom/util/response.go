package util

import (
	"encoding/json"
	"errors"
	"github.com/julienschmidt/httprouter"
	"github.com/kanruethaiii/backend-cat/constants"
	"github.com/romana/rlog"
	"gorm.io/gorm"
	"net/http"
	"strconv"
)

type ErrorResponse struct {
	Error interface{} `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	respBody, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("Marshal response failed: " + err.Error())
		http.Error(w, `{"error":"encode_error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(respBody)
}

// WriteError writes {"error": message}. message is a string or a field error map.
func WriteError(w http.ResponseWriter, status int, message interface{}) {
	WriteJSON(w, status, ErrorResponse{Error: message})
}

// ReadIDParam parses the ":id" route parameter.
func ReadIDParam(r *http.Request) (uint, error) {
	params := httprouter.ParamsFromContext(r.Context())
	id, err := strconv.ParseUint(params.ByName("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New(constants.INVALID_ID)
	}
	return uint(id), nil
}

// WriteStorageError answers 404 with notFound for a missing row and 500 otherwise.
func WriteStorageError(w http.ResponseWriter, err error, notFound string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, notFound, http.StatusNotFound)
		return
	}
	rlog.Error(err.Error())
	WriteError(w, http.StatusInternalServerError, err.Error())
}

// WriteReferenceError is WriteStorageError for a key taken from the request body,
// where a missing row is the client's fault.
func WriteReferenceError(w http.ResponseWriter, err error, notFound string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		WriteError(w, http.StatusBadRequest, notFound)
		return
	}
	rlog.Error(err.Error())
	WriteError(w, http.StatusInternalServerError, err.Error())
}
