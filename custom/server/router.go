package server

import (
	"context"
	"github.com/julienschmidt/httprouter"
	"github.com/kanruethaiii/backend-cat/custom/breed"
	"github.com/kanruethaiii/backend-cat/custom/cat"
	"github.com/kanruethaiii/backend-cat/custom/customer"
	"github.com/kanruethaiii/backend-cat/custom/detail"
	"github.com/kanruethaiii/backend-cat/custom/order"
	"github.com/kanruethaiii/backend-cat/custom/report"
	"github.com/kanruethaiii/backend-cat/custom/util"
	"github.com/kanruethaiii/backend-cat/dal"
	"net/http"
	"time"
)

// Pinger reports whether the backing stores are reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	config util.ServerConfig
	db     *dal.Query
	stores Pinger
	ctx    context.Context
	cancel context.CancelFunc
}

func New(config util.ServerConfig, db *dal.Query, stores Pinger) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{config: config, db: db, stores: stores, ctx: ctx, cancel: cancel}
}

// Close stops the background work started by Routes.
func (s *Server) Close() {
	s.cancel()
}

// Routes wires every handler context. Middleware order, outermost first:
// logRequest, recoverPanic, rateLimit, router.
func (s *Server) Routes() http.Handler {
	catCtx := cat.HandlerContext{}
	catCtx.InitialHandlerContext(s.db)
	breedCtx := breed.HandlerContext{}
	breedCtx.InitialHandlerContext(s.db)
	customerCtx := customer.HandlerContext{}
	customerCtx.InitialHandlerContext(s.db)
	orderCtx := order.HandlerContext{}
	orderCtx.InitialHandlerContext(s.db)
	detailCtx := detail.HandlerContext{}
	detailCtx.InitialHandlerContext(s.db)
	reportCtx := report.HandlerContext{}
	reportCtx.InitialHandlerContext(s.db)

	router := httprouter.New()
	router.NotFound = http.HandlerFunc(notFound)
	router.MethodNotAllowed = http.HandlerFunc(methodNotAllowed)

	router.HandlerFunc(http.MethodGet, "/cats", catCtx.ListCats)
	router.HandlerFunc(http.MethodGet, "/cats/:id", catCtx.GetCat)
	router.HandlerFunc(http.MethodPost, "/cats", catCtx.CreateCat)
	router.HandlerFunc(http.MethodPut, "/cats/:id", catCtx.UpdateCat)
	router.HandlerFunc(http.MethodDelete, "/cats/:id", catCtx.DeleteCat)

	router.HandlerFunc(http.MethodGet, "/breeds", breedCtx.ListBreeds)
	router.HandlerFunc(http.MethodGet, "/breeds/:id", breedCtx.GetBreed)
	router.HandlerFunc(http.MethodPost, "/breeds", breedCtx.CreateBreed)
	router.HandlerFunc(http.MethodPut, "/breeds/:id", breedCtx.UpdateBreed)
	router.HandlerFunc(http.MethodDelete, "/breeds/:id", breedCtx.DeleteBreed)

	router.HandlerFunc(http.MethodGet, "/customers", customerCtx.ListCustomers)
	router.HandlerFunc(http.MethodGet, "/customers/:id", customerCtx.GetCustomer)
	router.HandlerFunc(http.MethodPost, "/customers", customerCtx.CreateCustomer)
	router.HandlerFunc(http.MethodPut, "/customers/:id", customerCtx.UpdateCustomer)
	router.HandlerFunc(http.MethodDelete, "/customers/:id", customerCtx.DeleteCustomer)

	router.HandlerFunc(http.MethodGet, "/employees", customerCtx.ListEmployees)
	router.HandlerFunc(http.MethodGet, "/employees/:id", customerCtx.GetEmployee)
	router.HandlerFunc(http.MethodPost, "/employees", customerCtx.CreateEmployee)

	router.HandlerFunc(http.MethodGet, "/orders", orderCtx.ListOrders)
	router.HandlerFunc(http.MethodGet, "/orders/:id", orderCtx.GetOrder)
	router.HandlerFunc(http.MethodPost, "/orders", orderCtx.CreateOrder)
	router.HandlerFunc(http.MethodPut, "/orders/:id", orderCtx.UpdateOrder)
	router.HandlerFunc(http.MethodDelete, "/orders/:id", orderCtx.DeleteOrder)

	router.HandlerFunc(http.MethodGet, "/details", detailCtx.ListDetails)
	router.HandlerFunc(http.MethodGet, "/details/:id", detailCtx.GetDetail)
	router.HandlerFunc(http.MethodPost, "/details", detailCtx.CreateDetail)
	router.HandlerFunc(http.MethodPut, "/details/:id", detailCtx.UpdateDetail)
	router.HandlerFunc(http.MethodDelete, "/details/:id", detailCtx.DeleteDetail)

	router.HandlerFunc(http.MethodGet, "/reports", reportCtx.GetDailyTotals)
	router.HandlerFunc(http.MethodGet, "/reports/detail", reportCtx.GetDetailByDate)
	router.HandlerFunc(http.MethodGet, "/reports/detail/pdf", reportCtx.GetDetailPDF)

	router.HandlerFunc(http.MethodGet, "/healthz", s.healthz)

	var handler http.Handler = router
	if s.config.RateLimit.Enabled {
		handler = rateLimit(s.ctx, s.config.RateLimit, handler)
	}
	return logRequest(recoverPanic(handler))
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := s.stores.Ping(ctx); err != nil {
		util.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "error": err.Error()})
		return
	}
	util.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func notFound(w http.ResponseWriter, r *http.Request) {
	util.WriteError(w, http.StatusNotFound, "the requested resource could not be found")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	util.WriteError(w, http.StatusMethodNotAllowed, "the "+r.Method+" method is not supported for this resource")
}
