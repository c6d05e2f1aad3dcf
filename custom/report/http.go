package report

import (
	"fmt"
	"github.com/kanruethaiii/backend-cat/constants"
	"github.com/kanruethaiii/backend-cat/custom/util"
	"github.com/kanruethaiii/backend-cat/custom/validator"
	"github.com/kanruethaiii/backend-cat/dal"
	"github.com/romana/rlog"
	"github.com/shopspring/decimal"
	"net/http"
	"time"
)

const DATE_LAYOUT = "2006-01-02"

type HandlerContext struct {
	db *dal.Query
}

// DailyTotal is one row of the daily sales report.
type DailyTotal struct {
	OrderDate string  `json:"order_date"`
	Total     float64 `json:"total"`
}

// DetailRow is one order of the per-day report.
type DetailRow struct {
	OrderId      string  `json:"order_id"`
	CustomerName string  `json:"customer_name"`
	CatName      string  `json:"cat_name"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
	TotalAmount  float64 `json:"total_amount"`
}

func (ctx *HandlerContext) InitialHandlerContext(db *dal.Query) {
	ctx.db = db
}

// DailyTotals sums total_amount per calendar day, newest day first.
func (ctx *HandlerContext) DailyTotals() ([]DailyTotal, error) {
	o := ctx.db.Order
	day := o.OrderDate.Date()
	rows := []DailyTotal{}
	err := o.Select(day.As("order_date"), o.TotalAmount.Sum().As("total")).
		Group(day).
		Order(day.Desc()).
		Scan(&rows)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		// postgres scans DATE as a timestamp string
		if len(rows[i].OrderDate) > len(DATE_LAYOUT) {
			rows[i].OrderDate = rows[i].OrderDate[:len(DATE_LAYOUT)]
		}
		rows[i].Total = decimal.NewFromFloat(rows[i].Total).Round(2).InexactFloat64()
	}
	return rows, nil
}

// DetailByDate lists the orders placed on day (UTC), oldest first.
func (ctx *HandlerContext) DetailByDate(day time.Time) ([]DetailRow, error) {
	o := ctx.db.Order
	orders, err := o.Where(o.OrderDate.Gte(day), o.OrderDate.Lt(day.Add(24*time.Hour))).Order(o.OrderDate).Find()
	if err != nil {
		return nil, err
	}
	rows := make([]DetailRow, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, DetailRow{
			OrderId:      fmt.Sprintf("O%03d", order.OrderId),
			CustomerName: order.CustomerName,
			CatName:      order.CatName,
			Quantity:     order.Quantity,
			UnitPrice:    order.UnitPrice,
			TotalAmount:  order.TotalAmount,
		})
	}
	return rows, nil
}

// parseDate reads the required ?date=YYYY-MM-DD parameter.
func parseDate(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	date := r.URL.Query().Get("date")
	if date == "" {
		util.WriteError(w, http.StatusBadRequest, constants.DATE_REQUIRED)
		return time.Time{}, false
	}
	day, err := time.ParseInLocation(DATE_LAYOUT, date, time.UTC)
	if err != nil || !validator.Matches(date, validator.DateRX) {
		util.WriteError(w, http.StatusBadRequest, constants.DATE_INVALID)
		return time.Time{}, false
	}
	return day, true
}

func (ctx *HandlerContext) GetDailyTotals(w http.ResponseWriter, r *http.Request) {
	rows, err := ctx.DailyTotals()
	if err != nil {
		rlog.Error("Daily report failed: " + err.Error())
		util.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	util.WriteJSON(w, http.StatusOK, rows)
}

func (ctx *HandlerContext) GetDetailByDate(w http.ResponseWriter, r *http.Request) {
	day, ok := parseDate(w, r)
	if !ok {
		return
	}
	rows, err := ctx.DetailByDate(day)
	if err != nil {
		rlog.Error("Detail report failed: " + err.Error())
		util.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	util.WriteJSON(w, http.StatusOK, rows)
}

func (ctx *HandlerContext) GetDetailPDF(w http.ResponseWriter, r *http.Request) {
	day, ok := parseDate(w, r)
	if !ok {
		return
	}
	rows, err := ctx.DetailByDate(day)
	if err != nil {
		rlog.Error("Detail report failed: " + err.Error())
		util.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	pdf, err := generatePDF(rows, day)
	if err != nil {
		rlog.Error("Render pdf failed: " + err.Error())
		util.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=sales_%s.pdf", day.Format(DATE_LAYOUT)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
