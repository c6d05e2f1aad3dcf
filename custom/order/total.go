package order

import (
	"github.com/shopspring/decimal"
	"math"
)

// lineTotal is floor(quantity) * unitPrice rounded to cents.
func lineTotal(quantity int, unitPrice float64) float64 {
	total := decimal.NewFromInt(int64(quantity)).Mul(decimal.NewFromFloat(unitPrice)).Round(2)
	f, _ := total.Float64()
	return f
}

func floorQuantity(quantity float64) int {
	return int(math.Floor(quantity))
}
