package calculator

import (
	"math"

	"github.com/mmynk/splitledger/internal/money"
)

// SplitAmountEqually divides totalAmount into numberOfPeople shares rounded
// to the cent. Every share gets the floored per-person amount and the last
// share absorbs the leftover cents, so the shares always add up to the
// (cent-rounded) total.
//
// A non-positive count or a negative total yields an empty slice.
//
//	SplitAmountEqually(10, 3)  // [3.33 3.33 3.34]
//	SplitAmountEqually(100, 3) // [33.33 33.33 33.34]
func SplitAmountEqually(totalAmount float64, numberOfPeople int) []float64 {
	if numberOfPeople <= 0 || totalAmount < 0 || math.IsNaN(totalAmount) || math.IsInf(totalAmount, 0) {
		return []float64{}
	}

	total := money.FromFloat(totalAmount)
	base := total / money.Cents(numberOfPeople)
	remainder := total - base*money.Cents(numberOfPeople)

	shares := make([]float64, numberOfPeople)
	for i := range shares {
		shares[i] = base.Float64()
	}
	shares[numberOfPeople-1] = (base + remainder).Float64()

	return shares
}
