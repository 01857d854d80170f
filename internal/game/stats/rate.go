// Package stats holds the numeric core of the stat model: base stats,
// additive bonuses, saturating temporary boosts and effective-stat computation.
package stats

import (
	"fmt"
	"math"
)

// RateScale is the fixed-point denominator of Rate: a Rate of RateScale is 1.0.
const RateScale = 10000

// Rate is a non-negative fraction stored in basis points.
//
// Rates are fixed-point so that adding and later removing the same bonus
// restores the exact prior value.
type Rate uint32

// RateFromFloat converts f to the nearest Rate.
//
// Postcondition: negative inputs yield 0.
func RateFromFloat(f float64) Rate {
	if f <= 0 {
		return 0
	}
	v := math.Round(f * RateScale)
	if v >= math.MaxUint32 {
		return Rate(math.MaxUint32)
	}
	return Rate(v)
}

// Float64 returns r as a fraction.
func (r Rate) Float64() float64 {
	return float64(r) / RateScale
}

// Percent returns r formatted as a percentage, e.g. "12.5%".
func (r Rate) Percent() string {
	return fmt.Sprintf("%g%%", float64(r)/(RateScale/100))
}
