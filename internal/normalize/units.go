// Package normalize converts provider specific units and free text into canonical forms.
// Every function is total: missing input yields nil, never NaN or a division by zero.
package normalize

import "math"

const (
	// PS_TO_HP is the metric horsepower to mechanical horsepower factor
	PS_TO_HP = 0.9863
	// NM_TO_LBFT is the newton metre to pound-foot factor
	NM_TO_LBFT = 0.7376
	// KPH_0_100_DIVISOR maps a 0-100 km/h figure onto the stored 0-60 value
	KPH_0_100_DIVISOR = 3.6
	// L100KM_MPG_FACTOR converts litres per 100 km to US miles per gallon
	L100KM_MPG_FACTOR = 235.214
)

// PsToHp converts metric horsepower to horsepower
func PsToHp(ps *float64) *int {
	if !finite(ps) {
		return nil
	}
	return roundPtr(*ps * PS_TO_HP)
}

// NmToLbFt converts newton metres to pound-feet
func NmToLbFt(nm *float64) *int {
	if !finite(nm) {
		return nil
	}
	return roundPtr(*nm * NM_TO_LBFT)
}

// KphTo60Seconds derives the zero-to-sixty value from a 0-100 km/h time.
// Zero is treated as missing.
func KphTo60Seconds(seconds *float64) *float64 {
	if !finite(seconds) || *seconds == 0 {
		return nil
	}
	v := *seconds / KPH_0_100_DIVISOR
	return &v
}

// LPer100kmToMpg converts fuel consumption to miles per gallon.
// Zero and negative consumption are treated as missing.
func LPer100kmToMpg(l *float64) *int {
	if !finite(l) || *l <= 0 {
		return nil
	}
	return roundPtr(L100KM_MPG_FACTOR / *l)
}

// Positive returns v when it holds a positive value and nil otherwise.
// Providers report unknown figures as zero.
func Positive(v *float64) *float64 {
	if !finite(v) || *v <= 0 {
		return nil
	}
	return v
}

func finite(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}

func roundPtr(v float64) *int {
	r := int(math.Round(v))
	return &r
}
