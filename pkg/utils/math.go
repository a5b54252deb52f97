package utils

import "math"

// RoundDecimal rounds to the given number of decimal places, halves away
// from zero for negative values as well.
func RoundDecimal(value float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(value*pow) / pow
}
