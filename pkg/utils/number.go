package utils

import "math"

// RoundToInt arredonda para o inteiro mais próximo (metade para longe de zero)
func RoundToInt(f float64) int {
	return int(math.Round(f))
}
