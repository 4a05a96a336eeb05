package dtw

// AbsDiff returns |x−y| as float64. It is the default distance of Between.
// Operands are converted before subtracting, so neither signed nor unsigned
// element types wrap around.
func AbsDiff[T Number](x, y T) float64 {
	if x > y {
		return float64(x) - float64(y)
	}

	return float64(y) - float64(x)
}

// SquaredDiff returns (x−y)², computed in float64.
func SquaredDiff[T Number](x, y T) float64 {
	d := float64(x) - float64(y)

	return d * d
}
