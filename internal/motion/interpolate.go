package motion

import (
	"strconv"
)

// Transform maps v through a piecewise-linear function defined by matching
// input and output stops. Values outside the input range are clamped to the
// first or last output. Input stops must be ascending.
func Transform(v float64, input, output []float64) float64 {
	n := len(input)
	if n == 0 || n != len(output) {
		return v
	}
	if n == 1 || v <= input[0] {
		return output[0]
	}
	if v >= input[n-1] {
		return output[n-1]
	}

	for i := 1; i < n; i++ {
		if v <= input[i] {
			span := input[i] - input[i-1]
			if span == 0 {
				return output[i]
			}
			f := (v - input[i-1]) / span
			return Mix(output[i-1], output[i], f)
		}
	}
	return output[n-1]
}

// Mix linearly interpolates between from and to.
func Mix(from, to, f float64) float64 {
	return from + (to-from)*f
}

// num formats a float compactly for CSS and JSON-ish output.
func num(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// round3 keeps generated CSS readable.
func round3(v float64) float64 {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	r, _ := strconv.ParseFloat(s, 64)
	return r
}
