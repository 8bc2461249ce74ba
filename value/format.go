// Copyright 2024 The ucalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "strconv"

// formatFloat renders f as the shortest decimal that round-trips, using
// strconv's 'g' format: very large or very small magnitudes (e.g. 1e+21,
// 1e-05) are written in exponential notation.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
