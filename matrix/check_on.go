// SPDX-License-Identifier: MIT

//go:build fdmcheck

package matrix

// checked enables descriptive accessor panics (diagnostic build).
const checked = true
