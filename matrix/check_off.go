// SPDX-License-Identifier: MIT

//go:build !fdmcheck

package matrix

// checked is false in the default build: hot accessors do no extra work.
const checked = false
