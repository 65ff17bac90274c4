// SPDX-License-Identifier: MIT
// Package pricer: sentinel error set.

package pricer

import "errors"

var (
	// ErrConfig indicates an invalid Config field.
	ErrConfig = errors.New("pricer: invalid config")

	// ErrContract indicates an invalid Contract (payoff kind or expiry).
	ErrContract = errors.New("pricer: invalid contract")

	// ErrSpotOutsideGrid indicates a lookup point outside [X[0], X[n-1]].
	ErrSpotOutsideGrid = errors.New("pricer: spot outside grid")

	// ErrContractIndex indicates a result index outside the contract list.
	ErrContractIndex = errors.New("pricer: contract index out of range")
)
