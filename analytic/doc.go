// SPDX-License-Identifier: MIT

// Package analytic holds closed-form European option prices under the Black
// (lognormal forward) and Bachelier (normal forward) models, their vegas, and
// implied-volatility inversion by Newton-Raphson.
//
// Prices are undiscounted forward premiums; multiply by the discount factor
// for spot values. An expiry <= 0 yields intrinsic value and zero vega.
package analytic
