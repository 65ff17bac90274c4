// SPDX-License-Identifier: MIT

// Package pricer drives the rollers to price European contracts on a
// one-dimensional grid.
//
// Price rolls payoffs backward from the longest expiry to time zero. Each
// contract joins the batch at the step nearest its expiry, optionally with a
// cell-averaged payoff, and the first Rannacher steps after every such event
// use a fully implicit step to damp the payoff kink. Density rolls a unit
// mass forward with the adjoint scheme, giving Arrow-Debreu state prices at a
// horizon.
//
// Coefficients come from a Model evaluated once per node; they are
// time-homogeneous, so the θ-scheme operators are only rebuilt when θ changes.
package pricer
