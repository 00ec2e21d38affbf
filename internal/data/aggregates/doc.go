// Package aggregates contains infrastructure implementations of domain aggregate contracts.
//
// Implementations in this package compose table-level repos from internal/data/repos
// and own transaction boundaries for invariant-critical writes. The write helpers
// (BaseDeps.Write, CASGuard) are shared with services that update single rows.
package aggregates
