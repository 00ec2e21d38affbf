// Package aggregates defines domain-facing aggregate contracts and the
// classified error type shared by every service.
//
// Contracts avoid persistence and transport details; they describe the write
// boundaries where invariants must hold atomically.
package aggregates
