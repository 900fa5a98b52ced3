// Package persistence provides runtime state persistence for Lattice nodes.
//
// This package handles the JSON serialization of cluster data versions so
// that version counters survive restarts and subscribers holding an old
// version are never answered with a stale "unchanged" skip.
package persistence
