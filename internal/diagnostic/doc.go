// Package diagnostic provides structured warnings and errors collected while
// resolving a package.
//
// Key capabilities:
//   - Approximate-match warnings (compressed template names)
//   - Configuration problems found during validation
//   - Per-entity, per-stage attribution of every message
package diagnostic
