// Package cdnrepo reconciles declared CDN repository configuration against
// the Errata Tool.
//
// A reconcile run normalizes the declared package/tag input into a
// canonical mapping, reads the current server state (the repository record
// plus the paginated package tag listing, reassembled into the same
// canonical shape), computes the differences at two levels (repository
// attributes and per-package tag sets), and applies the minimal set of
// operations that converges the server to the declaration. Check mode
// computes and reports the identical operation list without issuing any
// mutating call.
//
// The server is the sole source of truth. Runs are strictly sequential and
// abort on the first fatal error; whatever already converged stays applied,
// and the next run computes a fresh diff from the new partial state.
package cdnrepo
