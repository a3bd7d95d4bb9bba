// Package logging provides structured logging for etctl with level
// filtering and per-subsystem attribution.
//
// The package is a thin layer over Go's standard slog package. All log
// entries carry a subsystem identifier ("Client", "CDNRepo", "Config", ...)
// so output can be filtered and categorized.
//
// Initialize once at startup, then log through the package-level helpers:
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//
//	logging.Info("Config", "loaded %d cdn repo declarations", len(repos))
//	logging.Debug("Client", "GET %s -> %d", endpoint, status)
//	logging.Error("Apply", err, "reconcile failed for %s", name)
package logging
