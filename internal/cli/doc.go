// Package cli defines the Cobra command tree for linkboard. The root
// command builds the dashboard; serve previews it with live reload.
// Commands only handle flags and I/O formatting and delegate the work
// to internal/build and internal/server.
package cli
