// Package integration holds tests that drive the built todos binary.
// Run them with: make test-integration
package integration
