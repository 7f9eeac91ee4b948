//go:build tools

package tools

// CLI tooling notes. This file is never compiled into the binary.
//
// The goose CLI is pinned through the tool directive in go.mod and run
// with `go tool goose` for ad-hoc migration work; the server applies
// migrations itself on startup.
//
// Service mocks (mocks_test.go files) follow the output format of
// github.com/matryer/moq but are maintained by hand, so moq is not a
// build dependency.
