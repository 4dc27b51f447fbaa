// Package version reports the paycheck build.
//
// Version, commit and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/paycheck/version.Version=1.2.0" ./cmd/paycheck
//
// Missing values fall back to the VCS stamp embedded by the Go toolchain.
package version
