// Package version provides version information for the application.
//
// Version and Revision are set at build time with -ldflags, for example:
//
//	go build -ldflags "-X github.com/macropower/here/pkg/version.Version=1.2.3"
//
// When unset, they fall back to the module build info.
package version
