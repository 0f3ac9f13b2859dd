// Package version carries build metadata, stamped at release time with
//
//	-ldflags "-X github.com/choonghwanlee/folio/internal/version.Version=v1.2.3"
package version

import (
	"fmt"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns a human-friendly version string that surfaces build metadata.
func Info() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}

// Product is the short product token sent in the web server's Server header.
func Product() string {
	return "folio/" + Version
}
