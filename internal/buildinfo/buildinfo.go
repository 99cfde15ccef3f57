// Package buildinfo exposes the generator's own version, stamped into
// generated file headers and the CLI's --version output so a host
// project can tell which generator produced a given codec package.
package buildinfo

import "github.com/coreos/go-semver/semver"

// Version is the generator's own release version. It is a fixed semver
// release, not stamped from VCS info; the CLI binary's --version flag
// prints this same value.
var Version = semver.New("0.1.0")
