package ruddr

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version is the current SDK version.
//
// This version follows semantic versioning (https://semver.org/).
// The version is incremented according to the following rules:
//   - MAJOR: Breaking changes to the public API
//   - MINOR: New features, backwards compatible
//   - PATCH: Bug fixes, backwards compatible
const Version = "0.1.0"

// userAgentProduct prefixes the User-Agent header sent with every request.
const userAgentProduct = "ruddr-go"

// DefaultUserAgent is the User-Agent header sent unless [WithUserAgent]
// overrides it.
func DefaultUserAgent() string {
	return userAgentProduct + "/" + Version
}

// IsCompatible reports whether [Version] satisfies the semver constraint,
// for example ">= 0.1, < 1.0". An unparsable constraint is never satisfied.
//
// Example:
//
//	if !ruddr.IsCompatible("^0.1") {
//	    log.Fatalf("ruddr-go %s is too new for this tool", ruddr.Version)
//	}
func IsCompatible(constraint string) bool {
	if strings.TrimSpace(constraint) == "" {
		return false
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false
	}
	v, err := semver.NewVersion(Version)
	if err != nil {
		return false
	}
	return c.Check(v)
}
