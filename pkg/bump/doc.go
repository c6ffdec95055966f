// Package bump increments the version recorded in a `version = "x.y.z"` line
// of a TOML file such as pyproject.toml, leaving every other line untouched.
package bump
