// Package cli turns the milcheck command line into an app.Config. It handles
// the informational flags (help, version, license) itself and reports usage
// errors as ExitError values.
package cli
