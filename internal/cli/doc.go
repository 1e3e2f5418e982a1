// Package cli parses the command line into an app configuration.
package cli
