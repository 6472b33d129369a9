// Package cmd implements the namedlog command line.
package cmd
