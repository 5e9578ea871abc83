// SPDX-License-Identifier: MIT

// Package cli parses command-line arguments, validates user input and maps
// failures to process exit codes. It translates flags and the optional
// -config defaults file into an app.Config.
package cli
