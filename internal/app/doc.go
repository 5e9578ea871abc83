// SPDX-License-Identifier: MIT

// Package app wires the tsmtype command: it owns the logger, the mtype
// registry and the three commands (check, infer, profile) run against one
// decoded container.
package app
