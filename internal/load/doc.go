// SPDX-License-Identifier: MIT

// Package load decodes the YAML container documents read by the tsmtype
// command into in-memory mtype objects.
//
// A document names its container kind and carries the data for it:
//
//	kind: series            # series | frame | slice | tensor3d | frame-list | multiindex
//	name: passengers
//	start: "1949-01"        # optional monthly index; or `index: [..]` integer labels
//	values: [112, 118, 132]
//
// Frames hold one list per column under values; slices hold a flat list or a
// list of rows; tensor3d holds [instance][variable][time]; frame-list holds
// sub-documents under frames; multiindex adds instances and times row keys.
package load
