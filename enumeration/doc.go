// Package enumeration builds the object enumerations a host application
// consumes to render its property-editing pane.
//
// Building pipeline:
//  1. Create a Builder (the zero value is ready)
//  2. PushContainer / PushInstance / PopContainer in display order;
//     instances describing the same logical target fold into one
//  3. Complete → canonical Enumeration, or nil when nothing was pushed
//
// Enumerations produced by independent builders are combined with Merge;
// Normalize coerces the host's bare instance-list form into the canonical
// object form first.
package enumeration
