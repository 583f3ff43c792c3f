// Package templates ships the embedded Leaflet template bundle: tile provider
// URL and attribution snippets, marker and overlay fragments, and the two
// outer page layouts. NewRenderer wires the bundle into the pongo2 engine so
// callers get a ready TemplateRenderer from a single call.
package templates
