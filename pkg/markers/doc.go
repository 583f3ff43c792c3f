// Package markers is the marker factory: it turns marker parameters plus a
// caller-supplied sequence index into a Directive (template name + parameter
// mapping) and renders directives into script fragments. Nothing here keeps
// state; uniqueness of names relies on the caller handing out increasing
// indices per kind.
package markers
