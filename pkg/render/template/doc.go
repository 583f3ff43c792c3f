// Package template defines the renderer-agnostic seam every map fragment and
// page goes through. The map context and the marker factory only ever talk to
// TemplateRenderer, so the template bundle can be swapped without touching
// either of them.
package template
