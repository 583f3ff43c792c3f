// Package geo holds the coordinate value types shared by the map context and
// the marker factory, plus conversions to and from paulmach/orb geometries.
package geo
