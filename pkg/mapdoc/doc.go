// Package mapdoc loads map documents: JSON or YAML files that describe a map
// (center, tiles, markers, click behaviours, GeoJSON overlay) and build the
// matching webmap.Map.
//
//	location: [45.5, -122.3]
//	tiles: OpenStreetMap
//	markers:
//	  - location: [45.5, -122.3]
//	    popup: "Portland, OR"
package mapdoc
