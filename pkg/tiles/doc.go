// Package tiles resolves a tile selector ("OpenStreetMap", "Mapbox Dark",
// or a literal Leaflet URL template) into the tile URL and attribution
// strings a map page needs.
package tiles
