// Package webmap is the map context: it owns the configuration of one Leaflet
// page, accumulates marker and overlay fragments as they are added, and
// renders the final page through the outer template selected by the map
// kind.
//
// A Map models one document built by one caller and is not safe for
// concurrent mutation. Separate maps share nothing except the read-only tile
// registry and, if injected, the template renderer.
//
//	m, err := webmap.New(webmap.DefaultConfig(geo.At(45.5, -122.3)))
//	if err != nil {
//		return err
//	}
//	_ = m.AddSimpleMarker(geo.At(45.5, -122.3), markers.WithPopup("Portland, OR"))
//	err = m.WriteToFile("map.html")
package webmap
