package templates

// Asset names understood by the map context and marker factory. Names omit
// the .tmpl extension; the engine appends it.
const (
	PageBase    = "base"
	PageGeoJSON = "geojson"
	MapScript   = "map_script"

	SimpleMarker   = "simple_marker"
	CircleMarker   = "circle_marker"
	LatLngPopover  = "lat_lng_popover"
	ClickForMarker = "click_for_marker"
	GeoJSONStyle   = "geojson_style"
)

// TileBody returns the URL template asset for a built-in provider id.
func TileBody(provider string) string {
	return "tiles/" + provider + "_tiles"
}

// TileAttribution returns the attribution asset for a built-in provider id.
func TileAttribution(provider string) string {
	return "tiles/" + provider + "_attr"
}

// Required lists every asset the bundle must provide, tile assets excluded.
func Required() []string {
	return []string{
		PageBase, PageGeoJSON, MapScript,
		SimpleMarker, CircleMarker,
		LatLngPopover, ClickForMarker, GeoJSONStyle,
	}
}
