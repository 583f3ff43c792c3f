package webmap

import (
	"strconv"
)

// slots is the typed render context. It is only turned into the template
// engine's map shape by templateData, at render time.
type slots struct {
	lat, lon string
	size     *Pixels // nil in fullscreen mode

	minZoom, maxZoom, zoomStart int

	tiles, attribution string

	markers []string

	latLngPopover string
	clickMarker   string

	kind         Kind
	geoJSONRef   string
	geoJSONData  string
	geoJSONStyle string
}

func (s *slots) templateData() map[string]any {
	markers := make([]string, len(s.markers))
	copy(markers, s.markers)

	data := map[string]any{
		"lat":        s.lat,
		"lon":        s.lon,
		"min_zoom":   strconv.Itoa(s.minZoom),
		"max_zoom":   strconv.Itoa(s.maxZoom),
		"zoom_level": strconv.Itoa(s.zoomStart),
		"tiles":      s.tiles,
		"attr":       s.attribution,
		"markers":    markers,
		"map_type":   s.kind.String(),
	}
	if s.size != nil {
		data["size"] = s.size.style()
	} else {
		data["fullscreen"] = true
	}
	if s.latLngPopover != "" {
		data["lat_lng_pop"] = s.latLngPopover
	}
	if s.clickMarker != "" {
		data["click_pop"] = s.clickMarker
	}
	if s.kind == KindGeoJSON {
		data["geo_style"] = s.geoJSONStyle
		if s.geoJSONData != "" {
			data["geo_json_data"] = s.geoJSONData
		} else {
			data["geo_json"] = s.geoJSONRef
		}
	}
	return data
}
