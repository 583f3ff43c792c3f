package webmap

// Kind selects the outer page template.
type Kind int

const (
	KindBase Kind = iota
	KindGeoJSON
)

func (k Kind) String() string {
	switch k {
	case KindBase:
		return "base"
	case KindGeoJSON:
		return "geojson"
	default:
		return "unknown"
	}
}
