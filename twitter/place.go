package twitter

// Place types
const (
	PlaceTypePOI          = "poi"
	PlaceTypeNeighborhood = "neighborhood"
	PlaceTypeCity         = "city"
	PlaceTypeAdmin        = "admin"
	PlaceTypeCountry      = "country"
)

// Place represents a named location such as a city or a point of interest
type Place struct {
	ID              string            `json:"id"`
	URL             string            `json:"url"`
	PlaceType       string            `json:"place_type"`
	Name            string            `json:"name"`
	FullName        string            `json:"full_name"`
	CountryCode     string            `json:"country_code"`
	Country         string            `json:"country"`
	BoundingBox     *BoundingBox      `json:"bounding_box"`
	Centroid        []float64         `json:"centroid,omitempty"`
	Attributes      map[string]string `json:"attributes"`
	ContainedWithin []*Place          `json:"contained_within,omitempty"`
}

// Coordinates is a GeoJSON point. Coordinates are ordered longitude, latitude.
type Coordinates struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// Longitude returns the first coordinate
func (c *Coordinates) Longitude() float64 { return c.Coordinates[0] }

// Latitude returns the second coordinate
func (c *Coordinates) Latitude() float64 { return c.Coordinates[1] }

// BoundingBox is a GeoJSON polygon enclosing a place
type BoundingBox struct {
	Type        string         `json:"type"`
	Coordinates [][][2]float64 `json:"coordinates"`
}

// Center returns the mean of the outer ring's points as (longitude, latitude).
// ok is false when the box has no points.
func (b *BoundingBox) Center() (lng, lat float64, ok bool) {
	if b == nil || len(b.Coordinates) == 0 || len(b.Coordinates[0]) == 0 {
		return 0, 0, false
	}
	ring := b.Coordinates[0]
	for _, p := range ring {
		lng += p[0]
		lat += p[1]
	}
	n := float64(len(ring))
	return lng / n, lat / n, true
}
