package models

import "strconv"

// Coordinate is a resolved geographic position
type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// LonLat formats the coordinate in the "lon,lat" order routing engines expect
func (c Coordinate) LonLat() string {
	return strconv.FormatFloat(c.Longitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Latitude, 'f', -1, 64)
}
