package raster

import "github.com/airbusgeo/godal"

// Profile is the metadata carried from a source raster to the rasters derived
// from it.
type Profile struct {
	Width           int
	Height          int
	Count           int
	DataType        godal.DataType
	Projection      string
	GeoTransform    [6]float64
	HasGeoTransform bool
	NoData          float64
	HasNoData       bool
	Compress        string
}

// IO reads the first band of a raster and writes single-band byte rasters.
type IO interface {
	Open(path string) (Grid[float64], Profile, error)
	Write(path string, grid Grid[uint8], profile Profile) error
}
