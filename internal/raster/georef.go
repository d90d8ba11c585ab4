package raster

import "github.com/paulmach/orb"

// PixelToGeo maps a pixel corner (col, row) through the geotransform.
func PixelToGeo(geoTransform [6]float64, col, row float64) orb.Point {
	x := geoTransform[0] + geoTransform[1]*col + geoTransform[2]*row
	y := geoTransform[3] + geoTransform[4]*col + geoTransform[5]*row
	return orb.Point{x, y}
}

// WindowBounds returns the footprint of a window in the raster's CRS. Rasters
// without a geotransform yield an empty bound.
func WindowBounds(profile Profile, row, col, height, width int) orb.Bound {
	if !profile.HasGeoTransform {
		return orb.Bound{}
	}
	corners := orb.MultiPoint{
		PixelToGeo(profile.GeoTransform, float64(col), float64(row)),
		PixelToGeo(profile.GeoTransform, float64(col+width), float64(row)),
		PixelToGeo(profile.GeoTransform, float64(col), float64(row+height)),
		PixelToGeo(profile.GeoTransform, float64(col+width), float64(row+height)),
	}
	return corners.Bound()
}
