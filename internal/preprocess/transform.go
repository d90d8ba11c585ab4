package preprocess

import "github.com/forest-guardian/cloudmask-training-data/internal/raster"

// FlipHorizontal mirrors columns.
func FlipHorizontal[T raster.Number](array raster.Grid[T]) raster.Grid[T] {
	out := raster.NewGrid[T](array.Width, array.Height)
	for y := range array.Height {
		for x := range array.Width {
			out.Set(y, array.Width-1-x, array.At(y, x))
		}
	}
	return out
}

// FlipVertical mirrors rows.
func FlipVertical[T raster.Number](array raster.Grid[T]) raster.Grid[T] {
	out := raster.NewGrid[T](array.Width, array.Height)
	for y := range array.Height {
		copy(out.Data[(array.Height-1-y)*array.Width:], array.Data[y*array.Width:(y+1)*array.Width])
	}
	return out
}

// Rotate90 rotates counter-clockwise; an HxW input becomes WxH.
func Rotate90[T raster.Number](array raster.Grid[T]) raster.Grid[T] {
	out := raster.NewGrid[T](array.Height, array.Width)
	for y := range array.Height {
		for x := range array.Width {
			out.Set(array.Width-1-x, y, array.At(y, x))
		}
	}
	return out
}
