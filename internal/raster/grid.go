package raster

import (
	"fmt"
	"math"
)

type Number interface {
	~uint8 | ~int | ~int32 | ~float32 | ~float64
}

// Grid is a row-major 2-D array.
type Grid[T Number] struct {
	Width  int
	Height int
	Data   []T
}

func NewGrid[T Number](width, height int) Grid[T] {
	return Grid[T]{Width: width, Height: height, Data: make([]T, width*height)}
}

// GridFromRows builds a grid from equally sized rows.
func GridFromRows[T Number](rows [][]T) (Grid[T], error) {
	if len(rows) == 0 {
		return Grid[T]{}, nil
	}
	width := len(rows[0])
	grid := NewGrid[T](width, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return Grid[T]{}, fmt.Errorf("row %d has %d values, expected %d", y, len(row), width)
		}
		copy(grid.Data[y*width:], row)
	}
	return grid, nil
}

func (g Grid[T]) At(row, col int) T {
	return g.Data[row*g.Width+col]
}

func (g Grid[T]) Set(row, col int, value T) {
	g.Data[row*g.Width+col] = value
}

func (g Grid[T]) Valid() bool {
	return g.Width > 0 && g.Height > 0 && len(g.Data) == g.Width*g.Height
}

// Window copies the height x width block whose top-left pixel is (row, col).
func (g Grid[T]) Window(row, col, height, width int) (Grid[T], error) {
	if row < 0 || col < 0 || height <= 0 || width <= 0 || row+height > g.Height || col+width > g.Width {
		return Grid[T]{}, fmt.Errorf("window %dx%d at (%d, %d) is outside a %dx%d grid", height, width, row, col, g.Height, g.Width)
	}
	window := NewGrid[T](width, height)
	for y := range height {
		start := (row+y)*g.Width + col
		copy(window.Data[y*width:(y+1)*width], g.Data[start:start+width])
	}
	return window, nil
}

func (g Grid[T]) Clone() Grid[T] {
	data := make([]T, len(g.Data))
	copy(data, g.Data)
	return Grid[T]{Width: g.Width, Height: g.Height, Data: data}
}

// Rows returns a [][]T view sharing the grid's storage.
func (g Grid[T]) Rows() [][]T {
	rows := make([][]T, g.Height)
	for y := range rows {
		rows[y] = g.Data[y*g.Width : (y+1)*g.Width]
	}
	return rows
}

// ToMask converts a class raster read as float64 into bytes. NaN and values
// outside 0..255 become 0.
func ToMask(grid Grid[float64]) Grid[uint8] {
	mask := NewGrid[uint8](grid.Width, grid.Height)
	for i, v := range grid.Data {
		if math.IsNaN(v) || v < 0 || v > math.MaxUint8 {
			continue
		}
		mask.Data[i] = uint8(v)
	}
	return mask
}
