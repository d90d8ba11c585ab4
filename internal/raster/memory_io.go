package raster

import (
	"fmt"
	"sync"
)

type memoryRaster struct {
	grid    Grid[float64]
	profile Profile
}

// MemoryIO keeps rasters in memory, keyed by path.
type MemoryIO struct {
	mu      sync.Mutex
	rasters map[string]memoryRaster
	failing map[string]error
}

func NewMemoryIO() *MemoryIO {
	return &MemoryIO{
		rasters: make(map[string]memoryRaster),
		failing: make(map[string]error),
	}
}

func (m *MemoryIO) Put(path string, grid Grid[float64], profile Profile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	profile.Width, profile.Height = grid.Width, grid.Height
	if profile.Count == 0 {
		profile.Count = 1
	}
	m.rasters[path] = memoryRaster{grid: grid.Clone(), profile: profile}
}

// Fail makes every Open and Write on path return err.
func (m *MemoryIO) Fail(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failing[path] = err
}

func (m *MemoryIO) Open(path string) (Grid[float64], Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.failing[path]; ok {
		return Grid[float64]{}, Profile{}, err
	}
	r, ok := m.rasters[path]
	if !ok {
		return Grid[float64]{}, Profile{}, fmt.Errorf("raster %s not found", path)
	}
	return r.grid.Clone(), r.profile, nil
}

func (m *MemoryIO) Write(path string, grid Grid[uint8], profile Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.failing[path]; ok {
		return err
	}
	data := make([]float64, len(grid.Data))
	for i, v := range grid.Data {
		data[i] = float64(v)
	}
	profile.Width, profile.Height = grid.Width, grid.Height
	m.rasters[path] = memoryRaster{grid: Grid[float64]{Width: grid.Width, Height: grid.Height, Data: data}, profile: profile}
	return nil
}

// Paths lists the stored rasters.
func (m *MemoryIO) Paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	paths := make([]string, 0, len(m.rasters))
	for path := range m.rasters {
		paths = append(paths, path)
	}
	return paths
}
