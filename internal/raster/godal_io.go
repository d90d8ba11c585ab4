package raster

import (
	"fmt"
	"sync"

	"github.com/airbusgeo/godal"
	"github.com/forest-guardian/cloudmask-training-data/internal/utils"
)

var registerOnce sync.Once

type GodalIO struct{}

func NewGodalIO() *GodalIO {
	registerOnce.Do(godal.RegisterAll)
	return &GodalIO{}
}

func (GodalIO) Open(path string) (Grid[float64], Profile, error) {
	var (
		grid    Grid[float64]
		profile Profile
		err     error
	)
	utils.ExecuteWithMutex(func() {
		grid, profile, err = open(path)
	})
	return grid, profile, err
}

func open(path string) (Grid[float64], Profile, error) {
	ds, err := godal.Open(path, godal.ErrLogger(func(ec godal.ErrorCategory, code int, msg string) error {
		if ec == godal.CE_Warning {
			return nil
		}
		return fmt.Errorf("gdal error %d: %s", code, msg)
	}))
	if err != nil {
		return Grid[float64]{}, Profile{}, fmt.Errorf("failed to open raster %s: %w", path, err)
	}
	defer ds.Close()

	structure := ds.Structure()
	bands := ds.Bands()
	if len(bands) == 0 {
		return Grid[float64]{}, Profile{}, fmt.Errorf("raster %s has no bands", path)
	}

	width, height := structure.SizeX, structure.SizeY
	grid := NewGrid[float64](width, height)
	if err := bands[0].Read(0, 0, grid.Data, width, height); err != nil {
		return Grid[float64]{}, Profile{}, fmt.Errorf("failed to read raster data from %s: %w", path, err)
	}

	profile := Profile{
		Width:      width,
		Height:     height,
		Count:      structure.NBands,
		DataType:   structure.DataType,
		Projection: ds.Projection(),
	}
	if geoTransform, err := ds.GeoTransform(); err == nil {
		profile.GeoTransform = geoTransform
		profile.HasGeoTransform = true
	}
	profile.NoData, profile.HasNoData = bands[0].NoData()

	return grid, profile, nil
}

func (GodalIO) Write(path string, grid Grid[uint8], profile Profile) error {
	var err error
	utils.ExecuteWithMutex(func() {
		err = write(path, grid, profile)
	})
	return err
}

func write(path string, grid Grid[uint8], profile Profile) error {
	if !grid.Valid() {
		return fmt.Errorf("cannot write an empty or malformed grid to %s", path)
	}

	options := []string{}
	if profile.Compress != "" {
		options = append(options, "COMPRESS="+profile.Compress)
	}
	ds, err := godal.Create(godal.GTiff, path, 1, godal.Byte, grid.Width, grid.Height, godal.CreationOption(options...))
	if err != nil {
		return fmt.Errorf("failed to create raster %s: %w", path, err)
	}

	if err := writeDataset(ds, grid, profile); err != nil {
		ds.Close()
		return fmt.Errorf("failed to write raster %s: %w", path, err)
	}
	if err := ds.Close(); err != nil {
		return fmt.Errorf("failed to close raster %s: %w", path, err)
	}
	return nil
}

func writeDataset(ds *godal.Dataset, grid Grid[uint8], profile Profile) error {
	if profile.HasGeoTransform {
		if err := ds.SetGeoTransform(profile.GeoTransform); err != nil {
			return err
		}
	}
	if profile.Projection != "" {
		if err := ds.SetProjection(profile.Projection); err != nil {
			return err
		}
	}
	band := ds.Bands()[0]
	if profile.HasNoData {
		if err := band.SetNoData(profile.NoData); err != nil {
			return err
		}
	}
	return band.Write(0, 0, grid.Data, grid.Width, grid.Height)
}
