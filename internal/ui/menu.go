package ui

import (
	"fmt"
	"os"

	"github.com/forest-guardian/cloudmask-training-data/internal/logger"
	"github.com/forest-guardian/cloudmask-training-data/internal/raster"
)

type App struct {
	IO     raster.IO
	Logger *logger.Logger
}

type menuOption struct {
	title   string
	handler func()
}

// ShowMenu displays the main menu and handles user input
func (a *App) ShowMenu() {
	menuOptions := []menuOption{
		{"Convert CM1 cloud masks to ground truth", a.CreateGroundTruth},
		{"Generate training patches from NDVI and ground truth", a.CreateTrainingSet},
		{"View the list of NDVI / ground truth pairs", a.ListPairs},
		{"Render a ground truth or NDVI preview", a.RenderPreview},
		{"Exit the application", func() { fmt.Println("Exiting..."); os.Exit(0) }},
	}

	for {
		fmt.Println("\033[34m===================\033[0m")
		for i, opt := range menuOptions {
			fmt.Printf("\033[34m%d. %s\033[0m\n", i+1, opt.title)
		}

		choice, err := ReadInt("Please enter your choice: ", 1, len(menuOptions))
		if err != nil {
			PrintError(err.Error())
			continue
		}

		menuOptions[choice-1].handler()
	}
}
