package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/common-nighthawk/go-figure"
	bannercolor "github.com/fatih/color"
	"github.com/forest-guardian/cloudmask-training-data/internal/delivery"
	"github.com/forest-guardian/cloudmask-training-data/internal/logger"
	"github.com/forest-guardian/cloudmask-training-data/internal/notification"
	"github.com/forest-guardian/cloudmask-training-data/internal/properties"
	"github.com/forest-guardian/cloudmask-training-data/internal/raster"
	"github.com/forest-guardian/cloudmask-training-data/internal/ui"
	"github.com/joho/godotenv"
)

func printBanner() {
	figure1 := figure.NewFigure("CloudMask", "isometric1", true)
	figure2 := figure.NewFigure("Data", "isometric1", true)
	bannercolor.Cyan(figure1.String())
	bannercolor.Cyan(figure2.String())
	fmt.Println()
}

func loadEnv() {
	for _, path := range []string{"../../.env", "../.env", ".env"} {
		if err := godotenv.Load(path); err == nil {
			return
		}
	}
	fmt.Printf("\033[33mNo .env file found, using the process environment\033[0m\n")
}

func recoverPanic() {
	if r := recover(); r != nil {
		pc, file, line, ok := runtime.Caller(3)
		var location string
		if ok {
			fn := runtime.FuncForPC(pc)
			location = fmt.Sprintf("%s:%d in %s", file, line, fn.Name())
		} else {
			location = "Unknown location"
		}

		fmt.Printf("\n\033[31mPANIC: %v\033[0m\n", r)
		fmt.Printf("\033[31mLocation: %s\033[0m\n", location)
		fmt.Printf("\033[31mPlease check the input and try again.\033[0m\n")
		fmt.Printf("\033[31mExiting...\033[0m\n")

		stack := debug.Stack()
		errMessage := fmt.Sprintf("CloudMask CLI panic:\n\n%v\n\nLocation: %s\n\nStack trace:\n%s", r, location, stack)
		if err := notification.SendDiscordErrorNotification(errMessage); err != nil {
			fmt.Printf("\033[31mFailed to send notification: %s\033[0m\n", err.Error())
		}
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Usage:")
	fmt.Println("  cmd                               interactive menu")
	fmt.Println("  cmd convert <cm1Folder> <gtFolder>  remap CM1 masks into ground truth")
	fmt.Println("  cmd patches <ndviFolder> <gtFolder> generate training patches")
}

func main() {
	loadEnv()

	log, err := logger.New(properties.LogMode())
	if err != nil {
		fmt.Printf("\033[31mFailed to create logger: %s\033[0m\n", err.Error())
		os.Exit(1)
	}
	defer log.Sync()
	defer recoverPanic()

	app := &ui.App{IO: raster.NewGodalIO(), Logger: log}

	args := os.Args[1:]
	if len(args) == 0 {
		printBanner()
		app.ShowMenu()
		return
	}

	if len(args) != 3 {
		usage()
		os.Exit(2)
	}

	var ok bool
	switch args[0] {
	case "convert":
		ok = app.RunGroundTruth(args[1], args[2])
	case "patches":
		cfg := delivery.DefaultTrainingSetConfig()
		cfg.NDVIFolder = args[1]
		cfg.GroundTruthFolder = args[2]
		ok = app.RunTrainingSet(cfg)
	default:
		usage()
		os.Exit(2)
	}
	if !ok {
		os.Exit(1)
	}
}
