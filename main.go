package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/hailam/randfile/internal/adapters/progress"
	"github.com/hailam/randfile/internal/adapters/txt"
	adapterutils "github.com/hailam/randfile/internal/adapters/utils"
	"github.com/hailam/randfile/internal/application"
	"github.com/hailam/randfile/internal/config"
)

// Usage: randfile [output-path] [size]
// Missing arguments fall back to the defaults in internal/config.
func main() {
	if len(os.Args) > 3 {
		fmt.Println("Usage: randfile [output-path] [size]")
		os.Exit(1)
	}
	outputPath, sizeStr := config.DefaultOutput, config.DefaultSize
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		sizeStr = os.Args[2]
	}

	log := logrus.New()
	generator, err := txt.New(txt.Options{Progress: progress.NewLine(os.Stdout)})
	if err != nil {
		log.WithError(err).Fatal("invalid generator options")
	}
	service := application.NewFileService(generator, adapterutils.NewUtilSizeParser(), log)
	if err := service.CreateFileFromSpec(outputPath, sizeStr); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating file: %v\n", err)
		os.Exit(1)
	}
}
