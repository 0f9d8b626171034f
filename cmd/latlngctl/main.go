package main

import (
	"context"
	"os"

	"github.com/marcos-nsantos/latlng-parcel/internal/cli"
	"github.com/marcos-nsantos/latlng-parcel/internal/usecase/coordinate"
)

var version = "dev"

func main() {
	deps := cli.Dependencies{
		Codec:   coordinate.NewService(nil),
		Stdin:   os.Stdin,
		Version: version,
	}

	exitCode := cli.Execute(context.Background(), os.Args[1:], deps, os.Stdout, os.Stderr)
	os.Exit(exitCode)
}
