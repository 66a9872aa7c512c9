package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli"

	"harmonyminds/internal/config"
)

type options struct {
	EnvFile string
	Port    int
	Open    bool
}

func main() {
	var (
		opts options
		app  = cli.NewApp()
	)

	app.Name = "harmonyminds"
	app.Usage = "Analyze the mood of a Spotify playlist"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "env-file",
			Usage:       "Load environment variables from `FILE`",
			Value:       config.DefaultEnvFile,
			EnvVar:      "HARMONYMINDS_ENV_FILE",
			Destination: &opts.EnvFile,
		},
		cli.IntFlag{
			Name:        "port",
			Usage:       "Listen on `PORT` instead of $PORT",
			Destination: &opts.Port,
		},
		cli.BoolFlag{
			Name:        "open",
			Usage:       "Open the app in the default browser once listening",
			Destination: &opts.Open,
		},
	}

	app.Action = func(_ *cli.Context) error {
		return run(opts)
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("Exiting with error")
	}
}
