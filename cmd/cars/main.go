// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/xmidt-org/cars"
	"github.com/xmidt-org/cars/carsconfig"
	"github.com/xmidt-org/cars/carshttp"
	"github.com/xmidt-org/cars/carslog"
	"go.uber.org/fx"
)

// CommandLine is the parsed set of command line flags.
type CommandLine struct {
	// File is an explicit configuration file.  If unset, the standard
	// locations are searched.
	File string
}

func parseCommandLine(args []string, output io.Writer) (cl CommandLine, err error) {
	fs := pflag.NewFlagSet(carsconfig.ApplicationName, pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVarP(&cl.File, "file", "f", "", "the configuration file to use")

	err = fs.Parse(args)
	if err != nil && !errors.Is(err, pflag.ErrHelp) {
		// pflag only reports errors itself when it is about to exit
		fmt.Fprintln(output, err)
		fmt.Fprintf(output, "Usage of %s:\n", carsconfig.ApplicationName)
		fs.PrintDefaults()
	}

	return
}

// options assembles the application from an already loaded viper instance.
// Configuration keys that match nothing are errors, so typos fail startup.
func options(v *viper.Viper) fx.Option {
	return fx.Options(
		carsconfig.Supply(v, carsconfig.Exact),
		carslog.Provide("log"),
		carshttp.Provide("server", "cars"),
		carsconfig.If(v.GetBool("pprof.enabled")).Then(
			carshttp.ProvidePprof("pprof"),
		),
	)
}

func run(args []string, stderr io.Writer) error {
	cl, err := parseCommandLine(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	} else if err != nil {
		return cars.UseExitCode(err, cars.ConfigurationExitCode)
	}

	v, err := carsconfig.NewViper(cl.File)
	if err != nil {
		return cars.UseExitCode(err, cars.ConfigurationExitCode)
	}

	app := fx.New(options(v))
	if err := app.Err(); err != nil {
		return err
	}

	startCtx, startCancel := context.WithTimeout(context.Background(), app.StartTimeout())
	defer startCancel()
	if err := app.Start(startCtx); err != nil {
		return err
	}

	<-app.Done()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer stopCancel()
	return app.Stop(stopCtx)
}

func main() {
	err := run(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	os.Exit(cars.ExitCodeFor(err, nil))
}
