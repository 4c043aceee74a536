package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lomik/zapwriter"
	"go.uber.org/zap"

	"github.com/shvyrev/jtk/command"
	"github.com/shvyrev/jtk/config"
	"github.com/shvyrev/jtk/helper/errs"
	"github.com/shvyrev/jtk/pkg/scope"
)

// Version of almost
const Version = "0.1.0"

func main() {
	var err error

	/* CONFIG start */

	configFile := flag.String("config", "", "Filename of config")
	printDefaultConfig := flag.Bool("config-print-default", false, "Print default config")
	checkConfig := flag.Bool("check-config", false, "Check config and exit")
	printVersion := flag.Bool("version", false, "Print version")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] command args...\n\nCommands:\n%s\n\nFlags:\n", os.Args[0], command.Usage())
		flag.PrintDefaults()
	}

	flag.Parse()

	if *printVersion {
		fmt.Print(Version)
		return
	}

	if *printDefaultConfig {
		if err = config.Print(config.New()); err != nil {
			log.Fatal(err)
		}
		return
	}

	cfg, err := config.ReadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}

	a, err := cfg.Tolerance.Almost()
	if err != nil {
		log.Fatal(err)
	}

	// config parsed successfully. Exit in check-only mode
	if *checkConfig {
		return
	}

	if err = zapwriter.ApplyConfig(cfg.Logging); err != nil {
		log.Fatal(err)
	}

	logger := zapwriter.Logger("almost")
	logger.Debug("starting",
		zap.String("version", Version),
		zap.Stringer("almost", a),
	)

	/* CONFIG end */

	result, err := command.Run(scope.WithLogger(context.Background(), logger), a, flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errs.Code(err) == errs.CodeUsage {
			flag.Usage()
		}
		os.Exit(errs.Code(err))
	}

	fmt.Println(result)
}
