package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/multiversx/mx-chain-htlc-oracle-go/common"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/urfave/cli"
)

const maxTimeToClose = 10 * time.Second

var (
	nodeHelpTemplate = `NAME:
   {{.Name}} - {{.Usage}}
USAGE:
   {{.HelpName}} {{if .VisibleFlags}}[global options]{{end}}
   {{if len .Authors}}
AUTHOR:
   {{range .Authors}}{{ . }}{{end}}
   {{end}}{{if .Commands}}
GLOBAL OPTIONS:
   {{range .VisibleFlags}}{{.}}
   {{end}}
VERSION:
   {{.Version}}
   {{end}}
`
	log = logger.GetOrCreate("main")
)

// appVersion should be populated at build time using ldflags
// Usage examples:
// linux/mac:
//
//	go build -v -ldflags="-X main.appVersion=$(git describe --tags --long --dirty)"
var appVersion = common.UnVersionedAppString

func main() {
	_ = logger.SetDisplayByteSlice(logger.ToHexShort)

	app := cli.NewApp()
	cli.AppHelpTemplate = nodeHelpTemplate
	app.Name = "MultiversX HTLC Oracle Node CLI App"
	app.Version = fmt.Sprintf("%s/%s/%s-%s", appVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	app.Usage = "This is the entry point for starting a node that mirrors the HTLC events of an external chain"
	app.Flags = getFlags()
	app.Authors = []cli.Author{
		{
			Name:  "The MultiversX Team",
			Email: "contact@multiversx.com",
		},
	}

	app.Action = startNodeRunner

	err := app.Run(os.Args)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func startNodeRunner(c *cli.Context) error {
	flags := getFlagsConfig(c)

	err := applyLogSettings(flags)
	if err != nil {
		return err
	}

	runner, err := newNodeRunner(flags)
	if err != nil {
		return err
	}

	return runner.Start()
}

func applyLogSettings(flags *flagsConfig) error {
	err := logger.SetLogLevel(flags.logLevel)
	if err != nil {
		return err
	}

	if flags.disableAnsiColor {
		err = logger.RemoveLogObserver(os.Stdout)
		if err != nil {
			// no console observer is left to log this
			fmt.Println("error removing log observer: " + err.Error())
			return err
		}

		err = logger.AddLogObserver(os.Stdout, &logger.PlainFormatter{})
		if err != nil {
			fmt.Println("error setting log observer: " + err.Error())
			return err
		}
	}
	log.Trace("logger updated", "level", flags.logLevel, "disable ANSI color", flags.disableAnsiColor)

	return nil
}
