package main

import (
	"github.com/multiversx/mx-chain-htlc-oracle-go/facade"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/urfave/cli"
)

var (
	filePathPlaceholder = "[path]"
	// configurationFile defines a flag for the path to the main toml configuration file
	configurationFile = cli.StringFlag{
		Name: "config",
		Usage: "The `" + filePathPlaceholder + "` for the main configuration file. This TOML file contains the " +
			"block production, oracle, storage and REST API settings.",
		Value: "./config/config.toml",
	}
	// workingDirectory defines a flag for the path for the working directory.
	workingDirectory = cli.StringFlag{
		Name:  "working-directory",
		Usage: "This flag specifies the `directory` where the node will store databases.",
		Value: "",
	}
	// logLevel defines the logger level
	logLevel = cli.StringFlag{
		Name: "log-level",
		Usage: "This flag specifies the logger `level(s)`. It can contain multiple comma-separated value. For example" +
			", if set to *:INFO the logs for all packages will have the INFO level. However, if set to *:INFO,api:DEBUG" +
			" the logs for all packages will have the INFO level, excepting the api package which will receive a DEBUG" +
			" log level.",
		Value: "*:" + logger.LogInfo.String(),
	}
	// disableAnsiColor defines if the logger subsystem should prevent displaying ANSI colors
	disableAnsiColor = cli.BoolFlag{
		Name:  "disable-ansi-color",
		Usage: "Boolean option for disabling ANSI colors in the logging system.",
	}
	// gopsEn used to enable diagnosis of running go processes
	gopsEn = cli.BoolFlag{
		Name:  "gops-enable",
		Usage: "Boolean option for enabling gops over the process. If set, stack can be viewed by calling 'gops stack <pid>'.",
	}
	// restApiInterface defines a flag for the interface on which the rest API will try to bind with
	restApiInterface = cli.StringFlag{
		Name: "rest-api-interface",
		Usage: "The interface `address and port` to which the REST API will attempt to bind. " +
			"To bind to all available interfaces, set this flag to :8080. If set to `" + facade.DefaultRestPortOff + "`, " +
			"the REST API will not start. Overrides the value found in the configuration file.",
		Value: "",
	}
	// restApiDebug defines a flag for starting the rest API engine in debug mode
	restApiDebug = cli.BoolFlag{
		Name:  "rest-api-debug",
		Usage: "Boolean option for starting the Rest API in debug mode.",
	}
	// adminKey defines a flag for the key required by the privileged REST API endpoints
	adminKey = cli.StringFlag{
		Name:  "admin-key",
		Usage: "The `key` expected in the X-Admin-Key header of the privileged REST API endpoints. Overrides the value found in the configuration file.",
		Value: "",
	}
)

func getFlags() []cli.Flag {
	return []cli.Flag{
		configurationFile,
		workingDirectory,
		logLevel,
		disableAnsiColor,
		gopsEn,
		restApiInterface,
		restApiDebug,
		adminKey,
	}
}

type flagsConfig struct {
	configurationFileName string
	workingDir            string
	logLevel              string
	isLogLevelSet         bool
	disableAnsiColor      bool
	enableGops            bool
	restApiInterface      string
	restApiDebug          bool
	adminKey              string
}

func getFlagsConfig(ctx *cli.Context) *flagsConfig {
	return &flagsConfig{
		configurationFileName: ctx.GlobalString(configurationFile.Name),
		workingDir:            ctx.GlobalString(workingDirectory.Name),
		logLevel:              ctx.GlobalString(logLevel.Name),
		isLogLevelSet:         ctx.GlobalIsSet(logLevel.Name),
		disableAnsiColor:      ctx.GlobalBool(disableAnsiColor.Name),
		enableGops:            ctx.GlobalBool(gopsEn.Name),
		restApiInterface:      ctx.GlobalString(restApiInterface.Name),
		restApiDebug:          ctx.GlobalBool(restApiDebug.Name),
		adminKey:              ctx.GlobalString(adminKey.Name),
	}
}
