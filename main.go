package main

import (
	"fmt"
	"os"

	"github.com/MixinNetwork/rational/config"
	"github.com/MixinNetwork/rational/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if err != nil {
		fmt.Println(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "rational"
	app.Usage = "Exact rational number calculator on 64-bit fractions."
	app.Version = config.BuildVersion
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "node",
			Aliases: []string{"n"},
			Value:   os.Getenv("RATIONAL_RPC"),
			Usage:   "the RPC endpoint to compute on, and the default value is read from environment variable RATIONAL_RPC",
		},
		&cli.StringFlag{
			Name:    "dir",
			Aliases: []string{"d"},
			Usage:   "the data directory for stored values and sequences",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "the configuration file, config.toml in the data directory if present",
		},
		&cli.IntFlag{
			Name:    "log",
			Aliases: []string{"l"},
			Value:   logger.INFO,
			Usage:   "the log level",
		},
	}
	app.EnableBashCompletion = true
	app.Commands = []*cli.Command{
		{
			Name:      "parse",
			Usage:     "Parse and normalize a number",
			ArgsUsage: "NUMBER",
			Action:    calculatorCmd("parse"),
		},
		{
			Name:      "add",
			Usage:     "Add all the numbers from left to right",
			ArgsUsage: "NUMBER NUMBER...",
			Action:    calculatorCmd("add"),
		},
		{
			Name:      "sub",
			Usage:     "Subtract the following numbers from the first one",
			ArgsUsage: "NUMBER NUMBER...",
			Action:    calculatorCmd("sub"),
		},
		{
			Name:      "mul",
			Usage:     "Multiply all the numbers from left to right",
			ArgsUsage: "NUMBER NUMBER...",
			Action:    calculatorCmd("mul"),
		},
		{
			Name:      "div",
			Usage:     "Divide the first number by the following ones",
			ArgsUsage: "NUMBER NUMBER...",
			Action:    calculatorCmd("div"),
		},
		{
			Name:      "reciprocal",
			Usage:     "Swap the numerator and denominator",
			ArgsUsage: "NUMBER",
			Action:    calculatorCmd("reciprocal"),
		},
		{
			Name:      "pow",
			Usage:     "Raise a number to an integer power",
			ArgsUsage: "NUMBER EXPONENT",
			Action:    calculatorCmd("pow"),
		},
		{
			Name:      "percentage",
			Usage:     "Express a number as a percentage",
			ArgsUsage: "NUMBER",
			Action:    calculatorCmd("percentage"),
		},
		{
			Name:      "percentageof",
			Usage:     "Express the product of two numbers as a percentage",
			ArgsUsage: "NUMBER NUMBER",
			Action:    calculatorCmd("percentageof"),
		},
		{
			Name:      "compare",
			Usage:     "Compare two numbers, and print -1, 0 or 1",
			ArgsUsage: "NUMBER NUMBER",
			Action:    calculatorCmd("compare"),
		},
		{
			Name:      "decimal",
			Usage:     "Round a number to a fixed scale decimal",
			ArgsUsage: "NUMBER",
			Action:    decimalCmd,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "scale",
					Aliases: []string{"s"},
					Usage:   "the digits after the decimal point, the configured scale if not set",
				},
				&cli.StringFlag{
					Name:    "rounding",
					Aliases: []string{"r"},
					Usage:   "the rounding mode, e.g. half-up, half-even, down, floor or unnecessary",
				},
			},
		},
		{
			Name:      "range",
			Usage:     "List the numbers from start toward stop, stop excluded",
			ArgsUsage: "START STOP",
			Action:    rangeCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "step",
					Value: "1",
					Usage: "the positive step between two numbers",
				},
				&cli.StringFlag{
					Name:  "save",
					Usage: "save the sequence with the `NAME` instead of printing it",
				},
			},
		},
		{
			Name:      "sequence",
			Usage:     "Print a saved sequence",
			ArgsUsage: "NAME",
			Action:    calculatorCmd("getsequence"),
		},
		{
			Name:      "set",
			Usage:     "Store a number with a name, usable later as $NAME",
			ArgsUsage: "NAME NUMBER",
			Action:    calculatorCmd("setvalue"),
		},
		{
			Name:      "get",
			Usage:     "Print a stored number",
			ArgsUsage: "NAME",
			Action:    calculatorCmd("getvalue"),
		},
		{
			Name:      "list",
			Usage:     "List the stored numbers",
			ArgsUsage: "[PREFIX]",
			Action:    calculatorCmd("listvalues"),
		},
		{
			Name:      "remove",
			Usage:     "Remove a stored number",
			ArgsUsage: "NAME",
			Action:    calculatorCmd("removevalue"),
		},
		{
			Name:   "serve",
			Usage:  "Start the calculator RPC server",
			Action: serveCmd,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "port",
					Aliases: []string{"p"},
					Usage:   "the RPC port to listen, the configured port if not set",
				},
				&cli.StringFlag{
					Name:  "filter",
					Usage: "the RE2 regex pattern to filter log",
				},
			},
		},
	}
	return app
}
