package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MixinNetwork/rational/config"
	"github.com/MixinNetwork/rational/logger"
	"github.com/MixinNetwork/rational/rpc"
	"github.com/MixinNetwork/rational/storage"
	"github.com/urfave/cli/v2"
)

func calculatorCmd(method string) cli.ActionFunc {
	return func(c *cli.Context) error {
		return callCmd(c, method, argsParams(c))
	}
}

func decimalCmd(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("invalid number of arguments %d", c.NArg())
	}
	params := argsParams(c)
	if c.IsSet("scale") || c.IsSet("rounding") {
		custom, err := loadConfig(c)
		if err != nil {
			return err
		}
		scale := int(custom.Number.Scale)
		if c.IsSet("scale") {
			scale = c.Int("scale")
		}
		params = append(params, scale)
	}
	if c.IsSet("rounding") {
		params = append(params, c.String("rounding"))
	}
	return callCmd(c, "decimal", params)
}

func rangeCmd(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("invalid number of arguments %d", c.NArg())
	}
	params := append(argsParams(c), c.String("step"))
	if name := c.String("save"); name != "" {
		return callCmd(c, "savesequence", append([]interface{}{name}, params...))
	}
	return callCmd(c, "range", params)
}

func serveCmd(c *cli.Context) error {
	dir := c.String("dir")
	if dir == "" {
		return errors.New("the data directory is required")
	}
	custom, err := loadConfig(c)
	if err != nil {
		return err
	}
	if c.IsSet("filter") {
		err = logger.SetFilter(c.String("filter"))
		if err != nil {
			return err
		}
	}

	store, err := storage.NewBadgerStore(custom, dir)
	if err != nil {
		return err
	}
	defer store.Close()

	port := custom.RPC.Port
	if c.IsSet("port") {
		port = c.Int("port")
	}
	server := rpc.NewServer(custom, store, port)
	logger.Printf("RPC server listening on %d with data in %s\n", port, dir)
	return server.ListenAndServe()
}

func callCmd(c *cli.Context, method string, params []interface{}) error {
	var data []byte
	var err error
	if node := c.String("node"); node != "" {
		data, err = rpc.CallRPC(node, method, params)
	} else {
		data, err = dispatchLocal(c, method, params)
	}
	if err == nil {
		fmt.Fprintln(c.App.Writer, string(data))
	}
	return err
}

// dispatchLocal computes without a server, opening the data directory
// only when one is given so registers stay optional.
func dispatchLocal(c *cli.Context, method string, params []interface{}) ([]byte, error) {
	custom, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	var store storage.Store
	if dir := c.String("dir"); dir != "" {
		badger, err := storage.NewBadgerStore(custom, dir)
		if err != nil {
			return nil, err
		}
		defer badger.Close()
		store = badger
	}

	data, err := rpc.Dispatch(custom, store, method, params)
	if err != nil {
		return nil, err
	}
	return json.Marshal(data)
}

func loadConfig(c *cli.Context) (*config.Custom, error) {
	file := c.String("config")
	if file == "" && c.String("dir") != "" {
		def := filepath.Join(c.String("dir"), "config.toml")
		if _, err := os.Stat(def); err == nil {
			file = def
		}
	}

	custom := config.Default()
	if file != "" {
		var err error
		custom, err = config.Initialize(file)
		if err != nil {
			return nil, err
		}
	}

	err := logger.Configure(custom.Log.Level, custom.Log.Filter, custom.Log.Limiter)
	if err != nil {
		return nil, err
	}
	if c.IsSet("log") {
		logger.SetLevel(c.Int("log"))
	}
	return custom, nil
}

func argsParams(c *cli.Context) []interface{} {
	args := c.Args().Slice()
	params := make([]interface{}, len(args))
	for i, a := range args {
		params[i] = a
	}
	return params
}
