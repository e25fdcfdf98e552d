package main

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/MixinNetwork/rational/config"
	"github.com/MixinNetwork/rational/rpc"
	"github.com/stretchr/testify/require"
)

func TestCommands(t *testing.T) {
	require := require.New(t)
	t.Setenv("RATIONAL_RPC", "")

	dir, err := os.MkdirTemp("", "rational-command-test")
	require.Nil(err)
	defer os.RemoveAll(dir)

	run := func(args ...string) string {
		var out bytes.Buffer
		app := newApp()
		app.Writer = &out
		err := app.Run(append([]string{"rational", "--log", "1"}, args...))
		require.Nil(err)
		return strings.TrimSpace(out.String())
	}
	value := func(args ...string) string {
		var res map[string]interface{}
		err := json.Unmarshal([]byte(run(args...)), &res)
		require.Nil(err)
		return res["value"].(string)
	}

	require.Equal("{13/24}", value("add", "{1/4}", "{7/24}"))
	require.Equal("{7/96}", value("mul", "0.25", "{7/24}"))
	require.Equal("{1/8}", value("pow", "0.5", "3"))
	require.Equal("0.6666", value("decimal", "--scale", "4", "--rounding", "floor", "{2/3}"))
	require.Equal("0.67", value("decimal", "{2/3}"))
	require.Equal(`{"result":-1}`, run("compare", "{1/4}", "{7/24}"))
	require.Equal(`["0","{1/4}","{1/2}","{3/4}"]`, run("range", "--step", "0.25", "0", "1"))

	require.Equal("{1/2}", value("--dir", dir, "set", "x", "0.5"))
	require.Equal("1", value("--dir", dir, "add", "$x", "$x"))
	require.Equal(`[{"name":"x","value":"{1/2}"}]`, run("--dir", dir, "list"))
	run("--dir", dir, "range", "--save", "q", "3", "0")
	require.Equal(`["3","2","1"]`, run("--dir", dir, "sequence", "q"))
	run("--dir", dir, "remove", "x")
	require.Equal(`[]`, run("--dir", dir, "list"))

	app := newApp()
	app.Writer = &bytes.Buffer{}
	err = app.Run([]string{"rational", "div", "1", "0"})
	require.NotNil(err)
	require.Contains(err.Error(), "zero denominator")
	err = app.Run([]string{"rational", "decimal", "--scale", "-1", "{1/6}"})
	require.NotNil(err)
	require.Contains(err.Error(), "invalid scale -1")
	err = app.Run([]string{"rational", "decimal", "--scale", "100000", "{1/6}"})
	require.NotNil(err)
	require.Contains(err.Error(), "invalid scale 100000")
	err = app.Run([]string{"rational", "set", "x", "1"})
	require.NotNil(err)
	require.Contains(err.Error(), "storage not available")
	err = app.Run([]string{"rational", "serve"})
	require.NotNil(err)
}

func TestCommandsRemote(t *testing.T) {
	require := require.New(t)

	server := httptest.NewServer(rpc.NewHandler(config.Default(), nil))
	defer server.Close()

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	err := app.Run([]string{"rational", "--node", server.URL, "sub", "{1/4}", "{7/24}"})
	require.Nil(err)
	var res map[string]interface{}
	err = json.Unmarshal(out.Bytes(), &res)
	require.Nil(err)
	require.Equal("{-1/24}", res["value"])

	err = app.Run([]string{"rational", "--node", server.URL, "get", "x"})
	require.NotNil(err)
	require.Contains(err.Error(), "storage not available")
}
