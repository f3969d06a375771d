// Command uectl sends a single raw command to a running Unreal Editor
// listener and prints the canonicalized response, bypassing the MCP layer.
// Useful for poking the plugin while developing snippets or new commands.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/uemcp/uemcp/internal/bridge"
	"github.com/uemcp/uemcp/internal/logger"
)

func main() {
	host := flag.String("host", "127.0.0.1", "Unreal Editor listener host")
	port := flag.Int("port", 55557, "Unreal Editor listener port")
	timeout := flag.Duration("timeout", 30*time.Second, "per-command deadline")
	params := flag.String("params", "", "command params as a JSON object")
	verbose := flag.Bool("v", false, "log connection details to stderr")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [flags] <command-type>\n\nExample:\n  %s -params '{\"name\":\"Cube1\"}' delete_actor\n\nFlags:\n",
			os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	logCfg := logger.DefaultConfig()
	if !*verbose {
		logCfg.Level = logger.ParseLevel("error")
	}
	logger.Init(logCfg)

	var cmdParams map[string]any
	if *params != "" {
		if err := json.Unmarshal([]byte(*params), &cmdParams); err != nil {
			fmt.Fprintf(os.Stderr, "uectl: -params is not a JSON object: %v\n", err)
			os.Exit(2)
		}
	}

	client := bridge.NewClient(bridge.Options{
		Addr:    fmt.Sprintf("%s:%d", *host, *port),
		Timeout: *timeout,
	})

	resp, err := client.Send(context.Background(), flag.Arg(0), cmdParams)

	out, merr := json.MarshalIndent(resp, "", "  ")
	if merr != nil {
		fmt.Fprintf(os.Stderr, "uectl: %v\n", merr)
		os.Exit(1)
	}
	fmt.Println(string(out))

	if err != nil {
		fmt.Fprintf(os.Stderr, "uectl: %v\n", err)
		os.Exit(1)
	}
	if !resp.IsSuccess() {
		os.Exit(1)
	}
}
