package main

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/nleiva/codesensei/cli"
	"github.com/nleiva/codesensei/internal/web"
	"github.com/nleiva/codesensei/pkg/config"
	"github.com/nleiva/codesensei/pkg/engine"
)

// Mode represents a runnable application mode
type Mode interface {
	Run(cfg *config.Config) error
}

// printUsage displays the usage information
func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <mode> [options]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "\nModes:\n")
	fmt.Fprintf(os.Stderr, "  cli                Start in CLI mode (interactive terminal)\n")
	fmt.Fprintf(os.Stderr, "  web                Start in web mode (HTTP server)\n")
	fmt.Fprintf(os.Stderr, "  <action> <file>    One-shot mode: run an action against a file\n")
	fmt.Fprintf(os.Stderr, "                     (analyze, write, improve, refactor, debug, expand)\n")
	fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
	fmt.Fprintf(os.Stderr, "  PORT       Optional: Web server port number (default: %d)\n", config.DefaultPort)
	fmt.Fprintf(os.Stderr, "  DELAY_MS   Optional: Artificial processing delay in ms (default: %d)\n",
		engine.DefaultDelay.Milliseconds())
	fmt.Fprintf(os.Stderr, "  LOG_DIR    Optional: Session metrics directory (default: %s, '-' disables)\n",
		config.DefaultLogDir)
}

func run(args []string) error {
	if len(args) < 2 {
		printUsage()
		return fmt.Errorf("mode argument required")
	}

	modeArg := args[1]

	// Load configuration from environment
	cfg, err := config.LoadFromEnv(os.Stderr)
	if err != nil {
		return err
	}

	var mode Mode

	switch modeArg {
	case "cli":
		mode = cli.NewCLIRunner()
	case "web":
		address := net.JoinHostPort("", strconv.Itoa(cfg.Port))
		mode = web.NewWebRunner(address)
	default:
		// Handle one-shot action mode
		action, err := engine.ParseAction(modeArg)
		if err != nil {
			printUsage()
			return err
		}
		if len(args) < 3 {
			printUsage()
			return fmt.Errorf("one-shot mode requires a file argument")
		}
		mode = cli.NewDirectRunner(action, args[2])
	}

	return mode.Run(cfg)
}

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error starting CodeSensei: %s\n", err)
		os.Exit(1)
	}
}
