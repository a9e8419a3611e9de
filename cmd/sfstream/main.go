// Command sfstream inspects and produces binary data with SFStream.
//
// Usage:
//
//	sfstream [-config file] <command> [options] <args>...
//
// Dump Command:
//
//	Print a file as hex.
//
//	Options:
//	  -offset int       First byte to dump (default 0)
//	  -length int       Number of bytes to dump (default: all)
//
// Decode Command:
//
//	Decode a file with a YAML record layout.
//
//	Options:
//	  -layout string    Layout file (required)
//	  -repeat           Decode records until the end of the file
//
// Pack Command:
//
//	Convert hex strings into binary.
//
//	Options:
//	  -out string       Output file (default: stdout)
//
// The log level and format can be overridden with SFSTREAM_LOG_LEVEL and
// SFSTREAM_LOG_FORMAT.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.Getenv))
}

// app carries what every command needs.
type app struct {
	cfg    Config
	logger *zap.Logger
	stdout io.Writer
	stderr io.Writer
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	global := flag.NewFlagSet("sfstream", flag.ContinueOnError)
	global.SetOutput(stderr)
	configPath := global.String("config", "", "YAML configuration file")
	global.Usage = func() { printUsage(stderr) }

	if err := global.Parse(args); err != nil {
		return 1
	}
	if global.NArg() == 0 {
		printUsage(stderr)
		return 1
	}

	cfg, err := loadConfig(*configPath, getenv)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	logger, err := initLogger(cfg.Log, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	a := &app{cfg: cfg, logger: logger, stdout: stdout, stderr: stderr}
	cmd, cmdArgs := global.Arg(0), global.Args()[1:]

	switch cmd {
	case "dump", "d":
		err = a.cmdDump(cmdArgs)
	case "decode", "dec":
		err = a.cmdDecode(cmdArgs)
	case "pack", "p":
		err = a.cmdPack(cmdArgs)
	case "version":
		err = a.cmdVersion()
	case "help", "-h", "--help":
		printUsage(stdout)
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", cmd)
		printUsage(stderr)
		return 1
	}

	if err != nil {
		if err != flag.ErrHelp {
			logger.Debug("command failed", zap.String("command", cmd), zap.Error(err))
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `SFStream binary inspection tool

Usage:
  sfstream [-config file] <command> [options] <args>...

Commands:
  dump        Print a file as hex
  decode      Decode a file with a YAML record layout
  pack        Convert hex strings into binary
  version     Print version information
  help        Print this help message

Run 'sfstream <command> -h' for command-specific help.`)
}
