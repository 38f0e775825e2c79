// Command shapeset is a CLI harness for the shapeset package.
//
// Configuration precedence: --config YAML file, then environment, then flags.
// Environment variables:
//   - SHAPESET_ROOT: dataset root directory
//   - SHAPESET_CONFIG: path to a YAML config file
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hupe1980/shapeset"
)

func main() {
	var (
		configPath string
		rootDir    string
		verbose    bool
	)

	if v := os.Getenv("SHAPESET_CONFIG"); v != "" {
		configPath = v
	}

	// Peek at the global flags before cobra runs so the config file can
	// shape the command tree itself.
	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config":
			if i+1 < len(args) {
				configPath = args[i+1]
			}
		case "--root":
			if i+1 < len(args) {
				rootDir = args[i+1]
			}
		case "--verbose", "-v":
			verbose = true
		}
	}

	var cfg shapeset.Config
	if configPath != "" {
		var err error
		cfg, err = shapeset.LoadConfig(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if rootDir != "" {
		cfg.RootDir = rootDir
	}
	if cfg.RootDir == "" {
		cfg.RootDir = os.Getenv("SHAPESET_ROOT")
	}
	if cfg.RootDir == "" && cfg.Store.Type == "" {
		fmt.Fprintln(os.Stderr, "Error: dataset root is required (--root, SHAPESET_ROOT or config file)")
		os.Exit(2)
	}

	var opts []shapeset.Option
	if verbose {
		opts = append(opts, shapeset.WithLogLevel(slog.LevelDebug))
	} else {
		opts = append(opts, shapeset.WithLogLevel(slog.LevelWarn))
	}

	cmd := shapeset.NewCommand(cfg, opts...)
	cmd.Use = "shapeset"
	cmd.PersistentFlags().StringVar(&configPath, "config", configPath, "Path to YAML config file")
	cmd.PersistentFlags().StringVar(&rootDir, "root", rootDir, "Dataset root directory")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", verbose, "Verbose output")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
