/*
Copyright © 2023 Kovalev Pavel kovalev5690@gmail.com
*/
package cmd

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Pavel7004/goLinkerMap/pkg/logger"
	"github.com/Pavel7004/goLinkerMap/pkg/mapfile"
)

type rootConfig struct {
	output   string
	demangle bool
	log      logger.Config
}

var (
	cfg rootConfig

	log       = zerolog.Nop()
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "mapfile",
	Short: "Utility that reports section usage from linker map files",
	Long: `mapfile reads the memory map of a linker map file (ld -Map)
and reports how objects were placed into output sections.

Example: mapfile sections firmware.map
This will print all flash sections and their total size.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			logCloser.Close()
		}
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfg.output, "output", "o", "-", "Output file, \"-\" for stdout")
	rootCmd.PersistentFlags().BoolVar(&cfg.demangle, "demangle", false, "Demangle C++ symbol and object names")
	rootCmd.PersistentFlags().StringVar(&cfg.log.File, "log-file", logger.DefaultFile, "Log file, \"-\" for stderr")
	rootCmd.PersistentFlags().StringVar(&cfg.log.Level, "log-level", "debug", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&cfg.log.Console, "log-console", false, "Human readable log lines instead of JSON")

	rootCmd.AddCommand(sectionsCmd, detailsCmd, exploreCmd)
}

func setupLogging(cmd *cobra.Command, args []string) error {
	l, c, err := logger.New(cfg.log)
	if err != nil {
		return err
	}
	log, logCloser = l, c
	return nil
}

func loadModel(path string) (*mapfile.Model, error) {
	log.Info().Str("file", path).Msg("started parsing map file")

	r := mapfile.NewMapReader(path)
	r.Logger = log

	if err := r.Open(); err != nil {
		r.Close()
		return nil, err
	}
	defer r.Close()

	return r.Parse()
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func openOutput() (io.WriteCloser, error) {
	if cfg.output == "" || cfg.output == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(cfg.output)
}
