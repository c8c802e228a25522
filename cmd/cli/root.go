package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	backend "github.com/honeybbq/bitcoinconf/backend/bitcoind"
	"github.com/honeybbq/bitcoinconf/pkg/confio"
	"github.com/honeybbq/bitcoinconf/pkg/logger"
)

// deps are the process resources the commands touch.
type deps struct {
	fs      afero.Fs
	backend *backend.Backend
	environ map[string]string // nil means the process environment
	stderr  io.Writer
}

func defaultDeps() deps {
	return deps{fs: afero.NewOsFs(), backend: backend.NewDefault(), stderr: os.Stderr}
}

type rootOptions struct {
	logLevel string
	datadir  string
	conf     string
}

func newRootCommand(d deps) *cobra.Command {
	if d.backend == nil {
		d.backend = backend.NewDefault()
	}
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "bitcoinconf",
		Short:         "bitcoinconf reads, writes and converts bitcoin.conf files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logger.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			log := logger.NewConsole("cli", d.stderr, level)
			cmd.SetContext(log.WithContext(ctx))
			return nil
		},
	}

	addRootFlags(cmd.PersistentFlags(), opts)

	store := func() *confio.Store {
		storeOpts := []confio.Option{confio.WithBackend(d.backend)}
		if d.environ != nil {
			storeOpts = append(storeOpts, confio.WithEnviron(d.environ))
		}
		return confio.New(d.fs, storeOpts...)
	}

	cmd.AddCommand(newReadCommand(opts, store, d.backend))
	cmd.AddCommand(newWriteCommand(opts, store))
	cmd.AddCommand(newConvertCommand(d))
	cmd.AddCommand(newOptionsCommand())

	return cmd
}

func addRootFlags(flags *pflag.FlagSet, opts *rootOptions) {
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	flags.StringVar(&opts.datadir, "datadir", "", "absolute data directory (default $BITCOIN_DATADIR or the platform default)")
	flags.StringVar(&opts.conf, "conf", "", "conf file, relative to datadir unless absolute (default $BITCOIN_CONF or bitcoin.conf)")
}
