package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
	"gopkg.in/yaml.v3"

	backend "github.com/honeybbq/bitcoinconf/backend/bitcoind"
	domain "github.com/honeybbq/bitcoinconf/domain/bitcoind"
	"github.com/honeybbq/bitcoinconf/pkg/bitcoinconf"
	"github.com/honeybbq/bitcoinconf/pkg/confio"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatTOML = "toml"
	formatConf = "conf"
)

func newReadCommand(root *rootOptions, store func() *confio.Store, b *backend.Backend) *cobra.Command {
	var (
		format       string
		withDefaults bool
	)
	cmd := &cobra.Command{
		Use:   "read",
		Short: "Read bitcoin.conf and its includes and print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := store().Read(cmd.Context(), confio.ReadOptions{
				Datadir:      root.datadir,
				Conf:         root.conf,
				WithDefaults: withDefaults,
			})
			if err != nil {
				return err
			}
			return writeConfig(cmd, b, result.Config, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "output format: json, yaml, toml, conf")
	cmd.Flags().BoolVar(&withDefaults, "defaults", false, "fill unset options with their network defaults")
	return cmd
}

// writeConfig prints cfg to the command's output in format.
func writeConfig(cmd *cobra.Command, b *backend.Backend, cfg bitcoinconf.Config, format string) error {
	out := cmd.OutOrStdout()
	switch strings.ToLower(format) {
	case formatJSON:
		msg, err := (&domain.Config{Values: cfg}).ToProto()
		if err != nil {
			return err
		}
		data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(msg)
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return writeOutput(out, data)
	case formatYAML:
		data, err := yaml.Marshal(map[string]any(cfg))
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = out.Write(data)
		return err
	case formatTOML:
		data, err := toml.Marshal(map[string]any(cfg))
		if err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		_, err = out.Write(data)
		return err
	case formatConf:
		bundle, err := b.Render(cmd.Context(), &domain.Config{Values: cfg}, bitcoinconf.RenderOptions{})
		if err != nil {
			return err
		}
		_, err = out.Write(bundle.Packages[0].Content)
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// writeOutput writes data with a trailing newline.
func writeOutput(w io.Writer, data []byte) error {
	_, err := w.Write(data)
	if err == nil && (len(data) == 0 || data[len(data)-1] != '\n') {
		_, err = fmt.Fprintln(w)
	}
	return err
}
