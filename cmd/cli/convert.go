package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/honeybbq/bitcoinconf/pkg/bitcoinconf"
)

type convertOptions struct {
	to           string
	input        string
	output       string
	tag          string
	withDefaults bool
}

// newConvertCommand converts between bitcoin.conf text and its JSON form
// without touching a data directory.
func newConvertCommand(d deps) *cobra.Command {
	opts := &convertOptions{}
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert bitcoin.conf text to JSON (--to json) or JSON to bitcoin.conf (--to conf)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readInput(cmd, d.fs, opts.input)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			b := d.backend
			var out []byte
			switch strings.ToLower(opts.to) {
			case formatConf:
				var msg structpb.Struct
				if err := protojson.Unmarshal(payload, &msg); err != nil {
					return fmt.Errorf("decode json: %w", err)
				}
				bundle, err := b.ToNative(cmd.Context(), &msg, bitcoinconf.RenderOptions{GenerationTag: opts.tag})
				if err != nil {
					return fmt.Errorf("render: %w", err)
				}
				out = bundle.Packages[0].Content
			case formatJSON:
				bundle := bitcoinconf.NewBundle("bitcoin.conf", b.Name())
				bundle.Packages = append(bundle.Packages, bitcoinconf.Package{Name: "main", Content: payload})
				msg, err := b.ToProto(cmd.Context(), bundle, bitcoinconf.ParseOptions{
					Reader:       includeReader(d.fs, opts.input),
					WithDefaults: opts.withDefaults,
				})
				if err != nil {
					return fmt.Errorf("parse: %w", err)
				}
				out, err = protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(msg)
				if err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
			default:
				return fmt.Errorf("unknown target %q (use conf|json)", opts.to)
			}

			if opts.output == "" || opts.output == "-" {
				return writeOutput(cmd.OutOrStdout(), out)
			}
			return afero.WriteFile(d.fs, opts.output, out, 0o600)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.to, "to", formatJSON, "target format: json or conf")
	flags.StringVarP(&opts.input, "input", "i", "", "input path (default: stdin)")
	flags.StringVarP(&opts.output, "output", "o", "", "output path (default: stdout)")
	flags.StringVar(&opts.tag, "tag", "", "generation tag written below the header (conf only)")
	flags.BoolVar(&opts.withDefaults, "defaults", false, "fill unset options with their network defaults (json only)")
	return cmd
}

func readInput(cmd *cobra.Command, fs afero.Fs, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return afero.ReadFile(fs, path)
}

// includeReader resolves relative includeconf paths against the input
// file's directory, or the working directory for stdin.
func includeReader(fs afero.Fs, input string) bitcoinconf.FileReader {
	base := "."
	if input != "" && input != "-" {
		base = filepath.Dir(input)
	}
	return bitcoinconf.FileReaderFunc(func(path string) (string, error) {
		if !filepath.IsAbs(path) {
			path = filepath.Join(base, path)
		}
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	})
}
