package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	domain "github.com/honeybbq/bitcoinconf/domain/bitcoind"
	"github.com/honeybbq/bitcoinconf/pkg/confio"
	"github.com/honeybbq/bitcoinconf/pkg/sync"
)

func newWriteCommand(root *rootOptions, store func() *confio.Store) *cobra.Command {
	var (
		input  string
		tag    string
		dryRun bool
	)
	cmd := &cobra.Command{
		Use:   "write",
		Short: "Write a JSON configuration to bitcoin.conf, keeping a .bak of the previous file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := store()
			payload, err := readInput(cmd, s.Fs(), input)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			var msg structpb.Struct
			if err := protojson.Unmarshal(payload, &msg); err != nil {
				return fmt.Errorf("decode json: %w", err)
			}
			cfg, err := domain.FromProto(&msg)
			if err != nil {
				return err
			}

			writeOpts := confio.WriteOptions{
				Datadir:       root.datadir,
				Conf:          root.conf,
				GenerationTag: tag,
			}
			if dryRun {
				plan, err := s.Plan(cmd.Context(), cfg.Values, writeOpts)
				if err != nil {
					return err
				}
				printDiff(cmd.OutOrStdout(), plan.Path, plan.Changes.Diff)
				return nil
			}

			written, err := s.Write(cmd.Context(), cfg.Values, writeOpts)
			if err != nil {
				return err
			}
			for _, file := range written {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", file.Path)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "JSON input path (default: stdin)")
	cmd.Flags().StringVar(&tag, "tag", "", "generation tag written below the header")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the option changes without writing")
	return cmd
}

// printDiff prints one "+", "-" or "~" line per touched option.
func printDiff(w io.Writer, path string, diff *sync.DiffResult) {
	fmt.Fprintf(w, "%s:\n", path)
	if diff.Empty() {
		fmt.Fprintln(w, "  no changes")
		return
	}
	for _, name := range diff.Names() {
		if value, ok := diff.Added[name]; ok {
			fmt.Fprintf(w, "  + %s=%v\n", name, value)
		} else if value, ok := diff.Removed[name]; ok {
			fmt.Fprintf(w, "  - %s=%v\n", name, value)
		} else {
			change := diff.Changed[name]
			fmt.Fprintf(w, "  ~ %s: %v -> %v\n", name, change[0], change[1])
		}
	}
}
