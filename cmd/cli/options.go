package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/honeybbq/bitcoinconf/pkg/options"
)

func newOptionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "options [name...]",
		Short: "List the options bitcoin.conf accepts",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = options.Names()
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTYPE\tSCOPE\tDEFAULT\tDESCRIPTION")
			for _, name := range names {
				option, err := options.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", name, option.Type, scope(option), defaults(option), option.Description)
			}
			return w.Flush()
		},
	}
}

func scope(option options.Descriptor) string {
	var parts []string
	if option.OnlyAllowedInTop {
		parts = append(parts, "top-only")
	}
	if option.NotAllowedInMain {
		parts = append(parts, "not-main")
	}
	if option.OnlyAppliesToMain {
		parts = append(parts, "main-only")
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ",")
}

func defaults(option options.Descriptor) string {
	if len(option.NetworkDefaults) > 0 {
		parts := make([]string, 0, len(options.Networks))
		for _, network := range options.Networks {
			if value, ok := option.DefaultFor(network); ok {
				parts = append(parts, fmt.Sprintf("%s=%v", network, value))
			}
		}
		return strings.Join(parts, " ")
	}
	if option.Default != nil {
		return fmt.Sprint(option.Default)
	}
	return "-"
}
