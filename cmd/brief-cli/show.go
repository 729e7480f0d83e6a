package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func showCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the saved draft as JSON",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			store, closeStore, err := openStore(cmd, flags)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := closeStore(); cerr != nil && err == nil {
					err = cerr
				}
			}()

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(store.Load(cmd.Context()))
		},
	}
}
