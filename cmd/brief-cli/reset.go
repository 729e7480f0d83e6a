package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func resetCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete the saved draft",
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

			store.Clear(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "draft removed")
			return nil
		},
	}
}
