package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-brief/pkg/i18n"
	"github.com/goliatone/go-brief/pkg/model"
	"github.com/goliatone/go-brief/pkg/stepper"
	"github.com/goliatone/go-brief/pkg/submit"
	"github.com/goliatone/go-brief/pkg/tui"
	"github.com/goliatone/go-brief/pkg/validation"
)

func fillCmd(flags *rootFlags) *cobra.Command {
	var (
		server  string
		variant string
		lang    string
	)
	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Fill in the brief step by step and send it",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			v, ok := model.VariantByName(variant)
			if !ok {
				return fmt.Errorf("unknown variant %q", variant)
			}
			tag := i18n.Match(lang)
			printer := i18n.Printer(tag)

			store, closeStore, err := openStore(cmd, flags)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := closeStore(); cerr != nil && err == nil {
					err = cerr
				}
			}()

			client := submit.New(
				submit.WithBaseURL(strings.TrimRight(server, "/")),
				submit.WithVariant(v),
				submit.WithLocalizer(printer),
			)
			ctrl := stepper.New(cmd.Context(), v,
				stepper.WithStore(store),
				stepper.WithSubmitter(client),
				stepper.WithValidator(validation.New(validation.WithLocalizer(printer))),
				stepper.WithLocalizer(printer),
			)

			runner, err := tui.New(
				tui.WithPromptDriver(newDriver(cmd.OutOrStdout())),
				tui.WithLanguage(tag),
			)
			if err != nil {
				return err
			}

			outcome, err := runner.Run(cmd.Context(), ctrl)
			if errors.Is(err, tui.ErrAborted) {
				fmt.Fprintln(cmd.ErrOrStderr(), "draft saved")
				return nil
			}
			if err != nil {
				return err
			}
			if outcome == tui.OutcomeCancelled {
				fmt.Fprintln(cmd.ErrOrStderr(), "draft saved")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&server, "server", "http://localhost:8383", "Base URL of the brief server")
	cmd.Flags().StringVar(&variant, "variant", model.Extended.Name, "Form layout (basic or extended)")
	cmd.Flags().StringVar(&lang, "lang", "sv", "Prompt language")
	return cmd
}
