package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/ungravity/progress"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show or reset saved progress",
}

var progressShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved progress document",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		p, err := store.Load(cmd.Context())
		if err != nil {
			return err
		}
		data, err := progress.Encode(p)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var progressResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete saved progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Reset(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("progress reset"))
		return nil
	},
}

func init() {
	progressCmd.AddCommand(progressShowCmd)
	progressCmd.AddCommand(progressResetCmd)
}
