package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"urmonov-web/pkg/validator"
)

var checkPhoneCmd = &cobra.Command{
	Use:   "check-phone <number>...",
	Short: "Check numbers against the contact form phone rule",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		invalid := 0
		for _, phone := range args {
			if validator.IsPhone(phone) {
				fmt.Fprintf(cmd.OutOrStdout(), "ok       %s\n", phone)
				continue
			}
			invalid++
			fmt.Fprintf(cmd.OutOrStdout(), "invalid  %s\n", phone)
		}
		if invalid > 0 {
			return fmt.Errorf("%d of %d numbers are invalid", invalid, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkPhoneCmd)
}
