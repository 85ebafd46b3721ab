package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// runResolve prints the SteamID64 for account.
func runResolve(cmd *cobra.Command, account string) error {
	a, err := newApp("")
	if err != nil {
		return err
	}
	defer a.Close()

	steamID, err := a.service.ResolveAccount(cmd.Context(), account)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), steamID)
	return nil
}
