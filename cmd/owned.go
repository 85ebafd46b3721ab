package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// runListOwned prints the sorted names of all owned games, including played
// free games. Private profiles list nothing.
func runListOwned(cmd *cobra.Command, account string) error {
	a, err := newApp("")
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	steamID, err := a.service.ResolveAccount(ctx, account)
	if err != nil {
		return err
	}

	names, err := a.service.Owned(ctx, steamID)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nOwned Games for %s:\n", steamID)
	fmt.Fprintln(out, strings.Repeat("-", 50))
	for _, name := range names {
		fmt.Fprintln(out, name)
	}
	fmt.Fprintf(out, "\nTotal: %d\n", len(names))
	return nil
}
