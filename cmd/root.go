package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"steam-checker/core/logger"
	"steam-checker/feature/ownership"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ErrUsage is returned when a command receives the wrong number of arguments.
var ErrUsage = errors.New("invalid arguments")

// usageError carries the usage line printed before exiting.
type usageError struct {
	usage string
}

func (e *usageError) Error() string { return e.usage }

func (e *usageError) Unwrap() error { return ErrUsage }

const (
	checkUsage     = "Usage: steam-checker <games_file> <steam_id_or_custom_url>"
	resolveUsage   = "Usage: steam-checker --resolve <custom_url>"
	listOwnedUsage = "Usage: steam-checker --list-owned <steam_id_or_custom_url>"
)

var (
	resolveFlag   bool
	listOwnedFlag bool
)

// validateArgs picks the arity from the mode flags: one account argument for
// --resolve and --list-owned, otherwise a games file and an account.
func validateArgs(cmd *cobra.Command, args []string) error {
	switch {
	case resolveFlag && listOwnedFlag:
		return &usageError{usage: resolveUsage + "\n" + listOwnedUsage}
	case resolveFlag:
		if len(args) != 1 {
			return &usageError{usage: resolveUsage}
		}
	case listOwnedFlag:
		if len(args) != 1 {
			return &usageError{usage: listOwnedUsage}
		}
	default:
		if len(args) != 2 {
			return &usageError{usage: checkUsage}
		}
	}
	return nil
}

// RootCmd checks a games list against the library of a Steam account.
var RootCmd = &cobra.Command{
	Use:   "steam-checker <games_file> <steam_id_or_custom_url>",
	Short: "Check which games from a list a Steam account owns",
	Long: `Steam Checker reads a newline-delimited list of game titles and reports
which of them are in the library of a Steam account.

The account is either a SteamID64 or a custom profile URL name, which is
resolved through the Steam Web API. The games list is a local file or an
s3://<bucket>/<key> object. STEAM_API_KEY must be set in the environment or
in a .env file.

--resolve prints the SteamID64 of a custom URL and --list-owned prints the
whole library of an account; both take the account as their only argument.`,
	Args:          validateArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		switch {
		case resolveFlag:
			return runResolve(cmd, args[0])
		case listOwnedFlag:
			return runListOwned(cmd, args[0])
		}

		gamesFile, account := args[0], args[1]

		a, err := newApp(gamesFile)
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

		report, err := a.service.Check(ctx, gamesFile, steamID)
		if errors.Is(err, ownership.ErrGamesFileNotFound) {
			// Reported, but not a failure of the run.
			a.logger.Warn("Games file not found", zap.String("file", gamesFile))
			fmt.Fprintf(out, "Error: Games file '%s' not found\n", gamesFile)
			return nil
		}
		if err != nil {
			return err
		}

		return report.Print(out)
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RootCmd.ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}

	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprintln(RootCmd.OutOrStdout(), uerr.usage)
		os.Exit(1)
	}

	// Console format with the development config gives readable ISO8601 timestamps.
	cfg := &logger.Config{
		Level:  "debug",
		Format: "console",
	}

	l, logErr := logger.New(cfg)
	if logErr == nil {
		l.Error("command failed", zap.Error(err))
		_ = l.Sync()
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
}

func init() {
	RootCmd.CompletionOptions.DisableDefaultCmd = true

	RootCmd.Flags().BoolVar(&resolveFlag, "resolve", false, "Only resolve a custom URL to a SteamID64")
	RootCmd.Flags().BoolVar(&listOwnedFlag, "list-owned", false, "List every game owned by the account")
}
