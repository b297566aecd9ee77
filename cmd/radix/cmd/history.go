package cmd

import (
	"fmt"

	"github.com/corey/radix/internal/app"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent queries",
	Long:  "Lists successfully converted queries, newest first.",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded queries",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Maximum entries to show (default: all kept)")
	historyCmd.AddCommand(historyClearCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	history, err := openHistory()
	if err != nil {
		return err
	}
	defer history.Close()

	entries, err := history.Recent(historyLimit)
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}

	if format == app.OutputAlfred {
		return render(cmd.OutOrStdout(), format, historyRecords(entries))
	}
	fmt.Fprint(cmd.OutOrStdout(), formatHistory(entries))
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	history, err := openHistory()
	if err != nil {
		return err
	}
	defer history.Close()

	if err := history.Clear(); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "⚡ history cleared")
	return nil
}
