package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tradelog/internal/journal"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print journal statistics",
}

var statsOverallCmd = &cobra.Command{
	Use:   "overall",
	Short: "Statistics over manual month records",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(func(s journalServices) error {
			stats, err := s.stats.GetOverallStats(userID)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), stats, func(w io.Writer) { printOverall(w, *stats) })
		})
	},
}

var statsCombinedCmd = &cobra.Command{
	Use:   "combined",
	Short: "Statistics with trade P&L replacing the months trades cover",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(func(s journalServices) error {
			stats, err := s.stats.GetCombinedStats(userID)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), stats, func(w io.Writer) { printCombined(w, *stats) })
		})
	},
}

var statsTradesCmd = &cobra.Command{
	Use:   "trades",
	Short: "Statistics over closed trades",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(func(s journalServices) error {
			stats, err := s.stats.GetTradeStats(userID)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), stats, func(w io.Writer) { printTradeStats(w, *stats) })
		})
	},
}

var statsYearlyCmd = &cobra.Command{
	Use:   "yearly",
	Short: "Month statistics per calendar year",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(func(s journalServices) error {
			years, err := s.stats.GetYearlyStats(userID)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), years, func(w io.Writer) { printYearly(w, years) })
		})
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.AddCommand(statsOverallCmd, statsCombinedCmd, statsTradesCmd, statsYearlyCmd)

	statsCmd.PersistentFlags().BoolVar(&statsJSON, "json", false, "print JSON instead of a table")
}

func render(out io.Writer, v any, table func(io.Writer)) error {
	if statsJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	table(tw)
	return tw.Flush()
}

func printOverall(w io.Writer, s journal.OverallStats) {
	fmt.Fprintf(w, "Total P&L\t%.2f\n", s.TotalProfitLoss)
	fmt.Fprintf(w, "Months\t%d (%d up, %d down)\n", s.TotalMonths, s.ProfitableMonths, s.LosingMonths)
	fmt.Fprintf(w, "Win rate\t%.2f%%\n", s.WinRate)
	fmt.Fprintf(w, "Average return\t%.2f%%\n", s.AverageReturn)
	fmt.Fprintf(w, "Profit factor\t%s\n", s.ProfitFactor)
	fmt.Fprintf(w, "Best month\t%s\n", monthLabel(s.BestMonth))
	fmt.Fprintf(w, "Worst month\t%s\n", monthLabel(s.WorstMonth))
}

func printCombined(w io.Writer, s journal.CombinedStats) {
	printOverall(w, s.OverallStats)
	fmt.Fprintf(w, "Trade P&L\t%.2f\n", s.TradeTotalPnL)
	fmt.Fprintf(w, "Trade months\t%d\n", len(s.TradeMonths))
}

func printTradeStats(w io.Writer, s journal.TradeStats) {
	fmt.Fprintf(w, "Trades\t%d (%d won, %d lost, %d even)\n", s.TotalTrades, s.WinningTrades, s.LosingTrades, s.BreakEvenTrades)
	fmt.Fprintf(w, "Total P&L\t%.2f\n", s.TotalPnL)
	fmt.Fprintf(w, "Win rate\t%.2f%%\n", s.WinRate)
	fmt.Fprintf(w, "Avg win / loss\t%.2f / %.2f\n", s.AvgWin, s.AvgLoss)
	fmt.Fprintf(w, "Profit factor\t%s\n", s.ProfitFactor)
	fmt.Fprintf(w, "Current streak\t%d\n", s.CurrentStreak)
	fmt.Fprintf(w, "Longest streaks\t%d won / %d lost\n", s.LongestWinStreak, s.LongestLoseStreak)
}

func printYearly(w io.Writer, years []journal.YearSummary) {
	fmt.Fprintln(w, "Year\tMonths\tP&L\tWin rate\tProfit factor")
	for _, y := range years {
		fmt.Fprintf(w, "%d\t%d\t%.2f\t%.2f%%\t%s\n",
			y.Year, y.Stats.TotalMonths, y.Stats.TotalProfitLoss, y.Stats.WinRate, y.Stats.ProfitFactor)
	}
}

func monthLabel(m *journal.MonthRecord) string {
	if m == nil {
		return "-"
	}
	return fmt.Sprintf("%s (%.2f)", m.Month, m.NetProfitLoss)
}
