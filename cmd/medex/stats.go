// Stats, estimate, deposit, balance, and advance commands.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/helixgrid/medex/pkg/engine"
	"github.com/helixgrid/medex/pkg/types"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print platform-wide aggregates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(0)
		if err != nil {
			return err
		}
		defer a.close()

		stats := a.eng.Stats()
		return printResult(stats, func() {
			fmt.Printf("records: %d\nrequests: %d\ndistributed: %d\nrevenue: %d\npaused: %v\n",
				stats.Records, stats.Requests, stats.TotalDistributed, stats.PlatformRevenue, stats.Paused)
		})
	},
}

var estimateCmd = &cobra.Command{
	Use:   "estimate <category> <quality> <usage>",
	Short: "Project net earnings for a hypothetical record",
	Long: `Estimate projects an owner's net proceeds from the category base-price
table: base price scaled by quality, times usage, minus the platform fee.
No engine state is read.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := parseCategory(args[0])
		if err != nil {
			return err
		}
		quality, err := parseScore(args[1])
		if err != nil {
			return err
		}
		usage, err := parseID(args[2])
		if err != nil {
			return err
		}

		estimate, err := engine.EstimateEarnings(category, quality, uint32(usage))
		if err != nil {
			return err
		}
		return printResult(map[string]uint64{"estimated_earnings": uint64(estimate)}, func() {
			fmt.Printf("estimated earnings: %d\n", estimate)
		})
	},
}

var depositCmd = &cobra.Command{
	Use:   "deposit <amount>",
	Short: "Credit the caller's ledger account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		account, err := caller()
		if err != nil {
			return err
		}
		amount, err := parseMoney(args[0])
		if err != nil {
			return err
		}

		a, err := openApp(1)
		if err != nil {
			return err
		}
		defer a.close()

		a.bank.Deposit(account, amount)
		if err := a.commit(); err != nil {
			return err
		}

		return printResult(map[string]uint64{"balance": uint64(a.bank.Balance(account))}, func() {
			fmt.Printf("balance of %s: %d\n", account, a.bank.Balance(account))
		})
	},
}

var balanceCmd = &cobra.Command{
	Use:   "balance <account>",
	Short: "Print a ledger account balance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(0)
		if err != nil {
			return err
		}
		defer a.close()

		balance := a.bank.Balance(types.AccountID(args[0]))
		return printResult(map[string]uint64{"balance": uint64(balance)}, func() {
			fmt.Printf("balance of %s: %d\n", args[0], balance)
		})
	},
}

var advanceCmd = &cobra.Command{
	Use:   "advance <blocks>",
	Short: "Advance the stored chain height",
	Long: `Advance moves the CLI's stand-in block clock forward, letting consent
and request expiry windows lapse without real chain time.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		blocks, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, err := openApp(0)
		if err != nil {
			return err
		}
		defer a.close()

		a.clock.Advance(blocks)
		if err := a.backend.SetHeight(a.clock.H); err != nil {
			return err
		}

		return printResult(map[string]uint64{"height": a.clock.H}, func() {
			fmt.Printf("height: %d\n", a.clock.H)
		})
	},
}
