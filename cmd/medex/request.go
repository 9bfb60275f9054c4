// Research request commands: open and cancel.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/helixgrid/medex/pkg/types"
)

var (
	flagTitle       string
	flagDescription string
	flagPurpose     string
	flagInstitution string
	flagApprovalRef string
	flagCategories  []string
	flagMaxPrice    uint64
	flagMinQuality  uint8
	flagMaxRecords  uint32
	flagExpiry      uint64
	flagBudget      uint64
)

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open a funded research request",
	Long: `Open creates a research request and moves the full budget into escrow
before any state is persisted. The budget must cover max-records purchases
at the maximum per-record price.

Example:
  medex --as bob open --title "Chemo outcomes" --category ehr \
      --max-price 10000000 --min-quality 60 --max-records 1 --budget 10000000`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		consumer, err := caller()
		if err != nil {
			return err
		}

		categories := make([]types.Category, 0, len(flagCategories))
		for _, arg := range flagCategories {
			c, err := parseCategory(arg)
			if err != nil {
				return err
			}
			categories = append(categories, c)
		}

		a, err := openApp(1)
		if err != nil {
			return err
		}
		defer a.close()

		draft := types.ResearchRequest{
			Title:             flagTitle,
			Description:       flagDescription,
			Purpose:           flagPurpose,
			Institution:       flagInstitution,
			ApprovalRef:       flagApprovalRef,
			Categories:        categories,
			MaxPricePerRecord: types.Money(flagMaxPrice),
			MinQuality:        flagMinQuality,
			MaxRecords:        flagMaxRecords,
		}
		if flagExpiry > 0 {
			draft.ExpiresAt = a.clock.H + flagExpiry
		}

		id, err := a.eng.OpenRequest(consumer, draft, types.Money(flagBudget))
		if err != nil {
			return err
		}
		if err := a.commit(); err != nil {
			return err
		}

		return printResult(map[string]uint64{"request_id": id}, func() {
			fmt.Printf("request %d opened, %d escrowed\n", id, flagBudget)
		})
	},
}

var cancelCmd = &cobra.Command{
	Use:   "cancel <request-id>",
	Short: "Cancel an active research request",
	Long: `Cancel moves an active request to cancelled and refunds the unspent
escrow remainder to the caller. Only the request's consumer may cancel.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		consumer, err := caller()
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, err := openApp(1)
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.eng.CancelRequest(consumer, id); err != nil {
			return err
		}
		if err := a.commit(); err != nil {
			return err
		}

		return printResult(map[string]uint64{"cancelled": id}, func() {
			fmt.Printf("request %d cancelled\n", id)
		})
	},
}

func init() {
	openCmd.Flags().StringVar(&flagTitle, "title", "", "request title (required)")
	openCmd.Flags().StringVar(&flagDescription, "description", "", "request description")
	openCmd.Flags().StringVar(&flagPurpose, "purpose", "", "research purpose")
	openCmd.Flags().StringVar(&flagInstitution, "institution", "", "requesting institution")
	openCmd.Flags().StringVar(&flagApprovalRef, "approval-ref", "", "ethics approval reference")
	openCmd.Flags().StringArrayVar(&flagCategories, "category", nil, "needed category (repeatable, required)")
	openCmd.Flags().Uint64Var(&flagMaxPrice, "max-price", 0, "maximum price per record")
	openCmd.Flags().Uint8Var(&flagMinQuality, "min-quality", types.QualityThreshold, "minimum acceptable quality score")
	openCmd.Flags().Uint32Var(&flagMaxRecords, "max-records", 1, "maximum records to purchase")
	openCmd.Flags().Uint64Var(&flagExpiry, "expiry-blocks", 0, "request validity window in blocks (default: platform default)")
	openCmd.Flags().Uint64Var(&flagBudget, "budget", 0, "budget to escrow")
}
