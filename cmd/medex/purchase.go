// Purchase command: the settlement path.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var purchaseCmd = &cobra.Command{
	Use:   "purchase <record-id> <request-id>",
	Short: "Purchase a record against a research request",
	Long: `Purchase settles one record against one request: it validates consent,
availability, quality, price, and capacity, pays the owner from escrow net
of the platform fee, and writes an audit entry. The caller must be the
request's consumer.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		consumer, err := caller()
		if err != nil {
			return err
		}
		recordID, err := parseID(args[0])
		if err != nil {
			return err
		}
		requestID, err := parseID(args[1])
		if err != nil {
			return err
		}

		a, err := openApp(1)
		if err != nil {
			return err
		}
		defer a.close()

		price, err := a.eng.Purchase(consumer, recordID, requestID)
		if err != nil {
			return err
		}
		if err := a.commit(); err != nil {
			return err
		}

		return printResult(map[string]uint64{"price_paid": uint64(price)}, func() {
			fmt.Printf("record %d purchased for %d\n", recordID, price)
		})
	},
}
