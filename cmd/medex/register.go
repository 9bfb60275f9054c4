// Register and assess commands for data records.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagMetadata string

var registerCmd = &cobra.Command{
	Use:   "register <category> <fingerprint> <price>",
	Short: "List a new data record",
	Long: `Register lists a priced asset for the caller. The caller must hold a
live consent grant for the category; the record starts unassessed and
unavailable until a quality assessment clears the availability threshold.

Example:
  medex --as alice register ehr 9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08 10000000`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, err := caller()
		if err != nil {
			return err
		}
		category, err := parseCategory(args[0])
		if err != nil {
			return err
		}
		price, err := parseMoney(args[2])
		if err != nil {
			return err
		}

		a, err := openApp(1)
		if err != nil {
			return err
		}
		defer a.close()

		id, err := a.eng.Register(owner, category, args[1], price, flagMetadata)
		if err != nil {
			return err
		}
		if err := a.commit(); err != nil {
			return err
		}

		return printResult(map[string]uint64{"record_id": id}, func() {
			fmt.Printf("record %d registered\n", id)
		})
	},
}

var flagNotes string

var assessCmd = &cobra.Command{
	Use:   "assess <record-id> <completeness> <accuracy> <timeliness> <consistency>",
	Short: "Submit a quality assessment for a record",
	Long: `Assess scores a record on four quality dimensions (0-100 each). The
final score is their truncated mean; the record becomes available exactly
when the final score reaches the quality threshold. Restricted to the
platform operator.`,
	Args: cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		assessor, err := caller()
		if err != nil {
			return err
		}
		recordID, err := parseID(args[0])
		if err != nil {
			return err
		}
		scores := make([]uint8, 4)
		for i, arg := range args[1:] {
			if scores[i], err = parseScore(arg); err != nil {
				return err
			}
		}

		a, err := openApp(1)
		if err != nil {
			return err
		}
		defer a.close()

		final, err := a.eng.Assess(assessor, recordID, scores[0], scores[1], scores[2], scores[3], flagNotes)
		if err != nil {
			return err
		}
		if err := a.commit(); err != nil {
			return err
		}

		return printResult(map[string]uint8{"final_score": final}, func() {
			fmt.Printf("record %d assessed: final score %d\n", recordID, final)
		})
	},
}

func init() {
	registerCmd.Flags().StringVar(&flagMetadata, "metadata", "", "free-form record metadata")
	assessCmd.Flags().StringVar(&flagNotes, "notes", "", "assessment notes")
}
