// List command: iteration accessors for the CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/helixgrid/medex/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list <kind> <arg>",
	Short: "List entities",
	Long: `List enumerates entities. Kinds and their arguments:

  records <category>
  grants <owner>
  requests <consumer>

Example:
  medex list records ehr
  medex list requests bob`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(0)
		if err != nil {
			return err
		}
		defer a.close()

		switch args[0] {
		case "records":
			category, err := parseCategory(args[1])
			if err != nil {
				return err
			}
			return printEntity(a.eng.RecordsByCategory(category))
		case "grants":
			return printEntity(a.eng.GrantsByOwner(types.AccountID(args[1])))
		case "requests":
			return printEntity(a.eng.RequestsByConsumer(types.AccountID(args[1])))
		default:
			return fmt.Errorf("unknown kind %q (valid: records, grants, requests)", args[0])
		}
	},
}
