// Get command: read accessors for every entity kind.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/helixgrid/medex/pkg/types"
)

var getCmd = &cobra.Command{
	Use:   "get <kind> <args...>",
	Short: "Get an entity",
	Long: `Get retrieves one entity. Kinds and their arguments:

  record <id>
  request <id>
  grant <owner> <category>
  assessment <record-id>
  usage <record-id> <request-id>
  owner <account>
  consumer <account>

Example:
  medex get record 1
  medex get grant alice ehr`,
	Args: cobra.MinimumNArgs(2),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	a, err := openApp(0)
	if err != nil {
		return err
	}
	defer a.close()

	kind := args[0]
	rest := args[1:]

	switch kind {
	case "record":
		id, err := parseID(rest[0])
		if err != nil {
			return err
		}
		record, ok := a.eng.Record(id)
		if !ok {
			return fmt.Errorf("record %d: %w", id, types.ErrNotFound)
		}
		return printEntity(record)

	case "request":
		id, err := parseID(rest[0])
		if err != nil {
			return err
		}
		request, ok := a.eng.Request(id)
		if !ok {
			return fmt.Errorf("request %d: %w", id, types.ErrNotFound)
		}
		return printEntity(request)

	case "grant":
		if len(rest) < 2 {
			return fmt.Errorf("usage: get grant <owner> <category>")
		}
		category, err := parseCategory(rest[1])
		if err != nil {
			return err
		}
		grant, ok := a.eng.Grant(types.AccountID(rest[0]), category)
		if !ok {
			return fmt.Errorf("grant %s/%s: %w", rest[0], category, types.ErrNotFound)
		}
		return printEntity(grant)

	case "assessment":
		id, err := parseID(rest[0])
		if err != nil {
			return err
		}
		assessment, ok := a.eng.Assessment(id)
		if !ok {
			return fmt.Errorf("assessment for record %d: %w", id, types.ErrNotFound)
		}
		return printEntity(assessment)

	case "usage":
		if len(rest) < 2 {
			return fmt.Errorf("usage: get usage <record-id> <request-id>")
		}
		recordID, err := parseID(rest[0])
		if err != nil {
			return err
		}
		requestID, err := parseID(rest[1])
		if err != nil {
			return err
		}
		entry, ok := a.eng.UsageEntry(recordID, requestID)
		if !ok {
			return fmt.Errorf("usage entry %d/%d: %w", recordID, requestID, types.ErrNotFound)
		}
		return printEntity(entry)

	case "owner":
		profile, ok := a.eng.OwnerProfile(types.AccountID(rest[0]))
		if !ok {
			return fmt.Errorf("owner profile %s: %w", rest[0], types.ErrNotFound)
		}
		return printEntity(profile)

	case "consumer":
		profile, ok := a.eng.ConsumerProfile(types.AccountID(rest[0]))
		if !ok {
			return fmt.Errorf("consumer profile %s: %w", rest[0], types.ErrNotFound)
		}
		return printEntity(profile)

	default:
		return fmt.Errorf("unknown kind %q (valid: record, request, grant, assessment, usage, owner, consumer)", kind)
	}
}

// printEntity renders an entity as indented JSON regardless of --json; the
// read surface has no meaningful plain form.
func printEntity(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}
