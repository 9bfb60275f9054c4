// Consent commands: grant and revoke.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagPurposes   []string
	flagGeo        []string
	flagReidentify bool
)

var grantCmd = &cobra.Command{
	Use:   "grant <category>",
	Short: "Grant consent for a data category",
	Long: `Grant records a consent grant for the caller and category, valid for a
fixed block window. Any prior grant for the pair is fully replaced.

Example:
  medex --as alice grant ehr --purpose oncology --geo EU`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, err := caller()
		if err != nil {
			return err
		}
		category, err := parseCategory(args[0])
		if err != nil {
			return err
		}

		a, err := openApp(1)
		if err != nil {
			return err
		}
		defer a.close()

		expiresAt, err := a.eng.GrantConsent(owner, category, flagPurposes, flagGeo, flagReidentify)
		if err != nil {
			return err
		}
		if err := a.commit(); err != nil {
			return err
		}

		return printResult(map[string]uint64{"expires_at": expiresAt}, func() {
			fmt.Printf("consent granted for %s/%s, expires at height %d\n", owner, category, expiresAt)
		})
	},
}

var revokeCmd = &cobra.Command{
	Use:   "revoke <category>",
	Short: "Revoke consent for a data category",
	Long: `Revoke withdraws the caller's consent grant with immediate effect.
Prior purchases stand; new registrations and purchases stop authorizing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, err := caller()
		if err != nil {
			return err
		}
		category, err := parseCategory(args[0])
		if err != nil {
			return err
		}

		a, err := openApp(1)
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.eng.RevokeConsent(owner, category); err != nil {
			return err
		}
		if err := a.commit(); err != nil {
			return err
		}

		return printResult(map[string]string{"revoked": string(category)}, func() {
			fmt.Printf("consent revoked for %s/%s\n", owner, category)
		})
	},
}

func init() {
	grantCmd.Flags().StringArrayVar(&flagPurposes, "purpose", nil, "permitted research purpose (repeatable)")
	grantCmd.Flags().StringArrayVar(&flagGeo, "geo", nil, "permitted geography (repeatable)")
	grantCmd.Flags().BoolVar(&flagReidentify, "allow-reidentify", false, "permit re-identification")
}
