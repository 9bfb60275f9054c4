// Governance commands: pause and unpause.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause all state-mutating operations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		operator, err := caller()
		if err != nil {
			return err
		}

		a, err := openApp(1)
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.eng.Pause(operator); err != nil {
			return err
		}
		if err := a.commit(); err != nil {
			return err
		}

		return printResult(map[string]bool{"paused": true}, func() {
			fmt.Println("system paused")
		})
	},
}

var unpauseCmd = &cobra.Command{
	Use:   "unpause",
	Short: "Resume state-mutating operations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		operator, err := caller()
		if err != nil {
			return err
		}

		a, err := openApp(1)
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.eng.Unpause(operator); err != nil {
			return err
		}
		if err := a.commit(); err != nil {
			return err
		}

		return printResult(map[string]bool{"paused": false}, func() {
			fmt.Println("system unpaused")
		})
	},
}
