package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(loginCmd)
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Tests the configured credentials.",
	Run: func(cmd *cobra.Command, args []string) {
		result := requireLogin(cmd.Context())
		if jsonOutput {
			fmt.Printf(`{"status":"success","verified":%t}`+"\n", result.Verified)
			return
		}
		fmt.Println("logged in to institution", app.cfg.Institution, "verified:", result.Verified)
	},
}
