// Package cli wires the application together behind cobra commands.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "studiobridge",
	Short: "Bridge between Mindbody and AI assistant / web admin surfaces",
	Long: `StudioBridge connects a Mindbody-powered fitness studio to AI
assistants over MCP and to a JSON web administration API, with a local
sqlite mirror of the studio's core records.

Configuration comes from the environment: MINDBODY_API_KEY,
MINDBODY_SITE_ID, MINDBODY_SOURCE_NAME and MINDBODY_SOURCE_PASSWORD are
required.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
