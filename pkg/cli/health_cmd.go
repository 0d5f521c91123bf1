package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newHealthCmd(client *Client) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the facade's connection to OpenMetadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var status map[string]any
			if err := client.Get("/health", nil, &status); err != nil {
				return err
			}

			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, status)
			}

			healthy, _ := status["openmetadata_healthy"].(bool)
			msg, _ := status["message"].(string)
			version := "unknown"
			if info, ok := status["server_info"].(map[string]any); ok {
				if v, ok := info["version"].(string); ok {
					version = v
				}
			}
			printTable(
				[]string{"HEALTHY", "SERVER VERSION", "MESSAGE"},
				[][]string{{fmt.Sprintf("%t", healthy), version, msg}},
			)
			if ts, ok := status["troubleshooting"].(map[string]any); ok {
				fmt.Println()
				for _, hint := range ts {
					fmt.Printf("  - %v\n", hint)
				}
			}
			return nil
		},
	}
}
