package cli

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func newMetadataCmd(client *Client) *cobra.Command {
	var (
		sampleData bool
		profiles   bool
		lineage    bool
	)

	cmd := &cobra.Command{
		Use:   "metadata <service>",
		Short: "Extract the full metadata tree for a database service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			if sampleData {
				q.Set("include_sample_data", "true")
			}
			if profiles {
				q.Set("include_table_profiles", "true")
			}
			if lineage {
				q.Set("include_lineage", "true")
			}

			var md map[string]any
			if err := client.Get("/service/"+url.PathEscape(args[0])+"/metadata", q, &md); err != nil {
				return err
			}

			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, md)
			}

			summary, _ := md["summary"].(map[string]any)
			count := func(key string) string {
				if n, ok := summary[key].(float64); ok {
					return strconv.Itoa(int(n))
				}
				return "0"
			}
			printTable(
				[]string{"DATABASES", "SCHEMAS", "TABLES", "COLUMNS", "VIEWS", "OWNERS", "TAGS"},
				[][]string{{
					count("total_databases"), count("total_schemas"), count("total_tables"),
					count("total_columns"), count("total_views"), count("total_owners"),
					count("total_tags"),
				}},
			)
			if ts, ok := summary["data_extraction_timestamp"].(string); ok {
				fmt.Printf("\nextracted at %s\n", ts)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&sampleData, "sample-data", false, "Include table sample data")
	cmd.Flags().BoolVar(&profiles, "profiles", false, "Include table profiling data")
	cmd.Flags().BoolVar(&lineage, "lineage", false, "Include lineage information")
	return cmd
}
