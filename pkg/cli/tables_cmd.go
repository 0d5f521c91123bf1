package cli

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func newTablesCmd(client *Client) *cobra.Command {
	var (
		database  string
		schema    string
		noColumns bool
	)

	cmd := &cobra.Command{
		Use:   "tables <service>",
		Short: "List tables for a database service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			if database != "" {
				q.Set("database_name", database)
			}
			if schema != "" {
				q.Set("schema_name", schema)
			}
			if noColumns {
				q.Set("include_columns", "false")
			}

			var res map[string]any
			if err := client.Get("/service/"+url.PathEscape(args[0])+"/tables", q, &res); err != nil {
				return err
			}

			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, res)
			}

			tables, _ := res["tables"].([]any)
			rows := make([][]string, 0, len(tables))
			for _, item := range tables {
				tbl, ok := item.(map[string]any)
				if !ok {
					continue
				}
				name, _ := tbl["name"].(string)
				fqn, _ := tbl["fullyQualifiedName"].(string)
				tableType, _ := tbl["tableType"].(string)
				if tableType == "" {
					tableType = "-"
				}
				cols := "0"
				if n, ok := tbl["column_count"].(float64); ok {
					cols = strconv.Itoa(int(n))
				}
				rows = append(rows, []string{name, tableType, cols, fqn})
			}
			printTable([]string{"NAME", "TYPE", "COLUMNS", "FQN"}, rows)
			if n, ok := res["count"].(float64); ok {
				fmt.Printf("\n%d table(s)\n", int(n))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&database, "database", "", "Filter by database name")
	cmd.Flags().StringVar(&schema, "schema", "", "Filter by schema name (with --database)")
	cmd.Flags().BoolVar(&noColumns, "no-columns", false, "Omit column details")
	return cmd
}
