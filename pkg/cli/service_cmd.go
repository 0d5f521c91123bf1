package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newCreateServiceCmd(client *Client) *cobra.Command {
	var (
		serviceType string
		description string
		displayName string
		connection  []string
		tags        []string
		owners      []string
	)

	cmd := &cobra.Command{
		Use:   "create-service <name>",
		Short: "Register a database service in OpenMetadata",
		Long: `Register a database service in OpenMetadata.

Connection settings are passed as repeated key=value pairs:

  omdctl create-service mysql_prod --type MySQL \
    --connection hostPort=db:3306 --connection username=reader`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn := map[string]any{}
			for _, kv := range connection {
				key, value, ok := strings.Cut(kv, "=")
				if !ok {
					return fmt.Errorf("invalid --connection value %q: expected key=value", kv)
				}
				conn[key] = value
			}

			ownerRefs := make([]map[string]string, 0, len(owners))
			for _, o := range owners {
				name, typ, ok := strings.Cut(o, ":")
				if !ok {
					return fmt.Errorf("invalid --owner value %q: expected name:type", o)
				}
				ownerRefs = append(ownerRefs, map[string]string{"name": name, "type": typ})
			}

			body := map[string]any{
				"name":        args[0],
				"serviceType": serviceType,
				"connection":  conn,
			}
			if description != "" {
				body["description"] = description
			}
			if displayName != "" {
				body["displayName"] = displayName
			}
			if len(tags) > 0 {
				body["tags"] = tags
			}
			if len(ownerRefs) > 0 {
				body["owners"] = ownerRefs
			}

			var res struct {
				Message string `json:"message"`
			}
			if err := client.Post("/service", body, &res); err != nil {
				return err
			}

			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, map[string]any{"message": res.Message})
			}
			fmt.Println(res.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&serviceType, "type", "", "Service type (MySQL, PostgreSQL, ...)")
	cmd.Flags().StringVar(&description, "description", "", "Service description")
	cmd.Flags().StringVar(&displayName, "display-name", "", "Display name")
	cmd.Flags().StringArrayVar(&connection, "connection", nil, "Connection setting as key=value (repeatable)")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Tag FQN to attach (repeatable)")
	cmd.Flags().StringArrayVar(&owners, "owner", nil, "Owner as name:type (repeatable)")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}
