package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage omdctl configuration profiles",
	}
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigUseCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadUserConfig()
			if err != nil {
				fmt.Printf("no config file at %s\n", ConfigPath())
				return nil
			}

			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, cfg)
			}

			rows := make([][]string, 0, len(cfg.Profiles))
			for name, p := range cfg.Profiles {
				current := ""
				if name == cfg.CurrentProfile {
					current = "*"
				}
				token := ""
				if p.Token != "" {
					token = "(set)"
				}
				rows = append(rows, []string{current, name, p.Host, token, p.Output})
			}
			printTable([]string{"", "PROFILE", "HOST", "TOKEN", "OUTPUT"}, rows)
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	var (
		host   string
		token  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "set <profile>",
		Short: "Create or update a configuration profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadUserConfig()
			if err != nil {
				cfg = &UserConfig{CurrentProfile: "default", Profiles: map[string]Profile{}}
			}

			p := cfg.Profiles[args[0]]
			if cmd.Flags().Changed("host") {
				p.Host = host
			}
			if cmd.Flags().Changed("token") {
				p.Token = token
			}
			if cmd.Flags().Changed("output") {
				if err := validateOutputFormat(output); err != nil {
					return err
				}
				p.Output = output
			}
			cfg.Profiles[args[0]] = p

			if err := SaveUserConfig(cfg); err != nil {
				return err
			}
			fmt.Printf("profile %q saved to %s\n", args[0], ConfigPath())
			return nil
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "API host URL")
	cmd.Flags().StringVar(&token, "token", "", "Bearer token")
	cmd.Flags().StringVar(&output, "output", "", "Default output format (table, json)")
	return cmd
}

func newConfigUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <profile>",
		Short: "Switch the current profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := LoadUserConfig()
			if err != nil {
				return fmt.Errorf("no config file: run 'omdctl config set %s' first", args[0])
			}
			if _, ok := cfg.Profiles[args[0]]; !ok {
				return fmt.Errorf("profile %q does not exist", args[0])
			}
			cfg.CurrentProfile = args[0]
			if err := SaveUserConfig(cfg); err != nil {
				return err
			}
			fmt.Printf("current profile is now %q\n", args[0])
			return nil
		},
	}
}
