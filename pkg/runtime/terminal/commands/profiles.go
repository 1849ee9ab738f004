package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewProfilesCmd(s Session) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the configured cost API endpoints",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profiles, err := s.Profiles(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(profiles) == 0 {
				fmt.Fprintln(out, "No profiles found")
				return nil
			}
			for _, p := range profiles {
				currency := p.Currency
				if currency == "" {
					currency = "-"
				}
				fmt.Fprintf(out, "%s\t%s\t%s\n", p.Name, p.URL, currency)
			}
			return nil
		},
	}
}
