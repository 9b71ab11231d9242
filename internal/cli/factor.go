package cli

import (
	"fmt"
	"text/tabwriter"

	"foodprint/internal/core/emission"

	"github.com/spf13/cobra"
)

// NewFactorCmd 建立 factor 子命令，顯示名稱如何對應到排放係數
func NewFactorCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "factor <name>...",
		Short:   "Show the emission factor resolved for ingredient names",
		Example: `  foodprint factor "chicken thigh" ghee "dragon fruit"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			matches := make([]emission.Match, 0, len(args))
			for _, name := range args {
				matches = append(matches, emission.Resolve(name))
			}

			if output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), matches)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tFACTOR\tMATCHED BY\tRULE")
			for _, m := range matches {
				rule := m.Rule
				if rule == "" {
					rule = "-"
				}
				fmt.Fprintf(tw, "%s\t%.2f\t%s\t%s\n", m.Name, m.Factor, m.MatchedBy, rule)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table or json")

	return cmd
}
