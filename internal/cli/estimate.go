package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"foodprint/internal/core/emission"
	"foodprint/internal/core/estimate"

	"github.com/spf13/cobra"
)

// EstimateParams estimate 命令參數
type EstimateParams struct {
	Servings float64
	File     string
	Dish     string
	Output   string
}

// NewEstimateCmd 建立 estimate 子命令
func NewEstimateCmd(factory EstimatorFactory) *cobra.Command {
	var params EstimateParams

	cmd := &cobra.Command{
		Use:   "estimate [dish]",
		Short: "Estimate kg CO2e for a dish or an ingredient list",
		Long: `Estimate the carbon footprint of a meal.

With a dish name the configured model infers the ingredients; without an API key
a fixed fallback list is used. With --file the ingredient list is read from a JSON
file (array or {"ingredients": [...]}) and no model is called.`,
		Example: `  foodprint estimate "chicken biryani" --servings 2
  foodprint estimate --file ingredients.json --dish "my salad" --output json`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(params.Output); err != nil {
				return err
			}

			if params.File != "" {
				data, err := os.ReadFile(params.File)
				if err != nil {
					return fmt.Errorf("read ingredient file: %w", err)
				}
				dish := params.Dish
				if dish == "" {
					dish = strings.TrimSpace(strings.Join(args, " "))
				}
				res := estimate.FromRawList(dish, string(data), params.Servings)
				return renderResult(cmd.OutOrStdout(), res, params.Output)
			}

			dish := strings.TrimSpace(strings.Join(args, " "))
			if dish == "" {
				return fmt.Errorf("a dish name or --file is required")
			}

			svc, closeFn, err := factory(cmd.Context())
			if err != nil {
				return err
			}
			if closeFn != nil {
				defer closeFn()
			}

			res, err := svc.EstimateDish(cmd.Context(), dish, params.Servings)
			if err != nil {
				return err
			}
			return renderResult(cmd.OutOrStdout(), res, params.Output)
		},
	}

	cmd.Flags().Float64VarP(&params.Servings, "servings", "s", 1, "number of servings (1-25)")
	cmd.Flags().StringVarP(&params.File, "file", "f", "", "JSON ingredient list to estimate without inference")
	cmd.Flags().StringVar(&params.Dish, "dish", "", "dish label used with --file")
	cmd.Flags().StringVarP(&params.Output, "output", "o", outputTable, "output format: table or json")

	return cmd
}

func renderResult(w io.Writer, res *estimate.Result, output string) error {
	if output == outputJSON {
		return writeJSON(w, res)
	}

	dish := res.Dish
	if dish == "" {
		dish = "-"
	}
	fmt.Fprintf(w, "Dish: %s\nServings: %d\n\n", dish, res.Servings)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "INGREDIENT\tFACTOR\tCARBON (KG)")
	for _, item := range res.Ingredients {
		fmt.Fprintf(tw, "%s\t%.2f\t%.3f\n", item.Name, emission.ResolveFactor(item.Name), item.CarbonKg)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nTotal: %.3f kg CO2e\n", res.EstimatedCarbonKg)
	if eq := res.Equivalents; eq != nil {
		fmt.Fprintf(w, "About %.1f miles driven or %.0f smartphone charges\n", eq.MilesDriven, eq.SmartphonesCharged)
	}
	return nil
}
