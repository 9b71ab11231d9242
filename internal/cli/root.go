package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"foodprint/internal/core/ai/service"
	"foodprint/internal/core/estimate"
	"foodprint/internal/core/ingredient"
	"foodprint/internal/infrastructure/config"

	"github.com/spf13/cobra"
)

// DishEstimator 依菜名估算碳排
type DishEstimator interface {
	EstimateDish(ctx context.Context, dish string, servings float64) (*estimate.Result, error)
}

// EstimatorFactory 建立估算服務，回傳的 close 函式在命令結束時呼叫
type EstimatorFactory func(ctx context.Context) (DishEstimator, func(), error)

// NewRootCmd 建立 foodprint 根命令
func NewRootCmd(version string) *cobra.Command {
	return NewRootCmdWithFactory(version, defaultEstimatorFactory)
}

// NewRootCmdWithFactory 以指定的估算服務建立根命令，方便測試
func NewRootCmdWithFactory(version string, factory EstimatorFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "foodprint",
		Short:         "Estimate the carbon footprint of a meal",
		Long:          "foodprint: estimate kg CO2e for a dish from its likely ingredients and static emission factors",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewEstimateCmd(factory))
	cmd.AddCommand(NewFactorCmd())

	return cmd
}

func defaultEstimatorFactory(ctx context.Context) (DishEstimator, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	aiService, err := service.FromConfig(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	svc := estimate.NewService(ingredient.NewSource(aiService))
	return svc, func() { _ = aiService.Close() }, nil
}

// 輸出格式
const (
	outputTable = "table"
	outputJSON  = "json"
)

func validateOutput(output string) error {
	switch output {
	case outputTable, outputJSON:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (use table or json)", output)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
