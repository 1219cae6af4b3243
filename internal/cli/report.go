package cli

import (
	"fmt"
	"strings"

	"BikeShare/internal/config"
	"BikeShare/internal/dataset"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the statistics for one selection without prompting",
		Run:   runReport,
	}

	cmd.Flags().String("city", "", "City: chicago, new york city, washington (required)")
	cmd.Flags().StringP("month", "m", config.AllMonths, "Month name or \"all\"")
	cmd.Flags().Int("day", config.AllDays, "Day of week 1-7 (Monday-Sunday), 0 for all")

	cmd.MarkFlagRequired("city")

	RootCmd.AddCommand(cmd)
}

func runReport(cmd *cobra.Command, args []string) {
	city, _ := cmd.Flags().GetString("city")
	month, _ := cmd.Flags().GetString("month")
	day, _ := cmd.Flags().GetInt("day")

	sel, err := selectionFromFlags(city, month, day)
	if err != nil {
		exitErr("report", err)
	}

	e := openExplorer(cmd)
	defer e.Close()

	if err := e.RunOnce(cmd.Context(), sel); err != nil {
		e.Close()
		exitErr("report", err)
	}
}

// selectionFromFlags applies the same vocabulary checks as the prompts
func selectionFromFlags(city, month string, day int) (dataset.Selection, error) {
	city = strings.ToLower(strings.TrimSpace(city))
	month = strings.ToLower(strings.TrimSpace(month))

	if !config.IsCity(city) {
		return dataset.Selection{}, fmt.Errorf("%w: %q", config.ErrUnknownCity, city)
	}
	if !config.IsMonthSelector(month) {
		return dataset.Selection{}, fmt.Errorf("invalid month %q", month)
	}
	if !config.IsDaySelector(day) {
		return dataset.Selection{}, fmt.Errorf("day must be between %d and %d, got %d", config.MinDay, config.MaxDay, day)
	}
	return dataset.Selection{City: city, Month: month, Day: day}, nil
}
