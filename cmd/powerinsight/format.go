package main

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/DougMackenzie/power-insight-sub001/pkg/summary"
	"github.com/DougMackenzie/power-insight-sub001/pkg/trajectory"
	"github.com/DougMackenzie/power-insight-sub001/pkg/validation"
)

var scenarioLabels = map[trajectory.Scenario]string{
	trajectory.Baseline:     "Baseline",
	trajectory.Firm:         "Firm Load",
	trajectory.Flexible:     "Flexible Load",
	trajectory.Dispatchable: "Flex + Generation",
}

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.SpecPath != "" {
				fmt.Printf("    -> %s = %v\n", e.SpecPath, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.SpecPath != "" {
				fmt.Printf("    -> %s = %v\n", w.SpecPath, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printProjectionTable(set trajectory.Set) {
	fmt.Println("Monthly Bill Projection")
	fmt.Println("=======================")
	fmt.Println()
	fmt.Printf("%-6s %14s %14s %14s %18s\n",
		"Year", "Baseline", "Firm Load", "Flexible", "Flex + Generation")

	for i, bp := range set.Baseline.Points {
		fmt.Printf("%-6d %14s %14s %14s %18s\n",
			bp.Year,
			money(bp.MonthlyBill),
			money(set.Firm.Points[i].MonthlyBill),
			money(set.Flexible.Points[i].MonthlyBill),
			money(set.Dispatchable.Points[i].MonthlyBill))
	}
}

func printSummary(stats summary.Stats, in *trajectory.Inputs) {
	fmt.Println("Scenario Comparison")
	fmt.Println("-------------------")
	fmt.Printf("  Utility:                %s\n", in.Utility.Name)
	fmt.Printf("  Data center capacity:   %.0f MW\n", in.DataCenter.CapacityMW)
	fmt.Printf("  Current monthly bill:   %s\n", money(stats.CurrentMonthlyBill))
	fmt.Println()

	for _, sc := range trajectory.Scenarios {
		if sc == trajectory.Baseline {
			fmt.Printf("  %-20s final bill %s\n", scenarioLabels[sc], money(stats.FinalYearBills[sc]))
			continue
		}
		verdict := "costs ratepayers"
		if stats.BenefitsRatepayers[sc] {
			verdict = "benefits ratepayers"
		}
		fmt.Printf("  %-20s final bill %s  (%s vs baseline, %s)\n",
			scenarioLabels[sc],
			money(stats.FinalYearBills[sc]),
			moneySigned(stats.FinalYearDifference[sc]),
			verdict)
	}

	fmt.Println()
	fmt.Println("  Community-wide cumulative impact vs baseline:")
	for _, sc := range []trajectory.Scenario{trajectory.Firm, trajectory.Flexible, trajectory.Dispatchable} {
		fmt.Printf("    %-20s %s\n", scenarioLabels[sc], moneyCompact(stats.CommunitySavings[sc]))
	}
}

// money renders a bill figure to the cent.
func money(v float64) string {
	return "$" + decimal.NewFromFloat(v).StringFixed(2)
}

func moneySigned(v float64) string {
	d := decimal.NewFromFloat(v)
	if d.Sign() >= 0 {
		return "+$" + d.StringFixed(2)
	}
	return "-$" + d.Abs().StringFixed(2)
}

// moneyCompact renders large community-scale figures.
func moneyCompact(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	switch {
	case v >= 1_000_000_000:
		return fmt.Sprintf("%s$%.2fB", sign, v/1_000_000_000)
	case v >= 1_000_000:
		return fmt.Sprintf("%s$%.2fM", sign, v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("%s$%.0fK", sign, v/1_000)
	default:
		return fmt.Sprintf("%s$%.0f", sign, v)
	}
}
