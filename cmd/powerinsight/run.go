package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/DougMackenzie/power-insight-sub001/pkg/catalog"
	"github.com/DougMackenzie/power-insight-sub001/pkg/spec"
	"github.com/DougMackenzie/power-insight-sub001/pkg/summary"
	"github.com/DougMackenzie/power-insight-sub001/pkg/trajectory"
	"github.com/DougMackenzie/power-insight-sub001/pkg/validation"
)

// loadAndValidate loads the project spec and runs schema validation.
func loadAndValidate(projectPath string) (*spec.ProjectSpec, *validation.Report, error) {
	ps, err := spec.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading spec: %w", err)
	}
	schemaReport := validation.ValidateSchema(ps)
	return ps, schemaReport, nil
}

func runValidate(projectPath string) error {
	ps, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	schemaReport.Merge(validation.ValidateAnalytical(ps))
	printValidationReport(schemaReport)

	if !schemaReport.Valid {
		os.Exit(1)
	}
	return nil
}

func runSolve(projectPath string) error {
	ps, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return fmt.Errorf("project has validation errors")
	}

	in, err := catalog.ResolveProject(ps)
	if err != nil {
		return err
	}

	set := trajectory.GenerateAll(in)
	stats := summary.Compute(set, &in.Utility)

	output := map[string]any{
		"utility":      in.Utility,
		"data_center":  in.DataCenter,
		"trajectories": set,
		"summary":      stats,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func runSummary(projectPath string) error {
	ps, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return fmt.Errorf("project has validation errors; fix before computing the projection")
	}

	in, err := catalog.ResolveProject(ps)
	if err != nil {
		return err
	}

	set := trajectory.GenerateAll(in)
	stats := summary.Compute(set, &in.Utility)

	printProjectionTable(set)
	fmt.Println()
	printSummary(stats, &in)

	analyticalReport := validation.ValidateAnalytical(ps)
	if len(analyticalReport.Warnings) > 0 {
		fmt.Println()
		printValidationReport(analyticalReport)
	}
	return nil
}
