package spec

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `spec_version: "1.0"
tariff_id: oncor-lts-tx
utility:
  name: Test Utility
  residential_customers: 560000
  commercial_customers: 85000
  industrial_customers: 5000
  avg_monthly_bill: 130
  avg_monthly_usage_kwh: 1050
  pre_dc_system_energy_gwh: 20000
  residential_energy_share: 0.35
  system_peak_mw: 4000
  base_residential_allocation: 0.40
  iso: ercot
data_center:
  capacity_mw: 1500
  flex_peak_coincidence: 0.70
  onsite_generation_mw: 300
  onsite_availability: 0.9
projection:
  years: 15
`

func writeProject(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "project.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadProject(t *testing.T) {
	dir := writeProject(t, sampleYAML)
	ps, err := LoadProject(dir)
	if err != nil {
		t.Fatal(err)
	}

	if ps.TariffID != "oncor-lts-tx" {
		t.Errorf("tariff_id = %q", ps.TariffID)
	}
	if ps.Utility.ResidentialCustomers != 560000 {
		t.Errorf("residential_customers = %d", ps.Utility.ResidentialCustomers)
	}
	if ps.Utility.ISO != "ercot" {
		t.Errorf("iso = %q", ps.Utility.ISO)
	}
	if ps.DataCenter.CapacityMW != 1500 {
		t.Errorf("capacity_mw = %v", ps.DataCenter.CapacityMW)
	}
	if ps.Projection.Years != 15 {
		t.Errorf("years = %d", ps.Projection.Years)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := writeProject(t, sampleYAML)
	ps, err := LoadProject(dir)
	if err != nil {
		t.Fatal(err)
	}

	// Explicit values survive; unset fields pick up defaults.
	if ps.DataCenter.FlexPeakCoincidence != 0.70 {
		t.Errorf("flex_peak_coincidence = %v, want explicit 0.70", ps.DataCenter.FlexPeakCoincidence)
	}
	if ps.DataCenter.OnsiteAvailability != 0.9 {
		t.Errorf("onsite_availability = %v, want explicit 0.9", ps.DataCenter.OnsiteAvailability)
	}
	if ps.DataCenter.FirmLoadFactor != DefaultFirmLoadFactor {
		t.Errorf("firm_load_factor = %v, want default", ps.DataCenter.FirmLoadFactor)
	}
	if ps.Projection.BaseYear != DefaultBaseYear {
		t.Errorf("base_year = %d, want default", ps.Projection.BaseYear)
	}
	if ps.Projection.GeneralInflation != DefaultGeneralInflation {
		t.Errorf("general_inflation = %v, want default", ps.Projection.GeneralInflation)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := LoadProject(t.TempDir()); err == nil {
		t.Fatal("expected error for missing project.yaml")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	dir := writeProject(t, "utility: [not a map")
	if _, err := LoadProject(dir); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestEffectiveOnsiteMW(t *testing.T) {
	d := DataCenter{OnsiteGenerationMW: 300, OnsiteAvailability: 0.9}
	if got := d.EffectiveOnsiteMW(); got != 270 {
		t.Errorf("effective onsite = %v MW, want 270", got)
	}
}

func TestBaselineRate(t *testing.T) {
	p := Projection{GeneralInflation: 0.025, AnnualUpgradePct: 0.015, GridModernizationPct: 0.005}
	if got := p.BaselineRate(); math.Abs(got-0.045) > 1e-12 {
		t.Errorf("baseline rate = %v, want 0.045", got)
	}
}

func TestTotalCustomers(t *testing.T) {
	u := Utility{ResidentialCustomers: 100, CommercialCustomers: 20, IndustrialCustomers: 3}
	if got := u.TotalCustomers(); got != 123 {
		t.Errorf("total customers = %d, want 123", got)
	}
}
