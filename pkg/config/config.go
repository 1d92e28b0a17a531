// Package config holds the tunable thresholds of the analysis pipeline.
// DefaultConfig matches the reference rule set; operators may override
// individual values from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AnalysisConfig collects every threshold used by the detection engine,
// the rule agents and the report assembler.
type AnalysisConfig struct {
	// Inventory shortage detection
	ShortageSeverityFactor float64 `yaml:"shortage_severity_factor"`

	// Delayed shipment detection
	OverdueHighDays  int `yaml:"overdue_high_days"`
	AtRiskWindowDays int `yaml:"at_risk_window_days"`

	// Warehouse capacity detection
	UtilizationWarning float64 `yaml:"utilization_warning"`
	UtilizationHigh    float64 `yaml:"utilization_high"`

	// Demand spike detection
	SpikeWindow int     `yaml:"spike_window"`
	SpikeFactor float64 `yaml:"spike_factor"`

	// Supplier reliability detection
	ReliabilityWarning float64 `yaml:"reliability_warning"`
	ReliabilityHigh    float64 `yaml:"reliability_high"`

	// Demand agent
	RecentOrderWindowDays  int     `yaml:"recent_order_window_days"`
	DemandIncreaseRatio    float64 `yaml:"demand_increase_ratio"`
	DemandDecreaseRatio    float64 `yaml:"demand_decrease_ratio"`
	DemandIncreaseFraction float64 `yaml:"demand_increase_fraction"`

	// Inventory agent
	EmergencyStockRatio    float64 `yaml:"emergency_stock_ratio"`
	EmergencyReorderFactor float64 `yaml:"emergency_reorder_factor"`
	StandardReorderFactor  float64 `yaml:"standard_reorder_factor"`

	// Report assembly
	ReportCriticalThreshold int `yaml:"report_critical_threshold"`
	ReportWarningThreshold  int `yaml:"report_warning_threshold"`

	// Real-time status
	RealTimeCriticalThreshold int `yaml:"realtime_critical_threshold"`
	TopCriticalIssues         int `yaml:"top_critical_issues"`
}

// DefaultConfig returns the reference thresholds.
func DefaultConfig() AnalysisConfig {
	return AnalysisConfig{
		ShortageSeverityFactor:    0.5,
		OverdueHighDays:           3,
		AtRiskWindowDays:          1,
		UtilizationWarning:        0.9,
		UtilizationHigh:           0.95,
		SpikeWindow:               3,
		SpikeFactor:               1.5,
		ReliabilityWarning:        0.9,
		ReliabilityHigh:           0.85,
		RecentOrderWindowDays:     7,
		DemandIncreaseRatio:       1.5,
		DemandDecreaseRatio:       0.5,
		DemandIncreaseFraction:    0.3,
		EmergencyStockRatio:       0.5,
		EmergencyReorderFactor:    2.0,
		StandardReorderFactor:     1.5,
		ReportCriticalThreshold:   5,
		ReportWarningThreshold:    2,
		RealTimeCriticalThreshold: 3,
		TopCriticalIssues:         5,
	}
}

// Load reads a YAML file and overlays it on the defaults. Fields absent from
// the file keep their default values.
func Load(path string) (AnalysisConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}
