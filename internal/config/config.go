package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// StattoConfig contains all configurable parameters that influence report
// and prediction outcomes. This centralizes all magic numbers and constants
// for easy adjustment.
type StattoConfig struct {
	Paths      PathsConfig      `yaml:"paths" envconfig:"PATHS"`
	Prediction PredictionConfig `yaml:"prediction" envconfig:"PREDICTION"`
	Trend      TrendConfig      `yaml:"trend" envconfig:"TREND"`
	Chart      ChartConfig      `yaml:"chart" envconfig:"CHART"`
}

// PathsConfig contains locations of all output artifacts and the database
type PathsConfig struct {
	AssetsPath   string `yaml:"assets_path" envconfig:"ASSETS_PATH"`
	DbFile       string `yaml:"db_file" envconfig:"DB_FILE" validate:"required"`
	AfconReport  string `yaml:"afcon_report" envconfig:"AFCON_REPORT" validate:"required"`
	FuelReport   string `yaml:"fuel_report" envconfig:"FUEL_REPORT" validate:"required"`
	FuelChart    string `yaml:"fuel_chart" envconfig:"FUEL_CHART" validate:"required"`
	FuelWorkbook string `yaml:"fuel_workbook" envconfig:"FUEL_WORKBOOK" validate:"required"`
}

// PredictionConfig holds the weighting coefficients of the outcome heuristic.
// These are tunable parameters, not fixed law; the defaults reproduce the
// original weighting (11 - rank)*0.3 + avgGoals*2 + (2 - defense)*1.5
type PredictionConfig struct {
	RankOffset      float64 `yaml:"rank_offset" envconfig:"RANK_OFFSET"`
	RankWeight      float64 `yaml:"rank_weight" envconfig:"RANK_WEIGHT" validate:"gte=0"`
	AttackWeight    float64 `yaml:"attack_weight" envconfig:"ATTACK_WEIGHT" validate:"gte=0"`
	DefenseBaseline float64 `yaml:"defense_baseline" envconfig:"DEFENSE_BASELINE"`
	DefenseWeight   float64 `yaml:"defense_weight" envconfig:"DEFENSE_WEIGHT" validate:"gte=0"`
}

// TrendConfig holds the thresholds and horizon of the price trend analysis
type TrendConfig struct {
	// Slope magnitudes at or below this are classified STABLE
	SlopeThreshold float64 `yaml:"slope_threshold" envconfig:"SLOPE_THRESHOLD" validate:"gt=0"`
	// How many months past the end of the series to extrapolate
	ForecastMonths int `yaml:"forecast_months" envconfig:"FORECAST_MONTHS" validate:"gte=1,lte=24"`
}

// ChartConfig holds the geometry of the rendered price chart
type ChartConfig struct {
	PanelWidth  int `yaml:"panel_width" envconfig:"PANEL_WIDTH" validate:"gte=200"`
	PanelHeight int `yaml:"panel_height" envconfig:"PANEL_HEIGHT" validate:"gte=200"`
	Margin      int `yaml:"margin" envconfig:"MARGIN" validate:"gte=10"`
}

// DefaultStattoConfig returns the default configuration with all standard values
func DefaultStattoConfig() *StattoConfig {
	return &StattoConfig{
		Paths: PathsConfig{
			AssetsPath:   ".",
			DbFile:       "statto.db",
			AfconReport:  "afcon_analysis_report.txt",
			FuelReport:   "fuel_price_report.txt",
			FuelChart:    "fuel_price_analysis.svg",
			FuelWorkbook: "fuel_price_analysis.xlsx",
		},
		Prediction: PredictionConfig{
			RankOffset:      11.0,
			RankWeight:      0.3,
			AttackWeight:    2.0,
			DefenseBaseline: 2.0,
			DefenseWeight:   1.5,
		},
		Trend: TrendConfig{
			SlopeThreshold: 0.01,
			ForecastMonths: 3,
		},
		Chart: ChartConfig{
			PanelWidth:  700,
			PanelHeight: 500,
			Margin:      60,
		},
	}
}

// Global configuration instance
var Config *StattoConfig

func init() {
	Config = DefaultStattoConfig()
}

// Load layers configuration: defaults, then the YAML file at path (if it
// exists), then STATTO_* environment variables. The result becomes the
// global Config.
func Load(path string) error {
	cfg := DefaultStattoConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process("STATTO", cfg); err != nil {
		return fmt.Errorf("failed to load config from environment: %w", err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return err
	}

	Config = cfg
	return nil
}

// UpdateConfig allows replacing the global configuration
func UpdateConfig(newConfig *StattoConfig) error {
	if err := ValidateConfig(newConfig); err != nil {
		return err
	}
	Config = newConfig
	return nil
}

var validate = validator.New()

// ValidateConfig ensures all configuration values are within reasonable ranges
func ValidateConfig(cfg *StattoConfig) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Checks the tag vocabulary cannot express
	if cfg.Prediction.RankOffset <= 0 {
		return fmt.Errorf("RankOffset must be positive, got: %f", cfg.Prediction.RankOffset)
	}
	if cfg.Prediction.RankWeight+cfg.Prediction.AttackWeight+cfg.Prediction.DefenseWeight == 0 {
		return fmt.Errorf("at least one prediction weight must be non-zero")
	}
	return nil
}

// === HELPER FUNCTIONS FOR EASY ACCESS ===

// GetDbPath returns the full path of the sqlite database file
func GetDbPath() string {
	return filepath.Join(Config.Paths.AssetsPath, Config.Paths.DbFile)
}

// AssetPath joins the given artifact filename onto the assets directory
func AssetPath(name string) string {
	return filepath.Join(Config.Paths.AssetsPath, name)
}

// GetSlopeThreshold returns the STABLE/UPWARD/DOWNWARD classification threshold
func GetSlopeThreshold() float64 {
	return Config.Trend.SlopeThreshold
}

// GetForecastMonths returns the extrapolation horizon in months
func GetForecastMonths() int {
	return Config.Trend.ForecastMonths
}

// GetPrediction returns the heuristic weighting coefficients
func GetPrediction() PredictionConfig {
	return Config.Prediction
}

// GetChart returns the geometry of the rendered price chart
func GetChart() ChartConfig {
	return Config.Chart
}
