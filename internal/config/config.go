package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	Region     string   `mapstructure:"region" yaml:"region"`
	Response   string   `mapstructure:"response" yaml:"response"`
	Controls   []string `mapstructure:"controls" yaml:"controls"`
	Predictors []string `mapstructure:"predictors" yaml:"predictors"`

	ConfidenceLevel float64 `mapstructure:"confidence_level" yaml:"confidence_level"`

	// Box-Cox profile grid
	BoxCoxMin   float64 `mapstructure:"boxcox_min" yaml:"boxcox_min"`
	BoxCoxMax   float64 `mapstructure:"boxcox_max" yaml:"boxcox_max"`
	BoxCoxSteps int     `mapstructure:"boxcox_steps" yaml:"boxcox_steps"`
}

// defaultPredictors is every modeled column of the listings table.
var defaultPredictors = []string{
	"sqfeet", "beds", "baths", "type",
	"cats_allowed", "dogs_allowed", "smoking_allowed",
	"wheelchair_access", "electric_vehicle_charge", "comes_furnished",
	"laundry_options", "parking_options",
}

// Default returns the built-in defaults without touching file or env.
func Default() *Global {
	return &Global{
		Region:          "columbus",
		Response:        "price",
		Controls:        []string{"sqfeet", "beds", "baths"},
		Predictors:      append([]string{}, defaultPredictors...),
		ConfidenceLevel: 0.95,
		BoxCoxMin:       -2,
		BoxCoxMax:       2,
		BoxCoxSteps:     41,
	}
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.rentlens/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".rentlens")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("RENTLENS")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("region", "columbus")
	v.SetDefault("response", "price")
	v.SetDefault("controls", []string{"sqfeet", "beds", "baths"})
	v.SetDefault("predictors", defaultPredictors)
	v.SetDefault("confidence_level", 0.95)
	v.SetDefault("boxcox_min", -2.0)
	v.SetDefault("boxcox_max", 2.0)
	v.SetDefault("boxcox_steps", 41)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".rentlens")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
