package config

import (
	"errors"
	"fmt"
	"github.com/spf13/viper"
	"log"
	"scheduling-simulator/internal/render"
	"scheduling-simulator/internal/schedulers"
	"strings"
	"sync"
)

type SchedulerConfig struct {
	Port         int
	Algorithms   []string
	OutputFormat string
	ChartDir     string
	Prompt       bool
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads ./config.yaml once and exits on a malformed file.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		cfg, err := Load("./")
		if err != nil {
			log.Fatalln(err)
		}
		config = cfg
	})

	return config
}

// Load reads config.yaml from dir. A missing file leaves the defaults in place;
// SCHEDULER_* environment variables override both.
func Load(dir string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.algorithms", schedulers.Names())
	v.SetDefault("output.format", render.FormatText)
	v.SetDefault("output.chart_dir", "")
	v.SetDefault("input.prompt", true)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &SchedulerConfig{
		Port:         v.GetInt("port"),
		Algorithms:   splitList(v.GetStringSlice("scheduler.algorithms")),
		OutputFormat: v.GetString("output.format"),
		ChartDir:     v.GetString("output.chart_dir"),
		Prompt:       v.GetBool("input.prompt"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// splitList accepts both "fcfs sjf" and "fcfs,sjf" from the environment.
func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}

func (c *SchedulerConfig) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if len(c.Algorithms) == 0 {
		return errors.New("scheduler.algorithms must not be empty")
	}
	for _, name := range c.Algorithms {
		if _, err := schedulers.Lookup(name); err != nil {
			return fmt.Errorf("invalid scheduler.algorithms: %w", err)
		}
	}
	for _, format := range render.Formats {
		if c.OutputFormat == format {
			return nil
		}
	}
	return fmt.Errorf("invalid output.format %q", c.OutputFormat)
}
