package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 9095 || cfg.OutputFormat != "text" || cfg.ChartDir != "" || !cfg.Prompt {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.Algorithms, []string{"fcfs", "sjf"}) {
		t.Errorf("unexpected algorithms %v", cfg.Algorithms)
	}
}

func TestLoad_File(t *testing.T) {
	dir := writeConfig(t, `
port: 8080
scheduler:
  algorithms: [sjf]
output:
  format: yaml
  chart_dir: /tmp/charts
input:
  prompt: false
`)
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := &SchedulerConfig{
		Port:         8080,
		Algorithms:   []string{"sjf"},
		OutputFormat: "yaml",
		ChartDir:     "/tmp/charts",
		Prompt:       false,
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("expected %+v, got %+v", want, cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed", "port: [\n"},
		{"port", "port: 70000\n"},
		{"algorithm", "scheduler:\n  algorithms: [rr]\n"},
		{"format", "output:\n  format: xml\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoad_EnvAlgorithms(t *testing.T) {
	tests := []struct {
		env  string
		want []string
	}{
		{"fcfs,sjf", []string{"fcfs", "sjf"}},
		{"sjf, fcfs", []string{"sjf", "fcfs"}},
		{"sjf fcfs", []string{"sjf", "fcfs"}},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv("SCHEDULER_SCHEDULER_ALGORITHMS", tt.env)
			cfg, err := Load(t.TempDir())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(cfg.Algorithms, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, cfg.Algorithms)
			}
		})
	}
}
