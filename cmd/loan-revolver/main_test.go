package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/loan-revolver/internal/config"
	"github.com/iwvelando/loan-revolver/pkg/revolver"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "missing.yaml")))
	err := cmd.Execute()
	return stdout.String(), err
}

func TestRunPlanByAmountJSON(t *testing.T) {
	out, err := execute(t, "a", "1000000", "18.0", "100000")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var plan revolver.Plan
	if err := json.Unmarshal([]byte(out), &plan); err != nil {
		t.Fatalf("stdout is not a JSON plan: %v\n%s", err, out)
	}
	if plan.PeriodCount != 11 || plan.TotalPaid != 1091618 || plan.TotalInterest != 91618 {
		t.Errorf("unexpected plan totals %+v", plan)
	}
}

func TestRunPlanByCountPretty(t *testing.T) {
	out, err := execute(t, "c", "1000000", "18.0", "60", "--output-format", "pretty")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "Months: 60") {
		t.Errorf("pretty output missing month count:\n%s", out)
	}
}

func TestRunPlanCSV(t *testing.T) {
	out, err := execute(t, "a", "1000000", "18.0", "50000", "--output-format", "csv")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if lines := strings.Count(out, "\n"); lines != 26 {
		t.Errorf("expected 26 CSV lines, got %d", lines)
	}
}

func TestRunPlanErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		kind revolver.Kind
	}{
		{"Insufficient payment", []string{"a", "1000000", "18.0", "15000"}, revolver.KindInsufficientPayment},
		{"Unsupported mode", []string{"x", "1000000", "18.0", "100"}, revolver.KindUnsupportedMode},
		{"Non-numeric debt", []string{"a", "many", "18.0", "100"}, revolver.KindInvalidInput},
		{"Zero count", []string{"c", "1000000", "18.0", "0"}, revolver.KindInvalidInput},
		{"Missing argument", []string{"a", "1000000", "18.0"}, revolver.KindInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("Execute() expected error but got none")
			}
			if revolver.KindOf(err) != tt.kind {
				t.Errorf("KindOf(%v) = %v, expected %v", err, revolver.KindOf(err), tt.kind)
			}
			if out != "" {
				t.Errorf("expected no plan on stdout, got %q", out)
			}
		})
	}
}

func TestRunPlanInvalidOutputFormat(t *testing.T) {
	if _, err := execute(t, "a", "1000000", "18.0", "100000", "--output-format", "xml"); err == nil {
		t.Fatal("expected error for unsupported output format")
	}
}

func TestRunPlanConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loan-revolver.yaml")
	if err := os.WriteFile(path, []byte("output:\n  format: csv\n"), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cmd := newRootCommand()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"a", "1000000", "18.0", "100000", "--config", path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(stdout.String(), `"index",`) {
		t.Errorf("expected CSV output from config, got %q", stdout.String())
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("version output = %q, expected %q", out, version)
	}
}

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.LoggingConfig
		override  string
		wantError bool
	}{
		{"Defaults", config.LoggingConfig{}, "", false},
		{"Console debug", config.LoggingConfig{Level: "debug", Format: "console"}, "", false},
		{"Override wins", config.LoggingConfig{Level: "bogus"}, "error", false},
		{"Invalid level", config.LoggingConfig{Level: "loud"}, "", true},
		{"Invalid format", config.LoggingConfig{Format: "xml"}, "", true},
		{"Output file", config.LoggingConfig{OutputFile: filepath.Join(t.TempDir(), "logs", "app.log")}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := initializeLogger(tt.cfg, tt.override, "warn")
			if tt.wantError {
				if err == nil {
					t.Fatal("initializeLogger() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("initializeLogger() error = %v", err)
			}
			if logger == nil {
				t.Fatal("initializeLogger() returned nil logger")
			}
		})
	}
}
