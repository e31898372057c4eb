package main

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyFlags_Defaults(t *testing.T) {
	cfg := config.NewConfig()
	applyFlags(cfg)

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d; want 1", cfg.Verbosity)
	}
	if !cfg.Console.ShowBoard || !cfg.Console.Coordinates {
		t.Errorf("ShowBoard = %v, Coordinates = %v; want both true", cfg.Console.ShowBoard, cfg.Console.Coordinates)
	}
	if cfg.Console.Prompt != "> " {
		t.Errorf("Prompt = %q; want %q", cfg.Console.Prompt, "> ")
	}
	if cfg.Storage.Enabled() {
		t.Error("ledger enabled without -data")
	}
}

func TestApplyFlags(t *testing.T) {
	defer saveRestoreInt(verbosity, 2)()
	defer saveRestoreString(loadFile, "opening.txt")()
	defer saveRestoreString(dataDir, "/var/lib/chess")()
	defer saveRestoreBool(noBoard, true)()
	defer saveRestoreBool(noCoords, true)()
	defer saveRestoreString(prompt, "chess> ")()

	cfg := config.NewConfig()
	applyFlags(cfg)

	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d; want 2", cfg.Verbosity)
	}
	if cfg.InputFile != "opening.txt" {
		t.Errorf("InputFile = %q; want opening.txt", cfg.InputFile)
	}
	if cfg.Storage.DataDir != "/var/lib/chess" || !cfg.Storage.Enabled() {
		t.Errorf("DataDir = %q, Enabled = %v", cfg.Storage.DataDir, cfg.Storage.Enabled())
	}
	if cfg.Console.ShowBoard || cfg.Console.Coordinates {
		t.Errorf("ShowBoard = %v, Coordinates = %v; want both false", cfg.Console.ShowBoard, cfg.Console.Coordinates)
	}
	if cfg.Console.Prompt != "chess> " {
		t.Errorf("Prompt = %q; want %q", cfg.Console.Prompt, "chess> ")
	}
}

func TestApplyFlags_EmptyPromptFailsValidation(t *testing.T) {
	defer saveRestoreString(prompt, "")()

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil; want error for empty prompt")
	}
}
