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

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name       string
		depth      int
		workers    int
		verify     bool
		noDivide   bool
		wantDivide bool
		wantValid  bool
	}{
		{"defaults", 4, 8, false, false, true, true},
		{"verify without divide", 5, 2, true, true, false, true},
		{"zero depth", 0, 2, false, false, true, false},
		{"zero workers", 3, 0, false, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreInt(depth, tt.depth)()
			defer saveRestoreInt(workers, tt.workers)()
			defer saveRestoreBool(verify, tt.verify)()
			defer saveRestoreBool(noDivide, tt.noDivide)()

			cfg := config.NewConfig()
			applyFlags(cfg)

			if cfg.Perft.Depth != tt.depth || cfg.Perft.Workers != tt.workers {
				t.Errorf("Depth, Workers = %d, %d; want %d, %d", cfg.Perft.Depth, cfg.Perft.Workers, tt.depth, tt.workers)
			}
			if cfg.Perft.Verify != tt.verify {
				t.Errorf("Verify = %v; want %v", cfg.Perft.Verify, tt.verify)
			}
			if cfg.Perft.Divide != tt.wantDivide {
				t.Errorf("Divide = %v; want %v", cfg.Perft.Divide, tt.wantDivide)
			}
			if err := cfg.Validate(); (err == nil) != tt.wantValid {
				t.Errorf("Validate() = %v; want valid = %v", err, tt.wantValid)
			}
		})
	}
}

func TestApplyFlags_OutputAndLimit(t *testing.T) {
	defer saveRestoreString(output, "perft.txt")()
	defer saveRestoreBool(unique, true)()
	defer saveRestoreInt(maxPos, 5000)()

	cfg := config.NewConfig()
	applyFlags(cfg)

	if cfg.OutputFilename != "perft.txt" {
		t.Errorf("OutputFilename = %q; want perft.txt", cfg.OutputFilename)
	}
	if !cfg.Perft.Unique || cfg.Perft.MaxPositions != 5000 {
		t.Errorf("Unique, MaxPositions = %v, %d; want true, 5000", cfg.Perft.Unique, cfg.Perft.MaxPositions)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}
