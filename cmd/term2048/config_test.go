package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/term2048/internal/config"
)

func TestRunConfigPrintsDefaults(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	if err := runConfig(cmd, nil); err != nil {
		t.Fatalf("runConfig: %v", err)
	}

	var got config.Config
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if got != config.Default() {
		t.Errorf("printed config = %+v, want %+v", got, config.Default())
	}
}
