package app

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/specialistvlad/odmoptions/internal/testutil"
)

// HarnessResult holds everything one harnessed run produced.
type HarnessResult struct {
	Stdout string
	Logs   string
	Err    error
	App    *App
}

// RunApp runs a debug-level App over the unit files given, keyed by slash
// path relative to the source root. cfg may override anything but the root.
func RunApp(t *testing.T, files map[string]string, cfg Config) *HarnessResult {
	t.Helper()

	cfg.Root = testutil.WriteTree(t, files)
	cfg.LogLevel = "debug"
	appConfig, err := NewConfig(cfg)
	if err != nil {
		t.Fatalf("invalid harness config: %v", err)
	}

	stdout := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}
	testApp := NewApp(stdout, logs, appConfig)

	t.Cleanup(func() {
		if os.Getenv("ODMOPTIONS_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	runErr := testApp.Run(context.Background())
	return &HarnessResult{
		Stdout: stdout.String(),
		Logs:   logs.String(),
		Err:    runErr,
		App:    testApp,
	}
}
