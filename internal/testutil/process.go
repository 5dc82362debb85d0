package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"testing"
)

// Environment variables understood by HelperProcess.
const (
	// EnvWantHelperProcess signals that the test binary should act as a fake program.
	EnvWantHelperProcess = "KRAKEN_WANT_HELPER_PROCESS"
	// EnvHelperProcessConfig contains a JSON-encoded HelperProcessConfig.
	EnvHelperProcessConfig = "KRAKEN_HELPER_PROCESS_CONFIG"
)

// HelperProcessConfig configures the behavior of a fake program.
type HelperProcessConfig struct {
	ExitCode int    `json:"exit_code"`
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
}

// HelperProcess turns the running test binary into a fake program when
// EnvWantHelperProcess is set, and returns immediately otherwise.
//
// Usage in a test file:
//
//	func TestHelperProcess(t *testing.T) {
//	    testutil.HelperProcess()
//	}
func HelperProcess() {
	if os.Getenv(EnvWantHelperProcess) != "1" {
		return
	}

	var cfg HelperProcessConfig
	if raw := os.Getenv(EnvHelperProcessConfig); raw != "" {
		_ = json.Unmarshal([]byte(raw), &cfg)
	}

	if cfg.Stdout != "" {
		fmt.Fprint(os.Stdout, cfg.Stdout)
	}
	if cfg.Stderr != "" {
		fmt.Fprint(os.Stderr, cfg.Stderr)
	}
	os.Exit(cfg.ExitCode)
}

// FakeProgram prepares the environment so that running the returned program
// with the returned args re-enters the test binary as a fake program behaving
// as cfg describes. The calling test file must define TestHelperProcess.
func FakeProgram(t *testing.T, cfg HelperProcessConfig) (string, []string) {
	t.Helper()

	raw, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("encoding helper config: %v", err)
	}
	t.Setenv(EnvWantHelperProcess, "1")
	t.Setenv(EnvHelperProcessConfig, string(raw))

	return os.Args[0], []string{"-test.run=^TestHelperProcess$", "--"}
}
