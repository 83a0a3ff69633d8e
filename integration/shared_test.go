//go:build basic || database

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedBinaryPath holds the path to a shared trafficlens binary built once for all tests.
	sharedBinaryPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getTrafficlensBinary returns the path to the trafficlens binary, building it once if needed.
func getTrafficlensBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "trafficlens-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		binaryPath := filepath.Join(tempDir, "trafficlens")
		buildCmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/trafficlens")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build trafficlens: %v", err))
		}

		sharedBinaryPath = binaryPath
	})

	return sharedBinaryPath
}

// writeSampleEvents writes a small crash dataset and returns its path.
func writeSampleEvents(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "events.csv")
	content := "crash_date,borough,crash_type\n" +
		"2024-01-01,Queens,CRASH\n" +
		"2024-01-01,Bronx,STALL\n" +
		"2024-01-02,Queens,CRASH\n" +
		"2024-01-03,Brooklyn,CRASH\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write sample events: %v", err)
	}
	return path
}

func runTrafficlensCommand(t *testing.T, args ...string) error {
	binaryPath := getTrafficlensBinary()
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}
