package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestCLIBinaryIntegration(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	// 1. Build the CLI binary from the module root.
	tmpBuildDir := t.TempDir()
	binPath := filepath.Join(tmpBuildDir, "nexttag")
	buildCmd := exec.Command("go", "build", "-o", binPath, "../../")
	buildOutput, err := buildCmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to build CLI binary: %v; build output: %s", err, string(buildOutput))
	}

	// 2. Set up a work repository and a bare origin.
	tmpDir := t.TempDir()
	workDir := filepath.Join(tmpDir, "work")
	originDir := filepath.Join(tmpDir, "origin.git")

	runGit := func(dir string, args ...string) string {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		output, err := cmd.CombinedOutput()
		if err != nil {
			t.Fatalf("git %v failed: %v; output: %s", args, err, string(output))
		}
		return string(output)
	}

	runGit(tmpDir, "init", "--bare", originDir)
	runGit(tmpDir, "init", workDir)
	runGit(workDir, "config", "user.email", "test@example.com")
	runGit(workDir, "config", "user.name", "Test User")
	if err := os.WriteFile(filepath.Join(workDir, "main.go"), []byte("package main\n\nfunc main() {}\n"), 0644); err != nil {
		t.Fatalf("failed to write source file: %v", err)
	}
	runGit(workDir, "add", ".")
	runGit(workDir, "commit", "-m", "initial commit")
	runGit(workDir, "remote", "add", "origin", originDir)
	runGit(workDir, "tag", "v1.2.3")

	// 3. Run the binary and confirm.
	cliCmd := exec.Command(binPath)
	cliCmd.Dir = workDir
	cliCmd.Stdin = strings.NewReader("YES\n")
	var cliStdout, cliStderr bytes.Buffer
	cliCmd.Stdout = &cliStdout
	cliCmd.Stderr = &cliStderr
	if err := cliCmd.Run(); err != nil {
		t.Fatalf("CLI command failed: %v; stdout: %s; stderr: %s", err, cliStdout.String(), cliStderr.String())
	}

	if !strings.Contains(cliStdout.String(), "Next version: v1.2.4") {
		t.Errorf("expected next version in output, got:\n%s", cliStdout.String())
	}

	// 4. Verify the tag exists locally and on origin.
	expectedTag := "v1.2.4"
	for _, dir := range []string{workDir, originDir} {
		tags := strings.Fields(runGit(dir, "tag"))
		if !slices.Contains(tags, expectedTag) {
			t.Errorf("expected git tag %q not found in %s; got tags: %v", expectedTag, dir, tags)
		}
	}

	// 5. Run again and decline; nothing changes.
	cliCmd = exec.Command(binPath)
	cliCmd.Dir = workDir
	cliCmd.Stdin = strings.NewReader("no\n")
	output, err := cliCmd.CombinedOutput()
	if err != nil {
		t.Fatalf("CLI command failed: %v; output: %s", err, string(output))
	}
	if !strings.Contains(string(output), "Tag creation cancelled") {
		t.Errorf("expected cancellation message, got:\n%s", string(output))
	}
	if tags := strings.Fields(runGit(workDir, "tag")); slices.Contains(tags, "v1.2.5") {
		t.Errorf("tag v1.2.5 should not exist after declining; got tags: %v", tags)
	}
}
