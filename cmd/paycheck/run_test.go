package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kbukum/paycheck/logger"
	"github.com/kbukum/paycheck/payment"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	// Point at a missing file so a stray config.yml never leaks into tests.
	args = append([]string{"--config", filepath.Join(t.TempDir(), "none.yml")}, args...)
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunAllValid(t *testing.T) {
	code, out, _ := runCLI(t, "", "0", "1", "5555", "99999.999")
	if code != exitOK {
		t.Fatalf("expected exit %d, got %d", exitOK, code)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), out)
	}
	for _, line := range lines {
		if line != `{"valid":true}` {
			t.Errorf("unexpected line %q", line)
		}
	}
}

func TestRunInvalidAmounts(t *testing.T) {
	code, out, _ := runCLI(t, "", "--", "-1", "100000")
	if code != exitInvalid {
		t.Fatalf("expected exit %d, got %d", exitInvalid, code)
	}
	want := `{"valid":false,"errorMessage":"Payment amount can't be less than 0"}` + "\n" +
		`{"valid":false,"errorMessage":"Payment amount has to be less than 100000"}` + "\n"
	if out != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", out, want)
	}
}

func TestRunTextFormat(t *testing.T) {
	code, out, _ := runCLI(t, "", "--format", "text", "--", "42", "-5")
	if code != exitInvalid {
		t.Fatalf("expected exit %d, got %d", exitInvalid, code)
	}
	want := "42: ok\n-5: Payment amount can't be less than 0\n"
	if out != want {
		t.Errorf("unexpected output %q, want %q", out, want)
	}
}

func TestRunUnparsableAmount(t *testing.T) {
	code, out, _ := runCLI(t, "", "abc")
	if code != exitInvalid {
		t.Fatalf("expected exit %d, got %d", exitInvalid, code)
	}
	if !strings.Contains(out, `"code":"INVALID_FORMAT"`) {
		t.Errorf("expected INVALID_FORMAT error, got %q", out)
	}
}

func TestRunReadsStdin(t *testing.T) {
	code, out, _ := runCLI(t, "10\n\n250000\n")
	if code != exitInvalid {
		t.Fatalf("expected exit %d, got %d", exitInvalid, code)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", out)
	}
	if lines[0] != `{"valid":true}` {
		t.Errorf("unexpected first line %q", lines[0])
	}
}

func TestRunBoundFlags(t *testing.T) {
	code, out, _ := runCLI(t, "", "--lower", "10", "--upper", "20", "--format", "text", "5", "20")
	if code != exitInvalid {
		t.Fatalf("expected exit %d, got %d", exitInvalid, code)
	}
	want := "5: Payment amount can't be less than 10\n20: Payment amount has to be less than 20\n"
	if out != want {
		t.Errorf("unexpected output %q, want %q", out, want)
	}
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("payment:\n  lower: 0\n  upper: 500\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--config", path, "--format", "text", "499", "500"},
		strings.NewReader(""), &stdout, &stderr)
	if code != exitInvalid {
		t.Fatalf("expected exit %d, got %d (stderr: %s)", exitInvalid, code, stderr.String())
	}
	want := "499: ok\n500: Payment amount has to be less than 500\n"
	if stdout.String() != want {
		t.Errorf("unexpected output %q, want %q", stdout.String(), want)
	}
}

func TestRunInvertedBounds(t *testing.T) {
	code, _, errOut := runCLI(t, "", "--lower", "10", "--upper", "1", "5")
	if code != exitUsage {
		t.Fatalf("expected exit %d, got %d", exitUsage, code)
	}
	if !strings.Contains(errOut, "config.payment") {
		t.Errorf("expected payment config error, got %q", errOut)
	}
}

func TestRunUnknownFormat(t *testing.T) {
	code, _, _ := runCLI(t, "", "--format", "xml", "5")
	if code != exitUsage {
		t.Fatalf("expected exit %d, got %d", exitUsage, code)
	}
}

func TestRunUnknownFlag(t *testing.T) {
	code, _, _ := runCLI(t, "", "--nope")
	if code != exitUsage {
		t.Fatalf("expected exit %d, got %d", exitUsage, code)
	}
}

func TestRunVersion(t *testing.T) {
	code, out, _ := runCLI(t, "", "--version")
	if code != exitOK {
		t.Fatalf("expected exit %d, got %d", exitOK, code)
	}
	if !strings.HasPrefix(out, "dev") {
		t.Errorf("expected dev version, got %q", out)
	}
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stdout, stderr bytes.Buffer
	code := run(ctx, []string{"--config", filepath.Join(t.TempDir(), "none.yml"), "5"},
		strings.NewReader(""), &stdout, &stderr)
	if code != exitUsage {
		t.Fatalf("expected exit %d, got %d", exitUsage, code)
	}
	if stdout.Len() != 0 {
		t.Errorf("expected no output, got %q", stdout.String())
	}
}

func TestRunIgnoresShellEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("DEBUG", "yes")
	t.Setenv("VERSION", "not-a-version")
	t.Setenv("NAME", "someone-else")

	code, out, errOut := runCLI(t, "", "5")
	if code != exitOK {
		t.Fatalf("expected exit %d, got %d (stderr: %s)", exitOK, code, errOut)
	}
	if out != `{"valid":true}`+"\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestRunPrefixedEnvironment(t *testing.T) {
	t.Setenv("PAYCHECK_ENVIRONMENT", "qa")

	code, _, errOut := runCLI(t, "", "5")
	if code != exitUsage {
		t.Fatalf("expected exit %d, got %d", exitUsage, code)
	}
	if !strings.Contains(errOut, "config.environment") {
		t.Errorf("expected environment config error, got %q", errOut)
	}
}

func TestRunPaymentEnvironment(t *testing.T) {
	t.Setenv("PAYMENT_UPPER", "10")

	code, out, _ := runCLI(t, "", "--format", "text", "10")
	if code != exitInvalid {
		t.Fatalf("expected exit %d, got %d", exitInvalid, code)
	}
	if out != "10: Payment amount has to be less than 10\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestRunOverflowingAmounts(t *testing.T) {
	code, out, _ := runCLI(t, "", "--format", "text", "--", "1e500", "-1e500")
	if code != exitInvalid {
		t.Fatalf("expected exit %d, got %d", exitInvalid, code)
	}
	want := "1e500: Payment amount has to be less than 100000\n" +
		"-1e500: Payment amount can't be less than 0\n"
	if out != want {
		t.Errorf("unexpected output %q, want %q", out, want)
	}
}

// cancelAfter reports itself done once Err has been called n times.
type cancelAfter struct {
	context.Context
	n int
}

func (c *cancelAfter) Err() error {
	if c.n <= 0 {
		return context.Canceled
	}
	c.n--
	return nil
}

func TestCheckAmountsInterrupted(t *testing.T) {
	var logs, out bytes.Buffer
	log := logger.NewWithWriter(&logger.Config{Level: "warn", Format: "json"}, serviceName, &logs)
	checker, err := payment.NewChecker(payment.DefaultBounds, payment.WithLogger(logger.Nop()))
	if err != nil {
		t.Fatalf("NewChecker failed: %v", err)
	}

	ctx := &cancelAfter{Context: context.Background(), n: 1}
	code := checkAmounts(ctx, &out, checker, log, []string{"1", "2", "3"}, "text")
	if code != exitUsage {
		t.Fatalf("expected exit %d, got %d", exitUsage, code)
	}
	if out.String() != "1: ok\n" {
		t.Errorf("expected only the first amount, got %q", out.String())
	}
	if !strings.Contains(logs.String(), `"remaining":2`) {
		t.Errorf("expected remaining=2 in log, got %q", logs.String())
	}
}

func TestRunPaymentLogs(t *testing.T) {
	t.Setenv("LOGGING_FORMAT", "json")

	code, _, errOut := runCLI(t, "", "--log-level", "debug", "200000")
	if code != exitInvalid {
		t.Fatalf("expected exit %d, got %d", exitInvalid, code)
	}
	var line string
	for _, l := range strings.Split(errOut, "\n") {
		if strings.Contains(l, "payment amount rejected") {
			line = l
		}
	}
	if line == "" {
		t.Fatalf("expected a rejection log, got %q", errOut)
	}
	for _, want := range []string{`"component":"payment"`, `"request_id":"`, `"trace_id":"`} {
		if !strings.Contains(line, want) {
			t.Errorf("expected %s in %q", want, line)
		}
	}
	if strings.Count(line, `"request_id"`) != 1 {
		t.Errorf("expected a single request_id field, got %q", line)
	}
}
