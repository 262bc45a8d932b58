package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	apperrors "github.com/agbru/ctkit/internal/errors"
)

func TestRunPipelineQuiet(t *testing.T) {
	var errBuf, outBuf bytes.Buffer
	application, err := New(
		[]string{"ctcalc", "-quiet", "-no-oracles", "-values", "1,2,3,4,5"},
		&errBuf)
	if err != nil {
		t.Fatal(err)
	}
	code := application.Run(context.Background(), &outBuf)
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code %d, stderr: %s", code, errBuf.String())
	}
	if got := strings.TrimSpace(outBuf.String()); got != "3.000000000000" {
		t.Fatalf("output %q", got)
	}
}

func TestRunPipelineWithOracles(t *testing.T) {
	var errBuf, outBuf bytes.Buffer
	application, err := New(
		[]string{"ctcalc", "-quiet", "-values", "18446744073709551615,1,7"},
		&errBuf)
	if err != nil {
		t.Fatal(err)
	}
	code := application.Run(context.Background(), &outBuf)
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code %d, stderr: %s", code, errBuf.String())
	}
}

func TestNewRejectsBadFlags(t *testing.T) {
	var errBuf bytes.Buffer
	if _, err := New([]string{"ctcalc", "-width", "0"}, &errBuf); err == nil {
		t.Fatal("expected config error")
	}
}

func TestVersionHelpers(t *testing.T) {
	if !HasVersionFlag([]string{"-version"}) || HasVersionFlag([]string{"-quiet"}) {
		t.Error("HasVersionFlag")
	}
	var buf bytes.Buffer
	PrintVersion(&buf)
	if !strings.Contains(buf.String(), "ctcalc") {
		t.Error("PrintVersion")
	}
}
