package cli

import (
	"strings"
	"testing"
	"time"
)

func TestFormatExecutionDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Microsecond, "500µs"},
		{20 * time.Millisecond, "20ms"},
		{3 * time.Second, "3s"},
	}
	for _, c := range cases {
		if got := FormatExecutionDuration(c.d); got != c.want {
			t.Errorf("FormatExecutionDuration(%s) = %q, want %q", c.d, got, c.want)
		}
	}
}

func TestNilProgressIsNoop(t *testing.T) {
	var p *Progress
	p.Stop() // must not panic

	if p := StartProgress(nil, "x", false); p != nil {
		t.Fatal("disabled progress must be nil")
	}
}

func TestREPLSession(t *testing.T) {
	script := strings.Join([]string{
		"set a 100",
		"set b 7",
		"div q r a b",
		"mod m a b",
		"add s a b",
		"cmp a b",
		"avg 1,2,3,4,5",
		"set big 99999999999999999999999999999999999999999",
		"width 16",
		"set a -7",
		"set b 3",
		"mod m a b",
		"quit",
	}, "\n")

	var out strings.Builder
	repl := NewREPL(strings.NewReader(script), &out, REPLConfig{Width: 129})
	repl.Run()
	got := out.String()

	for _, want := range []string{
		"q = 14",
		"r = 2",
		"m = 2",
		"s = 107",
		"a > b",
		"3.000000000000",
		"width 16",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestREPLRejectsUnknown(t *testing.T) {
	var out strings.Builder
	repl := NewREPL(strings.NewReader("frobnicate\nquit\n"), &out, REPLConfig{})
	repl.Run()
	if !strings.Contains(out.String(), "unknown command") {
		t.Error("unknown command not reported")
	}
}
