package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/agbru/ctkit/ctenc"
	"github.com/agbru/ctkit/ctint"
	"github.com/agbru/ctkit/internal/orchestration"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// Width is the initial bit width of the session's integers.
	Width uint32
}

// REPL is an interactive line-based calculator over the constant-time
// integer engine. Variables are named slots of the session's current
// width; changing the width clears them.
type REPL struct {
	width uint32
	vars  map[string]*ctint.Int
	in    io.Reader
	out   io.Writer
}

// NewREPL creates a new REPL instance reading commands from in and
// writing results to out.
func NewREPL(in io.Reader, out io.Writer, config REPLConfig) *REPL {
	w := config.Width
	if w == 0 {
		w = 129
	}
	return &REPL{
		width: w,
		vars:  make(map[string]*ctint.Int),
		in:    in,
		out:   out,
	}
}

const replHelp = `commands:
  width <n>              set the working bit width (clears variables)
  set <name> <value>     store a decimal integer (NaN if it does not fit)
  show <name>            print a variable in decimal and hex
  add|sub|mul <d> <a> <b>   d = a op b
  div <q> <r> <a> <b>    Euclidean quotient and remainder ("_" to skip one)
  mod <d> <a> <b>        nonnegative remainder
  shl|shr <d> <a> <n>    shift by a public count
  cmp <a> <b>            compare two variables
  avg <v1,v2,...>        average of u64 values at the current width
  help                   this text
  quit                   leave the session`

// Run processes commands until EOF or "quit".
func (r *REPL) Run() {
	fmt.Fprintf(r.out, "ctcalc repl, width %d; \"help\" for commands\n", r.width)
	sc := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(r.out)
			return
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return
		}
		r.dispatch(fields)
	}
}

func (r *REPL) dispatch(fields []string) {
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "help":
		fmt.Fprintln(r.out, replHelp)
	case "width":
		r.cmdWidth(args)
	case "set":
		r.cmdSet(args)
	case "show":
		r.cmdShow(args)
	case "add", "sub", "mul", "mod":
		r.cmdBinop(cmd, args)
	case "div":
		r.cmdDiv(args)
	case "shl", "shr":
		r.cmdShift(cmd, args)
	case "cmp":
		r.cmdCmp(args)
	case "avg":
		r.cmdAvg(args)
	default:
		fmt.Fprintf(r.out, "unknown command %q; \"help\" for commands\n", cmd)
	}
}

func (r *REPL) cmdWidth(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "usage: width <n>")
		return
	}
	n, err := strconv.ParseUint(args[0], 10, 20)
	if err != nil || n < 1 {
		fmt.Fprintln(r.out, "width must be a positive integer")
		return
	}
	r.width = uint32(n)
	r.vars = make(map[string]*ctint.Int)
	fmt.Fprintf(r.out, "width %d\n", r.width)
}

func (r *REPL) cmdSet(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(r.out, "usage: set <name> <value>")
		return
	}
	v, ok := new(big.Int).SetString(args[1], 10)
	if !ok {
		fmt.Fprintf(r.out, "invalid integer %q\n", args[1])
		return
	}
	x := ctint.New(r.width)
	setFromBig(x, v)
	r.vars[args[0]] = x
	r.printVar(args[0], x)
}

func (r *REPL) cmdShow(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "usage: show <name>")
		return
	}
	x, ok := r.vars[args[0]]
	if !ok {
		fmt.Fprintf(r.out, "no variable %q\n", args[0])
		return
	}
	r.printVar(args[0], x)
}

func (r *REPL) cmdBinop(op string, args []string) {
	if len(args) != 3 {
		fmt.Fprintf(r.out, "usage: %s <d> <a> <b>\n", op)
		return
	}
	a, b, ok := r.lookup2(args[1], args[2])
	if !ok {
		return
	}
	d := ctint.New(r.width)
	switch op {
	case "add":
		d.Add(a, b)
	case "sub":
		d.Sub(a, b)
	case "mul":
		d.Mul(a, b)
	case "mod":
		d.Mod(a, b)
	}
	r.vars[args[0]] = d
	r.printVar(args[0], d)
}

func (r *REPL) cmdDiv(args []string) {
	if len(args) != 4 {
		fmt.Fprintln(r.out, "usage: div <q> <r> <a> <b>")
		return
	}
	a, b, ok := r.lookup2(args[2], args[3])
	if !ok {
		return
	}
	var q, rem *ctint.Int
	if args[0] != "_" {
		q = ctint.New(r.width)
	}
	if args[1] != "_" {
		rem = ctint.New(r.width)
	}
	ctint.DivRem(q, rem, a, b)
	if q != nil {
		r.vars[args[0]] = q
		r.printVar(args[0], q)
	}
	if rem != nil {
		r.vars[args[1]] = rem
		r.printVar(args[1], rem)
	}
}

func (r *REPL) cmdShift(op string, args []string) {
	if len(args) != 3 {
		fmt.Fprintf(r.out, "usage: %s <d> <a> <n>\n", op)
		return
	}
	a, ok := r.vars[args[1]]
	if !ok {
		fmt.Fprintf(r.out, "no variable %q\n", args[1])
		return
	}
	n, err := strconv.ParseUint(args[2], 10, 32)
	if err != nil {
		fmt.Fprintf(r.out, "invalid shift count %q\n", args[2])
		return
	}
	d := ctint.New(r.width)
	if op == "shl" {
		d.Lsh(a, uint32(n))
	} else {
		d.Rsh(a, uint32(n))
	}
	r.vars[args[0]] = d
	r.printVar(args[0], d)
}

func (r *REPL) cmdCmp(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(r.out, "usage: cmp <a> <b>")
		return
	}
	a, b, ok := r.lookup2(args[0], args[1])
	if !ok {
		return
	}
	if a.IsNaN().Or(b.IsNaN()).ToBool() {
		fmt.Fprintln(r.out, "unordered (NaN operand)")
		return
	}
	switch a.Cmp(b) {
	case -1:
		fmt.Fprintf(r.out, "%s < %s\n", args[0], args[1])
	case 1:
		fmt.Fprintf(r.out, "%s > %s\n", args[0], args[1])
	default:
		fmt.Fprintf(r.out, "%s == %s\n", args[0], args[1])
	}
}

func (r *REPL) cmdAvg(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "usage: avg <v1,v2,...>")
		return
	}
	var values []uint64
	for _, p := range strings.Split(args[0], ",") {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			fmt.Fprintf(r.out, "invalid value %q\n", p)
			return
		}
		values = append(values, v)
	}
	engine := &orchestration.Engine{Width: r.width}
	result, err := engine.Average(context.Background(), values)
	if err != nil {
		fmt.Fprintln(r.out, err.Error())
		return
	}
	fmt.Fprintln(r.out, result.String())
}

func (r *REPL) lookup2(na, nb string) (*ctint.Int, *ctint.Int, bool) {
	a, ok := r.vars[na]
	if !ok {
		fmt.Fprintf(r.out, "no variable %q\n", na)
		return nil, nil, false
	}
	b, ok := r.vars[nb]
	if !ok {
		fmt.Fprintf(r.out, "no variable %q\n", nb)
		return nil, nil, false
	}
	return a, b, true
}

func (r *REPL) printVar(name string, x *ctint.Int) {
	if x.IsNaN().ToBool() {
		fmt.Fprintf(r.out, "%s = NaN (width %d)\n", name, x.Width())
		return
	}
	n := int(x.Width())/8 + 1
	raw := make([]byte, n)
	x.EncBE(raw)
	hex := make([]byte, 2*n)
	ctenc.BinToHex(hex, raw, 0)
	fmt.Fprintf(r.out, "%s = %s (0x%s, width %d)\n",
		name, orchestration.FormatDecimal(x), hex, x.Width())
}

// setFromBig stores v into x with strict range semantics: the value is
// encoded as minimal two's complement and decoded back, so a value too
// wide for x leaves it NaN.
func setFromBig(x *ctint.Int, v *big.Int) {
	n := (v.BitLen() + 8) / 8
	if n == 0 {
		n = 1
	}
	buf := make([]byte, n)
	if v.Sign() >= 0 {
		v.FillBytes(buf)
	} else {
		m := new(big.Int).Lsh(big.NewInt(1), uint(8*n))
		new(big.Int).Add(m, v).FillBytes(buf)
	}
	x.DecBESigned(buf)
}
