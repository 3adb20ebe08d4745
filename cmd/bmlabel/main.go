// Command bmlabel lays out text with a bitmap font and inspects the result.
//
// Usage:
//
//	bmlabel -font main.fnt [-fallback kana.fnt] [-wrap 200] [-align center] [-scale 1] [-trace Debug]
//
// With a terminal on stdin bmlabel starts an interactive prompt. Otherwise
// every input line is laid out as one label and its lines are printed.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"golang.org/x/term"

	"github.com/gogpu/bmtext"
	"github.com/gogpu/bmtext/fnt"
	"github.com/gogpu/bmtext/layout"
	"github.com/gogpu/bmtext/render"
)

// fontList collects repeated -fallback flags.
type fontList []string

func (l *fontList) String() string { return strings.Join(*l, ",") }

func (l *fontList) Set(s string) error {
	*l = append(*l, s)
	return nil
}

func main() {
	initDisplay()

	var fallbacks fontList
	fontPath := flag.String("font", "", "primary font descriptor (.fnt or .fntb)")
	flag.Var(&fallbacks, "fallback", "fallback font descriptor, may be repeated")
	wrap := flag.Float64("wrap", 0, "wrap width in points, 0 disables wrapping")
	align := flag.String("align", "left", "alignment [left|center|right|justify]")
	scale := flag.Float64("scale", 1, "display scale")
	tlevel := flag.String("trace", "", "trace level [Debug|Info|Warn|Error]")
	flag.Parse()

	if err := setupLogging(*tlevel); err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}
	alignment, err := layout.ParseAlignment(*align)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}
	if *fontPath == "" {
		pterm.Error.Println("missing -font")
		flag.Usage()
		os.Exit(2)
	}

	intp, err := newIntp(settings{
		font:      *fontPath,
		fallbacks: fallbacks,
		wrap:      *wrap,
		align:     alignment,
		scale:     *scale,
		fonts:     fnt.Default(),
		comp:      render.NewCompositor(),
	})
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(4)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		if err := intp.Batch(bufio.NewScanner(os.Stdin)); err != nil {
			pterm.Error.Println(err)
			os.Exit(1)
		}
		return
	}

	repl, err := readline.New("bm > ")
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl

	pterm.Info.Println("Welcome to the bitmap label CLI")
	pterm.Info.Println("Quit with <ctrl>D")
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// setupLogging routes library logs to stderr at the given level.
// An empty level keeps the library silent.
func setupLogging(level string) error {
	if level == "" {
		return nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid trace level %q", level)
	}
	bmtext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	})))
	return nil
}
