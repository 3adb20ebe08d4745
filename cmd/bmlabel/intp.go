package main

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/bmtext/fnt"
	"github.com/gogpu/bmtext/label"
	"github.com/gogpu/bmtext/layout"
	"github.com/gogpu/bmtext/render"
)

var (
	errNoArg   = errors.New("missing argument")
	errUnknown = errors.New("unknown command, try 'help'")
)

// settings is the startup state of an interpreter.
type settings struct {
	font      string
	fallbacks []string
	wrap      float64
	align     layout.Alignment
	scale     float64
	fonts     fnt.Cache
	comp      *render.Compositor
}

// Intp is our interpreter object.
type Intp struct {
	label *label.Label
	fonts fnt.Cache
	comp  *render.Compositor
	repl  *readline.Instance
}

func newIntp(s settings) (*Intp, error) {
	opts := []label.Option{
		label.WithCache(s.fonts),
		label.WithAlignment(s.align),
		label.WithNormalization(norm.NFC),
	}
	if s.scale > 0 {
		opts = append(opts, label.WithScale(s.scale))
	}
	if s.wrap > 0 {
		opts = append(opts, label.WithWrap(s.wrap))
	}
	l, err := label.New("", s.font, opts...)
	if err != nil {
		return nil, err
	}
	if err := l.AddFonts(s.fallbacks...); err != nil {
		return nil, err
	}
	return &Intp{label: l, fonts: s.fonts, comp: s.comp}, nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.execute(line)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Batch lays out every line of sc as one label and prints its lines.
func (intp *Intp) Batch(sc *bufio.Scanner) error {
	for sc.Scan() {
		if err := intp.label.SetText(sc.Text()); err != nil {
			return err
		}
		printLines(intp.label)
	}
	return sc.Err()
}

type opFunc func(intp *Intp, arg string) (quit bool, err error)

var ops map[string]opFunc

func init() {
	ops = map[string]opFunc{
		"quit":    quitOp,
		"help":    helpOp,
		"text":    textOp,
		"wrap":    wrapOp,
		"align":   alignOp,
		"scale":   scaleOp,
		"lines":   linesOp,
		"info":    infoOp,
		"render":  renderOp,
		"compile": compileOp,
		"purge":   purgeOp,
	}
}

// execute runs one command line of the form "<op> [argument]".
func (intp *Intp) execute(line string) (bool, error) {
	name, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	op, ok := ops[strings.ToLower(name)]
	if !ok {
		return false, fmt.Errorf("%w: %q", errUnknown, name)
	}
	return op(intp, strings.TrimSpace(arg))
}

func quitOp(*Intp, string) (bool, error) {
	return true, nil
}

func textOp(intp *Intp, arg string) (bool, error) {
	if err := intp.label.SetText(arg); err != nil {
		return false, err
	}
	printLines(intp.label)
	return false, nil
}

func wrapOp(intp *Intp, arg string) (bool, error) {
	if arg == "" {
		return false, errNoArg
	}
	if strings.EqualFold(arg, "off") {
		intp.label.SetWrapEnabled(false)
		return false, nil
	}
	w, err := strconv.ParseFloat(arg, 64)
	if err != nil || w <= 0 {
		return false, fmt.Errorf("invalid wrap width %q", arg)
	}
	intp.label.SetWrap(true, w)
	return false, nil
}

func alignOp(intp *Intp, arg string) (bool, error) {
	a, err := layout.ParseAlignment(arg)
	if err != nil {
		return false, err
	}
	intp.label.SetAlignment(a)
	return false, nil
}

func scaleOp(intp *Intp, arg string) (bool, error) {
	s, err := strconv.ParseFloat(arg, 64)
	if err != nil || s <= 0 {
		return false, fmt.Errorf("invalid scale %q", arg)
	}
	intp.label.SetScale(s)
	return false, nil
}

func linesOp(intp *Intp, _ string) (bool, error) {
	printLines(intp.label)
	return false, nil
}

func infoOp(intp *Intp, _ string) (bool, error) {
	printInfo(intp.label, intp.fonts)
	return false, nil
}

// renderOp composites the label into a PNG sized to its scaled content.
func renderOp(intp *Intp, arg string) (bool, error) {
	if arg == "" {
		return false, errNoArg
	}
	w, h := intp.label.ScaledContentSize()
	target := render.NewPixmapTarget(max(1, int(math.Ceil(w))), max(1, int(math.Ceil(h))))
	target.Clear(color.Transparent)
	if err := intp.comp.Draw(target.Image(), intp.label.Root(), image.Point{}); err != nil {
		return false, err
	}
	if err := target.Save(arg); err != nil {
		return false, err
	}
	pterm.Info.Printf("wrote %s (%dx%d)\n", arg, target.Width(), target.Height())
	return false, nil
}

// compileOp writes the primary font in compiled form.
func compileOp(intp *Intp, arg string) (bool, error) {
	if arg == "" {
		return false, errNoArg
	}
	f, err := os.Create(arg)
	if err != nil {
		return false, err
	}
	if err := fnt.Encode(f, intp.label.Font()); err != nil {
		f.Close()
		return false, err
	}
	if err := f.Close(); err != nil {
		return false, err
	}
	pterm.Info.Printf("wrote %s\n", arg)
	return false, nil
}

// purgeOp drops every cached font and atlas, then reloads the label.
func purgeOp(intp *Intp, _ string) (bool, error) {
	intp.fonts.PurgeAll()
	n := intp.comp.Purge()
	if err := intp.label.ReloadFonts(); err != nil {
		return false, err
	}
	pterm.Info.Printf("purged fonts and %d atlases\n", n)
	return false, nil
}
