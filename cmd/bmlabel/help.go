package main

import (
	"strings"

	"github.com/pterm/pterm"
)

var helpTexts = map[string]string{
	"text":    "text <s>            lay out s and print its lines",
	"wrap":    "wrap <width|off>    wrap at width points or disable wrapping",
	"align":   "align <a>           left, center, right or justify",
	"scale":   "scale <s>           set the display scale",
	"lines":   "lines               print the current lines",
	"info":    "info                print fonts, size and cache statistics",
	"render":  "render <out.png>    composite the label into an image file",
	"compile": "compile <out.fntb>  write the primary font in compiled form",
	"purge":   "purge               drop cached fonts and atlases, then reload",
	"quit":    "quit                leave the prompt",
}

var helpOrder = []string{"text", "wrap", "align", "scale", "lines", "info", "render", "compile", "purge", "quit"}

func helpOp(_ *Intp, arg string) (bool, error) {
	help(arg)
	return false, nil
}

func help(topic string) {
	if s, ok := helpTexts[strings.ToLower(topic)]; ok {
		pterm.Println(s)
		return
	}
	pterm.Info.Println("Commands")
	for _, name := range helpOrder {
		pterm.Println("  " + helpTexts[name])
	}
}
