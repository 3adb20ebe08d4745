package fnt

import (
	"bufio"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"strconv"
	"strings"
)

// Parse reads a descriptor from r.
// name is the descriptor's own path; the atlas file is resolved relative to it.
//
// Numeric values that fail to parse are read as zero. Only structural
// problems in the common, page and kerning lines abort parsing, with a
// *ParseError wrapping one of the package's sentinel errors.
func Parse(r io.Reader, name string, opts ...ParseOption) (*Font, error) {
	config := defaultParseConfig()
	for _, opt := range opts {
		opt(&config)
	}

	p := &parser{
		name:   name,
		config: config,
		font: &Font{
			path:    name,
			glyphs:  make(map[rune]Glyph),
			kerning: make(map[KerningPair]float64),
		},
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		tag, tokens := tokenize(line)

		var err error
		switch tag {
		case "info":
			p.parseInfo(tokens)
		case "common":
			err = p.parseCommon(tokens)
		case "page":
			err = p.parsePage(tokens)
		case "char":
			p.parseChar(tokens)
		case "kerning":
			err = p.parseKerning(tokens)
		}
		if err != nil {
			return nil, &ParseError{Path: name, Line: lineNo, Tag: tag, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &ParseError{Path: name, Err: err}
	}

	if p.font.atlas == "" && !config.atlasOptional {
		return nil, &ParseError{Path: name, Err: ErrMissingPage}
	}
	if !p.sawBase {
		p.font.base = p.font.commonHeight
	}
	return p.font, nil
}

// ParseFile reads and parses the descriptor name from fsys.
// Read failures are reported as a *ParseError wrapping the fs error.
func ParseFile(fsys fs.FS, name string, opts ...ParseOption) (*Font, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, &ParseError{Path: name, Err: err}
	}
	defer f.Close()

	return Parse(f, name, opts...)
}

type parser struct {
	name    string
	config  parseConfig
	font    *Font
	sawBase bool
}

func (p *parser) parseInfo(tokens []token) {
	for _, t := range tokens {
		if t.key != "padding" {
			continue
		}
		parts := strings.Split(t.value, ",")
		vals := make([]int, 4)
		for i := 0; i < len(parts) && i < 4; i++ {
			vals[i] = parseInt(parts[i])
		}
		p.font.padding = Padding{Left: vals[0], Top: vals[1], Right: vals[2], Bottom: vals[3]}
	}
}

func (p *parser) parseCommon(tokens []token) error {
	for _, t := range tokens {
		switch t.key {
		case "lineHeight":
			p.font.commonHeight = parseFloat(t.value)
		case "base":
			p.font.base = parseFloat(t.value)
			p.sawBase = true
		case "scaleW", "scaleH":
			if parseInt(t.value) > p.config.maxTextureSize {
				return ErrOutOfBounds
			}
		case "pages":
			if parseInt(t.value) != 1 {
				return ErrPageCount
			}
		}
	}
	return nil
}

func (p *parser) parsePage(tokens []token) error {
	for _, t := range tokens {
		if t.key == "file" && t.value != "" {
			p.font.atlas = resolveRelative(p.name, t.value)
		}
	}
	if p.font.atlas == "" {
		return ErrMissingPage
	}
	return nil
}

func (p *parser) parseChar(tokens []token) {
	var (
		id rune
		g  Glyph
	)
	for _, t := range tokens {
		switch t.key {
		case "id":
			id = parseRune(t.value)
		case "x":
			g.Rect.X = float64(parseInt(t.value))
		case "y":
			g.Rect.Y = float64(parseInt(t.value))
		case "width":
			g.Rect.Width = float64(parseInt(t.value))
		case "height":
			g.Rect.Height = float64(parseInt(t.value))
		case "xoffset":
			g.XOffset = parseFloat(t.value)
		case "yoffset":
			g.YOffset = parseFloat(t.value)
		case "xadvance":
			g.XAdvance = parseFloat(t.value)
		}
	}
	p.font.glyphs[id] = g
}

// parseKerning expects first=, second= and amount= as consecutive tokens.
func (p *parser) parseKerning(tokens []token) error {
	for i, t := range tokens {
		if t.key != "first" {
			continue
		}
		if i+2 >= len(tokens) {
			return ErrKerningOrder
		}
		second, amount := tokens[i+1], tokens[i+2]
		if !second.pair || second.key != "second" || !amount.pair || amount.key != "amount" {
			return ErrKerningOrder
		}
		pair := KerningPair{First: parseRune(t.value), Second: parseRune(second.value)}
		p.font.kerning[pair] = parseFloat(amount.value)
	}
	return nil
}

// token is one key=value element of a descriptor line.
type token struct {
	key   string
	value string
	pair  bool // token contained '='
}

// tokenize splits a descriptor line into its tag and tokens.
// Whitespace inside double quotes does not separate tokens.
func tokenize(line string) (string, []token) {
	var (
		fields  []string
		start   = -1
		inQuote bool
	)
	for i, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			if start < 0 {
				start = i
			}
		case (r == ' ' || r == '\t') && !inQuote:
			if start >= 0 {
				fields = append(fields, line[start:i])
				start = -1
			}
		default:
			if start < 0 {
				start = i
			}
		}
	}
	if start >= 0 {
		fields = append(fields, line[start:])
	}
	if len(fields) == 0 {
		return "", nil
	}

	tokens := make([]token, 0, len(fields)-1)
	for _, f := range fields[1:] {
		key, value, ok := strings.Cut(f, "=")
		if !ok {
			tokens = append(tokens, token{key: f})
			continue
		}
		tokens = append(tokens, token{key: key, value: unquote(value), pair: true})
	}
	return fields[0], tokens
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// resolveRelative resolves file against the directory of the descriptor.
func resolveRelative(descriptor, file string) string {
	file = filepath.ToSlash(file)
	if path.IsAbs(file) || filepath.IsAbs(filepath.FromSlash(file)) {
		return file
	}
	return path.Join(path.Dir(filepath.ToSlash(descriptor)), file)
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

func parseRune(s string) rune {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return rune(v)
}
