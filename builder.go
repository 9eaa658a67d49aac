package heli

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// maxUsed is the frequency-retention cutoff applied while reading a
// per-language .model file: a (gram, count) line is kept only while
// count/numFeatures is strictly greater than maxUsed.
const maxUsed = 5e-7

// ModelBuilder turns a directory of per-language frequency files into the
// seven order-indexed NgramTables that make up a ModelBundle. Strict
// controls whether a canonical non-special language missing from
// confidenceThresholds is fatal (true) or gets a 0.0 threshold (false).
// An unknown language code, in languagelist or in confidenceThresholds,
// is an UnknownLangError in either mode; it is neither skipped nor logged.
type ModelBuilder struct {
	InputDir string
	Strict   bool
}

// NewModelBuilder constructs a ModelBuilder reading from inputDir.
func NewModelBuilder(inputDir string, strict bool) *ModelBuilder {
	return &ModelBuilder{InputDir: inputDir, Strict: strict}
}

// ReadLanguageList reads the newline-separated list of language-script
// codes from path, resolving each against the closed Lang set.
func ReadLanguageList(path string) ([]Lang, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IoError{Path: path, Err: err}
	}
	defer f.Close()

	var langs []Lang
	seen := make(map[Lang]bool)
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		l, ok := LangByCode(line)
		if !ok {
			return nil, &UnknownLangError{Code: line}
		}
		if seen[l] {
			continue
		}
		seen[l] = true
		langs = append(langs, l)
	}
	if err := sc.Err(); err != nil {
		return nil, &IoError{Path: path, Err: err}
	}
	return langs, nil
}

// ReadConfidenceThresholds reads a confidenceThresholds file: lines of
// "<lang>\t<float>". In strict mode every non-special collapsed language
// lacking an entry is a ConfigError; in lenient mode the threshold
// defaults to 0.0. und and zxx always map to 0.0.
func ReadConfidenceThresholds(path string, strict bool) (ScoreVector, error) {
	thresholds := NewScoreVector()

	f, err := os.Open(path)
	if err != nil {
		return nil, &IoError{Path: path, Err: err}
	}
	defer f.Close()

	seen := NewLangBitmap()
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			return nil, &ParseError{File: path, Line: lineNo, Err: fmt.Errorf("expected <lang>\\t<float>, got %q", line)}
		}
		lang, ok := LangByCode(parts[0])
		if !ok {
			return nil, &UnknownLangError{Code: parts[0]}
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 32)
		if err != nil {
			return nil, &ParseError{File: path, Line: lineNo, Err: err}
		}
		thresholds.Set(lang, float32(v))
		seen.Set(lang, true)
	}
	if err := sc.Err(); err != nil {
		return nil, &IoError{Path: path, Err: err}
	}

	if strict {
		for _, l := range Langs() {
			if l.IsSpecial() {
				continue
			}
			if l.Collapse() != l {
				continue // only canonical codes carry thresholds
			}
			if !seen.Get(l) {
				return nil, &ConfigError{File: path, Err: fmt.Errorf("missing confidence threshold for %s", l.Code())}
			}
		}
	}
	return thresholds, nil
}

// modelFileName returns the path of the frequency file for lang at order,
// following "<lang>.<order>.model".
func modelFileName(dir string, lang Lang, order OrderNgram) string {
	return filepath.Join(dir, fmt.Sprintf("%s.%s.model", lang.Code(), order))
}

// buildOrderTable reads every listed language's .model file for order and
// merges the retained (gram, score) pairs into one NgramTable.
func buildOrderTable(dir string, order OrderNgram, languages []Lang) (*NgramTable, error) {
	table := NewNgramTable(order, 1<<16)
	for _, lang := range languages {
		if err := mergeLanguageFile(dir, lang, order, table); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// mergeLanguageFile applies the retention rule to one <lang>.<order>.model
// file and merges the surviving grams into table.
func mergeLanguageFile(dir string, lang Lang, order OrderNgram, table *NgramTable) error {
	path := modelFileName(dir, lang, order)
	f, err := os.Open(path)
	if err != nil {
		return &IoError{Path: path, Err: err}
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	if !sc.Scan() {
		return &ParseError{File: path, Line: 1, Err: fmt.Errorf("missing num_features header")}
	}
	numFeatures, err := strconv.ParseFloat(strings.TrimSpace(sc.Text()), 64)
	if err != nil {
		return &ParseError{File: path, Line: 1, Err: fmt.Errorf("bad num_features: %w", err)}
	}

	type retained struct {
		gram  string
		count float64
	}
	var kept []retained
	var total float64

	lineNo := 1
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if line == "" {
			continue
		}
		tab := strings.LastIndexByte(line, '\t')
		if tab < 0 {
			return &ParseError{File: path, Line: lineNo, Err: fmt.Errorf("expected <gram>\\t<count>, got %q", line)}
		}
		gram, countStr := line[:tab], line[tab+1:]
		count, err := strconv.ParseFloat(strings.TrimSpace(countStr), 64)
		if err != nil {
			return &ParseError{File: path, Line: lineNo, Err: err}
		}
		if numFeatures <= 0 || count/numFeatures <= maxUsed {
			break
		}
		kept = append(kept, retained{gram, count})
		total += count
	}
	if err := sc.Err(); err != nil {
		return &IoError{Path: path, Err: err}
	}

	for _, r := range kept {
		score := float32(-math.Log10(r.count / total))
		table.Put(r.gram, LangScore{Lang: lang, Score: score})
	}
	return nil
}

// BuildTables runs the retention-and-merge pipeline for every order,
// building the seven tables in parallel (one goroutine per order; every
// goroutine runs to completion and the first error is returned), following
// the teacher's Builder in
// spirit: an all-or-nothing construction, just fanned out across orders
// instead of states.
func (b *ModelBuilder) BuildTables(languages []Lang) ([NumOrders]*NgramTable, error) {
	var tables [NumOrders]*NgramTable
	var g errgroup.Group
	for o := 0; o < NumOrders; o++ {
		order := OrderNgram(o)
		g.Go(func() error {
			t, err := buildOrderTable(b.InputDir, order, languages)
			if err != nil {
				return fmt.Errorf("building %s table: %w", order, err)
			}
			tables[order] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return tables, err
	}
	return tables, nil
}

// Build runs the full pipeline: read languagelist, build all seven
// tables, load confidenceThresholds, then write seven binary snapshots
// plus a verbatim copy of confidenceThresholds into outputDir.
func (b *ModelBuilder) Build(outputDir string) error {
	languages, err := ReadLanguageList(filepath.Join(b.InputDir, "languagelist"))
	if err != nil {
		return err
	}
	tables, err := b.BuildTables(languages)
	if err != nil {
		return err
	}
	if _, err := ReadConfidenceThresholds(filepath.Join(b.InputDir, "confidenceThresholds"), b.Strict); err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return &IoError{Path: outputDir, Err: err}
	}
	for o := 0; o < NumOrders; o++ {
		order := OrderNgram(o)
		path := filepath.Join(outputDir, order.String()+".bin")
		if err := tables[order].WriteFile(path); err != nil {
			return err
		}
	}
	return copyConfidenceThresholds(
		filepath.Join(b.InputDir, "confidenceThresholds"),
		filepath.Join(outputDir, "confidenceThresholds"),
	)
}

// copyConfidenceThresholds copies the confidenceThresholds file verbatim,
// after Build has already parsed it once to validate it.
func copyConfidenceThresholds(src, dst string) error {
	in, err := os.ReadFile(src)
	if err != nil {
		return &IoError{Path: src, Err: err}
	}
	if err := os.WriteFile(dst, in, 0o644); err != nil {
		return &IoError{Path: dst, Err: err}
	}
	return nil
}
