package heli

import (
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// ModelBundle owns all scoring data for one loaded model: the seven
// order-indexed NgramTables and a per-language confidence threshold
// vector. Once built or loaded it is treated as logically immutable and
// shared by reference across every ScoringEngine, mirroring the way the
// teacher's Hashed/Sorted models are read-only after construction
// (hashed.go, sorted.go).
type ModelBundle struct {
	tables     [NumOrders]*NgramTable
	confidence ScoreVector
}

// Table returns the NgramTable for order.
func (m *ModelBundle) Table(order OrderNgram) *NgramTable { return m.tables[order] }

// Confidence returns the threshold for lang, 0.0 if lang has none.
func (m *ModelBundle) Confidence(lang Lang) float32 { return m.confidence.Get(lang) }

// LoadModelBundle loads a bundle from seven "<order>.bin" snapshots plus a
// confidenceThresholds file inside dir. The seven snapshots are decoded
// concurrently, one task per order; the confidence file is read
// synchronously by the calling goroutine once that fan-out completes.
func LoadModelBundle(dir string, strict bool) (*ModelBundle, error) {
	bundle := &ModelBundle{}
	var g errgroup.Group
	for o := 0; o < NumOrders; o++ {
		order := OrderNgram(o)
		g.Go(func() error {
			path := filepath.Join(dir, order.String()+".bin")
			t, err := ReadNgramTableFile(path, order)
			if err != nil {
				return fmt.Errorf("loading %s: %w", order, err)
			}
			bundle.tables[order] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	confidence, err := ReadConfidenceThresholds(filepath.Join(dir, "confidenceThresholds"), strict)
	if err != nil {
		return nil, err
	}
	bundle.confidence = confidence
	return bundle, nil
}

// BuildModelBundleFromText rebuilds a bundle entirely in memory from a
// ModelBuilder's input directory, with no snapshot round trip.
func BuildModelBundleFromText(inputDir string, strict bool) (*ModelBundle, error) {
	languages, err := ReadLanguageList(filepath.Join(inputDir, "languagelist"))
	if err != nil {
		return nil, err
	}
	return buildModelBundleFromText(inputDir, languages, strict)
}

// BuildModelBundleFromTextAllowList is BuildModelBundleFromText restricted
// to an explicit allow-list of languages instead of the full
// languagelist (loader mode (c)).
func BuildModelBundleFromTextAllowList(inputDir string, allow []Lang, strict bool) (*ModelBundle, error) {
	return buildModelBundleFromText(inputDir, allow, strict)
}

func buildModelBundleFromText(inputDir string, languages []Lang, strict bool) (*ModelBundle, error) {
	builder := NewModelBuilder(inputDir, strict)
	tables, err := builder.BuildTables(languages)
	if err != nil {
		return nil, err
	}
	confidence, err := ReadConfidenceThresholds(filepath.Join(inputDir, "confidenceThresholds"), strict)
	if err != nil {
		return nil, err
	}
	return &ModelBundle{tables: tables, confidence: confidence}, nil
}
