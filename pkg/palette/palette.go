// Package palette holds the static per-season color data and assembles
// the palette returned with an analysis. The dataset is curated styling
// data, not computed from the photo.
package palette

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dixieflatline76/Tone/pkg/season"
)

// ColorItem is a single named color.
type ColorItem struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Pair couples a color that works for the season with a visually similar
// one from the same hue family that doesn't.
type Pair struct {
	Do   ColorItem `json:"do"`
	Dont ColorItem `json:"dont"`
}

// Gradient is an ordered light-to-dark hex run for one hue family.
// BestRange holds one or two inclusive [start, end] index intervals into
// Gradient marking the sub-range that flatters the season; a split ideal
// zone (light end and dark end both work) is expressed as four indices.
type Gradient struct {
	Family      string   `json:"family"`
	Description string   `json:"description"`
	Gradient    []string `json:"gradient"`
	BestRange   []int    `json:"best_range"`
}

// Description carries the season's styling notes.
type Description struct {
	Summary         string `json:"description"`
	Characteristics string `json:"characteristics"`
	BestColors      string `json:"best_colors"`
	Avoid           string `json:"avoid"`
	Metals          string `json:"metals"`
	Tips            string `json:"tips"`
}

// Palette is the complete curated dataset for one season.
type Palette struct {
	Neutrals    []ColorItem `json:"neutrals"`
	Accents     []ColorItem `json:"accents"`
	Avoid       []ColorItem `json:"avoid"`
	Pairs       []Pair      `json:"do_dont_pairs"`
	Gradients   []Gradient  `json:"color_gradients"`
	Description Description `json:"description"`
	Swatch      []string    `json:"swatch"`
}

// Provider serves the immutable season palettes. Built once at startup,
// safe for concurrent reads.
type Provider struct {
	palettes map[season.Season]Palette
}

// NewProvider validates the static dataset and returns a read-only
// provider over it.
func NewProvider() (*Provider, error) {
	p := &Provider{palettes: make(map[season.Season]Palette, len(season.All))}
	for _, s := range season.All {
		pal, ok := palettes[s]
		if !ok {
			return nil, fmt.Errorf("palette dataset missing season %s", s)
		}
		if err := validatePalette(s, pal); err != nil {
			return nil, err
		}
		p.palettes[s] = pal
	}
	return p, nil
}

// Assemble returns the palette for the given season. Pure lookup.
func (p *Provider) Assemble(s season.Season) Palette {
	return p.palettes[s]
}

// Swatches returns the representative hex swatch per season, keyed by
// short season name. Used by the seasons listing endpoint.
func (p *Provider) Swatches() map[string][]string {
	out := make(map[string][]string, len(p.palettes))
	for s, pal := range p.palettes {
		out[s.String()] = pal.Swatch
	}
	return out
}

func validatePalette(s season.Season, pal Palette) error {
	for _, group := range [][]ColorItem{pal.Neutrals, pal.Accents, pal.Avoid} {
		for _, item := range group {
			if err := checkHex(s, item.Hex); err != nil {
				return err
			}
		}
	}
	for _, pair := range pal.Pairs {
		if err := checkHex(s, pair.Do.Hex); err != nil {
			return err
		}
		if err := checkHex(s, pair.Dont.Hex); err != nil {
			return err
		}
	}
	for _, hex := range pal.Swatch {
		if err := checkHex(s, hex); err != nil {
			return err
		}
	}
	for _, g := range pal.Gradients {
		for _, hex := range g.Gradient {
			if err := checkHex(s, hex); err != nil {
				return err
			}
		}
		if err := checkBestRange(s, g); err != nil {
			return err
		}
	}
	return nil
}

func checkHex(s season.Season, hex string) error {
	if _, err := colorful.Hex(hex); err != nil {
		return fmt.Errorf("%s palette: invalid hex %q: %w", s, hex, err)
	}
	return nil
}

func checkBestRange(s season.Season, g Gradient) error {
	n := len(g.BestRange)
	if n != 2 && n != 4 {
		return fmt.Errorf("%s palette: gradient %q best_range must hold 2 or 4 indices, got %d", s, g.Family, n)
	}
	for i := 0; i < n; i += 2 {
		lo, hi := g.BestRange[i], g.BestRange[i+1]
		if lo < 0 || hi >= len(g.Gradient) || lo > hi {
			return fmt.Errorf("%s palette: gradient %q best_range [%d,%d] out of bounds", s, g.Family, lo, hi)
		}
	}
	// Two sub-ranges must not overlap.
	if n == 4 && g.BestRange[1] >= g.BestRange[2] {
		return fmt.Errorf("%s palette: gradient %q best_range sub-ranges overlap", s, g.Family)
	}
	return nil
}
