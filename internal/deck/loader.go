package deck

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat marks a deck file whose format version this build
// cannot read.
var ErrUnsupportedFormat = errors.New("unsupported deck format")

var (
	validate         = validator.New()
	formatConstraint = lo.Must(semver.NewConstraint(FormatConstraint))
)

// Load reads and validates a single deck file.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading deck %s: %w", path, err)
	}

	var d Deck
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing deck %s: %w", path, err)
	}
	if err := validate.Struct(&d); err != nil {
		return nil, fmt.Errorf("invalid deck %s: %w", path, err)
	}
	if err := checkFormat(d.Format); err != nil {
		return nil, fmt.Errorf("deck %s: %w", path, err)
	}
	return &d, nil
}

// LoadAll loads every path concurrently, preserving input order. The first
// failure cancels the remaining loads.
func LoadAll(ctx context.Context, paths []string) ([]*Deck, error) {
	decks := make([]*Deck, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			d, err := Load(path)
			if err != nil {
				return err
			}
			decks[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return decks, nil
}

// CombineSections flattens the sections of several decks into one ordered
// list, preserving deck order then section order.
func CombineSections(decks []*Deck) []Section {
	return lo.FlatMap(decks, func(d *Deck, _ int) []Section {
		return d.Sections
	})
}

// checkFormat verifies the declared format version against the supported
// constraint.
func checkFormat(format string) error {
	v, err := semver.NewVersion(format)
	if err != nil {
		return fmt.Errorf("%w: %q is not a version", ErrUnsupportedFormat, format)
	}
	if !formatConstraint.Check(v) {
		return fmt.Errorf("%w: %s (supported: %s)", ErrUnsupportedFormat, format, FormatConstraint)
	}
	return nil
}
