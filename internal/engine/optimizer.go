package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/piwi3910/CratePack/internal/model"
)

// ErrVerification is returned when Settings.Verify is on and the packed
// result breaks containment, overlap or conservation.
var ErrVerification = errors.New("packing verification failed")

// Optimizer runs a packing job described by model specs.
type Optimizer struct {
	Settings model.PackSettings
	Logger   *slog.Logger
}

func New(settings model.PackSettings) *Optimizer {
	return &Optimizer{
		Settings: settings,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger sets the logger handed to the Packer.
func (o *Optimizer) WithLogger(l *slog.Logger) *Optimizer {
	if l != nil {
		o.Logger = l
	}
	return o
}

// Optimize expands quantities, packs, and returns the result in bin
// insertion order. A Quantity below 1 counts as 1. Malformed specs fail
// before anything is packed.
func (o *Optimizer) Optimize(items []model.ItemSpec, bins []model.BinSpec) (model.PackResult, error) {
	packer := NewPacker(WithLogger(o.Logger))

	var binSpecs []model.BinSpec
	for _, spec := range bins {
		for i := 0; i < quantity(spec.Quantity); i++ {
			cp := spec
			cp.Quantity = 1
			b, err := NewBin(spec.Name, spec.Dimensions())
			if err != nil {
				return model.PackResult{}, fmt.Errorf("bin %q: %w", spec.Name, err)
			}
			packer.AddBin(b)
			binSpecs = append(binSpecs, cp)
		}
	}

	specOf := make(map[*Item]model.ItemSpec)
	for _, spec := range items {
		var opts []ItemOption
		if spec.BottomLoadOnly {
			opts = append(opts, WithBottomLoadOnly())
		}
		if spec.DisableStacking {
			opts = append(opts, WithDisableStacking())
		}
		rotations := o.Settings.RotationsFor(spec)
		for i := 0; i < quantity(spec.Quantity); i++ {
			cp := spec
			cp.Quantity = 1
			cp.Rotations = rotations
			it, err := NewItem(spec.Name, spec.Dimensions(), rotations, spec.Color, opts...)
			if err != nil {
				return model.PackResult{}, fmt.Errorf("item %q: %w", spec.Name, err)
			}
			packer.AddItem(it)
			specOf[it] = cp
		}
	}

	if err := packer.Pack(); err != nil {
		return model.PackResult{}, err
	}

	result := model.PackResult{
		Bins:       make([]model.BinResult, len(binSpecs)),
		UnfitItems: []model.ItemSpec{},
	}
	for i, b := range packer.Bins() {
		br := model.BinResult{Bin: binSpecs[i], Placements: []model.Placement{}}
		for _, it := range b.Items() {
			pos, _ := it.Position()
			rot, _ := it.RotationType()
			br.Placements = append(br.Placements, model.Placement{
				Item:     specOf[it],
				Position: pos,
				Rotation: rot,
			})
		}
		result.Bins[i] = br
	}
	for _, it := range packer.UnfitItems() {
		result.UnfitItems = append(result.UnfitItems, specOf[it])
	}

	if o.Settings.Verify {
		if violations := Verify(result, len(packer.Items())); len(violations) > 0 {
			for _, v := range violations {
				o.Logger.Error("verification failed", "kind", v.Kind, "detail", v.Detail)
			}
			return result, fmt.Errorf("%w: %d violation(s), first: %s", ErrVerification, len(violations), violations[0])
		}
	}
	return result, nil
}

func quantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}
