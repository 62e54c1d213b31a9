package engine

import (
	"errors"
	"io"
	"log/slog"
	"slices"
	"sort"

	"github.com/piwi3910/CratePack/internal/model"
)

// ErrAlreadyPacked is returned by a second call to Packer.Pack.
var ErrAlreadyPacked = errors.New("packer: Pack may only be called once")

// Packer places items into bins with a first-fit, extreme-point search.
//
// Items are tried by descending volume (ties in insertion order). For each
// item, bins are tried in insertion order, anchors in (z, y, x) order and
// rotations in the item's declared order; the first combination that is
// contained in the bin and overlaps no placed item wins. Items that fit
// nowhere end up in UnfitItems. There is no backtracking.
//
// A Packer owns its bins and items while Pack runs and is not safe for
// concurrent use. Pack is meant to be called once per Packer.
type Packer struct {
	bins   []*Bin
	items  []*Item
	unfit  []*Item
	packed bool
	log    *slog.Logger
}

// PackerOption configures a Packer.
type PackerOption func(*Packer)

// WithLogger sets the diagnostics sink. Placement decisions are logged at
// debug level.
func WithLogger(l *slog.Logger) PackerOption {
	return func(p *Packer) {
		if l != nil {
			p.log = l
		}
	}
}

func NewPacker(opts ...PackerOption) *Packer {
	p := &Packer{
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AddBin appends a bin. Earlier bins are always tried first. Adding a bin
// that is already registered is a no-op.
func (p *Packer) AddBin(b *Bin) {
	if b == nil {
		return
	}
	if slices.Contains(p.bins, b) {
		p.log.Debug("bin already added", "bin", b.Name())
		return
	}
	p.bins = append(p.bins, b)
}

// AddItem appends an item. Adding an item that is already registered is a
// no-op, so each item is placed or reported unfit exactly once.
func (p *Packer) AddItem(it *Item) {
	if it == nil {
		return
	}
	if slices.Contains(p.items, it) {
		p.log.Debug("item already added", "item", it.Name())
		return
	}
	p.items = append(p.items, it)
}

// Bins returns the bins in insertion order.
func (p *Packer) Bins() []*Bin {
	return append([]*Bin(nil), p.bins...)
}

// Items returns every added item in insertion order.
func (p *Packer) Items() []*Item {
	return append([]*Item(nil), p.items...)
}

// UnfitItems returns the items the last run could not place, in the order
// they were tried.
func (p *Packer) UnfitItems() []*Item {
	return append([]*Item(nil), p.unfit...)
}

// Pack runs the placement once. Not fitting is not an error: such items are
// reported by UnfitItems. The only error is ErrAlreadyPacked.
func (p *Packer) Pack() error {
	if p.packed {
		return ErrAlreadyPacked
	}
	p.packed = true

	for i, b := range p.bins {
		b.reset(i)
	}
	for _, it := range p.items {
		it.unplace()
	}
	p.unfit = nil

	p.log.Debug("pack started", "items", len(p.items), "bins", len(p.bins))

	for _, it := range p.placementOrder() {
		if p.placeItem(it) {
			continue
		}
		p.unfit = append(p.unfit, it)
		p.log.Debug("item unfit", "item", it.name, "dims", it.base.String())
	}

	p.log.Debug("pack finished",
		"placed", len(p.items)-len(p.unfit),
		"unfit", len(p.unfit),
	)
	return nil
}

// placementOrder sorts by descending base volume, keeping insertion order
// between equal volumes.
func (p *Packer) placementOrder() []*Item {
	order := append([]*Item(nil), p.items...)
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Volume() > order[j].Volume()
	})
	return order
}

func (p *Packer) placeItem(it *Item) bool {
	for _, b := range p.bins {
		for _, anchor := range b.Anchors() {
			if it.bottomLoadOnly && anchor.Z > model.Epsilon {
				continue
			}
			for _, rot := range it.rotations {
				dims := rot.Apply(it.base)
				if !b.Fits(dims, anchor) {
					continue
				}
				if b.blocked(it, model.Box{Min: anchor, Size: dims}) {
					continue
				}
				b.accept(it, anchor, rot)
				p.log.Debug("item placed",
					"item", it.name,
					"bin", b.name,
					"anchor", anchor.String(),
					"rotation", rot.Tag(),
				)
				return true
			}
		}
	}
	return false
}
