package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/piwi3910/CratePack/internal/model"
)

// ParseBinSpec parses the inline bin form NAME:WxHxD[:QTY], e.g.
// "Carton:40x30x20:5". The quantity defaults to 1.
func ParseBinSpec(s string) (model.BinSpec, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return model.BinSpec{}, fmt.Errorf("bin %q: want NAME:WxHxD[:QTY]", s)
	}

	name := strings.TrimSpace(parts[0])
	if name == "" {
		return model.BinSpec{}, fmt.Errorf("bin %q: empty name", s)
	}

	dims := strings.FieldsFunc(strings.ToLower(parts[1]), func(r rune) bool {
		return r == 'x' || r == '*'
	})
	if len(dims) != 3 {
		return model.BinSpec{}, fmt.Errorf("bin %q: want three dimensions, got %q", s, parts[1])
	}
	var v [3]float64
	for i, d := range dims {
		f, err := strconv.ParseFloat(strings.TrimSpace(d), 64)
		if err != nil {
			return model.BinSpec{}, fmt.Errorf("bin %q: %w", s, err)
		}
		v[i] = f
	}
	if _, err := model.NewDimensions(v[0], v[1], v[2]); err != nil {
		return model.BinSpec{}, fmt.Errorf("bin %q: %w", s, err)
	}

	qty := 1
	if len(parts) == 3 {
		n, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil || n < 1 {
			return model.BinSpec{}, fmt.Errorf("bin %q: invalid quantity %q", s, parts[2])
		}
		qty = n
	}

	return model.NewBinSpec(name, v[0], v[1], v[2], qty), nil
}
