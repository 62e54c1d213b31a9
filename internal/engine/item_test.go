package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/piwi3910/CratePack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem_RejectsBadDimensions(t *testing.T) {
	tests := []struct {
		name  string
		dims  model.Dimensions
		field string
	}{
		{"zero width", dims(0, 1, 1), "width"},
		{"negative height", dims(1, -2, 1), "height"},
		{"zero depth", dims(1, 1, 0), "depth"},
		{"infinite width", dims(math.Inf(1), 1, 1), "width"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewItem("box", tt.dims, model.AllRotations(), "")
			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrValidation))
			var ve *model.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, "item", ve.Entity)
			assert.Equal(t, "box", ve.Name)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestNewItem_RejectsEmptyRotations(t *testing.T) {
	_, err := NewItem("box", dims(1, 1, 1), nil, "")

	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrValidation))
	assert.Contains(t, err.Error(), "rotations must not be empty")
}

func TestNewItem_RejectsUnknownRotation(t *testing.T) {
	_, err := NewItem("box", dims(1, 1, 1), []model.RotationType{model.RotationType(9)}, "")

	assert.True(t, errors.Is(err, model.ErrValidation))
}

func TestNewItem_Defaults(t *testing.T) {
	it, err := NewItem("box", dims(2, 3, 4), []model.RotationType{model.RotationHDW, model.RotationWHD}, "")
	require.NoError(t, err)

	assert.Equal(t, "#000000", it.Color())
	assert.Equal(t, 24.0, it.Volume())
	assert.False(t, it.Placed())
	assert.Equal(t, -1, it.BinIndex())
	assert.False(t, it.BottomLoadOnly())
	assert.False(t, it.DisableStacking())

	_, ok := it.Position()
	assert.False(t, ok)
	_, ok = it.RotationType()
	assert.False(t, ok)
	assert.Equal(t, dims(2, 3, 4), it.Dimension(), "unplaced items report base dimensions")
	assert.Equal(t, "Item: box ((h, d, w) = 3 x 4 x 2)", it.String())
}

func TestItem_AllowedRotationsIsACopy(t *testing.T) {
	rots := []model.RotationType{model.RotationWHD, model.RotationDHW}
	it, err := NewItem("box", dims(1, 2, 3), rots, "blue")
	require.NoError(t, err)

	rots[0] = model.RotationWDH
	got := it.AllowedRotations()
	got[1] = model.RotationHWD

	assert.Equal(t, []model.RotationType{model.RotationWHD, model.RotationDHW}, it.AllowedRotations())
}

func TestItem_PlaceAndUnplace(t *testing.T) {
	it, err := NewItem("box", dims(1, 2, 3), model.AllRotations(), "")
	require.NoError(t, err)

	it.place(2, model.Point3D{X: 1, Y: 2, Z: 3}, model.RotationDWH)
	pos, ok := it.Position()
	require.True(t, ok)
	assert.Equal(t, model.Point3D{X: 1, Y: 2, Z: 3}, pos)
	assert.Equal(t, dims(3, 1, 2), it.Dimension())
	assert.Equal(t, model.Point3D{X: 4, Y: 3, Z: 5}, it.Box().Max())

	it.unplace()
	assert.False(t, it.Placed())
	assert.Equal(t, dims(1, 2, 3), it.Dimension())
}

func TestNewBin_Validation(t *testing.T) {
	_, err := NewBin("crate", dims(1, 0, 1))

	var ve *model.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "bin", ve.Entity)
	assert.Equal(t, `invalid bin "crate": height must be > 0, got 0`, err.Error())
}

func TestBin_Fits(t *testing.T) {
	b, err := NewBin("crate", dims(11, 8.5, 5.5))
	require.NoError(t, err)

	assert.True(t, b.Fits(dims(8.1, 5.2, 2.2), model.Point3D{Z: 3.3}))
	assert.False(t, b.Fits(dims(8.1, 5.2, 2.3), model.Point3D{Z: 3.3}))
	assert.False(t, b.Fits(dims(12, 1, 1), model.Point3D{}))
	assert.Equal(t, "Bin: crate (W x H x D = 11 x 8.5 x 5.5)", b.String())
}

func TestBin_AnchorsDeduplicate(t *testing.T) {
	b := mustBin(t, "b", 10, 10, 10)
	b.reset(0)
	a := mustItem(t, "a", 5, 5, 5)
	c := mustItem(t, "c", 5, 5, 5)
	d := mustItem(t, "d", 5, 5, 5)

	b.accept(a, model.Point3D{}, model.RotationWHD)
	b.accept(c, model.Point3D{X: 5}, model.RotationWHD)
	b.accept(d, model.Point3D{Y: 5}, model.RotationWHD)

	// c and d both produce (5,5,0); consumed anchors are gone.
	assert.Equal(t, []model.Point3D{
		{X: 10, Y: 0, Z: 0},
		{X: 5, Y: 5, Z: 0},
		{X: 0, Y: 10, Z: 0},
		{X: 0, Y: 0, Z: 5},
		{X: 5, Y: 0, Z: 5},
		{X: 0, Y: 5, Z: 5},
	}, b.Anchors())
	assert.Equal(t, 375.0, b.UsedVolume())
	assert.InDelta(t, 37.5, b.Efficiency(), 1e-9)
}
