package boardcoord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cttdev/mags/boardcoord"
	"github.com/cttdev/mags/geom"
)

func TestSquareCorners(t *testing.T) {
	b := boardcoord.New(400, 400)

	a1, err := b.Square('a', '1')
	require.NoError(t, err)
	assert.InDelta(t, 25, a1.X, 1e-9)
	assert.InDelta(t, 25, a1.Y, 1e-9)

	h8, err := b.Square('h', '8')
	require.NoError(t, err)
	assert.InDelta(t, 375, h8.X, 1e-9)
	assert.InDelta(t, 375, h8.Y, 1e-9)
}

func TestSquareInvalid(t *testing.T) {
	b := boardcoord.New(400, 400)

	_, err := b.Square('i', '1')
	assert.ErrorIs(t, err, boardcoord.ErrInvalidSquare)

	_, err = b.Square('a', '9')
	assert.ErrorIs(t, err, boardcoord.ErrInvalidSquare)
}

func TestFromPointRoundTrip(t *testing.T) {
	b := boardcoord.New(400, 400)

	for _, sq := range []struct{ file, rank byte }{
		{'a', '1'}, {'d', '4'}, {'h', '8'}, {'e', '2'},
	} {
		p, err := b.Square(sq.file, sq.rank)
		require.NoError(t, err)

		file, rank, err := b.FromPoint(p, 1e-6)
		require.NoError(t, err)
		assert.Equal(t, sq.file, file)
		assert.Equal(t, sq.rank, rank)
	}
}

func TestFromPointOffBoard(t *testing.T) {
	b := boardcoord.New(400, 400)

	_, _, err := b.FromPoint(geom.Point{X: 1000, Y: 1000}, 1e-6)
	assert.ErrorIs(t, err, boardcoord.ErrOffBoard)
}

func TestNewPanicsOnNonPositiveDimensions(t *testing.T) {
	assert.Panics(t, func() { boardcoord.New(0, 400) })
	assert.Panics(t, func() { boardcoord.New(400, -1) })
}
