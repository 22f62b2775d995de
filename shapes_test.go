package decochain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Shapes(t *testing.T) {
	t.Run("should format whole and fractional sizes", func(t *testing.T) {
		assert.Equal(t, "Square with 4 cm side length", Square{Side: 4}.Describe())
		assert.Equal(t, "Square with 2.25 cm side length", Square{Side: 2.25}.Describe())
		assert.Equal(t, "Circle with radius 5", Circle{Radius: 5}.Describe())
	})

	t.Run("should reject negative sizes", func(t *testing.T) {
		_, err := NewSquare(-1)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		_, err = NewCircle(-0.5)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("should accept zero", func(t *testing.T) {
		s, err := NewSquare(0)
		require.NoError(t, err)
		assert.Equal(t, "Square with 0 cm side length", s.Describe())
	})
}
