package decochain

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chainDoc = `
leaf:
  shape: square
  size: 4
wrappers:
  - kind: color
    value: red
  - kind: transparency
    value: "20.5"
`

func Test_ChainSpec(t *testing.T) {
	t.Run("should parse a chain document", func(t *testing.T) {
		spec, err := ParseChainSpec(strings.NewReader(chainDoc))
		require.NoError(t, err)

		want := &ChainSpec{
			Leaf: LeafSpec{Shape: "square", Size: 4},
			Wrappers: []WrapperSpec{
				{Kind: "color", Value: "red"},
				{Kind: "transparency", Value: "20.5"},
			},
		}
		if diff := cmp.Diff(want, spec); diff != "" {
			t.Errorf("spec mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should reject unknown fields", func(t *testing.T) {
		_, err := ParseChainSpec(strings.NewReader("leaf: {shape: square, colour: red}\n"))
		assert.Error(t, err)
	})

	t.Run("should reject an empty document", func(t *testing.T) {
		_, err := ParseChainSpec(strings.NewReader(""))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("should parse kind=value flags", func(t *testing.T) {
		w, err := ParseWrapperSpec("color=dark red")
		require.NoError(t, err)
		assert.Equal(t, WrapperSpec{Kind: "color", Value: "dark red"}, w)

		_, err = ParseWrapperSpec("color")
		assert.ErrorIs(t, err, ErrInvalidArgument)
		_, err = ParseWrapperSpec("=red")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func Test_Builder(t *testing.T) {
	t.Run("should build wrappers innermost first", func(t *testing.T) {
		spec, err := ParseChainSpec(strings.NewReader(chainDoc))
		require.NoError(t, err)

		c, err := NewBuilder(DefaultRegistry()).Build(*spec)
		require.NoError(t, err)
		assert.Equal(t, "Square with 4 cm side length has the color red with transparency 20.5%", c.Describe())
	})

	t.Run("should return the bare leaf without wrappers", func(t *testing.T) {
		c, err := NewBuilder(DefaultRegistry()).Build(ChainSpec{Leaf: LeafSpec{Shape: "circle", Size: 5}})
		require.NoError(t, err)
		assert.Equal(t, Circle{Radius: 5}, c)
	})

	t.Run("should surface a cycle violation with the wrapper index", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		spec := ChainSpec{
			Leaf: LeafSpec{Shape: "square", Size: 4},
			Wrappers: []WrapperSpec{
				{Kind: "color", Value: "red"},
				{Kind: "colour", Value: "green"},
			},
		}
		c, err := NewBuilder(DefaultRegistry(), WithBuilderLogger(logger)).Build(spec)
		assert.Nil(t, c)
		require.ErrorIs(t, err, ErrCycleViolation)
		assert.Contains(t, err.Error(), "wrapper 1 (colour=green)")
		assert.Contains(t, buf.String(), "wrapper not built")
	})

	t.Run("should leave reporting the failure to the caller at info level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		spec := ChainSpec{
			Leaf: LeafSpec{Shape: "square", Size: 4},
			Wrappers: []WrapperSpec{
				{Kind: "color", Value: "red"},
				{Kind: "color", Value: "green"},
			},
		}
		_, err := NewBuilder(DefaultRegistry(), WithBuilderLogger(logger)).Build(spec)
		require.ErrorIs(t, err, ErrCycleViolation)
		assert.Empty(t, buf.String())
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		b := NewBuilder(DefaultRegistry())
		_, err := b.Build(ChainSpec{Leaf: LeafSpec{Shape: "hexagon"}})
		assert.ErrorIs(t, err, ErrInvalidArgument)

		_, err = b.Build(ChainSpec{
			Leaf:     LeafSpec{Shape: "square", Size: 1},
			Wrappers: []WrapperSpec{{Kind: "glow", Value: "on"}},
		})
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Contains(t, err.Error(), "wrapper 0")
	})

	t.Run("should reject a bad leaf and a nil registry", func(t *testing.T) {
		_, err := NewBuilder(DefaultRegistry()).Build(ChainSpec{Leaf: LeafSpec{Shape: "circle", Size: -2}})
		assert.ErrorIs(t, err, ErrInvalidArgument)

		_, err = NewBuilder(nil).Build(ChainSpec{})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func Test_Layers(t *testing.T) {
	red, err := NewColoredShape(Square{Side: 4}, "red")
	require.NoError(t, err)
	seeThrough, err := NewTransparentShape(red, 50)
	require.NoError(t, err)

	got := Layers(seeThrough)
	want := []Layer{
		{
			Depth:       0,
			Tag:         TransparencyTag,
			Policy:      "permissive",
			History:     History{ColorTag, TransparencyTag},
			Applied:     true,
			Description: "Square with 4 cm side length has the color red with transparency 50%",
		},
		{
			Depth:       1,
			Tag:         ColorTag,
			Policy:      "strict",
			History:     History{ColorTag},
			Applied:     true,
			Description: "Square with 4 cm side length has the color red",
		},
		{
			Depth:       2,
			Applied:     true,
			Description: "Square with 4 cm side length",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("layers mismatch (-want +got):\n%s", diff)
	}

	assert.Len(t, Layers(Circle{Radius: 1}), 1)
	assert.Empty(t, Layers(nil))
}
