package decode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/bintree"
	"github.com/katalvlaran/lvtree/decode"
)

func mustBuild(t *testing.T, pre, in []int) *bintree.Node[int] {
	t.Helper()
	root, err := bintree.Build(pre, in)
	require.NoError(t, err)

	return root
}

// lopsided:
//
//	  1
//	 / \
//	2   3
//	   /
//	  4
func lopsided(t *testing.T) *bintree.Node[int] {
	return mustBuild(t, []int{1, 2, 3, 4}, []int{2, 1, 4, 3})
}

func TestDecode_ConcreteExample(t *testing.T) {
	root := mustBuild(t, []int{1, 2, 3}, []int{2, 1, 3})

	got, err := decode.Decode(root, "01")
	require.NoError(t, err)
	assert.Equal(t, "23", got)
}

func TestDecode_EmptyBits(t *testing.T) {
	root := mustBuild(t, []int{1, 2, 3}, []int{2, 1, 3})

	got, err := decode.Decode(root, "")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	vals, err := decode.Values(root, "")
	require.NoError(t, err)
	assert.Empty(t, vals)
}

func TestDecode_MultiDigitValues(t *testing.T) {
	root := mustBuild(t, []int{10, 205, 3}, []int{205, 10, 3})

	got, err := decode.Decode(root, "0110")
	require.NoError(t, err)
	assert.Equal(t, "20533205", got)

	vals, err := decode.Values(root, "0110")
	require.NoError(t, err)
	assert.Equal(t, []int{205, 3, 3, 205}, vals)
}

func TestDecode_LeftChain(t *testing.T) {
	// 4 -> 3 -> 2 -> 1 along left children; depth 3 below the root.
	root := mustBuild(t, []int{4, 3, 2, 1}, []int{1, 2, 3, 4})

	d, err := decode.New(root)
	require.NoError(t, err)
	require.NoError(t, d.Feed("00000"))

	assert.Equal(t, []int{1}, d.Values())
	assert.True(t, d.Pending(), "two bits into the second epoch")
	assert.False(t, d.Stuck())

	require.NoError(t, d.Feed("0"))
	assert.Equal(t, []int{1, 1}, d.Values())
	assert.False(t, d.Pending())
	assert.Equal(t, "11", d.String())
}

func TestDecode_SingleNodeTree(t *testing.T) {
	root := mustBuild(t, []int{7}, []int{7})

	got, err := decode.Decode(root, "0110")
	require.NoError(t, err)
	assert.Equal(t, "7777", got)
}

func TestDecode_StuckPolicies(t *testing.T) {
	cases := []struct {
		name   string
		policy decode.StuckPolicy
		bits   string
		want   string
		err    error
	}{
		{"discard drops the rest", decode.DiscardRemaining, "01100", "2", nil},
		{"discard still validates", decode.DiscardRemaining, "011x", "", decode.ErrInvalidBit},
		{"fail", decode.FailOnStuck, "01100", "", decode.ErrStuck},
		{"reset", decode.ResetToRoot, "01110", "24", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := decode.Decode(lopsided(t), tc.bits, decode.WithStuckPolicy(tc.policy))
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecoder_StuckState(t *testing.T) {
	d, err := decode.New(lopsided(t))
	require.NoError(t, err)

	require.NoError(t, d.Feed("11"))
	assert.True(t, d.Stuck())
	assert.False(t, d.Pending())

	require.NoError(t, d.Feed("0000"))
	assert.Empty(t, d.Values())
	assert.Equal(t, 6, d.Offset())

	d.Reset()
	assert.False(t, d.Stuck())
	assert.Equal(t, 0, d.Offset())
	require.NoError(t, d.Feed("10"))
	assert.Equal(t, []int{4}, d.Values())
}

func TestDecoder_ValuesIsACopy(t *testing.T) {
	d, err := decode.New(lopsided(t))
	require.NoError(t, err)
	require.NoError(t, d.Feed("0"))

	v := d.Values()
	require.Equal(t, []int{2}, v)
	v[0] = 99

	assert.Equal(t, []int{2}, d.Values())
	assert.Equal(t, "2", d.String())
}

func TestDecoder_Step(t *testing.T) {
	d, err := decode.New(lopsided(t))
	require.NoError(t, err)

	_, emitted, err := d.Step('1')
	require.NoError(t, err)
	assert.False(t, emitted)

	v, emitted, err := d.Step('0')
	require.NoError(t, err)
	assert.True(t, emitted)
	assert.Equal(t, 4, v)
}

func TestDecode_InvalidBit(t *testing.T) {
	_, err := decode.Decode(lopsided(t), "0 1")
	assert.ErrorIs(t, err, decode.ErrInvalidBit)
	assert.Contains(t, err.Error(), "bit 1")
}

func TestDecode_NilTree(t *testing.T) {
	_, err := decode.New[int](nil)
	assert.ErrorIs(t, err, decode.ErrNilTree)

	got, err := decode.Decode[int](nil, "")
	assert.NoError(t, err)
	assert.Equal(t, "", got)

	_, err = decode.Decode[int](nil, "0")
	assert.ErrorIs(t, err, decode.ErrNilTree)
}

func TestParseStuckPolicy(t *testing.T) {
	for _, p := range []decode.StuckPolicy{decode.DiscardRemaining, decode.FailOnStuck, decode.ResetToRoot} {
		got, err := decode.ParseStuckPolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	got, err := decode.ParseStuckPolicy("")
	require.NoError(t, err)
	assert.Equal(t, decode.DiscardRemaining, got)

	_, err = decode.ParseStuckPolicy("retry")
	assert.ErrorIs(t, err, decode.ErrUnknownPolicy)
}

func TestWithStuckPolicy_PanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() { decode.WithStuckPolicy(decode.StuckPolicy(42)) })
}
