package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWholeArrayShortcut(t *testing.T) {
	shape := []int64{4, 3, 2}
	// A lone ":" selects everything, the same as one ":" per dimension.
	one, err := Translate("v", shape, All())
	require.NoError(t, err)
	three, err := Translate("v", shape, All(), All(), All())
	require.NoError(t, err)
	assert.Equal(t, three, one)
	assert.Equal(t, Section{
		First:  []int64{1, 1, 1},
		Last:   []int64{4, 3, 2},
		Stride: []int64{1, 1, 1},
	}, one)
}

func TestTrailingDimensionsDefault(t *testing.T) {
	sec, err := Translate("v", []int64{4, 3, 2}, At(2))
	require.NoError(t, err)
	assert.Equal(t, Section{
		First:  []int64{2, 1, 1},
		Last:   []int64{2, 3, 2},
		Stride: []int64{1, 1, 1},
	}, sec)
}

func TestTooManyExpressions(t *testing.T) {
	_, err := Translate("v", []int64{4}, All(), All())
	assert.ErrorIs(t, err, ErrRankMismatch)
}

func TestEndRelative(t *testing.T) {
	shape := []int64{10}

	sec, err := Translate("v", shape, Span(EndMinus(2), End()))
	require.NoError(t, err)
	assert.Equal(t, Section{First: []int64{8}, Last: []int64{10}, Stride: []int64{1}}, sec)

	sec, err = Translate("v", shape, At(-1))
	require.NoError(t, err)
	assert.Equal(t, Section{First: []int64{10}, Last: []int64{10}, Stride: []int64{1}}, sec)

	sec, err = Translate("v", shape, AtEnd(3))
	require.NoError(t, err)
	assert.Equal(t, Section{First: []int64{7}, Last: []int64{7}, Stride: []int64{1}}, sec)
}

func TestStridedRange(t *testing.T) {
	sec, err := Translate("v", []int64{10}, SpanStride(Lit(1), 2, Lit(9)))
	require.NoError(t, err)
	assert.Equal(t, Section{First: []int64{1}, Last: []int64{9}, Stride: []int64{2}}, sec)
	assert.Equal(t, []int64{5}, sec.Counts())
}

func TestTranslateOutOfRange(t *testing.T) {
	shape := []int64{10}
	for _, e := range []IndexExpr{
		At(0),
		At(11),
		At(-11),
		AtEnd(10),
		Span(Lit(8), Lit(5)),
		SpanStride(Lit(1), 0, Lit(5)),
	} {
		_, err := Translate("v", shape, e)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	}
}

func TestParseExpr(t *testing.T) {
	shape := []int64{10}
	tests := []struct {
		expr  string
		first int64
		last  int64
		step  int64
	}{
		{":", 1, 10, 1},
		{"7", 7, 7, 1},
		{"-1", 10, 10, 1},
		{"end", 10, 10, 1},
		{"end-2", 8, 8, 1},
		{"2:10", 2, 10, 1},
		{"2:3:end", 2, 10, 3},
		{"end-2:end", 8, 10, 1},
		{" 2 : 10 ", 2, 10, 1},
	}
	for _, tt := range tests {
		e, err := ParseExpr(tt.expr)
		require.NoError(t, err, tt.expr)
		sec, err := Translate("v", shape, e)
		require.NoError(t, err, tt.expr)
		assert.Equal(t, Section{
			First:  []int64{tt.first},
			Last:   []int64{tt.last},
			Stride: []int64{tt.step},
		}, sec, tt.expr)
	}
}

func TestParseExprBad(t *testing.T) {
	for _, s := range []string{"", "a", "1:b", "1:2:3:4", "end+1", "end-"} {
		_, err := ParseExpr(s)
		assert.ErrorIs(t, err, ErrBadExpression, s)
	}
}

func TestParseExprs(t *testing.T) {
	exprs, err := ParseExprs("2:3", ":", "end")
	require.NoError(t, err)
	sec, err := Translate("v", []int64{4, 3, 2}, exprs...)
	require.NoError(t, err)
	assert.Equal(t, Section{
		First:  []int64{2, 1, 2},
		Last:   []int64{3, 3, 2},
		Stride: []int64{1, 1, 1},
	}, sec)

	_, err = ParseExprs("1", "oops")
	assert.ErrorIs(t, err, ErrBadExpression)
}
