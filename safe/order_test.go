//go:build unit

package safe

import (
	"cmp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMax_Success(t *testing.T) {
	t.Parallel()

	slice := []int{3, 1, 2}

	result, err := Max(slice)

	assert.NoError(t, err)
	assert.Equal(t, 3, result)
}

func TestMax_EmptySlice(t *testing.T) {
	t.Parallel()

	slice := []int{}

	result, err := Max(slice)

	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptySlice)
	assert.Equal(t, 0, result)
}

func TestMax_SingleElement(t *testing.T) {
	t.Parallel()

	slice := []string{"only"}

	result, err := Max(slice)

	assert.NoError(t, err)
	assert.Equal(t, "only", result)
}

func TestMaxFunc_LeftmostDuplicate(t *testing.T) {
	t.Parallel()

	type entry struct {
		key  string
		rank int
	}

	entries := []entry{{"a", 3}, {"b", 3}, {"c", 1}}

	result, err := MaxFunc(entries, func(x, y entry) int {
		return cmp.Compare(x.rank, y.rank)
	})

	require.NoError(t, err)
	assert.Equal(t, "a", result.key)
}

func TestMin_Success(t *testing.T) {
	t.Parallel()

	slice := []int{3, 1, 2}

	result, err := Min(slice)

	assert.NoError(t, err)
	assert.Equal(t, 1, result)
}

func TestMin_EmptySlice(t *testing.T) {
	t.Parallel()

	slice := []int{}

	result, err := Min(slice)

	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptySlice)
	assert.Equal(t, 0, result)
}

func TestMinFunc_LeftmostDuplicate(t *testing.T) {
	t.Parallel()

	type entry struct {
		key  string
		rank int
	}

	entries := []entry{{"a", 1}, {"b", 1}, {"c", 3}}

	result, err := MinFunc(entries, func(x, y entry) int {
		return cmp.Compare(x.rank, y.rank)
	})

	require.NoError(t, err)
	assert.Equal(t, "a", result.key)
}

func TestMaxFunc_Decimal(t *testing.T) {
	t.Parallel()

	amounts := []decimal.Decimal{
		decimal.NewFromFloat(10.50),
		decimal.NewFromFloat(99.99),
		decimal.NewFromFloat(0.01),
	}

	result, err := MaxFunc(amounts, decimal.Decimal.Cmp)

	require.NoError(t, err)
	assert.True(t, result.Equal(decimal.NewFromFloat(99.99)))
}

func TestMaxFunc_EmptySlice(t *testing.T) {
	t.Parallel()

	slice := []decimal.Decimal{}

	result, err := MaxFunc(slice, decimal.Decimal.Cmp)

	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptySlice)
	assert.True(t, result.IsZero())
}

func TestMinFunc_Decimal(t *testing.T) {
	t.Parallel()

	amounts := []decimal.Decimal{
		decimal.NewFromFloat(10.50),
		decimal.NewFromFloat(99.99),
		decimal.NewFromFloat(0.01),
	}

	result, err := MinFunc(amounts, decimal.Decimal.Cmp)

	require.NoError(t, err)
	assert.True(t, result.Equal(decimal.NewFromFloat(0.01)))
}

func TestMinFunc_EmptySlice(t *testing.T) {
	t.Parallel()

	slice := []int{}

	result, err := MinFunc(slice, cmp.Compare[int])

	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptySlice)
	assert.Equal(t, 0, result)
}

func TestMaxOrDefault_Success(t *testing.T) {
	t.Parallel()

	slice := []int{3, 1, 2}

	result := MaxOrDefault(slice, 99)

	assert.Equal(t, 3, result)
}

func TestMaxOrDefault_EmptySlice(t *testing.T) {
	t.Parallel()

	slice := []int{}

	result := MaxOrDefault(slice, 99)

	assert.Equal(t, 99, result)
}

func TestMinOrDefault_Success(t *testing.T) {
	t.Parallel()

	slice := []int{3, 1, 2}

	result := MinOrDefault(slice, 99)

	assert.Equal(t, 1, result)
}

func TestMinOrDefault_EmptySlice(t *testing.T) {
	t.Parallel()

	slice := []int{}

	result := MinOrDefault(slice, 99)

	assert.Equal(t, 99, result)
}
