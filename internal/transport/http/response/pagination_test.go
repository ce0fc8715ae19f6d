package response

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaginated(t *testing.T) {
	p := NewPaginated([]int{1, 2, 3}, 25, 2, 10)

	assert.Equal(t, int64(25), p.Total)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 10, p.Size)
	assert.Equal(t, 3, p.Pages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

func TestNewPaginatedBordes(t *testing.T) {
	// primera página
	p := NewPaginated([]int{1}, 25, 1, 10)
	assert.False(t, p.HasPrev)
	assert.True(t, p.HasNext)

	// última página
	p = NewPaginated([]int{1}, 25, 3, 10)
	assert.True(t, p.HasPrev)
	assert.False(t, p.HasNext)

	// colección vacía
	p = NewPaginated[int](nil, 0, 1, 10)
	assert.Equal(t, 0, p.Pages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestNewPaginatedTamanoCeroNoDivide(t *testing.T) {
	assert.NotPanics(t, func() {
		p := NewPaginated([]int{}, 5, 1, 0)
		assert.Equal(t, 0, p.Pages)
		assert.False(t, p.HasNext)
	})
}

func TestPaginatedItemsNuncaEsNull(t *testing.T) {
	p := NewPaginated[string](nil, 0, 1, 10)

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"items":[]`)
}

func TestParamsOffset(t *testing.T) {
	p := Params{Page: 3, Size: 10}
	assert.Equal(t, 20, p.Offset())
	assert.Equal(t, 10, p.Limit())

	p = Params{Page: 1, Size: 25}
	assert.Equal(t, 0, p.Offset())
}
