package client

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBareArray(t *testing.T) {
	raw := []byte(`[{"id":1},{"id":2},{"id":3}]`)

	items, meta, err := Normalize(raw)
	require.NoError(t, err)
	assert.Nil(t, meta)
	assert.JSONEq(t, string(raw), string(items))
}

func TestNormalizeEnvelope(t *testing.T) {
	raw := []byte(`{
		"items": [{"id": 1, "titulo": "A"}],
		"total": 1, "page": 1, "size": 10, "pages": 1,
		"has_next": false, "has_prev": false
	}`)

	items, meta, err := Normalize(raw)
	require.NoError(t, err)
	require.NotNil(t, meta)
	assert.Equal(t, int64(1), meta.Total)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 10, meta.Size)
	assert.False(t, meta.HasNext)
	assert.JSONEq(t, `[{"id":1,"titulo":"A"}]`, string(items))
}

func TestNormalizePreservesOrder(t *testing.T) {
	raw := []byte(`{"items":[{"id":3},{"id":1},{"id":2}],"total":3}`)

	items, _, err := Normalize(raw)
	require.NoError(t, err)

	var ids []struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(items, &ids))
	require.Len(t, ids, 3)
	assert.Equal(t, uint(3), ids[0].ID)
	assert.Equal(t, uint(1), ids[1].ID)
	assert.Equal(t, uint(2), ids[2].ID)
}

func TestNormalizeRejectsUnknownShapes(t *testing.T) {
	casos := map[string][]byte{
		"escalar":    []byte(`42`),
		"cadena":     []byte(`"hola"`),
		"sin items":  []byte(`{"total": 5, "page": 1}`),
		"items nulo": []byte(`{"items": null, "total": 0}`),
		"vacío":      []byte(``),
		"solo nulos": []byte(`null`),
	}
	for nombre, raw := range casos {
		t.Run(nombre, func(t *testing.T) {
			_, _, err := Normalize(raw)
			var merr *MalformedResponseError
			require.ErrorAs(t, err, &merr)
		})
	}
}

func TestNormalizeEmptyCollections(t *testing.T) {
	items, meta, err := Normalize([]byte(`[]`))
	require.NoError(t, err)
	assert.Nil(t, meta)
	assert.JSONEq(t, `[]`, string(items))

	items, meta, err = Normalize([]byte(`{"items":[],"total":0}`))
	require.NoError(t, err)
	require.NotNil(t, meta)
	assert.Equal(t, int64(0), meta.Total)
	assert.JSONEq(t, `[]`, string(items))
}
