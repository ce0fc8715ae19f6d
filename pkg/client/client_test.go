package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUsuarios is a minimal in-memory stand-in for the usuarios
// resource, enough to exercise create-then-reload sequencing.
type fakeUsuarios struct {
	mu     sync.Mutex
	nextID uint
	rows   []Usuario
}

func (f *fakeUsuarios) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")

		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(map[string]any{
				"items": f.rows, "total": len(f.rows),
				"page": 1, "size": 10, "pages": 1,
				"has_next": false, "has_prev": false,
			})
		case http.MethodPost:
			var in NuevoUsuario
			_ = json.NewDecoder(r.Body).Decode(&in)
			f.nextID++
			u := Usuario{ID: f.nextID, Nombre: in.Nombre, Correo: in.Correo, FechaRegistro: time.Now()}
			f.rows = append(f.rows, u)
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(u)
		}
	}
}

func TestCrearYRecargarUsuario(t *testing.T) {
	fake := &fakeUsuarios{}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/usuarios/", fake.handler())
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c := New(srv.URL)
	ctx := context.Background()

	creado, err := c.CrearUsuario(ctx, NuevoUsuario{Nombre: "Ana", Correo: "ana@x.com"})
	require.NoError(t, err)
	assert.NotZero(t, creado.ID, "el servidor asigna el id")
	assert.False(t, creado.FechaRegistro.IsZero(), "el servidor asigna la fecha")

	// The reload is sequenced after the create response, so it must
	// already contain the new record.
	usuarios, meta, err := c.ListUsuarios(ctx)
	require.NoError(t, err)
	require.NotNil(t, meta)
	require.Len(t, usuarios, 1)
	assert.Equal(t, "ana@x.com", usuarios[0].Correo)
	assert.Equal(t, creado.ID, usuarios[0].ID)
}

func TestEliminarInexistenteDevuelveErrorHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Usuario con ID 999 no encontrado"}`))
	}))
	t.Cleanup(srv.Close)

	err := New(srv.URL).EliminarUsuario(context.Background(), 999)

	var herr *HTTPStatusError
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, http.StatusNotFound, herr.Status)
	assert.Equal(t, "Usuario con ID 999 no encontrado", herr.Error())
}

func TestErrorSinDetalleUsaMensajeGenerico(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`upstream says no`))
	}))
	t.Cleanup(srv.Close)

	err := New(srv.URL).EliminarCancion(context.Background(), 1)

	var herr *HTTPStatusError
	require.ErrorAs(t, err, &herr)
	assert.Empty(t, herr.Detail)
	assert.Contains(t, herr.Error(), mensajeGenerico)
}

func TestServidorInalcanzableEsErrorDeTransporte(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // freed port, nothing listening

	_, _, err := New(srv.URL).ListCanciones(context.Background())

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
}

func TestEscenarioEnvelopeMasFiltro(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [{"id":1,"titulo":"A","artista":"X","album":"Y","duracion":180,"año":1999,"genero":"Rock"}],
			"total":1,"page":1,"size":10,"pages":1,"has_next":false,"has_prev":false
		}`))
	}))
	t.Cleanup(srv.Close)

	canciones, meta, err := New(srv.URL).ListCanciones(context.Background())
	require.NoError(t, err)
	require.NotNil(t, meta)
	assert.Equal(t, int64(1), meta.Total)
	require.Len(t, canciones, 1)
	assert.Equal(t, 1999, canciones[0].Anio)

	// Lowercase criterion still matches the uppercase title.
	out := FiltroCanciones{Titulo: "a"}.Aplicar(canciones)
	require.Len(t, out, 1)
	assert.Equal(t, uint(1), out[0].ID)
}

func TestDerivarFavoritos(t *testing.T) {
	canciones := []Cancion{{ID: 1, Titulo: "A"}, {ID: 2, Titulo: "B"}}

	derivados := DerivarFavoritos(canciones)

	require.Len(t, derivados, 2)
	for i, d := range derivados {
		assert.Nil(t, d.ID, "el id de la fila no se conoce en esta vista")
		assert.Equal(t, canciones[i].ID, d.Cancion.ID)
		assert.False(t, d.FechaMarcado.IsZero())
	}
}
