package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"musica-api/internal/domain"
	resp "musica-api/internal/transport/http/response"
)

func marcarDePrueba(t *testing.T, db *gorm.DB, idUsuario, idCancion uint) *domain.Favorito {
	t.Helper()
	f := &domain.Favorito{IDUsuario: idUsuario, IDCancion: idCancion}
	require.NoError(t, db.Create(f).Error)
	return f
}

func TestMarcarFavorito(t *testing.T) {
	r, db := newTestRouter(t)
	u := crearUsuarioDePrueba(t, db, "Ana", "ana@example.com")
	c := crearCancionDePrueba(t, db, "Kiss", "Prince", "Funk", 226, 1986)

	w := doJSON(t, r, http.MethodPost, "/api/favoritos/", map[string]any{
		"id_usuario": u.ID,
		"id_cancion": c.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var f domain.Favorito
	decodeBody(t, w, &f)
	assert.NotZero(t, f.ID)
	assert.Equal(t, u.ID, f.IDUsuario)
	assert.Equal(t, c.ID, f.IDCancion)
	require.NotNil(t, f.Usuario, "la respuesta anida el usuario")
	require.NotNil(t, f.Cancion, "la respuesta anida la canción")
	assert.Equal(t, "Kiss", f.Cancion.Titulo)
}

func TestMarcarFavoritoUsuarioInexistente(t *testing.T) {
	r, db := newTestRouter(t)
	c := crearCancionDePrueba(t, db, "Kiss", "Prince", "Funk", 226, 1986)

	w := doJSON(t, r, http.MethodPost, "/api/favoritos/", map[string]any{
		"id_usuario": 999,
		"id_cancion": c.ID,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Usuario con ID 999 no encontrado", detalleDe(t, w))
}

func TestMarcarFavoritoCancionInexistente(t *testing.T) {
	r, db := newTestRouter(t)
	u := crearUsuarioDePrueba(t, db, "Ana", "ana@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/favoritos/", map[string]any{
		"id_usuario": u.ID,
		"id_cancion": 999,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Canción con ID 999 no encontrada", detalleDe(t, w))
}

func TestMarcarFavoritoDuplicado(t *testing.T) {
	r, db := newTestRouter(t)
	u := crearUsuarioDePrueba(t, db, "Ana", "ana@example.com")
	c := crearCancionDePrueba(t, db, "Kiss", "Prince", "Funk", 226, 1986)
	marcarDePrueba(t, db, u.ID, c.ID)

	w := doJSON(t, r, http.MethodPost, "/api/favoritos/", map[string]any{
		"id_usuario": u.ID,
		"id_cancion": c.ID,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "La canción 'Kiss' ya está marcada como favorita para este usuario", detalleDe(t, w))
}

func TestListarFavoritosAnidados(t *testing.T) {
	r, db := newTestRouter(t)
	u := crearUsuarioDePrueba(t, db, "Ana", "ana@example.com")
	otro := crearUsuarioDePrueba(t, db, "Carlos", "carlos@example.com")
	c1 := crearCancionDePrueba(t, db, "Kiss", "Prince", "Funk", 226, 1986)
	c2 := crearCancionDePrueba(t, db, "Purple Rain", "Prince", "Rock", 520, 1984)
	marcarDePrueba(t, db, u.ID, c1.ID)
	marcarDePrueba(t, db, u.ID, c2.ID)
	marcarDePrueba(t, db, otro.ID, c1.ID)

	var out resp.Paginated[domain.Favorito]

	w := doJSON(t, r, http.MethodGet, "/api/favoritos/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &out)
	assert.Equal(t, int64(3), out.Total)
	require.NotEmpty(t, out.Items)
	require.NotNil(t, out.Items[0].Usuario)
	require.NotNil(t, out.Items[0].Cancion)

	// filtro por usuario
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/favoritos/?usuario_id=%d", u.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &out)
	assert.Equal(t, int64(2), out.Total)
	for _, f := range out.Items {
		assert.Equal(t, u.ID, f.IDUsuario)
	}
}

func TestFavoritosDeUsuarioDevuelveCanciones(t *testing.T) {
	r, db := newTestRouter(t)
	u := crearUsuarioDePrueba(t, db, "Ana", "ana@example.com")
	c1 := crearCancionDePrueba(t, db, "Kiss", "Prince", "Funk", 226, 1986)
	c2 := crearCancionDePrueba(t, db, "Purple Rain", "Prince", "Rock", 520, 1984)
	marcarDePrueba(t, db, u.ID, c1.ID)
	marcarDePrueba(t, db, u.ID, c2.ID)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/favoritos/usuario/%d", u.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	// lista plana de canciones, en orden de marcado
	var canciones []domain.Cancion
	decodeBody(t, w, &canciones)
	require.Len(t, canciones, 2)
	assert.Equal(t, "Kiss", canciones[0].Titulo)
	assert.Equal(t, "Purple Rain", canciones[1].Titulo)
}

func TestFavoritosDeUsuarioLimiteInvalido(t *testing.T) {
	r, db := newTestRouter(t)
	u := crearUsuarioDePrueba(t, db, "Ana", "ana@example.com")

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/favoritos/usuario/%d?limit=0", u.ID), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestFavoritosDeUsuarioInexistente(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/favoritos/usuario/999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Usuario con ID 999 no encontrado", detalleDe(t, w))
}

func TestMarcarYDesmarcarPorRuta(t *testing.T) {
	r, db := newTestRouter(t)
	u := crearUsuarioDePrueba(t, db, "Ana", "ana@example.com")
	c := crearCancionDePrueba(t, db, "Kiss", "Prince", "Funk", 226, 1986)

	ruta := fmt.Sprintf("/api/favoritos/usuario/%d/cancion/%d", u.ID, c.ID)

	w := doJSON(t, r, http.MethodPost, ruta, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, ruta, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// segundo desmarcado: ya no existe
	w = doJSON(t, r, http.MethodDelete, ruta, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestVerificarFavorito(t *testing.T) {
	r, db := newTestRouter(t)
	u := crearUsuarioDePrueba(t, db, "Ana", "ana@example.com")
	c := crearCancionDePrueba(t, db, "Kiss", "Prince", "Funk", 226, 1986)

	var out struct {
		EsFavorito   bool    `json:"es_favorito"`
		UsuarioID    uint    `json:"usuario_id"`
		CancionID    uint    `json:"cancion_id"`
		FechaMarcado *string `json:"fecha_marcado"`
	}

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/favoritos/verificar/%d/%d", u.ID, c.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &out)
	assert.False(t, out.EsFavorito)
	assert.Nil(t, out.FechaMarcado)

	marcarDePrueba(t, db, u.ID, c.ID)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/favoritos/verificar/%d/%d", u.ID, c.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &out)
	assert.True(t, out.EsFavorito)
	assert.Equal(t, u.ID, out.UsuarioID)
	assert.Equal(t, c.ID, out.CancionID)
	require.NotNil(t, out.FechaMarcado)
}

func TestEliminarFavoritoPorID(t *testing.T) {
	r, db := newTestRouter(t)
	u := crearUsuarioDePrueba(t, db, "Ana", "ana@example.com")
	c := crearCancionDePrueba(t, db, "Kiss", "Prince", "Funk", 226, 1986)
	f := marcarDePrueba(t, db, u.ID, c.ID)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/favoritos/%d", f.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/favoritos/%d", f.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, fmt.Sprintf("Favorito con ID %d no encontrado", f.ID), detalleDe(t, w))
}

func TestResumenFavoritos(t *testing.T) {
	r, db := newTestRouter(t)
	u1 := crearUsuarioDePrueba(t, db, "Ana", "ana@example.com")
	u2 := crearUsuarioDePrueba(t, db, "Carlos", "carlos@example.com")
	c1 := crearCancionDePrueba(t, db, "Kiss", "Prince", "Funk", 226, 1986)
	c2 := crearCancionDePrueba(t, db, "Purple Rain", "Prince", "Rock", 520, 1984)
	marcarDePrueba(t, db, u1.ID, c1.ID)
	marcarDePrueba(t, db, u1.ID, c2.ID)
	marcarDePrueba(t, db, u2.ID, c1.ID)

	w := doJSON(t, r, http.MethodGet, "/api/favoritos/estadisticas/resumen", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		TotalFavoritos       int64            `json:"total_favoritos"`
		UsuariosConFavoritos int64            `json:"usuarios_con_favoritos"`
		CancionesMarcadas    int64            `json:"canciones_marcadas"`
		UltimosFavoritos     []map[string]any `json:"ultimos_favoritos"`
	}
	decodeBody(t, w, &out)
	assert.Equal(t, int64(3), out.TotalFavoritos)
	assert.Equal(t, int64(2), out.UsuariosConFavoritos)
	assert.Equal(t, int64(2), out.CancionesMarcadas)
	assert.Len(t, out.UltimosFavoritos, 3)
}
