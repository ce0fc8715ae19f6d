package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"musica-api/internal/core/database"
	"musica-api/internal/domain"
)

// newTestRouter builds an engine over a fresh in-memory database. The
// DSN is derived from the test name so parallel tests never share state.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	r := gin.New()
	api := r.Group("/api")
	MountUsuarios(api, db)
	MountCanciones(api, db, nil, time.Minute)
	MountFavoritos(api, db)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func detalleDe(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var e struct {
		Detail string `json:"detail"`
	}
	decodeBody(t, w, &e)
	require.NotEmpty(t, e.Detail, "las respuestas de error llevan 'detail'")
	return e.Detail
}

func crearUsuarioDePrueba(t *testing.T, db *gorm.DB, nombre, correo string) *domain.Usuario {
	t.Helper()
	u := &domain.Usuario{Nombre: nombre, Correo: correo}
	require.NoError(t, db.Create(u).Error)
	return u
}

func crearCancionDePrueba(t *testing.T, db *gorm.DB, titulo, artista, genero string, duracion, anio int) *domain.Cancion {
	t.Helper()
	c := &domain.Cancion{
		Titulo: titulo, Artista: artista, Album: titulo,
		Duracion: duracion, Anio: anio, Genero: genero,
	}
	require.NoError(t, db.Create(c).Error)
	return c
}
