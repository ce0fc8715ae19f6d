package database

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"musica-api/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func contar(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestSeedCargaCatalogoInicial(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Seed(db))

	assert.Equal(t, int64(5), contar(t, db, &domain.Usuario{}))
	assert.Equal(t, int64(10), contar(t, db, &domain.Cancion{}))
	assert.Equal(t, int64(5), contar(t, db, &domain.Favorito{}))
}

func TestSeedEsIdempotente(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Seed(db))
	require.NoError(t, Seed(db))

	assert.Equal(t, int64(5), contar(t, db, &domain.Usuario{}))
	assert.Equal(t, int64(10), contar(t, db, &domain.Cancion{}))
}

func TestSeedNoPisaDatosExistentes(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&domain.Usuario{Nombre: "Ana", Correo: "ana@example.com"}).Error)

	require.NoError(t, Seed(db))

	assert.Equal(t, int64(1), contar(t, db, &domain.Usuario{}))
	assert.Equal(t, int64(0), contar(t, db, &domain.Cancion{}))
}
