package domain

import (
	"context"
	"time"
)

// Cancion keeps the Spanish wire names of the public API; the año column
// is stored as "anio" to avoid a non-ASCII identifier at the SQL layer.
type Cancion struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Titulo        string    `gorm:"size:200;index;not null" json:"titulo"`
	Artista       string    `gorm:"size:100;index;not null" json:"artista"`
	Album         string    `gorm:"size:200;not null" json:"album"`
	Duracion      int       `gorm:"not null" json:"duracion"` // seconds, 1-3600
	Anio          int       `gorm:"column:anio;not null" json:"año"`
	Genero        string    `gorm:"size:50;index;not null" json:"genero"`
	FechaCreacion time.Time `gorm:"autoCreateTime" json:"fecha_creacion"`
}

func (Cancion) TableName() string { return "canciones" }

// CancionFiltros are the optional list/search criteria. Zero values mean
// "criterion not supplied".
type CancionFiltros struct {
	Q           string
	Titulo      string
	Artista     string
	Album       string
	Genero      string
	AnioDesde   int
	AnioHasta   int
	DuracionMin int
	DuracionMax int
}

type CancionRepository interface {
	Create(ctx context.Context, c *Cancion) error
	FindByID(ctx context.Context, id uint) (*Cancion, error)
	List(ctx context.Context, f CancionFiltros, offset, limit int) ([]Cancion, int64, error)
	Update(ctx context.Context, c *Cancion) error
	Delete(ctx context.Context, id uint) (bool, error)
	Generos(ctx context.Context) ([]string, error)
	Artistas(ctx context.Context) ([]string, error)
	MasLarga(ctx context.Context) (*Cancion, error)
	MasCorta(ctx context.Context) (*Cancion, error)
	Ultimas(ctx context.Context, n int) ([]Cancion, error)
	Count(ctx context.Context) (int64, error)
}
