package domain

import (
	"context"
	"time"
)

// Favorito is the join row between usuarios and canciones. Uniqueness of
// the (usuario, cancion) pair is enforced at the handler layer, not the
// schema, to keep parity with the public contract.
type Favorito struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	IDUsuario    uint      `gorm:"column:id_usuario;index;not null" json:"id_usuario"`
	IDCancion    uint      `gorm:"column:id_cancion;index;not null" json:"id_cancion"`
	FechaMarcado time.Time `gorm:"autoCreateTime" json:"fecha_marcado"`

	Usuario *Usuario `gorm:"foreignKey:IDUsuario" json:"usuario,omitempty"`
	Cancion *Cancion `gorm:"foreignKey:IDCancion" json:"cancion,omitempty"`
}

func (Favorito) TableName() string { return "favoritos" }

type FavoritoRepository interface {
	Create(ctx context.Context, f *Favorito) error
	FindByID(ctx context.Context, id uint) (*Favorito, error)
	FindByPar(ctx context.Context, idUsuario, idCancion uint) (*Favorito, error)
	// List preloads the nested usuario and cancion of every row.
	List(ctx context.Context, idUsuario uint, offset, limit int) ([]Favorito, int64, error)
	CancionesDeUsuario(ctx context.Context, idUsuario uint, offset, limit int) ([]Cancion, error)
	Delete(ctx context.Context, id uint) (bool, error)
	Ultimos(ctx context.Context, n int) ([]Favorito, error)
	UsuariosDistintos(ctx context.Context) (int64, error)
	CancionesDistintas(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}
