package domain

import (
	"context"
	"time"
)

type Usuario struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Nombre        string    `gorm:"size:100;index;not null" json:"nombre"`
	Correo        string    `gorm:"uniqueIndex;size:255;not null" json:"correo"`
	FechaRegistro time.Time `gorm:"autoCreateTime" json:"fecha_registro"`
}

func (Usuario) TableName() string { return "usuarios" }

type UsuarioRepository interface {
	Create(ctx context.Context, u *Usuario) error
	FindByID(ctx context.Context, id uint) (*Usuario, error)
	FindByCorreo(ctx context.Context, correo string) (*Usuario, error)
	List(ctx context.Context, offset, limit int) ([]Usuario, int64, error)
	Update(ctx context.Context, u *Usuario) error
	Delete(ctx context.Context, id uint) (bool, error)
	Ultimos(ctx context.Context, n int) ([]Usuario, error)
	Count(ctx context.Context) (int64, error)
}
