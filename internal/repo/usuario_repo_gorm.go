package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"musica-api/internal/domain"
)

type UsuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepo(db *gorm.DB) *UsuarioRepo { return &UsuarioRepo{db: db} }

var _ domain.UsuarioRepository = (*UsuarioRepo)(nil)

func (r *UsuarioRepo) Create(ctx context.Context, u *domain.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UsuarioRepo) FindByID(ctx context.Context, id uint) (*domain.Usuario, error) {
	var u domain.Usuario
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UsuarioRepo) FindByCorreo(ctx context.Context, correo string) (*domain.Usuario, error) {
	var u domain.Usuario
	err := r.db.WithContext(ctx).First(&u, "correo = ?", correo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UsuarioRepo) List(ctx context.Context, offset, limit int) ([]domain.Usuario, int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Usuario{})
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var usuarios []domain.Usuario
	if err := tx.Order("id").Offset(offset).Limit(limit).Find(&usuarios).Error; err != nil {
		return nil, 0, err
	}
	return usuarios, total, nil
}

func (r *UsuarioRepo) Update(ctx context.Context, u *domain.Usuario) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UsuarioRepo) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&domain.Usuario{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (r *UsuarioRepo) Ultimos(ctx context.Context, n int) ([]domain.Usuario, error) {
	var usuarios []domain.Usuario
	err := r.db.WithContext(ctx).Order("fecha_registro DESC").Limit(n).Find(&usuarios).Error
	return usuarios, err
}

func (r *UsuarioRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Usuario{}).Count(&total).Error
	return total, err
}
