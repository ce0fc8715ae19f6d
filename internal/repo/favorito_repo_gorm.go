package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"musica-api/internal/domain"
)

type FavoritoRepo struct{ db *gorm.DB }

func NewFavoritoRepo(db *gorm.DB) *FavoritoRepo { return &FavoritoRepo{db: db} }

var _ domain.FavoritoRepository = (*FavoritoRepo)(nil)

func (r *FavoritoRepo) Create(ctx context.Context, f *domain.Favorito) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FavoritoRepo) FindByID(ctx context.Context, id uint) (*domain.Favorito, error) {
	var f domain.Favorito
	err := r.db.WithContext(ctx).
		Preload("Usuario").Preload("Cancion").
		First(&f, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FavoritoRepo) FindByPar(ctx context.Context, idUsuario, idCancion uint) (*domain.Favorito, error) {
	var f domain.Favorito
	err := r.db.WithContext(ctx).
		First(&f, "id_usuario = ? AND id_cancion = ?", idUsuario, idCancion).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FavoritoRepo) List(ctx context.Context, idUsuario uint, offset, limit int) ([]domain.Favorito, int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Favorito{})
	if idUsuario > 0 {
		tx = tx.Where("id_usuario = ?", idUsuario)
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var favoritos []domain.Favorito
	err := tx.Preload("Usuario").Preload("Cancion").
		Order("id").Offset(offset).Limit(limit).Find(&favoritos).Error
	if err != nil {
		return nil, 0, err
	}
	return favoritos, total, nil
}

// CancionesDeUsuario returns the favorited songs themselves, without their
// favorito rows. The /api/favoritos/usuario/{id} contract is shaped this way.
func (r *FavoritoRepo) CancionesDeUsuario(ctx context.Context, idUsuario uint, offset, limit int) ([]domain.Cancion, error) {
	canciones := make([]domain.Cancion, 0)
	err := r.db.WithContext(ctx).Model(&domain.Cancion{}).
		Joins("JOIN favoritos ON favoritos.id_cancion = canciones.id").
		Where("favoritos.id_usuario = ?", idUsuario).
		Order("favoritos.id").Offset(offset).Limit(limit).
		Find(&canciones).Error
	return canciones, err
}

func (r *FavoritoRepo) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&domain.Favorito{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (r *FavoritoRepo) Ultimos(ctx context.Context, n int) ([]domain.Favorito, error) {
	var favoritos []domain.Favorito
	err := r.db.WithContext(ctx).Order("fecha_marcado DESC").Limit(n).Find(&favoritos).Error
	return favoritos, err
}

func (r *FavoritoRepo) UsuariosDistintos(ctx context.Context) (int64, error) {
	return r.distinctCount(ctx, "id_usuario")
}

func (r *FavoritoRepo) CancionesDistintas(ctx context.Context) (int64, error) {
	return r.distinctCount(ctx, "id_cancion")
}

func (r *FavoritoRepo) distinctCount(ctx context.Context, col string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Favorito{}).
		Distinct(col).Count(&total).Error
	return total, err
}

func (r *FavoritoRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Favorito{}).Count(&total).Error
	return total, err
}
