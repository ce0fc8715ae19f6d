package repo

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"

	"musica-api/internal/domain"
)

type CancionRepo struct{ db *gorm.DB }

func NewCancionRepo(db *gorm.DB) *CancionRepo { return &CancionRepo{db: db} }

var _ domain.CancionRepository = (*CancionRepo)(nil)

func (r *CancionRepo) Create(ctx context.Context, c *domain.Cancion) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CancionRepo) FindByID(ctx context.Context, id uint) (*domain.Cancion, error) {
	var c domain.Cancion
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// scope applies the optional criteria. LIKE against lowered columns keeps
// substring matching case-insensitive on every backend.
func (r *CancionRepo) scope(tx *gorm.DB, f domain.CancionFiltros) *gorm.DB {
	like := func(col, val string) {
		tx = tx.Where("LOWER("+col+") LIKE LOWER(?)", "%"+val+"%")
	}
	if f.Q != "" {
		p := "%" + f.Q + "%"
		tx = tx.Where(
			"LOWER(titulo) LIKE LOWER(?) OR LOWER(artista) LIKE LOWER(?) OR LOWER(album) LIKE LOWER(?)",
			p, p, p,
		)
	}
	if f.Titulo != "" {
		like("titulo", f.Titulo)
	}
	if f.Artista != "" {
		like("artista", f.Artista)
	}
	if f.Album != "" {
		like("album", f.Album)
	}
	if f.Genero != "" {
		like("genero", f.Genero)
	}
	if f.AnioDesde > 0 {
		tx = tx.Where("anio >= ?", f.AnioDesde)
	}
	if f.AnioHasta > 0 {
		tx = tx.Where("anio <= ?", f.AnioHasta)
	}
	if f.DuracionMin > 0 {
		tx = tx.Where("duracion >= ?", f.DuracionMin)
	}
	if f.DuracionMax > 0 {
		tx = tx.Where("duracion <= ?", f.DuracionMax)
	}
	return tx
}

func (r *CancionRepo) List(ctx context.Context, f domain.CancionFiltros, offset, limit int) ([]domain.Cancion, int64, error) {
	tx := r.scope(r.db.WithContext(ctx).Model(&domain.Cancion{}), f)
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var canciones []domain.Cancion
	if err := tx.Order("id").Offset(offset).Limit(limit).Find(&canciones).Error; err != nil {
		return nil, 0, err
	}
	return canciones, total, nil
}

func (r *CancionRepo) Update(ctx context.Context, c *domain.Cancion) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CancionRepo) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&domain.Cancion{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (r *CancionRepo) Generos(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "genero")
}

func (r *CancionRepo) Artistas(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "artista")
}

func (r *CancionRepo) distinct(ctx context.Context, col string) ([]string, error) {
	valores := make([]string, 0)
	err := r.db.WithContext(ctx).Model(&domain.Cancion{}).Distinct(col).Pluck(col, &valores).Error
	if err != nil {
		return nil, err
	}
	sort.Strings(valores)
	return valores, nil
}

func (r *CancionRepo) MasLarga(ctx context.Context) (*domain.Cancion, error) {
	return r.primera(ctx, "duracion DESC")
}

func (r *CancionRepo) MasCorta(ctx context.Context) (*domain.Cancion, error) {
	return r.primera(ctx, "duracion ASC")
}

func (r *CancionRepo) primera(ctx context.Context, orden string) (*domain.Cancion, error) {
	var c domain.Cancion
	err := r.db.WithContext(ctx).Order(orden).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CancionRepo) Ultimas(ctx context.Context, n int) ([]domain.Cancion, error) {
	var canciones []domain.Cancion
	err := r.db.WithContext(ctx).Order("fecha_creacion DESC").Limit(n).Find(&canciones).Error
	return canciones, err
}

func (r *CancionRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Cancion{}).Count(&total).Error
	return total, err
}
