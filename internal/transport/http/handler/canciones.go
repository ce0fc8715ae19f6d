package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"musica-api/internal/core/cache"
	"musica-api/internal/domain"
	"musica-api/internal/repo"
	httpez "musica-api/internal/transport/http/ez"
	resp "musica-api/internal/transport/http/response"
)

const (
	keyGeneros  = "canciones:generos"
	keyArtistas = "canciones:artistas"
)

type crearCancionIn struct {
	Titulo   string `json:"titulo" binding:"required,min=1,max=200"`
	Artista  string `json:"artista" binding:"required,min=1,max=100"`
	Album    string `json:"album" binding:"required,min=1,max=200"`
	Duracion int    `json:"duracion" binding:"required,min=1,max=3600"`
	Anio     int    `json:"año" binding:"required,min=1900,max=2030"`
	Genero   string `json:"genero" binding:"required,min=1,max=50"`
}

type actualizarCancionIn struct {
	Titulo   *string `json:"titulo" binding:"omitempty,min=1,max=200"`
	Artista  *string `json:"artista" binding:"omitempty,min=1,max=100"`
	Album    *string `json:"album" binding:"omitempty,min=1,max=200"`
	Duracion *int    `json:"duracion" binding:"omitempty,min=1,max=3600"`
	Anio     *int    `json:"año" binding:"omitempty,min=1900,max=2030"`
	Genero   *string `json:"genero" binding:"omitempty,min=1,max=50"`
}

func MountCanciones(api *gin.RouterGroup, db *gorm.DB, ca *cache.Cache, ttl time.Duration) {
	g := api.Group("/canciones")
	e := httpez.New(g, db)

	// --- listar (paginado + filtros) ---
	type listQ struct {
		resp.Params
		Genero    string `form:"genero"`
		AnioDesde int    `form:"año_desde" binding:"omitempty,min=1900"`
		AnioHasta int    `form:"año_hasta" binding:"omitempty,max=2030"`
	}
	httpez.RegisterAction(e, httpez.Action[listQ, resp.Paginated[domain.Cancion]]{
		Method: http.MethodGet,
		Path:   "/",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, tx *gorm.DB, in *listQ) (resp.Paginated[domain.Cancion], error) {
			r := repo.NewCancionRepo(tx)
			f := domain.CancionFiltros{Genero: in.Genero, AnioDesde: in.AnioDesde, AnioHasta: in.AnioHasta}
			canciones, total, err := r.List(c, f, in.Offset(), in.Limit())
			if err != nil {
				return resp.Paginated[domain.Cancion]{}, httpez.Internal("error al listar canciones", err)
			}
			return resp.NewPaginated(canciones, total, in.Page, in.Size), nil
		},
	})

	// --- crear ---
	httpez.RegisterAction(e, httpez.Action[crearCancionIn, *domain.Cancion]{
		Method: http.MethodPost,
		Path:   "/",
		Binder: httpez.BindJSON,
		Status: http.StatusCreated,
		Handler: func(c *gin.Context, tx *gorm.DB, in *crearCancionIn) (*domain.Cancion, error) {
			cancion := &domain.Cancion{
				Titulo:   strings.TrimSpace(in.Titulo),
				Artista:  strings.TrimSpace(in.Artista),
				Album:    strings.TrimSpace(in.Album),
				Duracion: in.Duracion,
				Anio:     in.Anio,
				Genero:   strings.TrimSpace(in.Genero),
			}
			if err := repo.NewCancionRepo(tx).Create(c, cancion); err != nil {
				return nil, httpez.Internal("error al crear canción", err)
			}
			ca.Invalidate(c, keyGeneros, keyArtistas)
			return cancion, nil
		},
	})

	// --- obtener por id ---
	httpez.RegisterAction(e, httpez.Action[struct{}, *domain.Cancion]{
		Method: http.MethodGet,
		Path:   "/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (*domain.Cancion, error) {
			id, err := httpez.ParamUint(c, "id")
			if err != nil {
				return nil, err
			}
			cancion, err := repo.NewCancionRepo(tx).FindByID(c, id)
			if err != nil {
				return nil, httpez.Internal("error al obtener canción", err)
			}
			if cancion == nil {
				return nil, httpez.NotFound(fmt.Sprintf("Canción con ID %d no encontrada", id))
			}
			return cancion, nil
		},
	})

	// --- actualizar (parcial) ---
	httpez.RegisterAction(e, httpez.Action[actualizarCancionIn, *domain.Cancion]{
		Method: http.MethodPut,
		Path:   "/:id",
		Binder: httpez.BindJSON,
		UseTx:  true,
		Handler: func(c *gin.Context, tx *gorm.DB, in *actualizarCancionIn) (*domain.Cancion, error) {
			id, err := httpez.ParamUint(c, "id")
			if err != nil {
				return nil, err
			}
			r := repo.NewCancionRepo(tx)
			cancion, err := r.FindByID(c, id)
			if err != nil {
				return nil, httpez.Internal("error al actualizar canción", err)
			}
			if cancion == nil {
				return nil, httpez.NotFound(fmt.Sprintf("Canción con ID %d no encontrada", id))
			}

			if in.Titulo != nil {
				cancion.Titulo = strings.TrimSpace(*in.Titulo)
			}
			if in.Artista != nil {
				cancion.Artista = strings.TrimSpace(*in.Artista)
			}
			if in.Album != nil {
				cancion.Album = strings.TrimSpace(*in.Album)
			}
			if in.Duracion != nil {
				cancion.Duracion = *in.Duracion
			}
			if in.Anio != nil {
				cancion.Anio = *in.Anio
			}
			if in.Genero != nil {
				cancion.Genero = strings.TrimSpace(*in.Genero)
			}
			if err := r.Update(c, cancion); err != nil {
				return nil, httpez.Internal("error al actualizar canción", err)
			}
			ca.Invalidate(c, keyGeneros, keyArtistas)
			return cancion, nil
		},
	})

	// --- eliminar ---
	httpez.RegisterAction(e, httpez.Action[struct{}, resp.Mensaje]{
		Method: http.MethodDelete,
		Path:   "/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (resp.Mensaje, error) {
			id, err := httpez.ParamUint(c, "id")
			if err != nil {
				return resp.Mensaje{}, err
			}
			r := repo.NewCancionRepo(tx)
			cancion, err := r.FindByID(c, id)
			if err != nil {
				return resp.Mensaje{}, httpez.Internal("error al eliminar canción", err)
			}
			if cancion == nil {
				return resp.Mensaje{}, httpez.NotFound(fmt.Sprintf("Canción con ID %d no encontrada", id))
			}
			if _, err := r.Delete(c, id); err != nil {
				return resp.Mensaje{}, httpez.Internal("error al eliminar canción", err)
			}
			ca.Invalidate(c, keyGeneros, keyArtistas)
			return resp.OK(fmt.Sprintf("Canción '%s' de %s eliminada exitosamente", cancion.Titulo, cancion.Artista)), nil
		},
	})

	// --- búsqueda avanzada (lista sin envolver) ---
	type busquedaQ struct {
		Q           string `form:"q"`
		Titulo      string `form:"titulo"`
		Artista     string `form:"artista"`
		Album       string `form:"album"`
		Genero      string `form:"genero"`
		DuracionMin int    `form:"duracion_min" binding:"omitempty,min=1"`
		DuracionMax int    `form:"duracion_max" binding:"omitempty,max=3600"`
		Skip        int    `form:"skip,default=0" binding:"min=0"`
		Limit       int    `form:"limit,default=50" binding:"min=1,max=500"`
	}
	httpez.RegisterAction(e, httpez.Action[busquedaQ, []domain.Cancion]{
		Method: http.MethodGet,
		Path:   "/buscar/avanzada",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, tx *gorm.DB, in *busquedaQ) ([]domain.Cancion, error) {
			f := domain.CancionFiltros{
				Q:           in.Q,
				Titulo:      in.Titulo,
				Artista:     in.Artista,
				Album:       in.Album,
				Genero:      in.Genero,
				DuracionMin: in.DuracionMin,
				DuracionMax: in.DuracionMax,
			}
			canciones, _, err := repo.NewCancionRepo(tx).List(c, f, in.Skip, in.Limit)
			if err != nil {
				return nil, httpez.Internal("error en la búsqueda de canciones", err)
			}
			if canciones == nil {
				canciones = make([]domain.Cancion, 0)
			}
			return canciones, nil
		},
	})

	// --- listas de descubrimiento (cacheadas) ---
	httpez.RegisterAction(e, httpez.Action[struct{}, []string]{
		Method: http.MethodGet,
		Path:   "/generos/lista",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) ([]string, error) {
			generos, err := cache.GetOrLoadJSON(ca, c, keyGeneros, ttl, func(ctx context.Context) ([]string, error) {
				return repo.NewCancionRepo(tx).Generos(ctx)
			})
			if err != nil {
				return nil, httpez.Internal("error al listar géneros", err)
			}
			return generos, nil
		},
	})

	httpez.RegisterAction(e, httpez.Action[struct{}, []string]{
		Method: http.MethodGet,
		Path:   "/artistas/lista",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) ([]string, error) {
			artistas, err := cache.GetOrLoadJSON(ca, c, keyArtistas, ttl, func(ctx context.Context) ([]string, error) {
				return repo.NewCancionRepo(tx).Artistas(ctx)
			})
			if err != nil {
				return nil, httpez.Internal("error al listar artistas", err)
			}
			return artistas, nil
		},
	})

	// --- resumen ---
	type cancionBreve struct {
		Titulo   string `json:"titulo"`
		Artista  string `json:"artista"`
		Duracion int    `json:"duracion"`
	}
	httpez.RegisterAction(e, httpez.Action[struct{}, gin.H]{
		Method: http.MethodGet,
		Path:   "/estadisticas/resumen",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (gin.H, error) {
			r := repo.NewCancionRepo(tx)
			total, err := r.Count(c)
			if err != nil {
				return nil, httpez.Internal("error al obtener estadísticas de canciones", err)
			}
			masLarga, err := r.MasLarga(c)
			if err != nil {
				return nil, httpez.Internal("error al obtener estadísticas de canciones", err)
			}
			masCorta, err := r.MasCorta(c)
			if err != nil {
				return nil, httpez.Internal("error al obtener estadísticas de canciones", err)
			}
			ultimas, err := r.Ultimas(c, 5)
			if err != nil {
				return nil, httpez.Internal("error al obtener estadísticas de canciones", err)
			}

			breve := func(cn *domain.Cancion) *cancionBreve {
				if cn == nil {
					return nil
				}
				return &cancionBreve{Titulo: cn.Titulo, Artista: cn.Artista, Duracion: cn.Duracion}
			}
			type reciente struct {
				ID            uint      `json:"id"`
				Titulo        string    `json:"titulo"`
				Artista       string    `json:"artista"`
				FechaCreacion time.Time `json:"fecha_creacion"`
			}
			recientes := make([]reciente, 0, len(ultimas))
			for _, cn := range ultimas {
				recientes = append(recientes, reciente{ID: cn.ID, Titulo: cn.Titulo, Artista: cn.Artista, FechaCreacion: cn.FechaCreacion})
			}
			return gin.H{
				"total_canciones":   total,
				"cancion_mas_larga": breve(masLarga),
				"cancion_mas_corta": breve(masCorta),
				"ultimas_agregadas": recientes,
			}, nil
		},
	})
}
