package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"musica-api/internal/domain"
	"musica-api/internal/repo"
	httpez "musica-api/internal/transport/http/ez"
	resp "musica-api/internal/transport/http/response"
)

type crearFavoritoIn struct {
	IDUsuario uint `json:"id_usuario" binding:"required,min=1"`
	IDCancion uint `json:"id_cancion" binding:"required,min=1"`
}

// marcarFavorito validates both sides of the pair and creates the row.
// Shared by the JSON body route and the path-param route.
func marcarFavorito(c *gin.Context, tx *gorm.DB, idUsuario, idCancion uint) (*domain.Favorito, error) {
	usuario, err := repo.NewUsuarioRepo(tx).FindByID(c, idUsuario)
	if err != nil {
		return nil, httpez.Internal("error al marcar favorito", err)
	}
	if usuario == nil {
		return nil, httpez.NotFound(fmt.Sprintf("Usuario con ID %d no encontrado", idUsuario))
	}

	cancion, err := repo.NewCancionRepo(tx).FindByID(c, idCancion)
	if err != nil {
		return nil, httpez.Internal("error al marcar favorito", err)
	}
	if cancion == nil {
		return nil, httpez.NotFound(fmt.Sprintf("Canción con ID %d no encontrada", idCancion))
	}

	r := repo.NewFavoritoRepo(tx)
	existente, err := r.FindByPar(c, idUsuario, idCancion)
	if err != nil {
		return nil, httpez.Internal("error al marcar favorito", err)
	}
	if existente != nil {
		return nil, httpez.BadRequest(fmt.Sprintf("La canción '%s' ya está marcada como favorita para este usuario", cancion.Titulo))
	}

	f := &domain.Favorito{IDUsuario: idUsuario, IDCancion: idCancion}
	if err := r.Create(c, f); err != nil {
		return nil, httpez.Internal("error al marcar favorito", err)
	}
	f.Usuario = usuario
	f.Cancion = cancion
	return f, nil
}

func MountFavoritos(api *gin.RouterGroup, db *gorm.DB) {
	g := api.Group("/favoritos")
	e := httpez.New(g, db)

	// --- listar (paginado, filtro opcional por usuario) ---
	type listQ struct {
		resp.Params
		UsuarioID uint `form:"usuario_id" binding:"omitempty,min=1"`
	}
	httpez.RegisterAction(e, httpez.Action[listQ, resp.Paginated[domain.Favorito]]{
		Method: http.MethodGet,
		Path:   "/",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, tx *gorm.DB, in *listQ) (resp.Paginated[domain.Favorito], error) {
			favoritos, total, err := repo.NewFavoritoRepo(tx).List(c, in.UsuarioID, in.Offset(), in.Limit())
			if err != nil {
				return resp.Paginated[domain.Favorito]{}, httpez.Internal("error al listar favoritos", err)
			}
			return resp.NewPaginated(favoritos, total, in.Page, in.Size), nil
		},
	})

	// --- marcar (cuerpo JSON) ---
	httpez.RegisterAction(e, httpez.Action[crearFavoritoIn, *domain.Favorito]{
		Method: http.MethodPost,
		Path:   "/",
		Binder: httpez.BindJSON,
		Status: http.StatusCreated,
		UseTx:  true,
		Handler: func(c *gin.Context, tx *gorm.DB, in *crearFavoritoIn) (*domain.Favorito, error) {
			return marcarFavorito(c, tx, in.IDUsuario, in.IDCancion)
		},
	})

	// --- obtener por id ---
	httpez.RegisterAction(e, httpez.Action[struct{}, *domain.Favorito]{
		Method: http.MethodGet,
		Path:   "/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (*domain.Favorito, error) {
			id, err := httpez.ParamUint(c, "id")
			if err != nil {
				return nil, err
			}
			f, err := repo.NewFavoritoRepo(tx).FindByID(c, id)
			if err != nil {
				return nil, httpez.Internal("error al obtener favorito", err)
			}
			if f == nil {
				return nil, httpez.NotFound(fmt.Sprintf("Favorito con ID %d no encontrado", id))
			}
			return f, nil
		},
	})

	// --- desmarcar por id ---
	httpez.RegisterAction(e, httpez.Action[struct{}, resp.Mensaje]{
		Method: http.MethodDelete,
		Path:   "/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (resp.Mensaje, error) {
			id, err := httpez.ParamUint(c, "id")
			if err != nil {
				return resp.Mensaje{}, err
			}
			r := repo.NewFavoritoRepo(tx)
			f, err := r.FindByID(c, id)
			if err != nil {
				return resp.Mensaje{}, httpez.Internal("error al eliminar favorito", err)
			}
			if f == nil {
				return resp.Mensaje{}, httpez.NotFound(fmt.Sprintf("Favorito con ID %d no encontrado", id))
			}
			if _, err := r.Delete(c, id); err != nil {
				return resp.Mensaje{}, httpez.Internal("error al eliminar favorito", err)
			}
			return resp.OK("Favorito eliminado exitosamente"), nil
		},
	})

	// --- canciones favoritas de un usuario (lista sin envolver) ---
	type rangoQ struct {
		Skip  int `form:"skip,default=0" binding:"min=0"`
		Limit int `form:"limit,default=50" binding:"min=1,max=500"`
	}
	httpez.RegisterAction(e, httpez.Action[rangoQ, []domain.Cancion]{
		Method: http.MethodGet,
		Path:   "/usuario/:usuario_id",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, tx *gorm.DB, in *rangoQ) ([]domain.Cancion, error) {
			idUsuario, err := httpez.ParamUint(c, "usuario_id")
			if err != nil {
				return nil, err
			}
			u, err := repo.NewUsuarioRepo(tx).FindByID(c, idUsuario)
			if err != nil {
				return nil, httpez.Internal("error al listar favoritos del usuario", err)
			}
			if u == nil {
				return nil, httpez.NotFound(fmt.Sprintf("Usuario con ID %d no encontrado", idUsuario))
			}
			canciones, err := repo.NewFavoritoRepo(tx).CancionesDeUsuario(c, idUsuario, in.Skip, in.Limit)
			if err != nil {
				return nil, httpez.Internal("error al listar favoritos del usuario", err)
			}
			return canciones, nil
		},
	})

	// --- marcar por par en la ruta ---
	httpez.RegisterAction(e, httpez.Action[struct{}, *domain.Favorito]{
		Method: http.MethodPost,
		Path:   "/usuario/:usuario_id/cancion/:cancion_id",
		Binder: httpez.BindNone,
		Status: http.StatusCreated,
		UseTx:  true,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (*domain.Favorito, error) {
			idUsuario, err := httpez.ParamUint(c, "usuario_id")
			if err != nil {
				return nil, err
			}
			idCancion, err := httpez.ParamUint(c, "cancion_id")
			if err != nil {
				return nil, err
			}
			return marcarFavorito(c, tx, idUsuario, idCancion)
		},
	})

	// --- desmarcar por par en la ruta ---
	httpez.RegisterAction(e, httpez.Action[struct{}, resp.Mensaje]{
		Method: http.MethodDelete,
		Path:   "/usuario/:usuario_id/cancion/:cancion_id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (resp.Mensaje, error) {
			idUsuario, err := httpez.ParamUint(c, "usuario_id")
			if err != nil {
				return resp.Mensaje{}, err
			}
			idCancion, err := httpez.ParamUint(c, "cancion_id")
			if err != nil {
				return resp.Mensaje{}, err
			}
			r := repo.NewFavoritoRepo(tx)
			f, err := r.FindByPar(c, idUsuario, idCancion)
			if err != nil {
				return resp.Mensaje{}, httpez.Internal("error al eliminar favorito", err)
			}
			if f == nil {
				return resp.Mensaje{}, httpez.NotFound("La canción no está marcada como favorita para este usuario")
			}
			if _, err := r.Delete(c, f.ID); err != nil {
				return resp.Mensaje{}, httpez.Internal("error al eliminar favorito", err)
			}
			return resp.OK("Favorito eliminado exitosamente"), nil
		},
	})

	// --- verificar ---
	httpez.RegisterAction(e, httpez.Action[struct{}, gin.H]{
		Method: http.MethodGet,
		Path:   "/verificar/:usuario_id/:cancion_id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (gin.H, error) {
			idUsuario, err := httpez.ParamUint(c, "usuario_id")
			if err != nil {
				return nil, err
			}
			idCancion, err := httpez.ParamUint(c, "cancion_id")
			if err != nil {
				return nil, err
			}
			f, err := repo.NewFavoritoRepo(tx).FindByPar(c, idUsuario, idCancion)
			if err != nil {
				return nil, httpez.Internal("error al verificar favorito", err)
			}
			var fecha *time.Time
			if f != nil {
				fecha = &f.FechaMarcado
			}
			return gin.H{
				"es_favorito":   f != nil,
				"usuario_id":    idUsuario,
				"cancion_id":    idCancion,
				"fecha_marcado": fecha,
			}, nil
		},
	})

	// --- resumen ---
	httpez.RegisterAction(e, httpez.Action[struct{}, gin.H]{
		Method: http.MethodGet,
		Path:   "/estadisticas/resumen",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (gin.H, error) {
			r := repo.NewFavoritoRepo(tx)
			total, err := r.Count(c)
			if err != nil {
				return nil, httpez.Internal("error al obtener estadísticas de favoritos", err)
			}
			usuarios, err := r.UsuariosDistintos(c)
			if err != nil {
				return nil, httpez.Internal("error al obtener estadísticas de favoritos", err)
			}
			canciones, err := r.CancionesDistintas(c)
			if err != nil {
				return nil, httpez.Internal("error al obtener estadísticas de favoritos", err)
			}
			ultimos, err := r.Ultimos(c, 5)
			if err != nil {
				return nil, httpez.Internal("error al obtener estadísticas de favoritos", err)
			}

			type marcadoReciente struct {
				ID           uint      `json:"id"`
				IDUsuario    uint      `json:"id_usuario"`
				IDCancion    uint      `json:"id_cancion"`
				FechaMarcado time.Time `json:"fecha_marcado"`
			}
			recientes := make([]marcadoReciente, 0, len(ultimos))
			for _, f := range ultimos {
				recientes = append(recientes, marcadoReciente{ID: f.ID, IDUsuario: f.IDUsuario, IDCancion: f.IDCancion, FechaMarcado: f.FechaMarcado})
			}
			return gin.H{
				"total_favoritos":        total,
				"usuarios_con_favoritos": usuarios,
				"canciones_marcadas":     canciones,
				"ultimos_favoritos":      recientes,
			}, nil
		},
	})
}
