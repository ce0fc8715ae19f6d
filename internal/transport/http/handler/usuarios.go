package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"musica-api/internal/domain"
	"musica-api/internal/repo"
	httpez "musica-api/internal/transport/http/ez"
	resp "musica-api/internal/transport/http/response"
)

type crearUsuarioIn struct {
	Nombre string `json:"nombre" binding:"required,min=2,max=100"`
	Correo string `json:"correo" binding:"required,email"`
}

type actualizarUsuarioIn struct {
	Nombre *string `json:"nombre" binding:"omitempty,min=2,max=100"`
	Correo *string `json:"correo" binding:"omitempty,email"`
}

func MountUsuarios(api *gin.RouterGroup, db *gorm.DB) {
	g := api.Group("/usuarios")
	e := httpez.New(g, db)

	// --- listar (paginado) ---
	httpez.RegisterAction(e, httpez.Action[resp.Params, resp.Paginated[domain.Usuario]]{
		Method: http.MethodGet,
		Path:   "/",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, tx *gorm.DB, in *resp.Params) (resp.Paginated[domain.Usuario], error) {
			r := repo.NewUsuarioRepo(tx)
			usuarios, total, err := r.List(c, in.Offset(), in.Limit())
			if err != nil {
				return resp.Paginated[domain.Usuario]{}, httpez.Internal("error al listar usuarios", err)
			}
			return resp.NewPaginated(usuarios, total, in.Page, in.Size), nil
		},
	})

	// --- crear ---
	httpez.RegisterAction(e, httpez.Action[crearUsuarioIn, *domain.Usuario]{
		Method: http.MethodPost,
		Path:   "/",
		Binder: httpez.BindJSON,
		Status: http.StatusCreated,
		Handler: func(c *gin.Context, tx *gorm.DB, in *crearUsuarioIn) (*domain.Usuario, error) {
			r := repo.NewUsuarioRepo(tx)
			correo := strings.ToLower(strings.TrimSpace(in.Correo))

			existente, err := r.FindByCorreo(c, correo)
			if err != nil {
				return nil, httpez.Internal("error al crear usuario", err)
			}
			if existente != nil {
				return nil, httpez.BadRequest(fmt.Sprintf("Ya existe un usuario con el correo: %s", correo))
			}

			u := &domain.Usuario{Nombre: strings.TrimSpace(in.Nombre), Correo: correo}
			if err := r.Create(c, u); err != nil {
				return nil, httpez.Internal("error al crear usuario", err)
			}
			return u, nil
		},
	})

	// --- obtener por id ---
	httpez.RegisterAction(e, httpez.Action[struct{}, *domain.Usuario]{
		Method: http.MethodGet,
		Path:   "/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (*domain.Usuario, error) {
			id, err := httpez.ParamUint(c, "id")
			if err != nil {
				return nil, err
			}
			u, err := repo.NewUsuarioRepo(tx).FindByID(c, id)
			if err != nil {
				return nil, httpez.Internal("error al obtener usuario", err)
			}
			if u == nil {
				return nil, httpez.NotFound(fmt.Sprintf("Usuario con ID %d no encontrado", id))
			}
			return u, nil
		},
	})

	// --- actualizar (parcial) ---
	httpez.RegisterAction(e, httpez.Action[actualizarUsuarioIn, *domain.Usuario]{
		Method: http.MethodPut,
		Path:   "/:id",
		Binder: httpez.BindJSON,
		UseTx:  true,
		Handler: func(c *gin.Context, tx *gorm.DB, in *actualizarUsuarioIn) (*domain.Usuario, error) {
			id, err := httpez.ParamUint(c, "id")
			if err != nil {
				return nil, err
			}
			r := repo.NewUsuarioRepo(tx)
			u, err := r.FindByID(c, id)
			if err != nil {
				return nil, httpez.Internal("error al actualizar usuario", err)
			}
			if u == nil {
				return nil, httpez.NotFound(fmt.Sprintf("Usuario con ID %d no encontrado", id))
			}

			if in.Correo != nil {
				correo := strings.ToLower(strings.TrimSpace(*in.Correo))
				if correo != u.Correo {
					otro, err := r.FindByCorreo(c, correo)
					if err != nil {
						return nil, httpez.Internal("error al actualizar usuario", err)
					}
					if otro != nil {
						return nil, httpez.BadRequest(fmt.Sprintf("Ya existe un usuario con el correo: %s", correo))
					}
				}
				u.Correo = correo
			}
			if in.Nombre != nil {
				u.Nombre = strings.TrimSpace(*in.Nombre)
			}
			if err := r.Update(c, u); err != nil {
				return nil, httpez.Internal("error al actualizar usuario", err)
			}
			return u, nil
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
			r := repo.NewUsuarioRepo(tx)
			u, err := r.FindByID(c, id)
			if err != nil {
				return resp.Mensaje{}, httpez.Internal("error al eliminar usuario", err)
			}
			if u == nil {
				return resp.Mensaje{}, httpez.NotFound(fmt.Sprintf("Usuario con ID %d no encontrado", id))
			}
			if _, err := r.Delete(c, id); err != nil {
				return resp.Mensaje{}, httpez.Internal("error al eliminar usuario", err)
			}
			return resp.OK(fmt.Sprintf("Usuario '%s' eliminado exitosamente", u.Nombre)), nil
		},
	})

	// --- existe ---
	httpez.RegisterAction(e, httpez.Action[struct{}, gin.H]{
		Method: http.MethodGet,
		Path:   "/:id/existe",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (gin.H, error) {
			id, err := httpez.ParamUint(c, "id")
			if err != nil {
				return nil, err
			}
			u, err := repo.NewUsuarioRepo(tx).FindByID(c, id)
			if err != nil {
				return nil, httpez.Internal("error al consultar usuario", err)
			}
			return gin.H{"existe": u != nil, "usuario_id": id}, nil
		},
	})

	// --- buscar por correo ---
	type porCorreoQ struct {
		Correo string `form:"correo" binding:"required"`
	}
	httpez.RegisterAction(e, httpez.Action[porCorreoQ, *domain.Usuario]{
		Method: http.MethodGet,
		Path:   "/buscar/por-correo",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, tx *gorm.DB, in *porCorreoQ) (*domain.Usuario, error) {
			u, err := repo.NewUsuarioRepo(tx).FindByCorreo(c, strings.ToLower(strings.TrimSpace(in.Correo)))
			if err != nil {
				return nil, httpez.Internal("error al buscar usuario", err)
			}
			if u == nil {
				return nil, httpez.NotFound(fmt.Sprintf("No se encontró usuario con el correo: %s", in.Correo))
			}
			return u, nil
		},
	})

	// --- resumen ---
	type registroReciente struct {
		ID            uint      `json:"id"`
		Nombre        string    `json:"nombre"`
		FechaRegistro time.Time `json:"fecha_registro"`
	}
	httpez.RegisterAction(e, httpez.Action[struct{}, gin.H]{
		Method: http.MethodGet,
		Path:   "/estadisticas/resumen",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (gin.H, error) {
			r := repo.NewUsuarioRepo(tx)
			total, err := r.Count(c)
			if err != nil {
				return nil, httpez.Internal("error al obtener estadísticas de usuarios", err)
			}
			ultimos, err := r.Ultimos(c, 5)
			if err != nil {
				return nil, httpez.Internal("error al obtener estadísticas de usuarios", err)
			}
			registros := make([]registroReciente, 0, len(ultimos))
			for _, u := range ultimos {
				registros = append(registros, registroReciente{ID: u.ID, Nombre: u.Nombre, FechaRegistro: u.FechaRegistro})
			}
			return gin.H{"total_usuarios": total, "ultimos_registros": registros}, nil
		},
	})
}
