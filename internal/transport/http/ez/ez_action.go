package ez

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	resp "musica-api/internal/transport/http/response"
)

type EZ struct {
	g  *gin.RouterGroup
	db *gorm.DB
}

func New(g *gin.RouterGroup, db *gorm.DB) EZ { return EZ{g: g, db: db} }

// Binder selects how the typed input is populated.
type Binder string

const (
	BindJSON  Binder = "json"
	BindQuery Binder = "query"
	BindNone  Binder = "none" // read c.Param / c.Query by hand
)

// AErr carries an HTTP status plus the human-readable detail message the
// wire contract requires in error bodies.
type AErr struct {
	Status int
	Detail string
	Err    error
}

func (e *AErr) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "action error"
}

func (e *AErr) Unwrap() error { return e.Err }

func BadRequest(detail string) error { return &AErr{Status: http.StatusBadRequest, Detail: detail} }
func NotFound(detail string) error   { return &AErr{Status: http.StatusNotFound, Detail: detail} }
func Unprocessable(detail string) error {
	return &AErr{Status: http.StatusUnprocessableEntity, Detail: detail}
}
func Internal(detail string, err error) error {
	return &AErr{Status: http.StatusInternalServerError, Detail: detail, Err: err}
}

// ParamUint parses a numeric path parameter. Non-numeric ids are a
// validation failure, not a lookup miss.
func ParamUint(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, Unprocessable("el parámetro '" + name + "' debe ser un entero positivo")
	}
	return uint(v), nil
}

// Action is one registered endpoint: I is the bound input, O the success body.
type Action[I any, O any] struct {
	Method string // GET | POST | PUT | DELETE
	Path   string
	Binder Binder
	Status int  // success status, default 200
	UseTx  bool // wrap the handler in a gorm transaction
	Handler func(c *gin.Context, tx *gorm.DB, in *I) (O, error)
}

func RegisterAction[I any, O any](e EZ, a Action[I, O]) {
	h := func(c *gin.Context) {
		var in I
		var bindErr error
		switch a.Binder {
		case BindJSON:
			bindErr = c.ShouldBindJSON(&in)
		case BindQuery:
			bindErr = c.ShouldBindQuery(&in)
		default: // BindNone
		}
		if bindErr != nil {
			c.JSON(http.StatusUnprocessableEntity, resp.Detail(bindErr.Error()))
			return
		}

		run := func(tx *gorm.DB) (O, error) { return a.Handler(c, tx, &in) }
		var out O
		var err error
		if a.UseTx {
			err = e.db.WithContext(c).Transaction(func(tx *gorm.DB) error {
				o, e2 := run(tx)
				out = o
				return e2
			})
		} else {
			out, err = run(e.db.WithContext(c))
		}

		if err != nil {
			var ae *AErr
			if errors.As(err, &ae) {
				c.JSON(ae.Status, resp.Detail(ae.Error()))
				return
			}
			c.JSON(http.StatusInternalServerError, resp.Detail(err.Error()))
			return
		}

		status := a.Status
		if status == 0 {
			status = http.StatusOK
		}
		c.JSON(status, out)
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		e.g.GET(a.Path, h)
	case http.MethodPut:
		e.g.PUT(a.Path, h)
	case http.MethodDelete:
		e.g.DELETE(a.Path, h)
	default:
		e.g.POST(a.Path, h)
	}
}
