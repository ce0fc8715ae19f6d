package client

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Resumen is the merged dashboard model built from three endpoints:
// /stats, /health and the favorites summary. Numeric fields stay zero
// when a sub-response omits them.
type Resumen struct {
	TotalUsuarios  int64
	TotalCanciones int64
	TotalFavoritos int64
	Saludable      bool
	UptimeSegundos int64
	Version        string
	Puerto         int
	Entorno        string
}

// Disponibilidad marks which sub-requests produced data in the
// partial variant.
type Disponibilidad struct {
	Generales bool
	Salud     bool
	Favoritos bool
}

type statsBody struct {
	Estadisticas struct {
		TotalUsuarios  int64 `json:"total_usuarios"`
		TotalCanciones int64 `json:"total_canciones"`
	} `json:"estadisticas"`
}

type healthBody struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Version       string `json:"version"`
	Port          int    `json:"port"`
	Environment   string `json:"environment"`
}

type favResumenBody struct {
	TotalFavoritos int64 `json:"total_favoritos"`
}

// ObtenerResumen fans out the three requests concurrently and waits
// for all of them. If any fails, the whole aggregation fails with that
// single error and no partial model is returned.
func (c *Client) ObtenerResumen(ctx context.Context) (*Resumen, error) {
	var (
		st statsBody
		he healthBody
		fa favResumenBody
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.get(gctx, "/stats", &st) })
	g.Go(func() error { return c.get(gctx, "/health", &he) })
	g.Go(func() error { return c.get(gctx, "/api/favoritos/estadisticas/resumen", &fa) })
	if err := g.Wait(); err != nil {
		return nil, err
	}
	r := fusionar(st, he, fa)
	return &r, nil
}

// ObtenerResumenParcial is the per-metric variant: each sub-request
// that succeeds fills its slice of the model, and failures only clear
// the matching availability flag.
func (c *Client) ObtenerResumenParcial(ctx context.Context) (Resumen, Disponibilidad) {
	var (
		st statsBody
		he healthBody
		fa favResumenBody
		d  Disponibilidad
	)
	var g errgroup.Group
	g.Go(func() error {
		d.Generales = c.get(ctx, "/stats", &st) == nil
		return nil
	})
	g.Go(func() error {
		d.Salud = c.get(ctx, "/health", &he) == nil
		return nil
	})
	g.Go(func() error {
		d.Favoritos = c.get(ctx, "/api/favoritos/estadisticas/resumen", &fa) == nil
		return nil
	})
	_ = g.Wait()
	return fusionar(st, he, fa), d
}

func fusionar(st statsBody, he healthBody, fa favResumenBody) Resumen {
	return Resumen{
		TotalUsuarios:  st.Estadisticas.TotalUsuarios,
		TotalCanciones: st.Estadisticas.TotalCanciones,
		TotalFavoritos: fa.TotalFavoritos,
		Saludable:      he.Status == "healthy",
		UptimeSegundos: he.UptimeSeconds,
		Version:        he.Version,
		Puerto:         he.Port,
		Entorno:        he.Environment,
	}
}
