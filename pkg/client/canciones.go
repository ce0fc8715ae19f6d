package client

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) ListCanciones(ctx context.Context) ([]Cancion, *Meta, error) {
	return listar[Cancion](ctx, c, "/api/canciones/")
}

// ListGeneros returns the distinct genre list, a bare sequence of
// strings with no envelope.
func (c *Client) ListGeneros(ctx context.Context) ([]string, error) {
	var generos []string
	if err := c.get(ctx, "/api/canciones/generos/lista", &generos); err != nil {
		return nil, err
	}
	return generos, nil
}

func (c *Client) CrearCancion(ctx context.Context, in NuevaCancion) (*Cancion, error) {
	var cn Cancion
	if err := c.do(ctx, http.MethodPost, "/api/canciones/", in, &cn); err != nil {
		return nil, err
	}
	return &cn, nil
}

func (c *Client) ActualizarCancion(ctx context.Context, id uint, in NuevaCancion) (*Cancion, error) {
	var cn Cancion
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/canciones/%d", id), in, &cn); err != nil {
		return nil, err
	}
	return &cn, nil
}

func (c *Client) EliminarCancion(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/canciones/%d", id), nil, nil)
}
