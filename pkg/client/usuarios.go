package client

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) ListUsuarios(ctx context.Context) ([]Usuario, *Meta, error) {
	return listar[Usuario](ctx, c, "/api/usuarios/")
}

func (c *Client) CrearUsuario(ctx context.Context, in NuevoUsuario) (*Usuario, error) {
	var u Usuario
	if err := c.do(ctx, http.MethodPost, "/api/usuarios/", in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) ActualizarUsuario(ctx context.Context, id uint, in NuevoUsuario) (*Usuario, error) {
	var u Usuario
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/usuarios/%d", id), in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) EliminarUsuario(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/usuarios/%d", id), nil, nil)
}
