package client

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) ListFavoritos(ctx context.Context) ([]Favorito, *Meta, error) {
	return listar[Favorito](ctx, c, "/api/favoritos/")
}

// FavoritosDeUsuario returns the user's favorited songs. The endpoint
// hands back the songs themselves, not favorito rows; wrap the result
// in DerivarFavoritos when the row shape is needed.
func (c *Client) FavoritosDeUsuario(ctx context.Context, idUsuario uint) ([]Cancion, error) {
	canciones, _, err := listar[Cancion](ctx, c, fmt.Sprintf("/api/favoritos/usuario/%d", idUsuario))
	return canciones, err
}

func (c *Client) CrearFavorito(ctx context.Context, in NuevoFavorito) (*Favorito, error) {
	var f Favorito
	if err := c.do(ctx, http.MethodPost, "/api/favoritos/", in, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (c *Client) EliminarFavorito(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/favoritos/%d", id), nil, nil)
}
