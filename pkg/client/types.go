package client

import "time"

// Wire mirrors of the server entities. Field names follow the JSON
// contract, Spanish keys included.

type Usuario struct {
	ID            uint      `json:"id"`
	Nombre        string    `json:"nombre"`
	Correo        string    `json:"correo"`
	FechaRegistro time.Time `json:"fecha_registro"`
}

type Cancion struct {
	ID            uint      `json:"id"`
	Titulo        string    `json:"titulo"`
	Artista       string    `json:"artista"`
	Album         string    `json:"album"`
	Duracion      int       `json:"duracion"`
	Anio          int       `json:"año"`
	Genero        string    `json:"genero"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

type Favorito struct {
	ID           uint      `json:"id"`
	IDUsuario    uint      `json:"id_usuario"`
	IDCancion    uint      `json:"id_cancion"`
	FechaMarcado time.Time `json:"fecha_marcado"`

	Usuario *Usuario `json:"usuario,omitempty"`
	Cancion *Cancion `json:"cancion,omitempty"`
}

// FavoritoDerivado is rebuilt from the favorites-by-user view, which
// returns bare songs. The row id is unknown there (nil) and the marked
// time is synthesized at derivation, so neither should be treated as
// authoritative data.
type FavoritoDerivado struct {
	ID           *uint     `json:"id"`
	Cancion      Cancion   `json:"cancion"`
	FechaMarcado time.Time `json:"fecha_marcado"`
}

// DerivarFavoritos wraps the bare songs of the by-user view in the
// shape the list-all view uses.
func DerivarFavoritos(canciones []Cancion) []FavoritoDerivado {
	out := make([]FavoritoDerivado, 0, len(canciones))
	ahora := time.Now()
	for _, c := range canciones {
		out = append(out, FavoritoDerivado{Cancion: c, FechaMarcado: ahora})
	}
	return out
}

type NuevoUsuario struct {
	Nombre string `json:"nombre"`
	Correo string `json:"correo"`
}

type NuevaCancion struct {
	Titulo   string `json:"titulo"`
	Artista  string `json:"artista"`
	Album    string `json:"album"`
	Duracion int    `json:"duracion"`
	Anio     int    `json:"año"`
	Genero   string `json:"genero"`
}

type NuevoFavorito struct {
	IDUsuario uint `json:"id_usuario"`
	IDCancion uint `json:"id_cancion"`
}
