package client

import "strings"

// Filtering is purely local over an already fetched collection. Every
// supplied criterion must hold (AND); criteria left empty are ignored,
// never treated as match-empty. Output keeps input order.

// FiltroCanciones matches each text field by case-insensitive
// substring containment. Genre is free text on the wire, so it gets
// the same substring treatment as the rest.
type FiltroCanciones struct {
	Titulo  string
	Artista string
	Album   string
	Genero  string
}

func (f FiltroCanciones) Aplicar(canciones []Cancion) []Cancion {
	out := make([]Cancion, 0, len(canciones))
	for _, c := range canciones {
		if !contiene(c.Titulo, f.Titulo) {
			continue
		}
		if !contiene(c.Artista, f.Artista) {
			continue
		}
		if !contiene(c.Album, f.Album) {
			continue
		}
		if !contiene(c.Genero, f.Genero) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// FiltroUsuarios matches one text fragment against name or email.
type FiltroUsuarios struct {
	Texto string
}

func (f FiltroUsuarios) Aplicar(usuarios []Usuario) []Usuario {
	if f.Texto == "" {
		return usuarios
	}
	out := make([]Usuario, 0, len(usuarios))
	for _, u := range usuarios {
		if contiene(u.Nombre, f.Texto) || contiene(u.Correo, f.Texto) {
			out = append(out, u)
		}
	}
	return out
}

// contiene reports whether campo contains criterio, ignoring case. An
// empty criterion matches everything.
func contiene(campo, criterio string) bool {
	if criterio == "" {
		return true
	}
	return strings.Contains(strings.ToLower(campo), strings.ToLower(criterio))
}
