package database

import (
	"gorm.io/gorm"

	"musica-api/internal/domain"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.Usuario{}, &domain.Cancion{}, &domain.Favorito{})
}

// Seed loads the starter catalog when the database is empty. It is a no-op
// as soon as any usuario or cancion exists.
func Seed(db *gorm.DB) error {
	var usuarios, canciones int64
	if err := db.Model(&domain.Usuario{}).Count(&usuarios).Error; err != nil {
		return err
	}
	if err := db.Model(&domain.Cancion{}).Count(&canciones).Error; err != nil {
		return err
	}
	if usuarios > 0 || canciones > 0 {
		return nil
	}

	usuariosIniciales := []domain.Usuario{
		{Nombre: "Isabella Ramírez Franco", Correo: "isabella@example.com"},
		{Nombre: "Juan Carlos Pérez", Correo: "juan.perez@example.com"},
		{Nombre: "María García López", Correo: "maria.garcia@example.com"},
		{Nombre: "Carlos Eduardo Ruiz", Correo: "carlos.ruiz@example.com"},
		{Nombre: "Ana Sofía Martínez", Correo: "ana.martinez@example.com"},
	}
	if err := db.Create(&usuariosIniciales).Error; err != nil {
		return err
	}

	cancionesIniciales := []domain.Cancion{
		{Titulo: "Bohemian Rhapsody", Artista: "Queen", Album: "A Night at the Opera", Duracion: 355, Anio: 1975, Genero: "Rock"},
		{Titulo: "Imagine", Artista: "John Lennon", Album: "Imagine", Duracion: 183, Anio: 1971, Genero: "Rock"},
		{Titulo: "Hotel California", Artista: "Eagles", Album: "Hotel California", Duracion: 391, Anio: 1976, Genero: "Rock"},
		{Titulo: "Billie Jean", Artista: "Michael Jackson", Album: "Thriller", Duracion: 294, Anio: 1982, Genero: "Pop"},
		{Titulo: "Like a Rolling Stone", Artista: "Bob Dylan", Album: "Highway 61 Revisited", Duracion: 370, Anio: 1965, Genero: "Folk Rock"},
		{Titulo: "Smells Like Teen Spirit", Artista: "Nirvana", Album: "Nevermind", Duracion: 301, Anio: 1991, Genero: "Grunge"},
		{Titulo: "What's Going On", Artista: "Marvin Gaye", Album: "What's Going On", Duracion: 233, Anio: 1971, Genero: "Soul"},
		{Titulo: "Stairway to Heaven", Artista: "Led Zeppelin", Album: "Led Zeppelin IV", Duracion: 482, Anio: 1971, Genero: "Rock"},
		{Titulo: "Hey Jude", Artista: "The Beatles", Album: "Hey Jude", Duracion: 431, Anio: 1968, Genero: "Rock"},
		{Titulo: "Purple Haze", Artista: "Jimi Hendrix", Album: "Are You Experienced", Duracion: 170, Anio: 1967, Genero: "Rock Psicodélico"},
	}
	if err := db.Create(&cancionesIniciales).Error; err != nil {
		return err
	}

	favoritosIniciales := []domain.Favorito{
		{IDUsuario: usuariosIniciales[0].ID, IDCancion: cancionesIniciales[0].ID},
		{IDUsuario: usuariosIniciales[0].ID, IDCancion: cancionesIniciales[1].ID},
		{IDUsuario: usuariosIniciales[1].ID, IDCancion: cancionesIniciales[2].ID},
		{IDUsuario: usuariosIniciales[1].ID, IDCancion: cancionesIniciales[3].ID},
		{IDUsuario: usuariosIniciales[2].ID, IDCancion: cancionesIniciales[0].ID},
	}
	return db.Create(&favoritosIniciales).Error
}
