package response

// Detalle is the error body of every non-2xx response.
type Detalle struct {
	Detail string `json:"detail"`
}

func Detail(msg string) Detalle {
	if msg == "" {
		msg = "Ha ocurrido un error inesperado"
	}
	return Detalle{Detail: msg}
}

// Mensaje confirms a mutation that returns no entity (deletes).
type Mensaje struct {
	Mensaje string `json:"mensaje"`
	Exito   bool   `json:"exito"`
}

func OK(msg string) Mensaje { return Mensaje{Mensaje: msg, Exito: true} }
