package client

import "fmt"

const mensajeGenerico = "Ha ocurrido un error inesperado"

// TransportError means the request never completed: DNS, refused
// connection, timeout. No HTTP response exists.
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPStatusError is a completed response with a non-success status.
// Detail carries the server's message when the body had one.
type HTTPStatusError struct {
	Status int
	Detail string
}

func (e *HTTPStatusError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("HTTP %d: %s", e.Status, mensajeGenerico)
}

// MalformedResponseError means the body decoded but matched no shape
// the contract allows.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return "respuesta con forma inesperada: " + e.Reason
}
