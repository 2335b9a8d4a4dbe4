// Package ports define los puertos de salida de la capa de aplicación:
// el gateway HTTP hacia el backend y el almacén persistente del bearer token.
// Las implementaciones concretas viven en internal/infrastructure.
package ports

import "context"

// TokenStore almacena la única credencial bearer del contexto del cliente.
// El token es opaco: aquí no se valida su forma.
type TokenStore interface {
	// Get devuelve el token almacenado y true, o ("", false) si no hay.
	Get() (string, bool)
	// Set reemplaza el token almacenado.
	Set(token string) error
	// Clear elimina el token. Es idempotente: sin token almacenado es un no-op.
	Clear() error
}

// Gateway emite peticiones autenticadas contra el backend REST.
// method/path son relativos al base URL configurado; body se serializa a JSON
// si no es nil; out se deserializa desde la respuesta si no es nil.
// Todo fallo se devuelve como *domain.APIError.
type Gateway interface {
	Do(ctx context.Context, method, path string, body, out any) error
}
