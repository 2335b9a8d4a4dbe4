// Package navigation centraliza las decisiones de acceso por rol. Toda
// comprobación de acceso de la aplicación pasa por CanAccess; no hay
// comparaciones de rol sueltas en las vistas.
package navigation

import "github.com/jhoicas/Inventario-cli/internal/domain/entity"

// Entry entrada estática del menú: ruta, etiqueta, icono y roles permitidos.
type Entry struct {
	Route string
	Label string
	Icon  string
	Roles []string
}

// allows indica si el rol pertenece al conjunto permitido de la entrada.
// Rol vacío falla cerrado.
func (e Entry) allows(role string) bool {
	if role == "" {
		return false
	}
	for _, r := range e.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Rutas de la aplicación.
const (
	RoutePerfil      = "/perfil"
	RouteMiTienda    = "/mi-tienda"
	RouteVendedores  = "/vendedores"
	RouteEmpresas    = "/empresas"
	RouteProductos   = "/productos"
	RouteInventario  = "/inventario"
	RouteMovimientos = "/movimientos"
	RouteKardex      = "/kardex"
	RouteCatalogo    = "/catalogo"
	RoutePedidos     = "/pedidos"
)

// entries tabla estática de navegación. "vendor" y "seller" comparten el área
// de empresa; "client" solo ve catálogo, pedidos y su perfil.
var entries = []Entry{
	{Route: RoutePerfil, Label: "Mi Perfil", Icon: "user-circle",
		Roles: []string{entity.RoleAdmin, entity.RoleVendor, entity.RoleSeller, entity.RoleClient}},
	{Route: RouteMiTienda, Label: "Mi Tienda", Icon: "store",
		Roles: []string{entity.RoleAdmin, entity.RoleVendor}},
	{Route: RouteVendedores, Label: "Vendedores", Icon: "users",
		Roles: []string{entity.RoleAdmin, entity.RoleVendor}},
	{Route: RouteEmpresas, Label: "Empresas", Icon: "building",
		Roles: []string{entity.RoleAdmin}},
	{Route: RouteProductos, Label: "Productos", Icon: "package",
		Roles: []string{entity.RoleAdmin, entity.RoleVendor, entity.RoleSeller}},
	{Route: RouteInventario, Label: "Inventario", Icon: "clipboard-list",
		Roles: []string{entity.RoleAdmin, entity.RoleVendor, entity.RoleSeller}},
	{Route: RouteMovimientos, Label: "Movimientos", Icon: "arrow-up-down",
		Roles: []string{entity.RoleAdmin, entity.RoleVendor, entity.RoleSeller}},
	{Route: RouteKardex, Label: "Kardex", Icon: "book-open",
		Roles: []string{entity.RoleAdmin, entity.RoleVendor, entity.RoleSeller}},
	{Route: RouteCatalogo, Label: "Catálogo", Icon: "shopping-bag",
		Roles: []string{entity.RoleClient}},
	{Route: RoutePedidos, Label: "Mis Pedidos", Icon: "shopping-cart",
		Roles: []string{entity.RoleClient, entity.RoleVendor, entity.RoleSeller}},
}

// VisibleEntries devuelve las entradas de menú visibles para el rol, en el
// orden estático de la tabla. Rol vacío o desconocido devuelve lista vacía.
func VisibleEntries(role string) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.allows(role) {
			out = append(out, e)
		}
	}
	return out
}

// CanAccess decide si el rol puede entrar a la ruta. Falla cerrado: rol vacío
// o ruta no configurada devuelven false.
func CanAccess(route, role string) bool {
	for _, e := range entries {
		if e.Route == route {
			return e.allows(role)
		}
	}
	return false
}

// Routes devuelve todas las rutas configuradas (útil para tests y guards).
func Routes() []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Route)
	}
	return out
}
