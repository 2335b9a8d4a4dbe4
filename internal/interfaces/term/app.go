// Package term es el frontend de terminal: login, menú filtrado por rol y
// pantallas de cada área. Nunca muestra contenido protegido mientras la
// sesión está Uninitialized o Loading, y toda decisión de acceso pasa por
// navigation.CanAccess.
package term

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/Inventario-cli/internal/application/dto"
	"github.com/jhoicas/Inventario-cli/internal/application/inventory"
	"github.com/jhoicas/Inventario-cli/internal/application/navigation"
	"github.com/jhoicas/Inventario-cli/internal/application/session"
	"github.com/jhoicas/Inventario-cli/internal/application/usecase"
	"github.com/jhoicas/Inventario-cli/internal/domain"
	"github.com/jhoicas/Inventario-cli/internal/infrastructure/pdf"
	"github.com/jhoicas/Inventario-cli/pkg/logger"
)

// UseCases agrupa los casos de uso que consumen las pantallas.
type UseCases struct {
	Inventory *inventory.UseCase
	Products  *usecase.ProductUseCase
	Companies *usecase.CompanyUseCase
	Sellers   *usecase.SellerUseCase
	Profile   *usecase.ProfileUseCase
	Orders    *usecase.OrderUseCase
}

// App aplicación interactiva de terminal.
type App struct {
	log      *logger.Logger
	sessions *session.Manager
	uc       UseCases
	reports  *pdf.InventoryReportGenerator

	in  *bufio.Scanner
	out io.Writer
}

// NewApp construye la aplicación sobre los streams dados (stdin/stdout en
// producción, buffers en tests).
func NewApp(log *logger.Logger, sessions *session.Manager, uc UseCases, reports *pdf.InventoryReportGenerator, in io.Reader, out io.Writer) *App {
	return &App{
		log:      log,
		sessions: sessions,
		uc:       uc,
		reports:  reports,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run arranca la aplicación: revalida la sesión persistida y entra al bucle
// login/menú hasta que el usuario salga o se acabe la entrada.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Cargando...")
	a.sessions.CheckSession(ctx)

	for {
		snap := a.sessions.Snapshot()
		switch snap.State {
		case session.StateAuthenticated:
			if !a.menuLoop(ctx) {
				return nil
			}
		case session.StateAnonymous:
			if !a.loginScreen(ctx) {
				return nil
			}
		default:
			// Uninitialized/Loading: placeholder neutro, nunca contenido protegido.
			fmt.Fprintln(a.out, "Cargando...")
			time.Sleep(100 * time.Millisecond)
		}
	}
}

// loginScreen punto de entrada anónimo: iniciar sesión o crear una cuenta.
// Devuelve false si el usuario quiere salir.
func (a *App) loginScreen(ctx context.Context) bool {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "=== Inventario ===")
	fmt.Fprintln(a.out, "1) Iniciar sesión")
	fmt.Fprintln(a.out, "2) Registrarse")
	fmt.Fprintln(a.out, "q) Salir")

	choice, ok := a.prompt("> ")
	if !ok || choice == "q" {
		return false
	}
	switch choice {
	case "1":
		a.doLogin(ctx)
	case "2":
		a.registerScreen(ctx)
	default:
		fmt.Fprintln(a.out, "Opción inválida.")
	}
	return true
}

// doLogin pide credenciales y delega en el SessionManager.
func (a *App) doLogin(ctx context.Context) {
	email, ok := a.prompt("Email: ")
	if !ok || email == "" {
		return
	}
	password, ok := a.prompt("Password: ")
	if !ok {
		return
	}

	if err := a.sessions.Login(ctx, email, password); err != nil {
		// El error ya viene normalizado como mensaje mostrable.
		fmt.Fprintf(a.out, "Error: %s\n", displayMessage(err))
		return
	}

	snap := a.sessions.Snapshot()
	if snap.User != nil {
		fmt.Fprintf(a.out, "Bienvenido, %s (%s)\n", snap.User.FullName(), snap.User.Role.Alias)
	}
}

// registerScreen formulario de creación de cuenta. No inicia sesión: en éxito
// el flujo vuelve al punto de entrada anónimo.
func (a *App) registerScreen(ctx context.Context) {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "=== Crear Cuenta ===")

	roles, err := a.uc.Profile.Roles(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error al cargar los roles: %s\n", displayMessage(err))
		return
	}
	fmt.Fprintln(a.out, "Tipo de cuenta:")
	for _, r := range roles {
		fmt.Fprintf(a.out, "  %d) %s\n", r.ID, r.Alias)
	}
	roleID, ok := a.promptID("Rol: ")
	if !ok {
		return
	}

	email, _ := a.prompt("Email: ")
	password, _ := a.prompt("Password (mínimo 8 caracteres): ")
	firstName, _ := a.prompt("Nombres: ")
	lastPat, _ := a.prompt("Apellido paterno: ")
	lastMat, _ := a.prompt("Apellido materno: ")
	dni, _ := a.prompt("DNI: ")
	birthDate, _ := a.prompt("Fecha de nacimiento (YYYY-MM-DD): ")
	gender, _ := a.prompt("Género (MASCULINO/FEMENINO): ")

	err = a.uc.Profile.Register(ctx, dto.RegisterRequest{
		RoleID:           roleID,
		Email:            email,
		Password:         password,
		FirstName:        firstName,
		LastNamePaternal: lastPat,
		LastNameMaternal: lastMat,
		DNI:              dni,
		BirthDate:        birthDate,
		Gender:           gender,
	})
	if err != nil {
		fmt.Fprintf(a.out, "Error al crear la cuenta: %s\n", displayMessage(err))
		return
	}
	fmt.Fprintln(a.out, "Cuenta creada. Ahora inicia sesión.")
}

// menuLoop muestra el menú filtrado por rol y despacha pantallas hasta que el
// usuario cierra sesión, la sesión se invalida o pide salir (false = salir).
func (a *App) menuLoop(ctx context.Context) bool {
	for {
		snap := a.sessions.Snapshot()
		if snap.State != session.StateAuthenticated {
			// Un 401 interceptado degradó la sesión: volver al login sin
			// acción del usuario.
			fmt.Fprintln(a.out, "La sesión expiró, vuelve a iniciar sesión.")
			return true
		}

		entries := navigation.VisibleEntries(snap.RoleName())
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "=== Menú ===")
		for i, e := range entries {
			fmt.Fprintf(a.out, "%d) %s\n", i+1, e.Label)
		}
		fmt.Fprintln(a.out, "0) Cerrar sesión")
		fmt.Fprintln(a.out, "q) Salir")

		choice, ok := a.prompt("> ")
		if !ok || choice == "q" {
			return false
		}
		if choice == "0" {
			a.sessions.Logout()
			fmt.Fprintln(a.out, "Sesión cerrada.")
			return true
		}

		idx, err := strconv.Atoi(choice)
		if err != nil || idx < 1 || idx > len(entries) {
			fmt.Fprintln(a.out, "Opción inválida.")
			continue
		}
		a.openRoute(ctx, entries[idx-1].Route)
	}
}

// openRoute aplica el guard de acceso y despacha la pantalla de la ruta.
// Si el acceso falla se muestra la pantalla neutra de no autorizado, nunca
// el contenido protegido.
func (a *App) openRoute(ctx context.Context, route string) {
	role := a.sessions.Snapshot().RoleName()
	if !navigation.CanAccess(route, role) {
		a.renderNotAuthorized()
		return
	}

	switch route {
	case navigation.RoutePerfil:
		a.profileScreen(ctx)
	case navigation.RouteMiTienda:
		a.myCompanyScreen(ctx)
	case navigation.RouteVendedores:
		a.sellersScreen(ctx)
	case navigation.RouteEmpresas:
		a.companiesScreen(ctx)
	case navigation.RouteProductos:
		a.productsScreen(ctx)
	case navigation.RouteInventario:
		a.inventoryScreen(ctx)
	case navigation.RouteMovimientos:
		a.movementsScreen(ctx)
	case navigation.RouteKardex:
		a.kardexScreen(ctx)
	case navigation.RouteCatalogo:
		a.catalogScreen(ctx)
	case navigation.RoutePedidos:
		a.ordersScreen(ctx)
	default:
		a.renderNotAuthorized()
	}
}

// renderNotAuthorized pantalla neutra de acceso denegado.
func (a *App) renderNotAuthorized() {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Acceso No Autorizado")
	fmt.Fprintln(a.out, "Lo sentimos, no tienes permiso para acceder a esta sección.")
}

// prompt lee una línea de entrada; false si el stream terminó.
func (a *App) prompt(label string) (string, bool) {
	fmt.Fprint(a.out, label)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

// displayMessage extrae el mensaje mostrable de un error, distinguiendo la
// taxonomía de APIError para el tono del aviso.
func displayMessage(err error) string {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Kind {
		case domain.KindNetwork:
			return apiErr.Message + " (verifica tu conexión e intenta de nuevo)"
		case domain.KindServer:
			return "el servidor tuvo un problema: " + apiErr.Message
		default:
			return apiErr.Message
		}
	}
	return err.Error()
}
