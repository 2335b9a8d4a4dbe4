package term

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-cli/internal/application/dto"
	"github.com/jhoicas/Inventario-cli/internal/application/inventory"
	"github.com/jhoicas/Inventario-cli/internal/application/session"
	"github.com/jhoicas/Inventario-cli/internal/application/usecase"
	"github.com/jhoicas/Inventario-cli/internal/domain/entity"
	"github.com/jhoicas/Inventario-cli/internal/infrastructure/pdf"
	"github.com/jhoicas/Inventario-cli/internal/infrastructure/tokenstore"
	"github.com/jhoicas/Inventario-cli/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeGateway implementación de ports.Gateway que registra llamadas y bodies y
// delega la respuesta a un handler por llamada.
type fakeGateway struct {
	calls   []string
	bodies  map[string]any
	handler func(method, path string, body, out any) error
}

func (f *fakeGateway) Do(ctx context.Context, method, path string, body, out any) error {
	key := method + " " + path
	f.calls = append(f.calls, key)
	if f.bodies == nil {
		f.bodies = map[string]any{}
	}
	f.bodies[key] = body
	if f.handler == nil {
		return nil
	}
	return f.handler(method, path, body, out)
}

// newScreenApp cablea la aplicación completa sobre un gateway falso, con la
// entrada del usuario guionada línea a línea.
func newScreenApp(t *testing.T, script string, handler func(method, path string, body, out any) error) (*App, *fakeGateway, *bytes.Buffer) {
	t.Helper()

	gw := &fakeGateway{handler: handler}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	store := tokenstore.NewFileStore(filepath.Join(t.TempDir(), "token"))
	sessions := session.NewManager(gw, store, log)

	uc := UseCases{
		Inventory: inventory.NewUseCase(gw, log),
		Products:  usecase.NewProductUseCase(gw),
		Companies: usecase.NewCompanyUseCase(gw),
		Sellers:   usecase.NewSellerUseCase(gw),
		Profile:   usecase.NewProfileUseCase(gw),
		Orders:    usecase.NewOrderUseCase(gw),
	}

	out := &bytes.Buffer{}
	app := NewApp(log, sessions, uc, pdf.NewInventoryReportGenerator(), strings.NewReader(script), out)
	return app, gw, out
}

// ──────────────────────────────────────────────────────────────────────────────
// Empresas
// ──────────────────────────────────────────────────────────────────────────────

// El alta de empresa desde la pantalla emite la mutación y re-renderiza con la
// lista refetcheada.
func TestCompaniesScreen_CrearEmpresa(t *testing.T) {
	script := strings.Join([]string{
		"n",               // nueva empresa
		"Ferretería Acme", // nombre
		"Ferretería",      // sector
		"",                // RUC
		"",                // teléfono
		"v",               // volver
	}, "\n") + "\n"

	app, gw, out := newScreenApp(t, script, func(method, path string, body, out any) error {
		if method == "GET" && path == "/company" {
			companies := out.(*[]entity.Company)
			*companies = []entity.Company{{ID: 1, Name: "Ferretería Acme", Sector: "Ferretería"}}
		}
		return nil
	})

	app.companiesScreen(context.Background())

	assert.Equal(t, []string{
		"GET /company",
		"POST /company/create",
		"GET /company",
	}, gw.calls)
	assert.Contains(t, out.String(), "Empresa creada.")
	assert.Contains(t, out.String(), "Ferretería Acme")
}

// La edición de la tienda propia usa el id de la empresa cargada y refetchea
// la ficha.
func TestMyCompanyScreen_Editar(t *testing.T) {
	script := strings.Join([]string{
		"e",               // editar
		"Mi Tienda Nueva", // nombre
		"",                // sector
		"",                // dirección
		"",                // teléfono
		"v",               // volver
	}, "\n") + "\n"

	app, gw, out := newScreenApp(t, script, func(method, path string, body, out any) error {
		if method == "GET" && path == "/company/my" {
			company := out.(*entity.Company)
			company.ID = 3
			company.Name = "Mi Tienda Nueva"
		}
		return nil
	})

	app.myCompanyScreen(context.Background())

	assert.Equal(t, []string{
		"GET /company/my",
		"PATCH /company/3",
		"GET /company/my",
	}, gw.calls)
	assert.Contains(t, out.String(), "Tienda actualizada.")
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

// El alta de producto carga los catálogos auxiliares, emite la mutación y
// re-renderiza con el catálogo refetcheado.
func TestProductsScreen_CrearProducto(t *testing.T) {
	script := strings.Join([]string{
		"n",        // nuevo producto
		"SKU-9",    // sku
		"Tornillo", // nombre
		"1",        // unidad
		"2",        // grupo
		"5",        // stock mínimo
		"",         // precio
		"v",        // volver
	}, "\n") + "\n"

	app, gw, out := newScreenApp(t, script, func(method, path string, body, out any) error {
		switch path {
		case "/products/units":
			units := out.(*[]entity.UnitOfMeasure)
			*units = []entity.UnitOfMeasure{{ID: 1, Name: "Unidad", Abbreviation: "UND"}}
		case "/products/groups":
			groups := out.(*[]entity.ProductGroup)
			*groups = []entity.ProductGroup{{ID: 2, Name: "General"}}
		}
		return nil
	})

	app.productsScreen(context.Background())

	assert.Equal(t, []string{
		"GET /products",
		"GET /products/units",
		"GET /products/groups",
		"POST /products",
		"GET /products",
	}, gw.calls)
	assert.Contains(t, out.String(), "Producto creado.")

	req := gw.bodies["POST /products"].(dto.CreateProductRequest)
	assert.Equal(t, "SKU-9", req.SKU)
	assert.Equal(t, int64(1), req.UnitID)
	assert.Equal(t, int64(2), req.GroupID)
}

// La baja de producto pide confirmación antes de emitir la mutación.
func TestProductsScreen_EliminarConConfirmacion(t *testing.T) {
	script := strings.Join([]string{
		"d", "7", "n", // eliminar 7, NO confirmado
		"d", "7", "s", // eliminar 7, confirmado
		"v",
	}, "\n") + "\n"

	app, gw, _ := newScreenApp(t, script, nil)
	app.productsScreen(context.Background())

	assert.Equal(t, []string{
		"GET /products",
		"DELETE /products/7",
		"GET /products",
	}, gw.calls, "sin confirmación no debe haber mutación")
}

// ──────────────────────────────────────────────────────────────────────────────
// Vendedores
// ──────────────────────────────────────────────────────────────────────────────

// La baja de vendedor emite la mutación y refetchea la lista.
func TestSellersScreen_EliminarVendedor(t *testing.T) {
	script := strings.Join([]string{
		"d", "3", "s", // eliminar 3, confirmado
		"v",
	}, "\n") + "\n"

	app, gw, _ := newScreenApp(t, script, nil)
	app.sellersScreen(context.Background())

	assert.Equal(t, []string{
		"GET /users/sellers",
		"DELETE /users/sellers/3",
		"GET /users/sellers",
	}, gw.calls)
}

// El alta de vendedor emite la mutación con los datos del formulario.
func TestSellersScreen_CrearVendedor(t *testing.T) {
	script := strings.Join([]string{
		"n",
		"vendedor@acme.com", // email
		"secreta123",        // password
		"Luis",              // nombres
		"Rojas",             // paterno
		"Quispe",            // materno
		"12345678",          // dni
		"1995-06-01",        // nacimiento
		"MASCULINO",         // género
		"v",
	}, "\n") + "\n"

	app, gw, out := newScreenApp(t, script, nil)
	app.sellersScreen(context.Background())

	assert.Equal(t, []string{
		"GET /users/sellers",
		"POST /users/sellers",
		"GET /users/sellers",
	}, gw.calls)
	assert.Contains(t, out.String(), "Vendedor creado.")

	req := gw.bodies["POST /users/sellers"].(dto.CreateSellerRequest)
	assert.Equal(t, "vendedor@acme.com", req.Email)
	assert.Equal(t, "12345678", req.DNI)
}

// ──────────────────────────────────────────────────────────────────────────────
// Perfil y registro
// ──────────────────────────────────────────────────────────────────────────────

// La edición de perfil envía solo los campos cambiados y refetchea la ficha.
func TestProfileScreen_EditarParcial(t *testing.T) {
	script := strings.Join([]string{
		"e",
		"",          // nombres: sin cambio
		"",          // paterno: sin cambio
		"",          // materno: sin cambio
		"999888777", // teléfono
		"",          // dirección: sin cambio
		"v",
	}, "\n") + "\n"

	app, gw, out := newScreenApp(t, script, nil)
	app.profileScreen(context.Background())

	assert.Equal(t, []string{
		"GET /profile",
		"PATCH /profile",
		"GET /profile",
	}, gw.calls)
	assert.Contains(t, out.String(), "Perfil actualizado.")

	req := gw.bodies["PATCH /profile"].(dto.UpdateProfileRequest)
	require.NotNil(t, req.Phone)
	assert.Equal(t, "999888777", *req.Phone)
	assert.Nil(t, req.FirstName, "campo vacío no debe enviarse")
}

// El registro lista los roles disponibles y emite el alta de cuenta sin
// iniciar sesión.
func TestRegisterScreen_CreaCuenta(t *testing.T) {
	script := strings.Join([]string{
		"2",              // rol
		"nuevo@acme.com", // email
		"secreta123",     // password
		"Nuevo",          // nombres
		"Pérez",          // paterno
		"López",          // materno
		"87654321",       // dni
		"1990-01-01",     // nacimiento
		"FEMENINO",       // género
	}, "\n") + "\n"

	app, gw, out := newScreenApp(t, script, func(method, path string, body, out any) error {
		if path == "/roles" {
			roles := out.(*[]entity.Role)
			*roles = []entity.Role{
				{ID: 2, Name: "client", Alias: "Cliente"},
				{ID: 3, Name: "vendor", Alias: "Empresa"},
			}
		}
		return nil
	})

	app.registerScreen(context.Background())

	assert.Equal(t, []string{
		"GET /roles",
		"POST /auth/register",
	}, gw.calls)
	assert.Contains(t, out.String(), "Cliente")
	assert.Contains(t, out.String(), "Cuenta creada. Ahora inicia sesión.")

	req := gw.bodies["POST /auth/register"].(dto.RegisterRequest)
	assert.Equal(t, int64(2), req.RoleID)
	assert.Equal(t, "nuevo@acme.com", req.Email)
	assert.Equal(t, session.StateUninitialized, app.sessions.Snapshot().State,
		"el registro no debe iniciar sesión")
}
