package term

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-cli/internal/application/dto"
	"github.com/jhoicas/Inventario-cli/internal/application/inventory"
	"github.com/jhoicas/Inventario-cli/internal/domain/entity"
)

// ── Inventario ────────────────────────────────────────────────────────────────

// inventoryScreen tabla de estado de inventario con filtros por bucket,
// búsqueda y exportación a CSV/PDF. Los filtros operan sobre el snapshot ya
// traído; solo "actualizar" refetchea.
func (a *App) inventoryScreen(ctx context.Context) {
	rows, err := a.uc.Inventory.FetchStatus(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error al cargar el inventario: %s\n", displayMessage(err))
		return
	}

	filter := "ALL"
	for {
		visible := inventory.FilterByStatus(rows, filter)
		c := inventory.Counts(rows)
		fmt.Fprintln(a.out)
		fmt.Fprintf(a.out, "Control de Inventario — Total %d | OK %d | Bajo %d | Sin Stock %d (filtro: %s)\n",
			c.Total, c.StockOK, c.StockBajo, c.SinStock, filter)
		a.renderInventoryTable(visible)

		fmt.Fprintln(a.out, "[1] Todos  [2] Stock OK  [3] Stock Bajo  [4] Sin Stock  [b] Buscar  [r] Actualizar  [c] Exportar CSV  [p] Exportar PDF  [v] Volver")
		choice, ok := a.prompt("> ")
		if !ok || choice == "v" {
			return
		}
		switch choice {
		case "1":
			filter = "ALL"
		case "2":
			filter = entity.StatusStockOK
		case "3":
			filter = entity.StatusStockBajo
		case "4":
			filter = entity.StatusSinStock
		case "b":
			q, _ := a.prompt("Buscar (código o nombre): ")
			a.renderInventoryTable(inventory.SearchByName(rows, q))
		case "r":
			refreshed, err := a.uc.Inventory.FetchStatus(ctx)
			if err != nil {
				fmt.Fprintf(a.out, "Error: %s\n", displayMessage(err))
				continue
			}
			rows = refreshed
			fmt.Fprintln(a.out, "Inventario actualizado")
		case "c":
			a.exportCSV(visible)
		case "p":
			a.exportPDF(visible)
		}
	}
}

func (a *App) renderInventoryTable(rows []entity.InventoryStatusRow) {
	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CÓDIGO\tNOMBRE\tUNIDAD\tGRUPO\tMÍN\tACTUAL\tESTADO")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Codigo, r.Nombre, r.Unidad, r.Grupo, r.StockMinimo.String(), r.StockActual.String(), r.Estado)
	}
	w.Flush()
	if len(rows) == 0 {
		fmt.Fprintln(a.out, "No hay productos en el inventario")
	}
}

func (a *App) exportCSV(rows []entity.InventoryStatusRow) {
	name := fmt.Sprintf("inventario_%s.csv", time.Now().Format("2006-01-02"))
	if err := os.WriteFile(name, []byte(inventory.ToCSV(rows)), 0o644); err != nil {
		fmt.Fprintf(a.out, "Error al exportar: %s\n", err)
		return
	}
	fmt.Fprintf(a.out, "Inventario exportado a %s\n", name)
}

func (a *App) exportPDF(rows []entity.InventoryStatusRow) {
	company := ""
	if snap := a.sessions.Snapshot(); snap.User != nil {
		company = snap.User.FullName()
	}
	raw, err := a.reports.Generate(company, rows, time.Now())
	if err != nil {
		fmt.Fprintf(a.out, "Error al generar el PDF: %s\n", err)
		return
	}
	name := fmt.Sprintf("inventario_%s.pdf", time.Now().Format("2006-01-02"))
	if err := os.WriteFile(name, raw, 0o644); err != nil {
		fmt.Fprintf(a.out, "Error al exportar: %s\n", err)
		return
	}
	fmt.Fprintf(a.out, "Reporte exportado a %s\n", name)
}

// ── Movimientos y kardex ──────────────────────────────────────────────────────

// movementsScreen formulario de registro de INGRESO/EGRESO.
func (a *App) movementsScreen(ctx context.Context) {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "=== Nuevo Movimiento ===")
	code, ok := a.prompt("Código de producto: ")
	if !ok || code == "" {
		return
	}
	tipo, _ := a.prompt("Tipo (INGRESO/EGRESO): ")
	qty, ok := a.promptDecimal("Cantidad: ")
	if !ok {
		return
	}
	obs, _ := a.prompt("Observaciones (opcional): ")

	msg, rows, err := a.uc.Inventory.RegisterMovement(ctx, dto.CreateMovementRequest{
		ProductCode:  code,
		Type:         tipo,
		Quantity:     qty,
		MovementDate: time.Now().UTC().Format(time.RFC3339),
		Observations: obs,
	})
	if err != nil {
		fmt.Fprintf(a.out, "Error al registrar el movimiento: %s\n", displayMessage(err))
		return
	}
	fmt.Fprintln(a.out, msg)
	// Re-render con el snapshot refetcheado tras la mutación.
	a.renderInventoryTable(rows)
}

// kardexScreen ledger cronológico de un SKU con verificación local del saldo.
func (a *App) kardexScreen(ctx context.Context) {
	sku, ok := a.prompt("SKU del producto: ")
	if !ok || sku == "" {
		return
	}
	kardex, err := a.uc.Inventory.FetchKardex(ctx, sku)
	if err != nil {
		fmt.Fprintf(a.out, "Error al cargar el kardex: %s\n", displayMessage(err))
		return
	}

	fmt.Fprintf(a.out, "\nKardex — %s (%s)\n", kardex.Producto.Nombre, kardex.Producto.SKU)
	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FECHA\tTIPO\tCANTIDAD\tSALDO\tREGISTRADO POR\tOBSERVACIONES")
	for _, e := range kardex.Kardex {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Fecha.Format("02/01/2006"), e.Tipo, e.Cantidad.String(), e.Saldo.String(), e.RegistradoPor, e.Observaciones)
	}
	w.Flush()

	if mismatches := inventory.VerifyKardex(kardex.Kardex); len(mismatches) > 0 {
		fmt.Fprintf(a.out, "Advertencia: el saldo reportado no cuadra en %d línea(s)\n", len(mismatches))
	}
}

// ── Productos ─────────────────────────────────────────────────────────────────

// productsScreen catálogo de productos con alta, edición y baja. Toda mutación
// re-renderiza con la lista refetcheada que devuelve el caso de uso.
func (a *App) productsScreen(ctx context.Context) {
	products, err := a.uc.Products.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error al cargar los productos: %s\n", displayMessage(err))
		return
	}
	for {
		a.renderProductsTable(products)
		fmt.Fprintln(a.out, "[n] Nuevo  [e] Editar  [d] Eliminar  [v] Volver")
		choice, ok := a.prompt("> ")
		if !ok || choice == "v" {
			return
		}
		var refreshed []entity.Product
		switch choice {
		case "n":
			refreshed = a.createProduct(ctx)
		case "e":
			refreshed = a.editProduct(ctx)
		case "d":
			id, ok := a.promptID("ID del producto a eliminar: ")
			if !ok || !a.confirm("Confirmar eliminación (s/n): ") {
				continue
			}
			refreshed, err = a.uc.Products.Delete(ctx, id)
			if err != nil {
				fmt.Fprintf(a.out, "Error al eliminar el producto: %s\n", displayMessage(err))
				continue
			}
			fmt.Fprintln(a.out, "Producto eliminado.")
		default:
			continue
		}
		if refreshed != nil {
			products = refreshed
		}
	}
}

func (a *App) renderProductsTable(products []entity.Product) {
	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSKU\tNOMBRE\tPRECIO\tSTOCK MÍN")
	for _, p := range products {
		price := "—"
		if p.Price != nil {
			price = p.Price.StringFixed(2)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.SKU, p.Name, price, p.MinStock.String())
	}
	w.Flush()
}

// createProduct formulario de alta: unidad y grupo se eligen de los catálogos
// auxiliares de la empresa.
func (a *App) createProduct(ctx context.Context) []entity.Product {
	units, err := a.uc.Products.Units(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error al cargar las unidades: %s\n", displayMessage(err))
		return nil
	}
	groups, err := a.uc.Products.Groups(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error al cargar los grupos: %s\n", displayMessage(err))
		return nil
	}

	sku, _ := a.prompt("SKU: ")
	name, _ := a.prompt("Nombre: ")

	fmt.Fprintln(a.out, "Unidades:")
	for _, u := range units {
		fmt.Fprintf(a.out, "  %d) %s (%s)\n", u.ID, u.Name, u.Abbreviation)
	}
	unitID, ok := a.promptID("Unidad: ")
	if !ok {
		return nil
	}
	fmt.Fprintln(a.out, "Grupos:")
	for _, g := range groups {
		fmt.Fprintf(a.out, "  %d) %s\n", g.ID, g.Name)
	}
	groupID, ok := a.promptID("Grupo: ")
	if !ok {
		return nil
	}

	minStock, ok := a.promptDecimal("Stock mínimo: ")
	if !ok {
		return nil
	}
	req := dto.CreateProductRequest{
		SKU:      sku,
		Name:     name,
		UnitID:   unitID,
		GroupID:  groupID,
		MinStock: minStock,
	}
	if raw, _ := a.prompt("Precio (opcional): "); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			fmt.Fprintln(a.out, "Precio inválido.")
			return nil
		}
		req.Price = &price
	}

	refreshed, err := a.uc.Products.Create(ctx, req)
	if err != nil {
		fmt.Fprintf(a.out, "Error al crear el producto: %s\n", displayMessage(err))
		return nil
	}
	fmt.Fprintln(a.out, "Producto creado.")
	return refreshed
}

// editProduct formulario de edición parcial: campos vacíos no se envían.
func (a *App) editProduct(ctx context.Context) []entity.Product {
	id, ok := a.promptID("ID del producto: ")
	if !ok {
		return nil
	}
	req := dto.UpdateProductRequest{
		Name: a.promptOptional("Nuevo nombre (vacío para no cambiar): "),
	}
	if raw, _ := a.prompt("Nuevo stock mínimo (vacío para no cambiar): "); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			fmt.Fprintln(a.out, "Cantidad inválida.")
			return nil
		}
		req.MinStock = &min
	}
	if raw, _ := a.prompt("Nuevo precio (vacío para no cambiar): "); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			fmt.Fprintln(a.out, "Precio inválido.")
			return nil
		}
		req.Price = &price
	}

	refreshed, err := a.uc.Products.Update(ctx, id, req)
	if err != nil {
		fmt.Fprintf(a.out, "Error al actualizar el producto: %s\n", displayMessage(err))
		return nil
	}
	fmt.Fprintln(a.out, "Producto actualizado.")
	return refreshed
}

// ── Empresas ──────────────────────────────────────────────────────────────────

// companiesScreen administración de empresas (solo admin): alta, edición y baja
// con re-render desde la lista refetcheada.
func (a *App) companiesScreen(ctx context.Context) {
	companies, err := a.uc.Companies.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error al cargar las empresas: %s\n", displayMessage(err))
		return
	}
	for {
		w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNOMBRE\tRUC\tSECTOR\tTELÉFONO")
		for _, c := range companies {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.RUC, c.Sector, c.Phone)
		}
		w.Flush()

		fmt.Fprintln(a.out, "[n] Nueva  [e] Editar  [d] Eliminar  [v] Volver")
		choice, ok := a.prompt("> ")
		if !ok || choice == "v" {
			return
		}
		var refreshed []entity.Company
		switch choice {
		case "n":
			name, _ := a.prompt("Nombre: ")
			sector, _ := a.prompt("Sector: ")
			ruc, _ := a.prompt("RUC (opcional): ")
			phone, _ := a.prompt("Teléfono (opcional): ")
			refreshed, err = a.uc.Companies.Create(ctx, dto.CreateCompanyRequest{
				Name: name, Sector: sector, RUC: ruc, Phone: phone,
			})
			if err != nil {
				fmt.Fprintf(a.out, "Error al crear la empresa: %s\n", displayMessage(err))
				continue
			}
			fmt.Fprintln(a.out, "Empresa creada.")
		case "e":
			id, ok := a.promptID("ID de la empresa: ")
			if !ok {
				continue
			}
			refreshed, err = a.uc.Companies.Update(ctx, id, a.promptCompanyChanges())
			if err != nil {
				fmt.Fprintf(a.out, "Error al actualizar la empresa: %s\n", displayMessage(err))
				continue
			}
			fmt.Fprintln(a.out, "Empresa actualizada.")
		case "d":
			id, ok := a.promptID("ID de la empresa a eliminar: ")
			if !ok || !a.confirm("Confirmar eliminación (s/n): ") {
				continue
			}
			refreshed, err = a.uc.Companies.Delete(ctx, id)
			if err != nil {
				fmt.Fprintf(a.out, "Error al eliminar la empresa: %s\n", displayMessage(err))
				continue
			}
			fmt.Fprintln(a.out, "Empresa eliminada.")
		default:
			continue
		}
		if refreshed != nil {
			companies = refreshed
		}
	}
}

// promptCompanyChanges edición parcial de empresa: campos vacíos no se envían.
func (a *App) promptCompanyChanges() dto.UpdateCompanyRequest {
	return dto.UpdateCompanyRequest{
		Name:    a.promptOptional("Nuevo nombre (vacío para no cambiar): "),
		Sector:  a.promptOptional("Nuevo sector (vacío para no cambiar): "),
		Address: a.promptOptional("Nueva dirección (vacío para no cambiar): "),
		Phone:   a.promptOptional("Nuevo teléfono (vacío para no cambiar): "),
	}
}

// myCompanyScreen ficha de la tienda propia con edición.
func (a *App) myCompanyScreen(ctx context.Context) {
	company, err := a.uc.Companies.My(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error al cargar la tienda: %s\n", displayMessage(err))
		return
	}
	for {
		fmt.Fprintf(a.out, "\nMi Tienda: %s\nSector: %s\nDirección: %s\nTeléfono: %s\n%s\n",
			company.Name, company.Sector, company.Address, company.Phone, company.Description)

		fmt.Fprintln(a.out, "[e] Editar  [v] Volver")
		choice, ok := a.prompt("> ")
		if !ok || choice == "v" {
			return
		}
		if choice != "e" {
			continue
		}
		refreshed, err := a.uc.Companies.UpdateMy(ctx, company.ID, a.promptCompanyChanges())
		if err != nil {
			fmt.Fprintf(a.out, "Error al actualizar la tienda: %s\n", displayMessage(err))
			continue
		}
		company = refreshed
		fmt.Fprintln(a.out, "Tienda actualizada.")
	}
}

// ── Vendedores ────────────────────────────────────────────────────────────────

// sellersScreen administración de los vendedores de la empresa: alta, edición
// y baja con re-render desde la lista refetcheada.
func (a *App) sellersScreen(ctx context.Context) {
	sellers, err := a.uc.Sellers.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error al cargar los vendedores: %s\n", displayMessage(err))
		return
	}
	for {
		w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNOMBRE\tEMAIL\tDNI\tESTADO")
		for _, s := range sellers {
			fmt.Fprintf(w, "%d\t%s %s\t%s\t%s\t%s\n", s.ID, s.FirstName, s.LastNamePaternal, s.Email, s.DNI, s.Status)
		}
		w.Flush()

		fmt.Fprintln(a.out, "[n] Nuevo  [e] Editar  [d] Eliminar  [v] Volver")
		choice, ok := a.prompt("> ")
		if !ok || choice == "v" {
			return
		}
		var refreshed []entity.Seller
		switch choice {
		case "n":
			email, _ := a.prompt("Email: ")
			password, _ := a.prompt("Password: ")
			firstName, _ := a.prompt("Nombres: ")
			lastPat, _ := a.prompt("Apellido paterno: ")
			lastMat, _ := a.prompt("Apellido materno: ")
			dni, _ := a.prompt("DNI: ")
			birthDate, _ := a.prompt("Fecha de nacimiento (YYYY-MM-DD): ")
			gender, _ := a.prompt("Género (MASCULINO/FEMENINO): ")
			refreshed, err = a.uc.Sellers.Create(ctx, dto.CreateSellerRequest{
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
				fmt.Fprintf(a.out, "Error al crear el vendedor: %s\n", displayMessage(err))
				continue
			}
			fmt.Fprintln(a.out, "Vendedor creado.")
		case "e":
			id, ok := a.promptID("ID del vendedor: ")
			if !ok {
				continue
			}
			req := dto.UpdateSellerRequest{
				Phone:   a.promptOptional("Nuevo teléfono (vacío para no cambiar): "),
				Address: a.promptOptional("Nueva dirección (vacío para no cambiar): "),
				Status:  a.promptOptional("Nuevo estado ACTIVE/INACTIVE (vacío para no cambiar): "),
			}
			refreshed, err = a.uc.Sellers.Update(ctx, id, req)
			if err != nil {
				fmt.Fprintf(a.out, "Error al actualizar el vendedor: %s\n", displayMessage(err))
				continue
			}
			fmt.Fprintln(a.out, "Vendedor actualizado.")
		case "d":
			id, ok := a.promptID("ID del vendedor a eliminar: ")
			if !ok || !a.confirm("Confirmar eliminación (s/n): ") {
				continue
			}
			refreshed, err = a.uc.Sellers.Delete(ctx, id)
			if err != nil {
				fmt.Fprintf(a.out, "Error al eliminar el vendedor: %s\n", displayMessage(err))
				continue
			}
			fmt.Fprintln(a.out, "Vendedor eliminado.")
		default:
			continue
		}
		if refreshed != nil {
			sellers = refreshed
		}
	}
}

// ── Perfil ────────────────────────────────────────────────────────────────────

// profileScreen ficha del usuario autenticado con edición parcial.
func (a *App) profileScreen(ctx context.Context) {
	profile, err := a.uc.Profile.Get(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error al cargar el perfil: %s\n", displayMessage(err))
		return
	}
	for {
		fmt.Fprintf(a.out, "\nMi Perfil\nNombre: %s %s %s\nEmail: %s\nDNI: %s\nTeléfono: %s\nDirección: %s\n",
			profile.FirstName, profile.LastNamePaternal, profile.LastNameMaternal,
			profile.Email, profile.DNI, profile.Phone, profile.Address)

		fmt.Fprintln(a.out, "[e] Editar  [v] Volver")
		choice, ok := a.prompt("> ")
		if !ok || choice == "v" {
			return
		}
		if choice != "e" {
			continue
		}
		req := dto.UpdateProfileRequest{
			FirstName:        a.promptOptional("Nuevos nombres (vacío para no cambiar): "),
			LastNamePaternal: a.promptOptional("Nuevo apellido paterno (vacío para no cambiar): "),
			LastNameMaternal: a.promptOptional("Nuevo apellido materno (vacío para no cambiar): "),
			Phone:            a.promptOptional("Nuevo teléfono (vacío para no cambiar): "),
			Address:          a.promptOptional("Nueva dirección (vacío para no cambiar): "),
		}
		refreshed, err := a.uc.Profile.Update(ctx, req)
		if err != nil {
			fmt.Fprintf(a.out, "Error al actualizar el perfil: %s\n", displayMessage(err))
			continue
		}
		profile = refreshed
		fmt.Fprintln(a.out, "Perfil actualizado.")
	}
}

// ── Catálogo y pedidos ────────────────────────────────────────────────────────

func (a *App) catalogScreen(ctx context.Context) {
	products, err := a.uc.Products.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error al cargar el catálogo: %s\n", displayMessage(err))
		return
	}
	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRODUCTO\tPRECIO")
	for _, p := range products {
		price := "—"
		if p.Price != nil {
			price = p.Price.StringFixed(2)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", p.ID, p.Name, price)
	}
	w.Flush()

	id, ok := a.prompt("ID de producto a pedir (vacío para volver): ")
	if !ok || id == "" {
		return
	}
	qty, _ := a.prompt("Cantidad: ")
	a.createOrder(ctx, id, qty)
}

func (a *App) createOrder(ctx context.Context, idRaw, qtyRaw string) {
	var productID, quantity int64
	if _, err := fmt.Sscanf(idRaw, "%d", &productID); err != nil {
		fmt.Fprintln(a.out, "ID inválido.")
		return
	}
	if _, err := fmt.Sscanf(qtyRaw, "%d", &quantity); err != nil || quantity <= 0 {
		fmt.Fprintln(a.out, "Cantidad inválida.")
		return
	}
	orders, err := a.uc.Orders.Create(ctx, dto.CreateOrderRequest{ProductID: productID, Quantity: quantity})
	if err != nil {
		fmt.Fprintf(a.out, "Error al crear el pedido: %s\n", displayMessage(err))
		return
	}
	fmt.Fprintf(a.out, "Pedido realizado. Tienes %d pedido(s).\n", len(orders))
}

func (a *App) ordersScreen(ctx context.Context) {
	orders, err := a.uc.Orders.ListVisible(ctx, a.sessions.Snapshot().RoleName())
	if err != nil {
		fmt.Fprintf(a.out, "Error al cargar los pedidos: %s\n", displayMessage(err))
		return
	}
	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRODUCTO\tCANTIDAD\tESTADO\tFECHA")
	for _, o := range orders {
		name := fmt.Sprintf("#%d", o.ProductID)
		if o.Product != nil {
			name = o.Product.Name
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", o.ID, name, o.Quantity, o.Status, o.CreatedAt.Format("02/01/2006"))
	}
	w.Flush()
}

// ── Helpers de entrada ────────────────────────────────────────────────────────

// promptID lee un identificador numérico; false si no es válido.
func (a *App) promptID(label string) (int64, bool) {
	raw, ok := a.prompt(label)
	if !ok || raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintln(a.out, "ID inválido.")
		return 0, false
	}
	return id, true
}

// promptDecimal lee una cantidad decimal; false si no es válida.
func (a *App) promptDecimal(label string) (decimal.Decimal, bool) {
	raw, ok := a.prompt(label)
	if !ok {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		fmt.Fprintln(a.out, "Cantidad inválida.")
		return decimal.Zero, false
	}
	return d, true
}

// promptOptional lee un campo de edición parcial; nil significa "sin cambio".
func (a *App) promptOptional(label string) *string {
	v, ok := a.prompt(label)
	if !ok || v == "" {
		return nil
	}
	return &v
}

// confirm pregunta sí/no; solo "s" confirma.
func (a *App) confirm(label string) bool {
	v, _ := a.prompt(label)
	return v == "s"
}
