package entity

// Module es una entrada del catálogo global de módulos (productos, ventas,
// compras, cajas, etc.). No está scoped por tenant y es de solo lectura para
// este servicio; el orden de despliegue define el orden estable de la matriz
// de permisos.
type Module struct {
	ID           int64
	Name         string
	Route        string
	DisplayOrder int
}
