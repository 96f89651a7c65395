package rolecatalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Ordinal es el nivel de privilegio canónico de un rol: 1 es el más alto
// (super administrador) y 5 el más bajo (empleado general). Todo nombre de rol
// definido por un tenant se proyecta a exactamente uno de estos cinco valores.
type Ordinal int

const (
	SuperAdmin Ordinal = 1
	Admin      Ordinal = 2
	Gerente    Ordinal = 3
	Cajero     Ordinal = 4
	Empleado   Ordinal = 5
)

// String devuelve el nombre canónico del ordinal.
func (o Ordinal) String() string {
	switch o {
	case SuperAdmin:
		return "superadmin"
	case Admin:
		return "administrador"
	case Gerente:
		return "gerente"
	case Cajero:
		return "cajero"
	case Empleado:
		return "empleado"
	}
	return "desconocido"
}

// Valid informa si el ordinal está dentro del rango cerrado 1..5.
func (o Ordinal) Valid() bool {
	return o >= SuperAdmin && o <= Empleado
}

// aliases mapea nombres de rol ya normalizados (minúsculas, sin tildes) a su
// ordinal. Única tabla del sistema: cualquier comparación de roles pasa por aquí.
var aliases = map[string]Ordinal{
	"superadmin":           SuperAdmin,
	"super admin":          SuperAdmin,
	"superadministrador":   SuperAdmin,
	"super administrador":  SuperAdmin,
	"admin":                Admin,
	"administrador":        Admin,
	"administrator":        Admin,
	"gerente":              Gerente,
	"manager":              Gerente,
	"supervisor":           Gerente,
	"cajero":               Cajero,
	"cashier":              Cajero,
	"vendedor":             Cajero,
	"empleado":             Empleado,
	"empleado general":     Empleado,
	"employee":             Empleado,
}

// Canonicalize proyecta un nombre de rol libre a su ordinal canónico.
// Insensible a mayúsculas y tildes ("Administrador" == "administrador" ==
// "ADMINISTRADOR"). Un nombre que no está en la tabla cae al privilegio mínimo
// (Empleado): la clasificación falla abierta hacia menos privilegio, nunca
// hacia más.
func Canonicalize(name string) Ordinal {
	if o, ok := aliases[fold(name)]; ok {
		return o
	}
	return Empleado
}

// Resolve convierte un requisito de rol (nombre string, Ordinal o int) a su
// ordinal. Los nombres pasan por la misma tabla de alias que Canonicalize, de
// modo que un guard configurado con "gerente" o con 3 se comporta igual.
func Resolve(req any) (Ordinal, bool) {
	switch v := req.(type) {
	case Ordinal:
		return v, v.Valid()
	case int:
		return Ordinal(v), Ordinal(v).Valid()
	case int64:
		return Ordinal(v), Ordinal(v).Valid()
	case string:
		return Canonicalize(v), true
	}
	return 0, false
}

// Allows informa si el ordinal pertenece al conjunto de requisitos. Los
// requisitos inválidos (tipo no soportado u ordinal fuera de rango) se ignoran;
// con el conjunto vacío no se permite nada.
func Allows(o Ordinal, required ...any) bool {
	for _, req := range required {
		if want, ok := Resolve(req); ok && want == o {
			return true
		}
	}
	return false
}

// fold normaliza para la búsqueda en la tabla: minúsculas, sin espacios en los
// extremos y con las marcas diacríticas eliminadas vía NFD.
func fold(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	// El transformer se construye por llamada: transform.Chain guarda estado
	// interno y no es seguro compartirlo entre goroutines.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
