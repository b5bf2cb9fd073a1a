package booking

// ===============================
// Slot Catalog
// ===============================

// Catalog es la lista ordenada de horarios que se ofrecen cada día.
// Las etiquetas son opacas: se comparan por igualdad exacta, nunca se
// interpretan como horas.
type Catalog []string

// DefaultCatalog son los cinco horarios del sitio público.
func DefaultCatalog() Catalog {
	return Catalog{"09:00 AM", "11:00 AM", "01:00 PM", "03:00 PM", "05:00 PM"}
}

func NewCatalog(labels []string) Catalog {
	c := make(Catalog, len(labels))
	copy(c, labels)
	return c
}

func (c Catalog) Labels() []string {
	out := make([]string, len(c))
	copy(out, c)
	return out
}

func (c Catalog) Contains(label string) bool {
	for _, s := range c {
		if s == label {
			return true
		}
	}
	return false
}

// Without devuelve el catálogo sin las etiquetas ocupadas, en el mismo
// orden del catálogo. Etiquetas desconocidas en taken se ignoran.
func (c Catalog) Without(taken map[string]struct{}) []string {
	free := make([]string, 0, len(c))
	for _, s := range c {
		if _, ok := taken[s]; ok {
			continue
		}
		free = append(free, s)
	}
	return free
}
