package entity

// Category agrupa productos y gastos; solo se usa para agrupar y mostrar.
type Category struct {
	ID   string
	Name string
}
