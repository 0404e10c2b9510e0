package domain

// WeekRange es un rango de reporte dentro de un mes. Los rangos los define
// el editor y no tienen que coincidir con semanas calendario (lunes-domingo):
// el último rango puede ser más corto y el editor puede extender rangos hacia
// el mes siguiente.
type WeekRange struct {
	Index     int    `json:"index"`
	StartDate string `json:"start_date"` // YYYY-MM-DD, inclusive
	EndDate   string `json:"end_date"`   // YYYY-MM-DD, inclusive
	Label     string `json:"label,omitempty"`
}

// Contains indica si una fecha (YYYY-MM-DD) cae dentro del rango. La
// comparación lexicográfica es válida por el formato de fecha ISO.
func (w WeekRange) Contains(date string) bool {
	return date >= w.StartDate && date <= w.EndDate
}

// WeekConfig es la partición configurada de un mes en rangos de reporte.
// Invariante: una configuración guardada nunca queda vacía.
type WeekConfig struct {
	Year  int         `json:"year"`
	Month int         `json:"month"` // 1-12
	Weeks []WeekRange `json:"weeks"`
}
