package domain

// EvaluationChecklist es la lista de verificación de una auditoría de calidad.
// Los cuatro grupos son fijos: cada criterio es un booleano donde true indica
// que el criterio fue cumplido y false cuenta como un error.
type EvaluationChecklist struct {
	Empatia      EmpatiaChecklist      `json:"empatia"`
	Ticket       GestionTicketChecklist `json:"gestion_ticket"`
	Conocimiento ConocimientoChecklist `json:"gestion_conocimiento"`
	Herramientas HerramientasChecklist `json:"gestion_herramientas"`
}

// EmpatiaChecklist agrupa los 6 criterios del pilar Empatía.
type EmpatiaChecklist struct {
	MetodoRIDED      bool `json:"metodo_rided"`
	LenguajePositivo bool `json:"lenguaje_positivo"`
	Acompanamiento   bool `json:"acompanamiento"`
	Personalizacion  bool `json:"personalizacion"`
	Estructura       bool `json:"estructura"`
	UsoIAOrtografia  bool `json:"uso_ia_ortografia"`
}

// GestionTicketChecklist agrupa los 7 criterios de gestión de ticket.
type GestionTicketChecklist struct {
	EstadosTicket       bool `json:"estados_ticket"`
	AusenciaCliente     bool `json:"ausencia_cliente"`
	ValidacionHistorial bool `json:"validacion_historial"`
	Tipificacion        bool `json:"tipificacion"`
	RetencionTickets    bool `json:"retencion_tickets"`
	TiempoRespuesta     bool `json:"tiempo_respuesta"`
	TiempoGestion       bool `json:"tiempo_gestion"`
}

// ConocimientoChecklist agrupa los 4 criterios de conocimiento integral.
type ConocimientoChecklist struct {
	ServiciosPromociones    bool `json:"servicios_promociones"`
	InformacionVeraz        bool `json:"informacion_veraz"`
	ParlamentosContingencia bool `json:"parlamentos_contingencia"`
	HonestidadTransparencia bool `json:"honestidad_transparencia"`
}

// HerramientasChecklist agrupa los 6 criterios de uso estratégico de herramientas.
type HerramientasChecklist struct {
	RideryOffice       bool `json:"ridery_office"`
	AdminZendesk       bool `json:"admin_zendesk"`
	DriveManuales      bool `json:"drive_manuales"`
	Slack              bool `json:"slack"`
	GeneracionReportes bool `json:"generacion_reportes"`
	CargaIncidencias   bool `json:"carga_incidencias"`
}

func (c EmpatiaChecklist) Criteria() []bool {
	return []bool{
		c.MetodoRIDED,
		c.LenguajePositivo,
		c.Acompanamiento,
		c.Personalizacion,
		c.Estructura,
		c.UsoIAOrtografia,
	}
}

func (c GestionTicketChecklist) Criteria() []bool {
	return []bool{
		c.EstadosTicket,
		c.AusenciaCliente,
		c.ValidacionHistorial,
		c.Tipificacion,
		c.RetencionTickets,
		c.TiempoRespuesta,
		c.TiempoGestion,
	}
}

func (c ConocimientoChecklist) Criteria() []bool {
	return []bool{
		c.ServiciosPromociones,
		c.InformacionVeraz,
		c.ParlamentosContingencia,
		c.HonestidadTransparencia,
	}
}

func (c HerramientasChecklist) Criteria() []bool {
	return []bool{
		c.RideryOffice,
		c.AdminZendesk,
		c.DriveManuales,
		c.Slack,
		c.GeneracionReportes,
		c.CargaIncidencias,
	}
}

// MarkAll devuelve una lista de verificación con todos los criterios cumplidos.
// Útil como punto de partida en formularios de auditoría.
func MarkAll() EvaluationChecklist {
	return EvaluationChecklist{
		Empatia: EmpatiaChecklist{
			MetodoRIDED:      true,
			LenguajePositivo: true,
			Acompanamiento:   true,
			Personalizacion:  true,
			Estructura:       true,
			UsoIAOrtografia:  true,
		},
		Ticket: GestionTicketChecklist{
			EstadosTicket:       true,
			AusenciaCliente:     true,
			ValidacionHistorial: true,
			Tipificacion:        true,
			RetencionTickets:    true,
			TiempoRespuesta:     true,
			TiempoGestion:       true,
		},
		Conocimiento: ConocimientoChecklist{
			ServiciosPromociones:    true,
			InformacionVeraz:        true,
			ParlamentosContingencia: true,
			HonestidadTransparencia: true,
		},
		Herramientas: HerramientasChecklist{
			RideryOffice:       true,
			AdminZendesk:       true,
			DriveManuales:      true,
			Slack:              true,
			GeneracionReportes: true,
			CargaIncidencias:   true,
		},
	}
}
