package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ridery/calidad-agentes-api/internal/domain"
)

func TestCalculate_AllCriteriaMet(t *testing.T) {
	calc := NewService()

	score, err := calc.Calculate(domain.MarkAll())
	require.NoError(t, err)

	// Escenario de referencia: 23 criterios cumplidos = puntaje perfecto
	assert.Equal(t, 100, score.Total)
	assert.InDelta(t, 50.0, score.EmpatiaScore, 0.001)
	assert.InDelta(t, 50.0, score.GestionScore, 0.001)
}

func TestCalculate_StrictRuleZeroesEverything(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *domain.EvaluationChecklist)
	}{
		{
			name: "dos errores en empatía",
			setup: func(c *domain.EvaluationChecklist) {
				c.Empatia.MetodoRIDED = false
				c.Empatia.LenguajePositivo = false
			},
		},
		{
			name: "un error en empatía y otro en gestión de ticket",
			setup: func(c *domain.EvaluationChecklist) {
				c.Empatia.Acompanamiento = false
				c.Ticket.Tipificacion = false
			},
		},
		{
			name: "errores repartidos en los cuatro grupos",
			setup: func(c *domain.EvaluationChecklist) {
				c.Empatia.Estructura = false
				c.Ticket.TiempoRespuesta = false
				c.Conocimiento.InformacionVeraz = false
				c.Herramientas.Slack = false
			},
		},
		{
			name: "todos los criterios incumplidos",
			setup: func(c *domain.EvaluationChecklist) {
				*c = domain.EvaluationChecklist{}
			},
		},
	}

	calc := NewService()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checklist := domain.MarkAll()
			tt.setup(&checklist)

			score, err := calc.Calculate(checklist)
			require.NoError(t, err)

			assert.Equal(t, 0, score.Total)
			assert.Zero(t, score.EmpatiaScore)
			assert.Zero(t, score.GestionScore)
		})
	}
}

func TestCalculate_SingleErrorTolerance(t *testing.T) {
	tests := []struct {
		name          string
		setup         func(c *domain.EvaluationChecklist)
		expectedTotal int
		expectedEmp   float64
		expectedGes   float64
	}{
		{
			name: "un error en empatía descuenta 50/6",
			setup: func(c *domain.EvaluationChecklist) {
				c.Empatia.Personalizacion = false
			},
			expectedTotal: 92, // round(100 - 8.333)
			expectedEmp:   50.0 * 5.0 / 6.0,
			expectedGes:   50.0,
		},
		{
			name: "un error en gestión de ticket descuenta (50/3)/7",
			setup: func(c *domain.EvaluationChecklist) {
				c.Ticket.AusenciaCliente = false
			},
			expectedTotal: 98, // round(100 - 2.381)
			expectedEmp:   50.0,
			expectedGes:   50.0 - (50.0/3.0)/7.0,
		},
		{
			name: "un error en conocimiento descuenta (50/3)/4",
			setup: func(c *domain.EvaluationChecklist) {
				c.Conocimiento.ParlamentosContingencia = false
			},
			expectedTotal: 96, // round(100 - 4.167)
			expectedEmp:   50.0,
			expectedGes:   50.0 - (50.0/3.0)/4.0,
		},
		{
			name: "un error en herramientas descuenta (50/3)/6",
			setup: func(c *domain.EvaluationChecklist) {
				c.Herramientas.CargaIncidencias = false
			},
			expectedTotal: 97, // round(100 - 2.778)
			expectedEmp:   50.0,
			expectedGes:   50.0 - (50.0/3.0)/6.0,
		},
	}

	calc := NewService()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checklist := domain.MarkAll()
			tt.setup(&checklist)

			score, err := calc.Calculate(checklist)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedTotal, score.Total)
			assert.InDelta(t, tt.expectedEmp, score.EmpatiaScore, 0.001)
			assert.InDelta(t, tt.expectedGes, score.GestionScore, 0.001)
		})
	}
}

func TestCalculate_PerGroupPolicy(t *testing.T) {
	calc := NewService(WithPolicy(PolicyPerGroupThreshold))

	// Dos errores en empatía anulan solo ese pilar; gestión queda completa
	checklist := domain.MarkAll()
	checklist.Empatia.MetodoRIDED = false
	checklist.Empatia.LenguajePositivo = false

	score, err := calc.Calculate(checklist)
	require.NoError(t, err)

	assert.Zero(t, score.EmpatiaScore)
	assert.InDelta(t, 50.0, score.GestionScore, 0.001)
	assert.Equal(t, 50, score.Total)
}

func TestCalculate_PerGroupPolicySingleErrorsSurvive(t *testing.T) {
	calc := NewService(WithPolicy(PolicyPerGroupThreshold))

	// Un error por grupo: ningún grupo alcanza el umbral, todos puntúan
	checklist := domain.MarkAll()
	checklist.Empatia.Estructura = false
	checklist.Ticket.TiempoGestion = false

	score, err := calc.Calculate(checklist)
	require.NoError(t, err)

	assert.InDelta(t, 50.0*5.0/6.0, score.EmpatiaScore, 0.001)
	assert.InDelta(t, 50.0-(50.0/3.0)/7.0, score.GestionScore, 0.001)
}
