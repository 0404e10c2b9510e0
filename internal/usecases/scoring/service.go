package scoring

import (
	"math"

	"github.com/pkg/errors"
	"github.com/ridery/calidad-agentes-api/internal/domain"
)

// Pesos del sistema de pilares: Empatía vale 50 de 100 y Gestión los otros
// 50, repartidos en partes iguales entre sus tres subgrupos. El peso de cada
// subgrupo se mantiene como fracción exacta (50/3) durante todo el cálculo;
// el redondeo ocurre una sola vez, sobre la suma final.
const (
	empatiaWeight    = 50.0
	gestionSubWeight = 50.0 / 3.0
)

// StrictErrorPolicy define cómo se aplica la regla estricta de errores.
type StrictErrorPolicy int

const (
	// PolicyGlobalThreshold anula la auditoría completa cuando hay 2 o más
	// errores en cualquier combinación de grupos. Es la política vigente.
	PolicyGlobalThreshold StrictErrorPolicy = iota

	// PolicyPerGroupThreshold anula solo el grupo que acumule 2 o más
	// errores, dejando el resto intacto. Existe únicamente para reproducir
	// puntajes históricos calculados con la regla anterior.
	PolicyPerGroupThreshold
)

// Score es el resultado de puntuar una lista de verificación. Los subtotales
// de pilar están en rango 0-50; Total es la suma redondeada en 0-100.
type Score struct {
	Total        int     `json:"total"`
	EmpatiaScore float64 `json:"empatia_score"`
	GestionScore float64 `json:"gestion_score"`
}

// ErrEmptyCriteriaGroup indica un grupo de criterios sin elementos. Ninguno
// de los cuatro grupos puede estar vacío; si ocurre es un bug del llamador y
// se falla de inmediato en lugar de puntuar cero en silencio.
var ErrEmptyCriteriaGroup = errors.New("grupo de criterios vacío en la lista de verificación")

type Calculator interface {
	Calculate(checklist domain.EvaluationChecklist) (Score, error)
}

type Service struct {
	policy StrictErrorPolicy
}

// Option configura el calculador.
type Option func(*Service)

// WithPolicy cambia la política de regla estricta. Solo debe usarse para
// reproducir datos históricos; el valor por defecto es el umbral global.
func WithPolicy(policy StrictErrorPolicy) Option {
	return func(s *Service) {
		s.policy = policy
	}
}

func NewService(opts ...Option) Calculator {
	s := &Service{policy: PolicyGlobalThreshold}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Calculate convierte la lista de verificación en el puntaje de la auditoría.
//
// Con la política global: 2 o más criterios incumplidos en total anulan la
// auditoría completa (ambos pilares y el total quedan en 0). Con 0 o 1 error,
// cada grupo aporta (cumplidos/tamaño) * peso y el total es el redondeo de la
// suma sin redondear los parciales.
func (s *Service) Calculate(checklist domain.EvaluationChecklist) (Score, error) {
	groups := [][]bool{
		checklist.Empatia.Criteria(),
		checklist.Ticket.Criteria(),
		checklist.Conocimiento.Criteria(),
		checklist.Herramientas.Criteria(),
	}

	totalErrors := 0
	groupErrors := make([]int, len(groups))
	for i, criteria := range groups {
		if len(criteria) == 0 {
			return Score{}, errors.Wrapf(ErrEmptyCriteriaGroup, "grupo %d", i)
		}
		groupErrors[i] = countErrors(criteria)
		totalErrors += groupErrors[i]
	}

	if s.policy == PolicyGlobalThreshold && totalErrors >= 2 {
		return Score{}, nil
	}

	weights := []float64{empatiaWeight, gestionSubWeight, gestionSubWeight, gestionSubWeight}

	scores := make([]float64, len(groups))
	for i, criteria := range groups {
		if s.policy == PolicyPerGroupThreshold && groupErrors[i] >= 2 {
			continue
		}
		met := len(criteria) - groupErrors[i]
		scores[i] = float64(met) / float64(len(criteria)) * weights[i]
	}

	empatia := scores[0]
	gestion := scores[1] + scores[2] + scores[3]

	return Score{
		Total:        int(math.Round(empatia + gestion)),
		EmpatiaScore: empatia,
		GestionScore: gestion,
	}, nil
}

func countErrors(criteria []bool) int {
	n := 0
	for _, met := range criteria {
		if !met {
			n++
		}
	}
	return n
}
