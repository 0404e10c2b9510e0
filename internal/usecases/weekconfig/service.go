package weekconfig

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/ridery/calidad-agentes-api/infrastructure/repository"
	"github.com/ridery/calidad-agentes-api/internal/domain"
)

const daysPerWeek = 7

var (
	// ErrEmptyWeekConfig se retorna cuando se intenta guardar una
	// configuración sin rangos. Una configuración guardada nunca queda vacía.
	ErrEmptyWeekConfig = errors.New("la configuración de semanas no puede quedar vacía")

	// ErrInvalidWeekRange se retorna cuando un rango tiene fechas mal
	// formadas o con el fin antes del inicio.
	ErrInvalidWeekRange = errors.New("rango de semana inválido")
)

// Manager administra la partición de cada mes en rangos de reporte. Si el
// editor nunca guardó una configuración para el mes, vale la partición por
// defecto; una vez guardada, la configuración persistida es la autoritativa.
type Manager interface {
	DefaultWeeks(year, month int) []domain.WeekRange
	GetConfig(year, month int) (*domain.WeekConfig, error)
	SaveConfig(year, month int, weeks []domain.WeekRange) (*domain.WeekConfig, error)
	AddWeek(year, month int) (*domain.WeekConfig, error)
	DeleteWeek(year, month, index int) (*domain.WeekConfig, bool, error)
}

type Service struct {
	repo  repository.WeekConfigRepository
	nowFn func() time.Time
}

type Option func(*Service)

// WithNowFunc reemplaza el reloj del servicio. Solo para tests.
func WithNowFunc(fn func() time.Time) Option {
	return func(s *Service) {
		s.nowFn = fn
	}
}

func NewService(repo repository.WeekConfigRepository, opts ...Option) Manager {
	s := &Service{
		repo:  repo,
		nowFn: time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// DefaultWeeks genera la partición por defecto del mes: rangos de 7 días
// desde el día 1, truncados en el fin de mes y en la fecha actual. Para un
// mes completamente futuro no se genera ningún rango.
func (s *Service) DefaultWeeks(year, month int) []domain.WeekRange {
	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	now := s.nowFn().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	limit := monthEnd
	if today.Before(limit) {
		limit = today
	}

	weeks := make([]domain.WeekRange, 0)
	index := 1

	for start := monthStart; !start.After(limit); start = start.AddDate(0, 0, daysPerWeek) {
		end := start.AddDate(0, 0, daysPerWeek-1)
		if end.After(limit) {
			end = limit
		}

		weeks = append(weeks, domain.WeekRange{
			Index:     index,
			StartDate: formatDate(start),
			EndDate:   formatDate(end),
			Label:     weekLabel(index),
		})
		index++
	}

	return weeks
}

// GetConfig retorna la configuración guardada del mes o, si nunca se guardó
// una, la partición por defecto.
func (s *Service) GetConfig(year, month int) (*domain.WeekConfig, error) {
	saved, err := s.repo.Get(year, month)
	if err != nil {
		return nil, errors.Wrap(err, "error al consultar la configuración de semanas")
	}

	weeks := saved
	if weeks == nil {
		weeks = s.DefaultWeeks(year, month)
	}

	return &domain.WeekConfig{
		Year:  year,
		Month: month,
		Weeks: weeks,
	}, nil
}

// SaveConfig reemplaza por completo la configuración del mes. Rechaza una
// lista vacía y reindexa los rangos en el orden recibido.
func (s *Service) SaveConfig(year, month int, weeks []domain.WeekRange) (*domain.WeekConfig, error) {
	if len(weeks) == 0 {
		return nil, ErrEmptyWeekConfig
	}

	normalized := make([]domain.WeekRange, 0, len(weeks))
	for i, week := range weeks {
		if err := validateRange(week); err != nil {
			return nil, err
		}

		week.Index = i + 1
		if week.Label == "" {
			week.Label = weekLabel(week.Index)
		}
		normalized = append(normalized, week)
	}

	if err := s.repo.Save(year, month, normalized); err != nil {
		return nil, errors.Wrap(err, "error al guardar la configuración de semanas")
	}

	return &domain.WeekConfig{
		Year:  year,
		Month: month,
		Weeks: normalized,
	}, nil
}

// AddWeek agrega un rango nuevo al final de la configuración del mes: inicia
// el día siguiente al fin del último rango y abarca 7 días. El rango nuevo
// puede extenderse hacia el mes siguiente.
func (s *Service) AddWeek(year, month int) (*domain.WeekConfig, error) {
	cfg, err := s.GetConfig(year, month)
	if err != nil {
		return nil, err
	}

	var start time.Time
	if len(cfg.Weeks) == 0 {
		start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	} else {
		lastEnd, err := parseDate(cfg.Weeks[len(cfg.Weeks)-1].EndDate)
		if err != nil {
			return nil, errors.Wrap(err, "error al interpretar el fin del último rango")
		}
		start = lastEnd.AddDate(0, 0, 1)
	}

	index := len(cfg.Weeks) + 1
	cfg.Weeks = append(cfg.Weeks, domain.WeekRange{
		Index:     index,
		StartDate: formatDate(start),
		EndDate:   formatDate(start.AddDate(0, 0, daysPerWeek-1)),
		Label:     weekLabel(index),
	})

	if err := s.repo.Save(year, month, cfg.Weeks); err != nil {
		return nil, errors.Wrap(err, "error al guardar la configuración de semanas")
	}

	return cfg, nil
}

// DeleteWeek elimina el rango con el índice dado. Si el mes tiene menos de
// dos rangos, o el índice no existe, no modifica nada y retorna false: la
// configuración nunca queda vacía.
func (s *Service) DeleteWeek(year, month, index int) (*domain.WeekConfig, bool, error) {
	cfg, err := s.GetConfig(year, month)
	if err != nil {
		return nil, false, err
	}

	if len(cfg.Weeks) < 2 {
		return cfg, false, nil
	}

	remaining := make([]domain.WeekRange, 0, len(cfg.Weeks)-1)
	found := false
	for _, week := range cfg.Weeks {
		if week.Index == index {
			found = true
			continue
		}
		remaining = append(remaining, week)
	}

	if !found {
		return cfg, false, nil
	}

	for i := range remaining {
		remaining[i].Index = i + 1
	}
	cfg.Weeks = remaining

	if err := s.repo.Save(year, month, cfg.Weeks); err != nil {
		return nil, false, errors.Wrap(err, "error al guardar la configuración de semanas")
	}

	return cfg, true, nil
}

func validateRange(week domain.WeekRange) error {
	start, err := parseDate(week.StartDate)
	if err != nil {
		return errors.Wrapf(ErrInvalidWeekRange, "fecha de inicio %q", week.StartDate)
	}

	end, err := parseDate(week.EndDate)
	if err != nil {
		return errors.Wrapf(ErrInvalidWeekRange, "fecha de fin %q", week.EndDate)
	}

	if end.Before(start) {
		return errors.Wrapf(ErrInvalidWeekRange, "el fin %s es anterior al inicio %s", week.EndDate, week.StartDate)
	}

	return nil
}

func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func weekLabel(index int) string {
	return fmt.Sprintf("Semana %d", index)
}
