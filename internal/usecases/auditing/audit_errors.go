package auditing

import "github.com/pkg/errors"

var (
	ErrAuditNotFound       = errors.New("auditoría no encontrada")
	ErrMissingRequiredData = errors.New("faltan datos obligatorios de la auditoría")
	ErrInvalidDate         = errors.New("fecha inválida, se espera AAAA-MM-DD")
)
