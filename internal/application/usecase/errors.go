package usecase

import (
	"errors"

	"github.com/NotSleepp/possbien/internal/domain"
)

// duplicateAs reemplaza el mensaje de un ErrDuplicate del repositorio por uno legible.
func duplicateAs(err error, msg string) error {
	if errors.Is(err, domain.ErrDuplicate) {
		return domain.Errorf(domain.ErrDuplicate, "%s", msg)
	}
	return err
}

// notFound construye un ErrNotFound con el nombre del recurso.
func notFound(resource string) error {
	return domain.Errorf(domain.ErrNotFound, "%s no encontrado", resource)
}

// notFoundF variante femenina ("sucursal no encontrada").
func notFoundF(resource string) error {
	return domain.Errorf(domain.ErrNotFound, "%s no encontrada", resource)
}
