// Package mocks contiene dobles de prueba de los puertos de aplicación.
package mocks

import (
	"context"

	"github.com/NotSleepp/possbien/internal/application/ports"
)

// TxRunner ejecuta fn con Repos sin BD real. Committed indica si fn terminó sin error.
type TxRunner struct {
	Repos     ports.TxRepos
	Runs      int
	Committed bool
}

var _ ports.TxRunner = (*TxRunner)(nil)

func (r *TxRunner) Run(ctx context.Context, fn func(tx ports.TxRepos) error) error {
	r.Runs++
	if err := fn(r.Repos); err != nil {
		r.Committed = false
		return err
	}
	r.Committed = true
	return nil
}
