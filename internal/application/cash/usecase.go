// Package cash abre y cierra sesiones de caja y arma el reporte de cierre.
package cash

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/NotSleepp/possbien/internal/application/dto"
	"github.com/NotSleepp/possbien/internal/application/ports"
	"github.com/NotSleepp/possbien/internal/domain"
	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/repository"
)

// SessionUseCase apertura, cierre y consulta de sesiones de caja.
// Cada caja tiene como máximo una sesión abierta; la fila de la caja se bloquea al abrir y cerrar.
type SessionUseCase struct {
	txRunner  ports.TxRunner
	registers repository.CashRegisterRepository
	sessions  repository.CashSessionRepository
	companies repository.CompanyRepository
	users     repository.UserRepository
	pdf       ports.ReceiptPDFGenerator
}

// NewSessionUseCase construye el caso de uso.
func NewSessionUseCase(
	txRunner ports.TxRunner,
	registers repository.CashRegisterRepository,
	sessions repository.CashSessionRepository,
	companies repository.CompanyRepository,
	users repository.UserRepository,
	pdf ports.ReceiptPDFGenerator,
) *SessionUseCase {
	return &SessionUseCase{
		txRunner:  txRunner,
		registers: registers,
		sessions:  sessions,
		companies: companies,
		users:     users,
		pdf:       pdf,
	}
}

// Open abre una sesión en la caja. domain.ErrCashRegisterOpen si ya hay una abierta.
func (uc *SessionUseCase) Open(ctx context.Context, companyID, userID, registerID string, in dto.OpenSessionRequest) (*dto.CashSessionResponse, error) {
	session := &entity.CashSession{
		ID:             uuid.New().String(),
		CompanyID:      companyID,
		CashRegisterID: registerID,
		UserID:         userID,
		OpeningAmount:  in.OpeningAmount,
		CountedAmount:  decimal.Zero,
		ExpectedAmount: decimal.Zero,
		Difference:     decimal.Zero,
		Status:         entity.CashStatusOpen,
		OpenedAt:       time.Now(),
	}
	err := uc.txRunner.Run(ctx, func(tx ports.TxRepos) error {
		if _, err := lockRegister(ctx, tx, companyID, registerID); err != nil {
			return err
		}
		open, err := tx.Sessions.GetOpenByRegister(ctx, companyID, registerID)
		if err != nil {
			return err
		}
		if open != nil {
			return domain.ErrCashRegisterOpen
		}
		if err := tx.Sessions.Create(ctx, session); err != nil {
			return err
		}
		return tx.Registers.UpdateStatus(ctx, registerID, entity.CashStatusOpen)
	})
	if err != nil {
		return nil, err
	}
	return toSessionResponse(session, nil), nil
}

// Close cierra la sesión abierta: esperado = apertura + ventas en efectivo,
// diferencia = contado - esperado. domain.ErrCashRegisterClosed si no hay sesión abierta.
func (uc *SessionUseCase) Close(ctx context.Context, companyID, registerID string, in dto.CloseSessionRequest) (*dto.CashSessionResponse, error) {
	var (
		session *entity.CashSession
		totals  map[string]decimal.Decimal
	)
	err := uc.txRunner.Run(ctx, func(tx ports.TxRepos) error {
		if _, err := lockRegister(ctx, tx, companyID, registerID); err != nil {
			return err
		}
		var err error
		session, err = tx.Sessions.GetOpenByRegister(ctx, companyID, registerID)
		if err != nil {
			return err
		}
		if session == nil {
			return domain.ErrCashRegisterClosed
		}
		totals, err = tx.Sessions.TotalsByPaymentMethod(ctx, session.ID)
		if err != nil {
			return err
		}
		now := time.Now()
		session.CountedAmount = in.CountedAmount
		session.ExpectedAmount = ExpectedCash(session.OpeningAmount, totals)
		session.Difference = session.CountedAmount.Sub(session.ExpectedAmount)
		session.Status = entity.CashStatusClosed
		session.ClosedAt = &now
		if err := tx.Sessions.Close(ctx, session); err != nil {
			return err
		}
		return tx.Registers.UpdateStatus(ctx, registerID, entity.CashStatusClosed)
	})
	if err != nil {
		return nil, err
	}
	return toSessionResponse(session, totals), nil
}

// Current devuelve la sesión abierta de la caja con sus totales parciales.
func (uc *SessionUseCase) Current(ctx context.Context, companyID, registerID string) (*dto.CashSessionResponse, error) {
	reg, err := uc.registers.GetByID(ctx, companyID, registerID)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "caja no encontrada")
	}
	session, err := uc.sessions.GetOpenByRegister(ctx, companyID, registerID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "la caja no tiene una sesión abierta")
	}
	totals, err := uc.sessions.TotalsByPaymentMethod(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	session.ExpectedAmount = ExpectedCash(session.OpeningAmount, totals)
	return toSessionResponse(session, totals), nil
}

// ClosingReport genera el PDF de cierre (o parcial, si la sesión sigue abierta).
func (uc *SessionUseCase) ClosingReport(ctx context.Context, companyID, sessionID string) ([]byte, error) {
	session, err := uc.sessions.GetByID(ctx, companyID, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "sesión de caja no encontrada")
	}
	reg, err := uc.registers.GetByID(ctx, companyID, session.CashRegisterID)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "caja no encontrada")
	}
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "empresa no encontrada")
	}
	cashier := session.UserID
	if u, err := uc.users.GetByID(ctx, companyID, session.UserID); err == nil && u != nil {
		cashier = u.Name
	}
	totals, err := uc.sessions.TotalsByPaymentMethod(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	if session.IsOpen() {
		session.ExpectedAmount = ExpectedCash(session.OpeningAmount, totals)
	}
	return uc.pdf.CashClosingReport(ctx, ports.ClosingReport{
		Company:  company,
		Register: reg,
		Session:  session,
		Cashier:  cashier,
		Totals:   totals,
	})
}

// ExpectedCash monto que debe haber en el cajón: apertura + ventas en efectivo.
func ExpectedCash(opening decimal.Decimal, totals map[string]decimal.Decimal) decimal.Decimal {
	return opening.Add(totals[entity.PaymentCash])
}

func lockRegister(ctx context.Context, tx ports.TxRepos, companyID, registerID string) (*entity.CashRegister, error) {
	reg, err := tx.Registers.GetForUpdate(ctx, companyID, registerID)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "caja no encontrada")
	}
	return reg, nil
}

func toSessionResponse(s *entity.CashSession, totals map[string]decimal.Decimal) *dto.CashSessionResponse {
	return &dto.CashSessionResponse{
		ID:             s.ID,
		CashRegisterID: s.CashRegisterID,
		UserID:         s.UserID,
		OpeningAmount:  s.OpeningAmount,
		CountedAmount:  s.CountedAmount,
		ExpectedAmount: s.ExpectedAmount,
		Difference:     s.Difference,
		Status:         s.Status,
		OpenedAt:       s.OpenedAt,
		ClosedAt:       s.ClosedAt,
		TotalsByMethod: totals,
	}
}
