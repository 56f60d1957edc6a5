package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/NotSleepp/possbien/internal/application/dto"
	"github.com/NotSleepp/possbien/internal/application/ports"
	"github.com/NotSleepp/possbien/internal/domain"
	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios. Alta y edición corren en una transacción
// junto con la asignación de sucursales.
//
// Baja, desactivación, cambio de rol y cambio de password revocan los tokens ya emitidos
// del usuario; sessions nil lo desactiva.
type UserUseCase struct {
	tx       ports.TxRunner
	repo     repository.UserRepository
	sessions ports.TokenBlacklist
	tokenTTL time.Duration
	cost     int
}

// NewUserUseCase construye el caso de uso. tokenTTL es la vida de los JWT emitidos.
func NewUserUseCase(tx ports.TxRunner, repo repository.UserRepository, sessions ports.TokenBlacklist, tokenTTL time.Duration) *UserUseCase {
	return &UserUseCase{tx: tx, repo: repo, sessions: sessions, tokenTTL: tokenTTL, cost: bcrypt.DefaultCost}
}

// Create valida rol y sucursales, hashea la contraseña e inserta usuario y sucursales.
// Cualquier fallo deshace todo. Devuelve domain.ErrEmailAlreadyExists si el email está tomado.
func (uc *UserUseCase) Create(ctx context.Context, companyID string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	email := normalizeEmail(in.Email)
	branchIDs := uniqueIDs(in.BranchIDs)
	now := time.Now()
	user := &entity.User{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		RoleID:    in.RoleID,
		Name:      strings.TrimSpace(in.Name),
		Email:     email,
		Status:    entity.UserStatusActive,
		BranchIDs: branchIDs,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := uc.tx.Run(ctx, func(tx ports.TxRepos) error {
		if err := ensureRole(ctx, tx.Roles, companyID, in.RoleID); err != nil {
			return err
		}
		if err := ensureEmailFree(ctx, tx.Users, email, ""); err != nil {
			return err
		}
		if err := ensureBranches(ctx, tx.Branches, companyID, branchIDs); err != nil {
			return err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hash)
		if err := tx.Users.Create(ctx, user); err != nil {
			return err
		}
		return tx.Users.ReplaceBranches(ctx, user.ID, branchIDs)
	})
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// GetByID obtiene un usuario de la empresa.
func (uc *UserUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.UserResponse, error) {
	user, err := getUser(ctx, uc.repo, companyID, id)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// List lista usuarios de la empresa.
func (uc *UserUseCase) List(ctx context.Context, companyID string, limit, offset int) ([]dto.UserResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *ToUserResponse(u))
	}
	return out, nil
}

// Update actualiza parcialmente un usuario. Si llega password se vuelve a hashear;
// si llegan sucursales se reemplazan todas.
func (uc *UserUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	var user *entity.User
	err := uc.tx.Run(ctx, func(tx ports.TxRepos) error {
		var err error
		user, err = getUser(ctx, tx.Users, companyID, id)
		if err != nil {
			return err
		}
		revoke := in.Password != nil ||
			(in.RoleID != nil && *in.RoleID != user.RoleID) ||
			(in.Status != nil && *in.Status != entity.UserStatusActive)
		if in.RoleID != nil && *in.RoleID != user.RoleID {
			if err := ensureRole(ctx, tx.Roles, companyID, *in.RoleID); err != nil {
				return err
			}
			user.RoleID = *in.RoleID
		}
		if in.Email != nil {
			email := normalizeEmail(*in.Email)
			if email != user.Email {
				if err := ensureEmailFree(ctx, tx.Users, email, user.ID); err != nil {
					return err
				}
				user.Email = email
			}
		}
		if in.Name != nil {
			user.Name = strings.TrimSpace(*in.Name)
		}
		if in.Status != nil {
			user.Status = *in.Status
		}
		if in.Password != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), uc.cost)
			if err != nil {
				return err
			}
			user.PasswordHash = string(hash)
		}
		user.UpdatedAt = time.Now()
		if err := tx.Users.Update(ctx, user); err != nil {
			return err
		}
		// Dentro de la transacción: si la revocación falla no se aplica el cambio.
		if revoke {
			if err := uc.revokeSessions(ctx, user.ID); err != nil {
				return err
			}
		}
		if in.BranchIDs == nil {
			return nil
		}
		ids := uniqueIDs(*in.BranchIDs)
		if err := ensureBranches(ctx, tx.Branches, companyID, ids); err != nil {
			return err
		}
		user.BranchIDs = ids
		return tx.Users.ReplaceBranches(ctx, user.ID, ids)
	})
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Delete elimina lógicamente un usuario y revoca sus tokens. Nadie puede eliminarse a sí mismo.
func (uc *UserUseCase) Delete(ctx context.Context, companyID, actorID, id string) (*dto.UserResponse, error) {
	if actorID == id {
		return nil, domain.Errorf(domain.ErrConflict, "no puede eliminar su propio usuario")
	}
	user, err := getUser(ctx, uc.repo, companyID, id)
	if err != nil {
		return nil, err
	}
	if err := uc.revokeSessions(ctx, user.ID); err != nil {
		return nil, err
	}
	if err := uc.repo.SoftDelete(ctx, companyID, id); err != nil {
		return nil, err
	}
	user.Deleted = true
	return ToUserResponse(user), nil
}

func (uc *UserUseCase) revokeSessions(ctx context.Context, userID string) error {
	if uc.sessions == nil {
		return nil
	}
	if err := uc.sessions.RevokeUser(ctx, userID, time.Now(), uc.tokenTTL); err != nil {
		return fmt.Errorf("revocar sesiones del usuario: %w", err)
	}
	return nil
}

func getUser(ctx context.Context, repo repository.UserRepository, companyID, id string) (*entity.User, error) {
	user, err := repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.Errorf(domain.ErrUserNotFound, "usuario no encontrado")
	}
	return user, nil
}

func ensureRole(ctx context.Context, roles repository.RoleRepository, companyID, roleID string) error {
	role, err := roles.GetByID(ctx, companyID, roleID)
	if err != nil {
		return err
	}
	if role == nil {
		return notFound("rol")
	}
	return nil
}

// ensureEmailFree falla si el email pertenece a otro usuario distinto de selfID.
func ensureEmailFree(ctx context.Context, users repository.UserRepository, email, selfID string) error {
	existing, err := users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return domain.ErrEmailAlreadyExists
	}
	return nil
}

func ensureBranches(ctx context.Context, branches repository.BranchRepository, companyID string, ids []string) error {
	for _, id := range ids {
		b, err := branches.GetByID(ctx, companyID, id)
		if err != nil {
			return err
		}
		if b == nil {
			return domain.Errorf(domain.ErrNotFound, "sucursal %s no encontrada", id)
		}
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func uniqueIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// ToUserResponse convierte la entidad a DTO. PasswordHash nunca se copia.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	branches := u.BranchIDs
	if branches == nil {
		branches = []string{}
	}
	return &dto.UserResponse{
		ID:           u.ID,
		CompanyID:    u.CompanyID,
		RoleID:       u.RoleID,
		Name:         u.Name,
		Email:        u.Email,
		Status:       u.Status,
		LastAccessAt: u.LastAccessAt,
		BranchIDs:    branches,
		Deleted:      u.Deleted,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
