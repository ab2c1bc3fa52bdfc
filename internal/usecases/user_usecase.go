package usecases

import (
	"context"
	"errors"

	"captura-leads.backend/internal/domain/entities"
	domainerrors "captura-leads.backend/internal/domain/errors"
	"captura-leads.backend/internal/domain/policy"
	"captura-leads.backend/internal/domain/repositories"
	"captura-leads.backend/pkg/crypto"
	"captura-leads.backend/pkg/logger"
	"captura-leads.backend/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionRevoker drops every console session of a user
type SessionRevoker interface {
	RevokeUserSessions(ctx context.Context, userID string) (int, error)
}

// UserUsecase manages staff accounts
type UserUsecase struct {
	userRepo repositories.UserRepository
	hasher   *crypto.PasswordHasher
	sessions SessionRevoker
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(userRepo repositories.UserRepository, hasher *crypto.PasswordHasher) *UserUsecase {
	return &UserUsecase{userRepo: userRepo, hasher: hasher}
}

// WithSessionRevoker makes deactivation and deletion end the user's sessions
func (u *UserUsecase) WithSessionRevoker(r SessionRevoker) *UserUsecase {
	u.sessions = r
	return u
}

// Create registers a staff account. Only administrators may create users.
func (u *UserUsecase) Create(ctx context.Context, actor *entities.Actor, input *entities.CreateUserInput) (*entities.User, error) {
	if err := policy.Authorize(actor, policy.OpManageUsers, policy.Target{}); err != nil {
		return nil, err
	}
	if err := u.ensureEmailFree(ctx, input.Email, uuid.Nil); err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = entities.UserRoleOperator
	}
	if !role.Valid() {
		return nil, domainerrors.Validation("role must be ADMIN or OPERATOR")
	}

	hash, err := u.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	user := &entities.User{
		ID:           utils.GenerateUUIDv7(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	user.StampCreated(actor.Ref(), nowUTC())

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, repoError(err, "user not found")
	}
	logger.Info(ctx, "User created", zap.String("user_id", user.ID.String()), zap.String("role", string(role)))
	return user, nil
}

// List returns every user for administrators and only the caller for operators
func (u *UserUsecase) List(ctx context.Context, actor *entities.Actor, page utils.PageParams) (utils.PageResult[*entities.User], error) {
	if err := policy.Authorize(actor, policy.OpStaff, policy.Target{}); err != nil {
		return utils.PageResult[*entities.User]{}, err
	}

	if policy.UserListScope(actor) == policy.ScopeSelf {
		self, err := u.userRepo.GetByID(ctx, actor.ID)
		if err != nil {
			return utils.PageResult[*entities.User]{}, repoError(err, "user not found")
		}
		return utils.NewPageResult([]*entities.User{self}, 1), nil
	}

	users, total, err := u.userRepo.List(ctx, listFilter(page, true))
	if err != nil {
		return utils.PageResult[*entities.User]{}, domainerrors.InternalError(err)
	}
	return utils.NewPageResult(users, total), nil
}

// Get returns one user. Operators may only read themselves.
func (u *UserUsecase) Get(ctx context.Context, actor *entities.Actor, id uuid.UUID) (*entities.User, error) {
	if err := policy.Authorize(actor, policy.OpReadUser, policy.Target{UserID: id}); err != nil {
		return nil, err
	}
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "user not found")
	}
	return user, nil
}

// Update applies a partial update. Nobody may change their own role.
func (u *UserUsecase) Update(ctx context.Context, actor *entities.Actor, id uuid.UUID, input *entities.UpdateUserInput) (*entities.User, error) {
	if err := policy.Authorize(actor, policy.OpStaff, policy.Target{}); err != nil {
		return nil, err
	}
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "user not found")
	}

	target := policy.Target{
		UserID:      user.ID,
		ChangesRole: input.Role != nil && *input.Role != user.Role,
	}
	if err := policy.Authorize(actor, policy.OpUpdateUser, target); err != nil {
		logger.Security(ctx, "user_update_forbidden", "User update forbidden",
			zap.String("actor_id", actor.ID.String()),
			zap.String("user_id", user.ID.String()),
			zap.Bool("changes_role", target.ChangesRole),
		)
		return nil, err
	}

	if input.Email != nil && *input.Email != user.Email {
		if err := u.ensureEmailFree(ctx, *input.Email, user.ID); err != nil {
			return nil, err
		}
		user.Email = *input.Email
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, domainerrors.Validation("role must be ADMIN or OPERATOR")
		}
		user.Role = *input.Role
	}
	if input.Password != nil {
		hash, err := u.hasher.Hash(*input.Password)
		if err != nil {
			return nil, domainerrors.InternalError(err)
		}
		user.PasswordHash = hash
	}

	user.StampModified(actor.Ref(), nowUTC())
	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, repoError(err, "user not found")
	}
	return user, nil
}

// Deactivate disables an account
func (u *UserUsecase) Deactivate(ctx context.Context, actor *entities.Actor, id uuid.UUID) (*entities.User, error) {
	return u.setActive(ctx, actor, policy.OpSetActive, id, false)
}

// Activate re-enables an account
func (u *UserUsecase) Activate(ctx context.Context, actor *entities.Actor, id uuid.UUID) (*entities.User, error) {
	return u.setActive(ctx, actor, policy.OpSetActive, id, true)
}

// Delete soft deletes an account
func (u *UserUsecase) Delete(ctx context.Context, actor *entities.Actor, id uuid.UUID) error {
	_, err := u.setActive(ctx, actor, policy.OpDelete, id, false)
	return err
}

func (u *UserUsecase) setActive(ctx context.Context, actor *entities.Actor, op policy.Operation, id uuid.UUID, active bool) (*entities.User, error) {
	if err := policy.Authorize(actor, op, policy.Target{}); err != nil {
		return nil, err
	}
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "user not found")
	}

	if active {
		err = user.Activate(actor.Ref(), nowUTC())
	} else {
		err = user.Deactivate(actor.Ref(), nowUTC())
	}
	if err != nil {
		return nil, lifecycleError(err, "user")
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, repoError(err, "user not found")
	}
	logger.Info(ctx, "User lifecycle changed", zap.String("user_id", user.ID.String()), zap.Bool("active", active))

	if !active && u.sessions != nil {
		n, err := u.sessions.RevokeUserSessions(ctx, user.ID.String())
		if err != nil {
			logger.Error(ctx, "Failed to revoke sessions", zap.String("user_id", user.ID.String()), zap.Error(err))
		} else if n > 0 {
			logger.Info(ctx, "Sessions revoked", zap.String("user_id", user.ID.String()), zap.Int("count", n))
		}
	}
	return user, nil
}

// ensureEmailFree fails with Conflict when email belongs to a user other than self
func (u *UserUsecase) ensureEmailFree(ctx context.Context, email string, self uuid.UUID) error {
	existing, err := u.userRepo.GetByEmail(ctx, email)
	if err == nil {
		if existing.ID != self {
			return domainerrors.Conflict("email already in use")
		}
		return nil
	}
	if errors.Is(err, domainerrors.ErrNotFound) {
		return nil
	}
	return domainerrors.InternalError(err)
}
