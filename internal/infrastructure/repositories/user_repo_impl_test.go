package repositories

import (
	"context"
	"testing"
	"time"

	"captura-leads.backend/internal/domain/entities"
	domainerrors "captura-leads.backend/internal/domain/errors"
	domainRepos "captura-leads.backend/internal/domain/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
)

func TestUserRepository_CRUDAndList(t *testing.T) {
	db := newMigratedDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	now := time.Now()

	admin := &entities.User{
		ID:           uuid.New(),
		Name:         "Admin",
		Email:        "admin@example.com",
		PasswordHash: "hash",
		Role:         entities.UserRoleAdmin,
		IsActive:     true,
		Audit:        stamped(uuid.Nil, now, 0),
	}
	require.NoError(t, repo.Create(ctx, admin))

	op := &entities.User{
		ID:           uuid.New(),
		Name:         "Operator",
		Email:        "op@example.com",
		PasswordHash: "hash",
		Role:         entities.UserRoleOperator,
		IsActive:     true,
		Audit:        stamped(admin.ID, now, time.Second),
	}
	require.NoError(t, repo.Create(ctx, op))

	byID, err := repo.GetByID(ctx, op.ID)
	require.NoError(t, err)
	require.Equal(t, op.Email, byID.Email)
	require.Equal(t, null.StringFrom(admin.ID.String()), byID.CreatedBy)
	require.False(t, byID.DeactivatedAt.Valid)

	byEmail, err := repo.GetByEmail(ctx, admin.Email)
	require.NoError(t, err)
	require.Equal(t, admin.ID, byEmail.ID)
	require.False(t, byEmail.CreatedBy.Valid)

	require.NoError(t, byID.Deactivate(admin.Actor().Ref(), now.Add(2*time.Second).UTC()))
	byID.Name = "Renamed"
	require.NoError(t, repo.Update(ctx, byID))

	reloaded, err := repo.GetByID(ctx, op.ID)
	require.NoError(t, err)
	require.Equal(t, "Renamed", reloaded.Name)
	require.False(t, reloaded.IsActive)
	require.True(t, reloaded.DeactivatedAt.Valid)
	require.Equal(t, admin.ID.String(), reloaded.DeactivatedBy.String)

	items, total, err := repo.List(ctx, domainRepos.ListFilter{Limit: 10, IncludeInactive: true})
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, items, 2)
	require.Equal(t, op.ID, items[0].ID, "newest first")

	live, total, err := repo.List(ctx, domainRepos.ListFilter{Limit: 10})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, admin.ID, live[0].ID)

	require.NoError(t, reloaded.Activate(admin.Actor().Ref(), now.Add(3*time.Second).UTC()))
	require.NoError(t, repo.Update(ctx, reloaded))
	restored, err := repo.GetByID(ctx, op.ID)
	require.NoError(t, err)
	require.True(t, restored.IsActive)
	require.False(t, restored.DeactivatedAt.Valid)
	require.False(t, restored.DeactivatedBy.Valid)
}

func TestUserRepository_Pagination(t *testing.T) {
	db := newMigratedDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	now := time.Now()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &entities.User{
			ID:           uuid.New(),
			Name:         "user",
			Email:        uuid.NewString() + "@example.com",
			PasswordHash: "hash",
			Role:         entities.UserRoleOperator,
			IsActive:     true,
			Audit:        stamped(uuid.Nil, now, time.Duration(i)*time.Second),
		}))
	}

	page, total, err := repo.List(ctx, domainRepos.ListFilter{Offset: 3, Limit: 2, IncludeInactive: true})
	require.NoError(t, err)
	require.Equal(t, int64(5), total)
	require.Len(t, page, 2)

	past, total, err := repo.List(ctx, domainRepos.ListFilter{Offset: 10, Limit: 2, IncludeInactive: true})
	require.NoError(t, err)
	require.Equal(t, int64(5), total)
	require.Empty(t, past)
}

func TestUserRepository_CreateInactiveKeepsFlag(t *testing.T) {
	db := newMigratedDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entities.User{
		ID:           uuid.New(),
		Name:         "Imported",
		Email:        "imported@example.com",
		PasswordHash: "hash",
		Role:         entities.UserRoleOperator,
		IsActive:     false,
		Audit:        stamped(uuid.Nil, time.Now(), 0),
	}
	require.NoError(t, repo.Create(ctx, user))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.False(t, got.IsActive)
}

func TestUserRepository_NotFoundBranches(t *testing.T) {
	db := newMigratedDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	id := uuid.New()

	_, err := repo.GetByID(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "missing@example.com")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.Update(ctx, &entities.User{ID: id, Name: "x", Role: entities.UserRoleOperator})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserRepository_ClosedDB(t *testing.T) {
	db := newMigratedDB(t)
	repo := NewUserRepository(db)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, _, err = repo.List(context.Background(), domainRepos.ListFilter{Limit: 1})
	require.Error(t, err)
	require.NotErrorIs(t, err, domainerrors.ErrNotFound)
}
