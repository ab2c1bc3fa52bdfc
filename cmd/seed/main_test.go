package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"captura-leads.backend/internal/config"
	"captura-leads.backend/internal/domain/entities"
	domainrepo "captura-leads.backend/internal/domain/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSeed = `
users:
  - name: Admin
    email: admin@example.com
    password: ${SEED_TEST_PASSWORD}
    role: ADMIN
  - name: Joao
    email: joao@example.com
    password: operador123
  - name: Maria
    email: maria@example.com
    password: operador123
    role: OPERATOR
questions:
  - text: Budget?
    required: true
    options: [low, high]
  - text: Anything else?
`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func sqliteDeps(t *testing.T, out io.Writer) (seedDeps, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	return seedDeps{
		loadEnv: func() error { return nil },
		loadCfg: func() *config.Config { return &config.Config{Security: config.SecurityConfig{BcryptCost: 4}} },
		prepare: func(cfg *config.Config) (*seedRuntime, io.Closer, error) {
			return newSeedRuntime(db, cfg.Security.BcryptCost), nil, nil
		},
		now: func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
		out: out,
	}, db
}

func TestRunSeed_IsIdempotent(t *testing.T) {
	t.Setenv("SEED_TEST_PASSWORD", "admin123")
	path := writeSeed(t, testSeed)
	var out bytes.Buffer
	deps, db := sqliteDeps(t, &out)

	require.NoError(t, runSeed([]string{"-file", path}, deps))
	assert.Contains(t, out.String(), "users_created=3 questions_created=2")

	rt := newSeedRuntime(db, 4)
	ctx := context.Background()

	admin, err := rt.userRepo.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, entities.UserRoleAdmin, admin.Role)
	assert.True(t, rt.hasher.Check("admin123", admin.PasswordHash))

	joao, err := rt.userRepo.GetByEmail(ctx, "joao@example.com")
	require.NoError(t, err)
	assert.Equal(t, entities.UserRoleOperator, joao.Role)
	assert.Equal(t, admin.ID.String(), joao.CreatedBy.String)

	questions, total, err := rt.questionRepo.List(ctx, domainrepo.ListFilter{IncludeInactive: true})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	for _, q := range questions {
		if q.QuestionText == "Budget?" {
			assert.True(t, q.Required)
			assert.Equal(t, []string{"low", "high"}, q.Options)
		} else {
			assert.False(t, q.Required)
			assert.Empty(t, q.Options)
		}
	}

	out.Reset()
	require.NoError(t, runSeed([]string{"-file", path, "-migrate=false"}, deps))
	assert.Contains(t, out.String(), "user exists: admin@example.com")
	assert.Contains(t, out.String(), "users_created=0 questions_created=0")
}

func TestRunSeed_RequiresAdmin(t *testing.T) {
	path := writeSeed(t, "users:\n  - name: Joao\n    email: joao@example.com\n    password: x\n")
	deps, _ := sqliteDeps(t, io.Discard)

	err := runSeed([]string{"-file", path}, deps)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one ADMIN")
}

func TestLoadSeedFile_Validation(t *testing.T) {
	cases := map[string]string{
		"missing password": "users:\n  - email: a@example.com\n",
		"unknown role":     "users:\n  - email: a@example.com\n    password: x\n    role: ROOT\n",
		"blank question":   "questions:\n  - text: \"  \"\n",
		"bad yaml":         "users: [",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := loadSeedFile(writeSeed(t, content))
			assert.Error(t, err)
		})
	}

	_, err := loadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRunSeed_PrepareError(t *testing.T) {
	path := writeSeed(t, testSeed)
	deps, _ := sqliteDeps(t, io.Discard)
	deps.prepare = func(*config.Config) (*seedRuntime, io.Closer, error) {
		return nil, nil, errors.New("db down")
	}

	err := runSeed([]string{"-file", path}, deps)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "db down"))
}

func TestRepoSeedFileParses(t *testing.T) {
	t.Setenv("SEED_ADMIN_PASSWORD", "admin123")
	t.Setenv("SEED_OPERATOR_PASSWORD", "operador123")

	f, err := loadSeedFile(filepath.Join("..", "..", "seed.yaml"))
	require.NoError(t, err)
	assert.Len(t, f.Users, 3)
	require.Len(t, f.Questions, 6)
	assert.Equal(t, "Sim, durante a semana", f.Questions[3].Options[0])
	assert.Empty(t, f.Questions[5].Options)
}
