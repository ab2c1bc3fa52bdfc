package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"captura-leads.backend/internal/config"
	"captura-leads.backend/internal/domain/entities"
	domainerrors "captura-leads.backend/internal/domain/errors"
	domainrepo "captura-leads.backend/internal/domain/repositories"
	"captura-leads.backend/internal/infrastructure/datasources/postgres"
	"captura-leads.backend/internal/infrastructure/models"
	"captura-leads.backend/internal/infrastructure/repositories"
	"captura-leads.backend/internal/usecases"
	"captura-leads.backend/pkg/crypto"
	"captura-leads.backend/pkg/utils"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

var openSeedDB = postgres.NewConnection

// seedFile is the YAML document read by the seeder. ${VAR} references are
// expanded from the environment before parsing.
type seedFile struct {
	Users     []seedUser     `yaml:"users"`
	Questions []seedQuestion `yaml:"questions"`
}

type seedUser struct {
	Name     string            `yaml:"name"`
	Email    string            `yaml:"email"`
	Password string            `yaml:"password"`
	Role     entities.UserRole `yaml:"role"`
}

type seedQuestion struct {
	Text     string   `yaml:"text"`
	Required bool     `yaml:"required"`
	Options  []string `yaml:"options"`
}

type seedRuntime struct {
	db           *gorm.DB
	userRepo     domainrepo.UserRepository
	questionRepo domainrepo.QuestionRepository
	users        *usecases.UserUsecase
	questions    *usecases.QuestionUsecase
	hasher       *crypto.PasswordHasher
}

type seedDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	prepare func(cfg *config.Config) (*seedRuntime, io.Closer, error)
	now     func() time.Time
	out     io.Writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func newSeedRuntime(db *gorm.DB, bcryptCost int) *seedRuntime {
	hasher := crypto.NewPasswordHasher(bcryptCost)
	userRepo := repositories.NewUserRepository(db)
	questionRepo := repositories.NewQuestionRepository(db)
	return &seedRuntime{
		db:           db,
		userRepo:     userRepo,
		questionRepo: questionRepo,
		users:        usecases.NewUserUsecase(userRepo, hasher),
		questions:    usecases.NewQuestionUsecase(questionRepo),
		hasher:       hasher,
	}
}

func defaultSeedDeps() seedDeps {
	return seedDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		prepare: func(cfg *config.Config) (*seedRuntime, io.Closer, error) {
			db, err := openSeedDB(cfg.Database)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to connect db: %w", err)
			}
			sqlDB, err := db.DB()
			if err != nil {
				return nil, nil, fmt.Errorf("failed to init sql db: %w", err)
			}
			return newSeedRuntime(db, cfg.Security.BcryptCost), sqlDB, nil
		},
		now: time.Now,
		out: os.Stdout,
	}
}

func loadSeedFile(path string) (*seedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var f seedFile
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &f); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("validating seed file: %w", err)
	}
	return &f, nil
}

func (f *seedFile) validate() error {
	for i, u := range f.Users {
		if strings.TrimSpace(u.Email) == "" || u.Password == "" {
			return fmt.Errorf("users[%d]: email and password are required", i)
		}
		if u.Role == "" {
			f.Users[i].Role = entities.UserRoleOperator
		} else if !u.Role.Valid() {
			return fmt.Errorf("users[%d]: unknown role %q", i, u.Role)
		}
	}
	for i, q := range f.Questions {
		if strings.TrimSpace(q.Text) == "" {
			return fmt.Errorf("questions[%d]: text is required", i)
		}
	}
	return nil
}

// bootstrapAdmin returns the first ADMIN of the file, creating it when missing.
// It is the actor every other seeded record is attributed to.
func (s *seedRuntime) bootstrapAdmin(ctx context.Context, users []seedUser, now time.Time, out io.Writer) (*entities.Actor, bool, error) {
	for _, u := range users {
		if u.Role != entities.UserRoleAdmin {
			continue
		}

		existing, err := s.userRepo.GetByEmail(ctx, u.Email)
		if err == nil {
			_, _ = fmt.Fprintf(out, "user exists: %s (%s)\n", u.Email, existing.Role)
			return existing.Actor(), false, nil
		}
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, false, fmt.Errorf("failed to look up %s: %w", u.Email, err)
		}

		hash, err := s.hasher.Hash(u.Password)
		if err != nil {
			return nil, false, err
		}
		admin := &entities.User{
			ID:           utils.GenerateUUIDv7(),
			Name:         u.Name,
			Email:        u.Email,
			PasswordHash: hash,
			Role:         entities.UserRoleAdmin,
			IsActive:     true,
		}
		admin.StampCreated(admin.Actor().Ref(), now.UTC())
		if err := s.userRepo.Create(ctx, admin); err != nil {
			return nil, false, fmt.Errorf("failed to create %s: %w", u.Email, err)
		}
		_, _ = fmt.Fprintf(out, "user created: %s (%s)\n", u.Email, admin.Role)
		return admin.Actor(), true, nil
	}
	return nil, false, errors.New("seed file must declare at least one ADMIN user")
}

func (s *seedRuntime) seedUsers(ctx context.Context, actor *entities.Actor, users []seedUser, out io.Writer) (int, error) {
	created := 0
	for _, u := range users {
		if _, err := s.userRepo.GetByEmail(ctx, u.Email); err == nil {
			continue
		} else if !errors.Is(err, domainerrors.ErrNotFound) {
			return created, fmt.Errorf("failed to look up %s: %w", u.Email, err)
		}

		user, err := s.users.Create(ctx, actor, &entities.CreateUserInput{
			Name:     u.Name,
			Email:    u.Email,
			Password: u.Password,
			Role:     u.Role,
		})
		if err != nil {
			return created, fmt.Errorf("failed to create %s: %w", u.Email, err)
		}
		created++
		_, _ = fmt.Fprintf(out, "user created: %s (%s)\n", user.Email, user.Role)
	}
	return created, nil
}

func (s *seedRuntime) seedQuestions(ctx context.Context, actor *entities.Actor, questions []seedQuestion, out io.Writer) (int, error) {
	existing, _, err := s.questionRepo.List(ctx, domainrepo.ListFilter{IncludeInactive: true})
	if err != nil {
		return 0, fmt.Errorf("failed to list questions: %w", err)
	}
	known := make(map[string]bool, len(existing))
	for _, q := range existing {
		known[q.QuestionText] = true
	}

	created := 0
	for _, q := range questions {
		if known[q.Text] {
			continue
		}
		required := q.Required
		if _, err := s.questions.Create(ctx, actor, &entities.CreateQuestionInput{
			QuestionText: q.Text,
			Required:     &required,
			Options:      q.Options,
		}); err != nil {
			return created, fmt.Errorf("failed to create question %q: %w", q.Text, err)
		}
		known[q.Text] = true
		created++
		_, _ = fmt.Fprintf(out, "question created: %s\n", q.Text)
	}
	return created, nil
}

func runSeed(args []string, deps seedDeps) error {
	if deps.loadEnv == nil {
		deps.loadEnv = func() error { return godotenv.Load() }
	}
	if deps.loadCfg == nil {
		deps.loadCfg = config.Load
	}
	if deps.now == nil {
		deps.now = time.Now
	}
	if deps.prepare == nil {
		deps.prepare = defaultSeedDeps().prepare
	}
	if deps.out == nil {
		deps.out = os.Stdout
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := deps.loadCfg()

	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fileFlag := fs.String("file", cfg.Seed.File, "YAML seed file")
	migrateFlag := fs.Bool("migrate", true, "run schema migrations before seeding")
	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := loadSeedFile(*fileFlag)
	if err != nil {
		return err
	}

	runtime, closer, err := deps.prepare(cfg)
	if err != nil {
		return err
	}
	if closer == nil {
		closer = nopCloser{}
	}
	defer closer.Close()

	if *migrateFlag {
		if err := runtime.db.AutoMigrate(models.All()...); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	ctx := context.Background()
	actor, adminCreated, err := runtime.bootstrapAdmin(ctx, f.Users, deps.now(), deps.out)
	if err != nil {
		return err
	}
	users, err := runtime.seedUsers(ctx, actor, f.Users, deps.out)
	if err != nil {
		return err
	}
	if adminCreated {
		users++
	}
	questions, err := runtime.seedQuestions(ctx, actor, f.Questions, deps.out)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(deps.out, "seed complete: users_created=%d questions_created=%d\n", users, questions)
	return nil
}

func main() {
	if err := runSeed(os.Args[1:], defaultSeedDeps()); err != nil {
		log.Fatal(err)
	}
}
