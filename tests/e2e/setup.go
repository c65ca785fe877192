//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"qr-smart-parking/cmd/bootstrap/components"
	"qr-smart-parking/internal/infra/db"
	"qr-smart-parking/internal/pkg/config"
	"qr-smart-parking/internal/pkg/logging"
	"qr-smart-parking/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

var (
	postgresContainerOnce sync.Once
	postgresTestContainer testcontainers.Container

	testUser     = "test"
	testPassword = "testpass"
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// Tiers selects which databases the app under test is wired to.
type Tiers struct {
	Primary bool
	Legacy  bool
}

var BothTiers = Tiers{Primary: true, Legacy: true}

// ------------------------------------------------------------
// Per-process databases: one for each store tier
// ------------------------------------------------------------
func prepareDatabases(t *testing.T) (config.DBConfig, config.DBConfig) {
	gin.SetMode(gin.TestMode)
	startPostgreSQLContainerOnce(t)

	info, err := getContainerHostPort(postgresTestContainer, "5432/tcp")
	require.NoError(t, err, "failed to read postgres container address")

	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")
	primaryCfg := createDatabase(t, info, "primary_"+suffix)
	legacyCfg := createDatabase(t, info, "legacy_"+suffix)

	require.NoError(t, applyMigrations(primaryCfg, "primary"), "primary migrations failed")
	require.NoError(t, applyMigrations(legacyCfg, "legacy"), "legacy migrations failed")

	slog.Info("E2E databases ready",
		"postgres_host", info.Host,
		"postgres_port", info.Port.Port(),
		"primary", primaryCfg.DBName,
		"legacy", legacyCfg.DBName)
	return primaryCfg, legacyCfg
}

func createDatabase(t *testing.T, info ContainerInfo, dbName string) config.DBConfig {
	t.Helper()

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, info.Host, info.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "admin connection failed")
	defer adminPool.Close()

	var createErr error
	for attempts := range 5 {
		if attempts > 0 {
			time.Sleep(min(time.Duration(500+attempts*500)*time.Millisecond, 3*time.Second))
			slog.Warn("Retrying database creation", "attempt", attempts+1, "error", createErr.Error())
		}
		_, createErr = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
		if createErr == nil {
			break
		}
	}
	require.NoError(t, createErr, "failed to create test database")

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			slog.Warn("Cleanup connection failed", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()

		if _, err := cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("Failed to drop test database", "database", dbName, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     info.Host,
		Port:     info.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "Asia/Kolkata",
	}
}

// applyMigrations runs every .sql file of one migration set in name order.
func applyMigrations(dbConfig config.DBConfig, set string) error {
	dir, err := findMigrationDir(set)
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}
	sort.Strings(files)

	pool, cleanup, err := db.Connect(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	for _, file := range files {
		sqlContent, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}
		if _, err := pool.Exec(ctx, string(sqlContent)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", file, err)
		}
	}
	return nil
}

// resolves migrations/<set> relative to the package directory `go test` runs in
func findMigrationDir(set string) (string, error) {
	rel := filepath.Join("migrations", set)
	for _, cand := range []string{
		rel,
		filepath.Join("..", rel),
		filepath.Join("..", "..", rel),
		filepath.Join("..", "..", "..", rel),
	} {
		if st, err := os.Stat(cand); err == nil && st.IsDir() {
			return cand, nil
		}
	}
	return "", fmt.Errorf("migration directory %s not found", rel)
}

// ------------------------------------------------------------
// App under test, wired the way cmd/server wires it
// ------------------------------------------------------------
func buildE2EApp(cfg config.Config, pool *pgxpool.Pool, legacyDB *sqlx.DB) (*gin.Engine, *fx.App) {
	var router *gin.Engine

	app := fx.New(
		fx.Provide(
			func() config.Config { return cfg },
			func() *slog.Logger { return logging.Discard() },
			func() *pgxpool.Pool { return pool },
			func() *sqlx.DB { return legacyDB },
			func() *gin.Engine { return gin.New() },
		),
		components.StoreModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}
	return router, app
}

func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

func startPostgreSQLContainerOnce(t *testing.T) {
	postgresContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=256m",
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "max_connections=200",
				"-c", "log_statement=none",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					testUser, testPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		postgresTestContainer, err = startGenericContainer(req, 180)
		require.NoError(t, err, "failed to start postgres container")
	})
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// Shared suite: databases live for the suite, the app for one test
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Tiers    Tiers
	Router   *gin.Engine
	DB       *pgxpool.Pool
	LegacyDB *sqlx.DB
	Config   config.Config

	app *fx.App
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	if s.Tiers == (Tiers{}) {
		s.Tiers = BothTiers
	}
	primaryCfg, legacyCfg := prepareDatabases(t)

	pool, closePool, err := db.Connect(primaryCfg)
	require.NoError(t, err, "primary connection failed")
	t.Cleanup(closePool)
	legacyDB, closeLegacy, err := db.ConnectLegacy(legacyCfg)
	require.NoError(t, err, "legacy connection failed")
	t.Cleanup(closeLegacy)

	s.DB = pool
	s.LegacyDB = legacyDB
	s.Config = config.NewTestConfig()
	s.Config.DB = primaryCfg
	s.Config.LegacyDB = config.LegacyDBConfig(legacyCfg)
}

// SetupTest empties both databases and starts a fresh app, so slot
// occupancy never leaks between tests.
func (s *SharedSuite) SetupTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset primary database")
	_, err := s.LegacyDB.Exec("TRUNCATE parking_spots RESTART IDENTITY")
	require.NoError(s.T(), err, "failed to reset legacy database")

	s.StartApp()
}

// StartApp (re)builds the app on the tiers selected by s.Tiers. Calling it
// again keeps the stored rows, which is how a restart is simulated.
func (s *SharedSuite) StartApp() {
	s.stopApp()

	var pool *pgxpool.Pool
	if s.Tiers.Primary {
		pool = s.DB
	}
	var legacyDB *sqlx.DB
	if s.Tiers.Legacy {
		legacyDB = s.LegacyDB
	}
	s.Router, s.app = buildE2EApp(s.Config, pool, legacyDB)
}

func (s *SharedSuite) TearDownTest() {
	s.stopApp()
}

func (s *SharedSuite) stopApp() {
	if s.app == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.app.Stop(ctx); err != nil {
		slog.Warn("Failed to stop fx app", "error", err.Error())
	}
	s.app = nil
}
