package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupUserPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE EXTENSION IF NOT EXISTS "uuid-ossp";

	CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		username VARCHAR(50) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	userID, err := repo.Save(ctx, "alice", "hash123")
	assert.NoError(t, err)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", userID.String())

	var user struct {
		Username     string `db:"username"`
		PasswordHash string `db:"password_hash"`
	}
	err = db.Get(&user, "SELECT username, password_hash FROM users WHERE user_id=$1", userID)
	assert.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "hash123", user.PasswordHash)
}

func TestUserWriteRepository_Save_DuplicateUsername(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	_, err := repo.Save(ctx, "bob", "hash1")
	assert.NoError(t, err)

	_, err = repo.Save(ctx, "bob", "hash2")
	assert.Error(t, err)
}

func TestUserReadRepository_GetByUsername(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db, nil)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	charlieID, err := writeRepo.Save(ctx, "charlie", "secret")
	assert.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		user, err := readRepo.GetByUsername(ctx, "charlie")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, charlieID, user.UserID)
		assert.Equal(t, "charlie", user.Username)
		assert.Equal(t, "secret", user.PasswordHash)
	})

	t.Run("NotFound", func(t *testing.T) {
		user, err := readRepo.GetByUsername(ctx, "nonexistent")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}
