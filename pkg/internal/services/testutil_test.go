package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/folium-app/folium/pkg/internal/database"
	"github.com/folium-app/folium/pkg/internal/models"
	"github.com/folium-app/folium/pkg/internal/security"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDatabase boots a throwaway postgres container, points the
// global gorm source at it and runs the migrations. The returned
// function tears the container down.
func setupTestDatabase(t *testing.T) func() {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "folium",
			"POSTGRES_PASSWORD": "password",
			"POSTGRES_DB":       "folium",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	postgresC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "unable to start postgres container")

	host, err := postgresC.Host(ctx)
	require.NoError(t, err)
	port, err := postgresC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf(
		"host=%s port=%s user=folium password=password dbname=folium sslmode=disable",
		host, port.Port(),
	)

	var db *gorm.DB
	for attempt := 0; attempt < 10; attempt++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err, "unable to connect to test database")

	database.C = db
	require.NoError(t, database.RunMigration(database.C))

	return func() {
		_ = postgresC.Terminate(ctx)
	}
}

func makeAccount(t *testing.T) models.Account {
	account := models.Account{
		Name: uuid.NewString(),
		Nick: "Tester",
	}
	require.NoError(t, database.C.Create(&account).Error)
	return account
}

func newLoginClaims(name, nick string) security.LoginClaims {
	return security.LoginClaims{Name: name, Nick: nick}
}

func makePost(t *testing.T, author models.Account, text string, createdAt time.Time) models.Post {
	post := models.Post{
		Text:     text,
		AuthorID: author.ID,
	}
	post.CreatedAt = createdAt
	require.NoError(t, database.C.Create(&post).Error)
	return post
}
