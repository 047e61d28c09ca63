package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/url"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mediakit/simple-catalog/pkg/simplecatalog"
	repopg "github.com/mediakit/simple-catalog/pkg/simplecatalog/repo/postgres"
	"github.com/mediakit/simple-catalog/pkg/simplecatalog/seed"
)

type Config struct {
	DB DbConfig
}

type DbConfig struct {
	Port     uint16 `env:"CATALOG_PG_PORT" env-default:"5432"`
	Host     string `env:"CATALOG_PG_HOST" env-default:"localhost"`
	Name     string `env:"CATALOG_PG_NAME" env-default:"catalog_db"`
	User     string `env:"CATALOG_PG_USER" env-default:"catalog"`
	Password string `env:"CATALOG_PG_PASSWORD" env-default:"pwd"`
}

func (c DbConfig) toDatabaseUrl() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   c.Name,
	}
	return u.String()
}

func main() {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("Failed to read environment: %v", err)
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DB.toDatabaseUrl())
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	svc, err := simplecatalog.New(simplecatalog.WithRepository(repopg.NewWithPool(pool)))
	if err != nil {
		log.Fatalf("Failed to build service: %v", err)
	}

	if err := seed.Apply(ctx, svc); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	slog.Info("Seeding complete", "database", cfg.DB.Name)
}
