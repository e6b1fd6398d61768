package postgres

import (
	"context"
	"errors"
	"testing"

	"careerease/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TestDSN(t *testing.T) {
	got := DSN(config.DatabaseConfig{
		DBHost:     " db.internal ",
		DBPort:     "5432",
		DBUser:     "app",
		DBPassword: `p@ss word's\x`,
		DBName:     "careerease",
	})
	want := `host='db.internal' port='5432' user='app' password='p@ss word\'s\\x' dbname='careerease' sslmode='disable' application_name='careerease'`
	if got != want {
		t.Fatalf("DSN() =\n%s\nwant\n%s", got, want)
	}
}

func TestDSN_ParsesWithPgx(t *testing.T) {
	cfg, err := pgxpool.ParseConfig(DSN(config.DatabaseConfig{
		DBHost:     "localhost",
		DBPort:     "5433",
		DBUser:     "postgres",
		DBPassword: "it's secret",
		DBName:     "jobs",
		DBSSLMode:  "require",
	}))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cc := cfg.ConnConfig
	if cc.Host != "localhost" || cc.Port != 5433 || cc.User != "postgres" || cc.Database != "jobs" {
		t.Fatalf("unexpected conn config %+v", cc)
	}
	if cc.Password != "it's secret" {
		t.Fatalf("password not preserved: %q", cc.Password)
	}
	if cc.RuntimeParams["application_name"] != applicationName {
		t.Fatalf("expected application_name, got %v", cc.RuntimeParams)
	}
}

func TestPool_NilIsSafe(t *testing.T) {
	var p *Pool
	ctx := context.Background()

	if err := p.Ping(ctx); !errors.Is(err, errNilDB) {
		t.Fatalf("expected errNilDB from ping, got %v", err)
	}
	if _, err := p.Exec(ctx, "SELECT 1"); !errors.Is(err, errNilDB) {
		t.Fatalf("expected errNilDB from exec, got %v", err)
	}
	var n int
	if err := p.QueryRow(ctx, "SELECT 1").Scan(&n); !errors.Is(err, errNilDB) {
		t.Fatalf("expected errNilDB from query row, got %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("expected nil close, got %v", err)
	}
}
