package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestGetInt(t *testing.T) {
	v := viper.New()
	v.Set("DB_PORT", "5433")
	v.Set("HTTP_PORT", 9090)
	v.Set("BAD_PORT", "abc")

	assert.Equal(t, 5433, getInt(v, "DB_PORT", 5432), "string numérico se parsea")
	assert.Equal(t, 9090, getInt(v, "HTTP_PORT", 8080), "int se usa tal cual")
	assert.Equal(t, 5432, getInt(v, "BAD_PORT", 5432),
		"un valor no numérico cae al default, no a 0")
	assert.Equal(t, 8080, getInt(v, "NO_SETEADO", 8080))
}

func TestDSN_CodificaCaracteresEspeciales(t *testing.T) {
	cfg := DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss/word#1",
		DBName:   "stockledger",
		SSLMode:  "disable",
	}
	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.NotContains(t, dsn, "p@ss/word#1", "la contraseña debe ir URL-encoded")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestConnectionString_PrefiereDatabaseURL(t *testing.T) {
	cfg := DBConfig{
		DatabaseURL: "postgresql://u:p@db:5432/app?sslmode=require",
		Host:        "ignorado",
	}
	assert.Equal(t, "postgresql://u:p@db:5432/app?sslmode=require", cfg.ConnectionString())
}
