package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	DBDSN      string
	BcryptCost int
	LogFile    string
}

func Load() Config {
	// .env is optional; real deployments supply the environment directly.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "innovtech.db" // sqlite file in project root
	}
	cost := 10
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 4 && n <= 31 {
			cost = n
		} else {
			log.Printf("[warn] ignoring invalid BCRYPT_COST=%q", v)
		}
	}
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{Port: port, DBDSN: dsn, BcryptCost: cost, LogFile: logFile}
	log.Printf("[config] PORT=%s DB_DSN=%s BCRYPT_COST=%d LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.BcryptCost, cfg.LogFile)
	return cfg
}
