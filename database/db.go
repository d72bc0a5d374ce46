package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/alstn2468/Redux-ToDo-Web-Backend/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS todos (
	id SERIAL PRIMARY KEY,
	text TEXT NOT NULL,
	is_completed BOOLEAN NOT NULL DEFAULT FALSE
);
CREATE TABLE IF NOT EXISTS users (
	id SERIAL PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL
);`

// Open initializes a connection to the PostgreSQL database and ensures the
// tables exist.
func Open(cfg *config.Config) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, errors.Wrap(err, "open database connection")
	}

	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "ping database")
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, errors.Wrap(err, "create tables")
	}

	log.Println("Successfully connected to the PostgreSQL database!")
	return db, nil
}
