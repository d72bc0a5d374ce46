package main

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/alstn2468/Redux-ToDo-Web-Backend/config"
	"github.com/alstn2468/Redux-ToDo-Web-Backend/database"
	"github.com/alstn2468/Redux-ToDo-Web-Backend/handlers"
	"github.com/alstn2468/Redux-ToDo-Web-Backend/middleware"
	"github.com/alstn2468/Redux-ToDo-Web-Backend/store"
	"github.com/alstn2468/Redux-ToDo-Web-Backend/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	codec, err := token.NewCodec(cfg.JWTAlgorithm, cfg.SecretKey)
	if err != nil {
		log.Fatalf("Failed to build token codec: %v", err)
	}

	var todos store.TodoStore
	var users store.UserStore
	switch cfg.DBDriver {
	case "memory":
		mem := store.NewMemory()
		todos, users = mem, mem
	case "postgres":
		db, err := database.Open(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to the database: %v", err)
		}
		defer db.Close()
		pg := store.NewPostgres(db)
		todos, users = pg, pg
	default:
		log.Fatalf("Unknown DB_DRIVER %q", cfg.DBDriver)
	}

	h := handlers.New(todos, users, codec)
	auth := middleware.Auth(codec)

	router := mux.NewRouter()
	router.HandleFunc("/todo", h.TodoCollection)
	router.HandleFunc("/todo/{id}", h.TodoItem)
	router.HandleFunc("/user/register", h.Register).Methods("POST")
	router.HandleFunc("/user/login", h.Login).Methods("POST")
	router.Handle("/user/me", auth(http.HandlerFunc(h.Me))).Methods("GET")

	log.Printf("Server listening on %s...", cfg.ServerAddr)
	log.Fatal(http.ListenAndServe(cfg.ServerAddr, router))
}
