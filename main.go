package main

import (
	"log"

	"github.com/joho/godotenv"

	"bookstore/cache"
	"bookstore/config"
	"bookstore/service"
	"bookstore/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	library := store.NewMemoryLibrary()
	if loaded, err := store.LoadFile(cfg.BooksFile, library); err != nil {
		log.Printf("seed load: %v, starting with an empty library", err)
	} else {
		log.Printf("loaded %d books from %s", loaded, cfg.BooksFile)
	}

	var requests cache.RequestCacher = cache.Disabled{}
	if client := config.SetupRedis(cfg.RedisURL); client != nil {
		requests = cache.NewRedisRequestCacher(client, cache.DefaultMaxCached)
	}

	svc := service.New(library, requests)
	routes := service.SetupRoutes(svc)

	log.Printf("gin server listening on http://%s", cfg.Addr)
	if err := routes.Run(cfg.Addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
