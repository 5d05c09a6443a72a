package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/semihsari152/CoreGameApp-sub006/internal/app"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app.Run()
}
