package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/sandro1422/workout-api/config"
	"github.com/sandro1422/workout-api/routes"
	"github.com/sandro1422/workout-api/services"
	"github.com/sandro1422/workout-api/utils"
)

func main() {
	db := config.InitDB()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET not set")
	}

	ttl := 72 * time.Hour
	if v := os.Getenv("TOKEN_TTL_HOURS"); v != "" {
		hours, err := strconv.Atoi(v)
		if err != nil || hours <= 0 {
			log.Fatalf("invalid TOKEN_TTL_HOURS: %q", v)
		}
		ttl = time.Duration(hours) * time.Hour
	}
	issuer := utils.NewTokenIssuer(secret, ttl)

	if err := services.NewExerciseService(db).Seed(services.DefaultExerciseCatalog); err != nil {
		log.Fatalf("Failed to seed exercise catalog: %v", err)
	}

	r := routes.SetupRouter(db, issuer)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
