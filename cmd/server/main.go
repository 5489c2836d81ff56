package main

import (
	"log"
	"os"
	"strings"

	"fitness_club_backend/internal/database"
	"fitness_club_backend/internal/router"
	"fitness_club_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		// No .env is fine; configuration then comes from the environment.
		log.Println("no .env file found, reading configuration from environment")
	}

	utils.InitLogger()

	dbHost := utils.Getenv("DB_HOST", "localhost")
	dbPort := utils.Getenv("DB_PORT", "5432")
	dbUser := utils.Getenv("DB_USER", "fitness_user")
	dbPassword := utils.Getenv("DB_PASSWORD", "fitness_password")
	dbName := utils.Getenv("DB_NAME", "fitness_system_db")
	dbSSLMode := utils.Getenv("DB_SSLMODE", "disable")
	dbSchemaPath := utils.Getenv("DB_SCHEMA_PATH", "")

	db, err := database.Connect(dbHost, dbPort, dbUser, dbPassword, dbName, dbSSLMode)
	if err != nil {
		utils.LogError(err, "Failed to connect to database")
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.ApplySchema(db, dbSchemaPath); err != nil {
		utils.LogError(err, "Failed to apply database schema")
		log.Fatalf("Failed to apply database schema: %v", err)
	}
	utils.LogInfo("Database initialized", map[string]interface{}{"host": dbHost, "name": dbName})

	engine := gin.Default()
	engine.Use(utils.GinLogger())

	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	config.AllowCredentials = true
	engine.Use(cors.New(config))

	router.Setup(engine, db)

	port := utils.Getenv("PORT", "5000")
	utils.LogInfo("Server starting", map[string]interface{}{"port": port})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
