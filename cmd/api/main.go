package main

import (
	"context"
	"net/http"

	"territory-api/internal/cache"
	"territory-api/internal/config"
	"territory-api/internal/handler"
	"territory-api/internal/repository"
	"territory-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Initialize layers
	repo := repository.NewRepository(conn)

	var hubCache service.HubCache
	if config.RedisAddress != "" {
		hubCache = cache.NewHubCache(config.RedisAddress, config.CacheTTL)
		log.Info().Str("addr", config.RedisAddress).Msg("hub location cache enabled")
	}

	locationService := service.NewLocationService(repo, hubCache)
	territoryService := service.NewTerritoryService(repo)

	locationHandler := handler.NewLocationHandler(locationService)
	territoryHandler := handler.NewTerritoryHandler(territoryService)
	plusCodeHandler := handler.NewPlusCodeHandler()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.PUT("/hubs/:id/location", locationHandler.SetLocation)
	r.GET("/hubs/:id/location", locationHandler.GetLocation)
	r.GET("/hubs/containing", territoryHandler.HubsContaining)
	r.GET("/hubs/nearest", territoryHandler.NearestHub)
	r.GET("/distance", territoryHandler.Distance)
	r.GET("/pluscode/validate", plusCodeHandler.Validate)

	r.Run(config.ServerAddress)
}
