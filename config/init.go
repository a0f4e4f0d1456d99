package config

import (
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"github.com/Nandu8821/Attendance-Project/constants"
	"github.com/Nandu8821/Attendance-Project/middleware"
)

// InitApp builds the gin engine and connects every external component.
func InitApp() (*gin.Engine, *cron.Cron, error) {
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AllowAllOrigins = true
	router.Use(cors.New(configCors))
	router.Use(middleware.BodyLimit(constants.MaxBodyBytes))

	router.SetTrustedProxies(nil)

	if err := initComponents(); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize components: %v", err)
	}

	c := cron.New()

	return router, c, nil
}

func initComponents() error {
	LoadEnv()

	if err := ConnectDB(); err != nil {
		return err
	}

	if err := ConnectCloudinary(); err != nil {
		return err
	}

	var err error
	RedisClient, err = ConnectRedis()
	if err != nil {
		// The store works without Redis; only the recorder's status cache
		// degrades to memory.
		log.Printf("Warning: Redis unavailable: %v", err)
		RedisClient = nil
	}

	log.Println("All components initialized successfully")
	return nil
}
