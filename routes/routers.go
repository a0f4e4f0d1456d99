package routes

import (
	"net/http"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Nandu8821/Attendance-Project/controllers"
	"github.com/Nandu8821/Attendance-Project/services"
	"github.com/Nandu8821/Attendance-Project/services/logger"
)

// SetupRoutes wires the attendance store endpoints onto the router.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cld *cloudinary.Cloudinary) {
	attendanceService := services.NewAttendanceService(services.AttendanceServiceOptions{
		DB:       db,
		Uploader: services.NewCloudinaryUploader(cld),
		Logger:   logger.NewDefaultLogger(logger.InfoLevel),
	})
	attendanceController := controllers.NewAttendanceController(attendanceService)

	api := router.Group("/api")
	api.POST("/attendance", attendanceController.CreateAttendance)
	api.GET("/attendance", attendanceController.GetAttendance)

	router.GET("/health", attendanceController.HealthCheck)
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
}
