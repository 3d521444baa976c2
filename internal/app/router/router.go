package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	accountshandler "nexuscare_backend/internal/feature/accounts/transport/handler"
	appointmentshandler "nexuscare_backend/internal/feature/appointments/transport/handler"
	doctorshandler "nexuscare_backend/internal/feature/doctors/transport/handler"
	phandler "nexuscare_backend/internal/platform/http/handler"
)

// NewRouter builds the gin engine with every /api route registered.
// CORS allows all origins: the frontend is served from a separate host and
// this is a demo deployment, not a hardened surface.
func NewRouter(status *phandler.StatusHandler, auth *accountshandler.AuthHandler,
	doctors *doctorshandler.DoctorHandler, appointments *appointmentshandler.AppointmentHandler) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	api := r.Group("/api")
	{
		// 導通確認用
		api.GET("/status", status.Status)

		// アカウント
		api.POST("/signup", auth.Signup)
		api.POST("/login", auth.Login)

		// 医師ディレクトリ
		api.GET("/doctors", doctors.List)
		api.POST("/doctors", doctors.Register)

		// 予約
		api.GET("/appointments", appointments.List)
		api.POST("/appointments", appointments.Book)
	}

	return r
}
