package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"nexuscare_backend/internal/app/di"
	"nexuscare_backend/internal/app/router"
	accountshandler "nexuscare_backend/internal/feature/accounts/transport/handler"
	accountsusecase "nexuscare_backend/internal/feature/accounts/usecase"
	appointmentshandler "nexuscare_backend/internal/feature/appointments/transport/handler"
	appointmentsusecase "nexuscare_backend/internal/feature/appointments/usecase"
	doctorshandler "nexuscare_backend/internal/feature/doctors/transport/handler"
	doctorsusecase "nexuscare_backend/internal/feature/doctors/usecase"
	platformdb "nexuscare_backend/internal/platform/db"
	phandler "nexuscare_backend/internal/platform/http/handler"
	"nexuscare_backend/internal/platform/notify"
	platformredis "nexuscare_backend/internal/platform/redis"
)

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	backend := envOr("STORAGE_BACKEND", "sqlite")

	var stores *di.Stores

	// Notification sink is only wired for the managed (key-value) deployment,
	// matching the legacy split. Signup and booking work without it.
	var notifier *notify.NATSNotifier

	if backend == "redis" {
		rdb, err := platformredis.NewRedisClient()
		if err != nil {
			log.Fatalf("redis backend selected but unreachable: %v", err)
		}
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
		stores = di.NewRedisStores(rdb)

		if tmp, err := notify.NewNATSNotifier(envOr("NATS_URL", "nats://localhost:4222")); err != nil {
			log.Println("[WARN] NATS unavailable. Running without notifications:", err)
		} else {
			notifier = tmp
			defer notifier.Close()
		}
	} else {
		db, engine := platformdb.OpenDB()
		stores = di.NewGormStores(db, engine)
	}

	// Usecase
	var sink accountsusecase.Notifier
	var bookingSink appointmentsusecase.Notifier
	if notifier != nil {
		sink = notifier
		bookingSink = notifier
	}
	accountsUC := accountsusecase.NewAccountsUsecase(stores.Users, sink)
	doctorsUC := doctorsusecase.NewDoctorsUsecase(stores.Doctors)
	appointmentsUC := appointmentsusecase.NewAppointmentsUsecase(stores.Appointments, bookingSink)

	// Handler
	statusH := phandler.NewStatusHandler(stores.Engine, envOr("APP_ENV", "development"))
	authH := accountshandler.NewAuthHandler(accountsUC)
	doctorsH := doctorshandler.NewDoctorHandler(doctorsUC)
	appointmentsH := appointmentshandler.NewAppointmentHandler(appointmentsUC)

	// ルータ生成
	r := router.NewRouter(statusH, authH, doctorsH, appointmentsH)

	log.Printf("starting on backend=%s engine=%s", backend, stores.Engine)
	if err := r.Run(":" + envOr("PORT", "5000")); err != nil {
		log.Fatal(err)
	}
}
