package main

import (
	"context"
	"log"

	"github.com/Gowthamdvr/care-connect/authentication"
	"github.com/Gowthamdvr/care-connect/configuration"
	"github.com/Gowthamdvr/care-connect/controllers"
	"github.com/Gowthamdvr/care-connect/repository"
	"github.com/Gowthamdvr/care-connect/routes"
)

// store is satisfied by both repository implementations; which one serves is
// a configuration decision, never a code path.
type store interface {
	Users() repository.UserRepository
	Appointments() repository.AppointmentRepository
}

func openStore(cfg *configuration.Config) (store, func() error, error) {
	switch cfg.StoreDriver {
	case configuration.StoreMemory:
		return repository.NewMemoryStore(), func() error { return nil }, nil
	case configuration.StorePostgres:
		db, err := configuration.ConnectDB(cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		s, err := repository.NewGormStore(db)
		if err != nil {
			return nil, nil, err
		}
		ping := func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Ping()
		}
		return s, ping, nil
	}
	log.Fatalf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	return nil, nil, nil
}

func main() {
	cfg := configuration.Load()

	st, ping, err := openStore(cfg)
	if err != nil {
		log.Fatalf("failed to open record store: %v", err)
	}

	if err := repository.Seed(context.Background(), st.Users()); err != nil {
		log.Fatalf("failed to seed store: %v", err)
	}

	tokens := authentication.NewTokenService(cfg.JWTSigningKey)
	cache := configuration.NewCache(cfg.RedisAddr)
	notifier := controllers.NewNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	r := routes.Setup(routes.Controllers{
		Auth:         &controllers.AuthController{Users: st.Users(), Tokens: tokens},
		Users:        &controllers.UserController{Users: st.Users(), Cache: cache},
		Doctors:      &controllers.DoctorController{Users: st.Users(), Cache: cache},
		Appointments: &controllers.AppointmentController{Appointments: st.Appointments(), Users: st.Users(), Notifier: notifier},
		Reports:      &controllers.ReportController{AppointmentRepo: st.Appointments()},
	}, tokens, ping)

	log.Printf("starting care-connect on %s (store: %s)", cfg.Addr, cfg.StoreDriver)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
