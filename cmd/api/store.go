package main

import (
	"context"
	"fmt"

	"doctorsportal/cmd/internal/config"
	"doctorsportal/cmd/internal/domain/mongo"
	mongorepo "doctorsportal/cmd/internal/domain/mongo/repository"
	"doctorsportal/cmd/internal/domain/sqlite"
	sqliterepo "doctorsportal/cmd/internal/domain/sqlite/repository"
	"doctorsportal/cmd/internal/service"

	"github.com/labstack/gommon/log"
)

type repositories struct {
	Treatments service.TreatmentRepository
	Bookings   service.BookingRepository
	Users      service.UserRepository
	Doctors    service.DoctorRepository
	close      func(ctx context.Context) error
}

func (r *repositories) Close(ctx context.Context) error {
	return r.close(ctx)
}

// openRepositories connects to the configured backend once; every
// repository shares that handle.
func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	switch cfg.DBDriver {
	case config.DriverMongo:
		client, db, err := mongo.Connect(ctx, mongo.Options{
			URI:      cfg.MongoURI,
			User:     cfg.DBUser,
			Password: cfg.DBPass,
			Database: cfg.DBName,
		})
		if err != nil {
			return nil, err
		}
		log.Infof("connected to mongo database %s", cfg.DBName)
		return &repositories{
			Treatments: mongorepo.NewTreatmentRepository(db),
			Bookings:   mongorepo.NewBookingRepository(db),
			Users:      mongorepo.NewUserRepository(db),
			Doctors:    mongorepo.NewDoctorRepository(db),
			close:      client.Disconnect,
		}, nil

	case config.DriverSQLite:
		db, err := sqlite.Init(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("sqlite init: %w", err)
		}
		log.Infof("opened sqlite database %s", cfg.SQLitePath)
		return &repositories{
			Treatments: sqliterepo.NewTreatmentRepository(db),
			Bookings:   sqliterepo.NewBookingRepository(db),
			Users:      sqliterepo.NewUserRepository(db),
			Doctors:    sqliterepo.NewDoctorRepository(db),
			close: func(context.Context) error {
				return sqlite.Close(db)
			},
		}, nil
	}
	return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
}
