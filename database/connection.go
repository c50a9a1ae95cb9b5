package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/rmourey26/resendit-asset-intel-website-blog/metal/env"
)

const DriverName = "postgres"

type Connection struct {
	driverName string
	driver     *gorm.DB
	env        *env.Environment
}

func MakeConnection(env *env.Environment) (*Connection, error) {
	dbEnv := env.DB
	driver, err := gorm.Open(postgres.Open(dbEnv.GetDSN()), &gorm.Config{
		TranslateError: true,
	})

	if err != nil {
		return nil, err
	}

	return &Connection{
		driver:     driver,
		driverName: dbEnv.DriverName,
		env:        env,
	}, nil
}

func (c *Connection) Close() bool {
	sqlDB, err := c.driver.DB()

	if err != nil {
		slog.Error("There was an error closing the db: " + err.Error())

		return false
	}

	if err = sqlDB.Close(); err != nil {
		slog.Error("There was an error closing the db: " + err.Error())

		return false
	}

	return true
}

func (c *Connection) Ping() error {
	var driver *sql.DB

	conn, err := c.driver.DB()
	if err != nil {
		slog.Error("Error retrieving the db driver", "error", err.Error())

		return err
	}

	driver = conn

	if err = driver.Ping(); err != nil {
		slog.Error("Error pinging the db driver", "error", err.Error())

		return err
	}

	slog.Info("Database driver is healthy", "stats", fmt.Sprintf("%+v", driver.Stats()))

	return nil
}

func (c *Connection) Sql() *gorm.DB {
	return c.driver
}

func (c *Connection) GetSession() *gorm.Session {
	return &gorm.Session{QueryFields: true}
}

func (c *Connection) Transaction(callback func(db *gorm.DB) error) error {
	return c.driver.Transaction(callback)
}
