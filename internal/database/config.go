package database

import (
	"fmt"
	"net/url"

	"portfoliotracker/internal/config"
)

// Config holds database configuration
type Config struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	SSLMode    string
	SQLitePath string
}

// NewConfig derives the database configuration from the application config.
func NewConfig(appConfig *config.Config) *Config {
	return &Config{
		Driver:     appConfig.DBDriver,
		Host:       appConfig.DBHost,
		Port:       appConfig.DBPort,
		User:       appConfig.DBUser,
		Password:   appConfig.DBPassword,
		DBName:     appConfig.DBName,
		SSLMode:    appConfig.DBSSLMode,
		SQLitePath: appConfig.SQLitePath,
	}
}

// DSN returns the PostgreSQL keyword/value connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname='%s' sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// URL returns the PostgreSQL connection URL used by golang-migrate.
func (c *Config) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.SSLMode}}.Encode(),
	}
	return u.String()
}
