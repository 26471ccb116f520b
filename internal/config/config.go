package config

import (
	"fmt"
	"net"
	"net/url"

	"github.com/spf13/viper"
)

// Connection holds the database connection settings shared by every
// subcommand. Values are resolved flag > environment > default.
type Connection struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Service  string `mapstructure:"service"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

// BindEnv registers the environment variable accepted for each connection
// setting. The service name additionally falls back to ORACLE_SERVICE_NAME
// so env files from the original deployment keep working.
func BindEnv() {
	viper.BindEnv("host", "DB_HOST")
	viper.BindEnv("port", "DB_PORT")
	viper.BindEnv("service", "DB_SERVICE", "ORACLE_SERVICE_NAME")
	viper.BindEnv("user", "DB_USER")
	viper.BindEnv("password", "DB_PASSWORD")
}

func Load() (*Connection, error) {
	var conn Connection
	if err := viper.Unmarshal(&conn); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set defaults
	if conn.Host == "" {
		conn.Host = "localhost"
	}
	if conn.Port == 0 {
		conn.Port = 5432
	}
	if conn.Service == "" {
		conn.Service = "petstore"
	}
	if conn.User == "" {
		conn.User = "master"
	}

	if err := conn.Validate(); err != nil {
		return nil, err
	}
	return &conn, nil
}

func (c *Connection) Validate() error {
	if c.Password == "" {
		return fmt.Errorf("database password is required: use --password or set DB_PASSWORD")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Port)
	}
	return nil
}

// Addr returns the host:port/service triple used in log output.
func (c *Connection) Addr() string {
	return fmt.Sprintf("%s/%s", net.JoinHostPort(c.Host, fmt.Sprint(c.Port)), c.Service)
}

// URL builds the connection URL for the pgx driver.
func (c *Connection) URL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   net.JoinHostPort(c.Host, fmt.Sprint(c.Port)),
		Path:   c.Service,
	}
	return u.String()
}
