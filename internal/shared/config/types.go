package config

import "fmt"

type ServerConfig struct {
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
	BaseURL string `mapstructure:"base_url"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig describes the relational store. An empty DSN (or Mock=true)
// switches the application to fixture mode: an in-memory SQLite store seeded
// with demo data so the dashboard can run without a live database.
type DatabaseConfig struct {
	DSN             string `mapstructure:"dsn"`
	Mock            bool   `mapstructure:"mock"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) MockMode() bool {
	return d.Mock || d.DSN == ""
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

// SessionConfig controls session lifetime. The cookie is always named
// utils.SessionCookie; browser-stored sessions from older deployments must
// keep resolving, so the name is not configurable.
type SessionConfig struct {
	ExpDays int `mapstructure:"exp_days"`
}

type CookieConfig struct {
	Domain   string `mapstructure:"domain"`
	Path     string `mapstructure:"path"`
	Secure   bool   `mapstructure:"secure"`
	SameSite string `mapstructure:"same_site"`
}

type ResetTokenConfig struct {
	Secret     string `mapstructure:"secret"`
	ExpMinutes int    `mapstructure:"exp_minutes"`
}

type AuthConfig struct {
	Password   PasswordConfig   `mapstructure:"password"`
	Session    SessionConfig    `mapstructure:"session"`
	Cookie     CookieConfig     `mapstructure:"cookie"`
	ResetToken ResetTokenConfig `mapstructure:"reset_token"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}
