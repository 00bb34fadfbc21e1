// Package config holds the application configuration, loaded from the
// environment with optional .env overlays.
package config

import "time"

type DB struct {
	Path string `envconfig:"PATH" default:"harvest.db"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[harvest]"`
}

type Export struct {
	Dir string `envconfig:"DIR" default:"exports"`
}

type Tares struct {
	Path string `envconfig:"PATH" default:"tares.json"`
}

type Currency struct {
	Code string `envconfig:"CODE" default:"VND"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	DB        *DB        `envconfig:"DATABASE"`
	Export    *Export    `envconfig:"EXPORT"`
	Tares     *Tares     `envconfig:"TARES"`
	Currency  *Currency  `envconfig:"CURRENCY"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
}
