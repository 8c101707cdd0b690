package config

import "github.com/caarlos0/env/v10"

// DefaultTokenSecret es el fallback del secreto de firma. No debe usarse
// en producción; main emite un warning cuando queda activo.
const DefaultTokenSecret = "default"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort        string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL     string `env:"DATABASE_URL,required"`
	TokenSecret     string `env:"TOKEN_SECRET" envDefault:"default"`
	TokenTTLMinutes int    `env:"TOKEN_TTL_MINUTES" envDefault:"60"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
