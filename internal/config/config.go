package config

import (
	"github.com/caarlos0/env/v11"

	xenv "github.com/orbitscale/orbitscale/internal/env"
)

type Config struct {
	Port        string           `env:"PORT" envDefault:"8423"`
	Environment xenv.Environment `env:"APP_ENV" envDefault:"production"`
}

func Read() (Config, error) {
	return env.ParseAs[Config]()
}
