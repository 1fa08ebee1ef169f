package config_fx

import (
	"go.uber.org/fx"
	"rockroutes/internal/config"
)

var Module = fx.Provide(config.Load)
