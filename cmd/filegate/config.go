package main

import (
	"github.com/filegate/filegate/core/logger"
	"github.com/filegate/filegate/core/server"
)

type config struct {
	Log    logger.Config
	Server server.Config

	// Dir is the directory served as the sandbox root.
	Dir string `env:"FILEGATE_DIR" envDefault:"./public"`

	// Prefix is the URL prefix the directory is mounted under.
	Prefix string `env:"FILEGATE_PREFIX" envDefault:"/static/*"`
}
