package controllers

import (
	"time"

	"garagespace/services/logger"
)

var log = logger.NewDefaultLogger(logger.InfoLevel)

const (
	garageCacheTTL  = 10 * time.Minute
	amenityCacheTTL = 30 * time.Minute
)
