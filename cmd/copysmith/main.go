package main

import (
	"copysmith/cmd/handlers"
	"copysmith/internal/logger"
)

func main() {
	logger.Init()
	handlers.Execute()
}
