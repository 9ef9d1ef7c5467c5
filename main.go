package main

import (
	"marathon-submissions/core/logger"
	"marathon-submissions/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
