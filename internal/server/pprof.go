package server

import (
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StartPprofServer starts the pprof server on a separate port. It should only
// be reachable internally or through an SSH tunnel. An empty port disables it.
func StartPprofServer(port string, logger *zap.Logger) {
	if port == "" {
		return
	}

	pprofRouter := gin.New()
	pprof.Register(pprofRouter)

	go func() {
		addr := ":" + port
		logger.Info("Starting pprof server", zap.String("addr", addr))
		if err := pprofRouter.Run(addr); err != nil {
			logger.Error("pprof server stopped", zap.Error(err))
		}
	}()
}
