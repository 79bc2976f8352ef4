package server

import (
	"errors"
	"fmt"

	"github.com/NeuralTrust/InstallGate/pkg/config"
	"github.com/NeuralTrust/InstallGate/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	InstallServerDI struct {
		Config  *config.Config
		Logger  *logrus.Logger
		Routers []router.ServerRouter
	}
	InstallServer struct {
		*BaseServer
	}
)

func NewInstallServer(di InstallServerDI) *InstallServer {
	return &InstallServer{
		BaseServer: NewBaseServer(di.Config, di.Logger).WithRouters(di.Routers...),
	}
}

func (s *InstallServer) Run() error {
	s.setupMetricsEndpoint()
	addr := fmt.Sprintf(":%d", s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("starting install server")
	return s.Router.Listen(addr)
}

func (s *InstallServer) Shutdown() error {
	return errors.Join(s.Router.Shutdown(), s.shutdownMetrics())
}
