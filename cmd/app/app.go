package app

import (
	"github.com/af0b9b/qrlogo/internal/adapters/config"
	"github.com/af0b9b/qrlogo/internal/adapters/controller/cli"
	"github.com/af0b9b/qrlogo/internal/domain/service"
	"github.com/af0b9b/qrlogo/pkg/logger"
	qr "github.com/af0b9b/qrlogo/pkg/qrcode"
)

type App struct {
	Controller *cli.Controller
	Logger     *logger.Logger
}

func New(cfg *config.Config) (*App, error) {
	cliLogger, err := logger.Named("cli")
	if err != nil {
		return nil, err
	}
	genLogger, err := logger.Named("generator")
	if err != nil {
		return nil, err
	}

	svc := service.NewGeneratorService(genLogger, qr.ZXingScanner{}, cfg.Policy)

	return &App{
		Controller: cli.New(cliLogger, svc, cfg),
		Logger:     cliLogger,
	}, nil
}

func (a *App) Run() error {
	return a.Controller.Run()
}
