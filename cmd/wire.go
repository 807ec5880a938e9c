package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	reportadapter "github.com/voltlab/zonebalance/internal/adapters/render/report"
	tomlrepo "github.com/voltlab/zonebalance/internal/adapters/repo/toml"
	"github.com/voltlab/zonebalance/internal/application"
	"github.com/voltlab/zonebalance/internal/ports"
)

type app struct {
	service        *application.Service
	reportRenderer func(application.Analysis, reportadapter.RenderOptions) (string, error)
	now            func() time.Time
}

func wireApp() (*app, error) {
	repo, err := tomlrepo.NewRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire zone repository: %w", err)
	}

	return &app{
		service:        application.NewService(repo, ports.SystemClock{}),
		reportRenderer: reportadapter.Render,
		now:            time.Now,
	}, nil
}
