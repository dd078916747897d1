package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/pkg/config"
)

func loadConfigAndLogger() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := config.NewLogger()
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}

	return cfg, logger, nil
}
