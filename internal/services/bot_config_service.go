package services

import (
	"errors"
	"fmt"

	"github.com/FallenDelta563/EMOR-OS-V1/internal/db"
	"github.com/FallenDelta563/EMOR-OS-V1/internal/models"
	"github.com/FallenDelta563/EMOR-OS-V1/pkg/logger"

	"go.uber.org/zap"
)

// BotConfigService provides business logic for the stored auto-reply
// templates edited through the email-bot dashboard
type BotConfigService struct {
	repo db.BotConfigRepository
}

// NewBotConfigService creates a new BotConfigService instance
func NewBotConfigService(repo db.BotConfigRepository) *BotConfigService {
	return &BotConfigService{repo: repo}
}

// ListConfigs retrieves all stored templates ordered by key
func (s *BotConfigService) ListConfigs() ([]*models.BotConfig, error) {
	return s.repo.List()
}

// UpdateConfig edits a stored template's subject, body or enabled flag.
// Fields left nil in the request are unchanged.
func (s *BotConfigService) UpdateConfig(req *models.UpdateBotConfigRequest) (*models.BotConfig, error) {
	if req == nil || req.Key == "" {
		return nil, errors.New("missing bot key")
	}

	config, err := s.repo.Update(req.Key, req.Subject, req.HTMLTemplate, req.Enabled)
	if err != nil {
		return nil, fmt.Errorf("failed to update bot config: %w", err)
	}
	if config == nil {
		return nil, ErrTemplateNotFound
	}

	logger.Info("Bot config updated",
		zap.String("key", config.Key),
		zap.Bool("enabled", config.Enabled),
	)
	return config, nil
}
