package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"quanngon-be/internal/logger"

	"go.uber.org/zap"
)

var ErrValidation = errors.New("invalid settings")

type Service interface {
	Get(ctx context.Context) (*Settings, error)
	Update(ctx context.Context, input UpdateInput) (*Settings, error)
	// TelegramTarget returns the configured bot credentials; empty values
	// mean the chat notification is disabled.
	TelegramTarget(ctx context.Context) (token, chatID string, err error)
	// TableLabels flattens the configured zones into selectable labels.
	TableLabels(ctx context.Context) ([]string, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context) (*Settings, error) {
	return s.repo.Get(ctx)
}

func (s *service) Update(ctx context.Context, input UpdateInput) (*Settings, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateSettings"),
	)

	if strings.TrimSpace(input.RestaurantName) == "" {
		return nil, fmt.Errorf("%w: restaurant name is required", ErrValidation)
	}
	if strings.TrimSpace(input.ContactInfo.Address) == "" {
		return nil, fmt.Errorf("%w: contact address is required", ErrValidation)
	}
	if strings.TrimSpace(input.ContactInfo.Phone) == "" {
		return nil, fmt.Errorf("%w: contact phone is required", ErrValidation)
	}

	next := &Settings{
		RestaurantName: input.RestaurantName,
		LogoURL:        input.LogoURL,
		Description:    input.Description,
		Tables:         input.Tables,
		ContactInfo:    input.ContactInfo,
		BankAccount:    input.BankAccount,
		SocialMedia:    input.SocialMedia,
		TelegramToken:  input.TelegramToken,
		ChatID:         input.ChatID,
	}

	if err := s.repo.Upsert(ctx, next); err != nil {
		log.Error("failed to upsert settings", zap.Error(err))
		return nil, err
	}

	log.Info("settings updated", zap.Bool("telegram_configured", next.TelegramToken != ""))
	return s.repo.Get(ctx)
}

func (s *service) TelegramTarget(ctx context.Context) (string, string, error) {
	current, err := s.repo.Get(ctx)
	if err != nil {
		return "", "", err
	}
	if current == nil {
		return "", "", nil
	}
	return current.TelegramToken, current.ChatID, nil
}

func (s *service) TableLabels(ctx context.Context) ([]string, error) {
	current, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}

	var labels []string
	for _, zone := range current.Tables {
		for i := 1; i <= zone.Count; i++ {
			if zone.Zone != "" {
				labels = append(labels, fmt.Sprintf("%s-%d", zone.Zone, i))
			} else {
				labels = append(labels, fmt.Sprintf("%d", i))
			}
		}
	}
	return labels, nil
}
