package services

import (
	"fmt"

	"foundation_backend/internal/models"
	"foundation_backend/internal/repositories"
)

// impactPerMember is the estimated number of people reached per active member.
const impactPerMember = 250

// StatsService aggregates the organization's activity counters.
type StatsService interface {
	GetStats() (*models.Stats, error)
}

type statsService struct {
	memberRepo  repositories.MemberRepository
	eventRepo   repositories.EventRepository
	contactRepo repositories.ContactRepository
	galleryRepo repositories.GalleryRepository
}

// NewStatsService creates a new instance of StatsService.
func NewStatsService(
	memberRepo repositories.MemberRepository,
	eventRepo repositories.EventRepository,
	contactRepo repositories.ContactRepository,
	galleryRepo repositories.GalleryRepository,
) StatsService {
	return &statsService{
		memberRepo:  memberRepo,
		eventRepo:   eventRepo,
		contactRepo: contactRepo,
		galleryRepo: galleryRepo,
	}
}

func (s *statsService) GetStats() (*models.Stats, error) {
	members, err := s.memberRepo.CountActiveMembers()
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}
	events, err := s.eventRepo.CountEvents()
	if err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}
	messages, err := s.contactRepo.CountMessages()
	if err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}
	galleryItems, err := s.galleryRepo.CountItems()
	if err != nil {
		return nil, fmt.Errorf("failed to count gallery items: %w", err)
	}

	return &models.Stats{
		Members:        members,
		Events:         events,
		Messages:       messages,
		GalleryItems:   galleryItems,
		ImpactEstimate: members * impactPerMember,
	}, nil
}
