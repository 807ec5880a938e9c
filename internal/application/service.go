package application

import (
	"context"
	"fmt"
	"time"

	"github.com/voltlab/zonebalance/internal/domain"
	"github.com/voltlab/zonebalance/internal/ports"
)

type Service struct {
	repo  ports.ZoneRepository
	clock ports.Clock
}

func NewService(repo ports.ZoneRepository, clock ports.Clock) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Service{
		repo:  repo,
		clock: clock,
	}
}

// AddZone validates and records a zone. Saving an existing name
// overwrites its load.
func (s *Service) AddZone(ctx context.Context, name string, load float64) (domain.ZoneLoad, error) {
	zone, err := domain.NewZoneLoad(name, load)
	if err != nil {
		return domain.ZoneLoad{}, err
	}

	if err := s.repo.Save(ctx, zone); err != nil {
		return domain.ZoneLoad{}, fmt.Errorf("save zone: %w", err)
	}

	return zone, nil
}

// SetZoneLoad updates the load of a zone that already exists.
func (s *Service) SetZoneLoad(ctx context.Context, name string, load float64) (domain.ZoneLoad, error) {
	if _, err := s.repo.GetByName(ctx, name); err != nil {
		return domain.ZoneLoad{}, fmt.Errorf("get zone by name: %w", err)
	}

	zone, err := domain.NewZoneLoad(name, load)
	if err != nil {
		return domain.ZoneLoad{}, err
	}

	if err := s.repo.Save(ctx, zone); err != nil {
		return domain.ZoneLoad{}, fmt.Errorf("save zone: %w", err)
	}

	return zone, nil
}

func (s *Service) RemoveZone(ctx context.Context, name string) error {
	if err := s.repo.Remove(ctx, name); err != nil {
		return fmt.Errorf("remove zone: %w", err)
	}

	return nil
}

func (s *Service) ListZones(ctx context.Context) ([]domain.ZoneLoad, error) {
	zones, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}

	return zones, nil
}

// Analyze runs the full balancing computation over the recorded zones.
// An empty zone set surfaces domain.ErrNoZones.
func (s *Service) Analyze(ctx context.Context) (Analysis, error) {
	zones, err := s.repo.List(ctx)
	if err != nil {
		return Analysis{}, fmt.Errorf("list zones: %w", err)
	}

	return AnalyzeZones(zones, s.clock.Now())
}

// AnalyzeZones derives the analysis for an explicit zone sequence. The
// sequence order is preserved through every derived field.
func AnalyzeZones(zones []domain.ZoneLoad, capturedAt time.Time) (Analysis, error) {
	ideal, err := domain.IdealLoad(zones)
	if err != nil {
		return Analysis{}, err
	}

	adjustments, err := domain.RecommendRedistribution(zones)
	if err != nil {
		return Analysis{}, err
	}

	return Analysis{
		Zones:       zones,
		TotalLoad:   domain.TotalLoad(zones),
		IdealLoad:   ideal,
		Overloads:   domain.DetectOverloads(zones),
		Adjustments: adjustments,
		CapturedAt:  capturedAt,
	}, nil
}
