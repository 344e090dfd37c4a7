package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/wildercal/internal/db"
	"github.com/alexanderramin/wildercal/internal/domain"
	"github.com/alexanderramin/wildercal/internal/repository"
	"github.com/alexanderramin/wildercal/internal/themes"
)

type editionService struct {
	catalog     *themes.Catalog
	editions    repository.EditionRepo
	places      repository.PlaceRepo
	assignments repository.AssignmentRepo
}

func NewEditionService(catalog *themes.Catalog, conn db.DBTX) EditionService {
	return &editionService{
		catalog:     catalog,
		editions:    repository.NewSQLiteEditionRepo(conn),
		places:      repository.NewSQLitePlaceRepo(conn),
		assignments: repository.NewSQLiteAssignmentRepo(conn),
	}
}

func (s *editionService) List(ctx context.Context) ([]*domain.Edition, error) {
	return s.editions.List(ctx)
}

// Get loads an edition with its library, plan and theme list. Themes are
// left empty when the edition's preset is no longer installed.
func (s *editionService) Get(ctx context.Context, id string) (*EditionDetail, error) {
	edition, err := s.editions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d := &EditionDetail{Edition: edition}
	if d.Places, err = s.places.ListByEdition(ctx, id); err != nil {
		return nil, fmt.Errorf("loading places: %w", err)
	}
	if d.Assignments, err = s.assignments.ListByEdition(ctx, id); err != nil {
		return nil, fmt.Errorf("loading plan: %w", err)
	}
	if d.Attempts, err = s.assignments.ListAttempts(ctx, id); err != nil {
		return nil, fmt.Errorf("loading plan attempts: %w", err)
	}
	if preset, err := s.catalog.Get(edition.TemplateVersion); err == nil {
		d.Themes = preset.Themes
	}
	return d, nil
}

func (s *editionService) Delete(ctx context.Context, id string) error {
	return s.editions.Delete(ctx, id)
}
