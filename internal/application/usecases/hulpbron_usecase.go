package usecases

import (
	"errors"

	"github.com/google/uuid"

	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/repositories"
	"github.com/mantelbuddy/mantelbuddy-api/internal/resolver"
)

// ErrNietGevonden is returned when a lookup has no result; handlers translate
// it into a structured not-found response, never a 500.
var ErrNietGevonden = errors.New("niet gevonden")

// ErrGemeenteMismatch is returned when a gemeente user touches a resource
// outside its own municipality.
var ErrGemeenteMismatch = errors.New("hulpbron valt buiten de eigen gemeente")

type HulpbronUseCase interface {
	// Zoek runs the resolver query policy over the active resources.
	Zoek(q resolver.Query) ([]entities.HelpResource, error)
	GetAll(page, limit int, municipality string) ([]entities.HelpResource, int64, error)
	GetByID(id uuid.UUID) (*entities.HelpResource, error)
	// Save creates or updates a resource. When scopedMunicipality is set the
	// row is forced into that municipality (gemeente role).
	Save(resource *entities.HelpResource, scopedMunicipality string) error
	Delete(id uuid.UUID, scopedMunicipality string) error
}

type hulpbronUseCase struct {
	repo repositories.HelpResourceRepository
}

func NewHulpbronUseCase(repo repositories.HelpResourceRepository) HulpbronUseCase {
	return &hulpbronUseCase{repo}
}

func (uc *hulpbronUseCase) Zoek(q resolver.Query) ([]entities.HelpResource, error) {
	candidates, err := uc.repo.GetActive()
	if err != nil {
		return nil, err
	}

	return resolver.Resolve(candidates, q), nil
}

func (uc *hulpbronUseCase) GetAll(page, limit int, municipality string) ([]entities.HelpResource, int64, error) {
	return uc.repo.GetAll(page, limit, municipality)
}

func (uc *hulpbronUseCase) GetByID(id uuid.UUID) (*entities.HelpResource, error) {
	resource, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if resource == nil {
		return nil, ErrNietGevonden
	}

	return resource, nil
}

func (uc *hulpbronUseCase) Save(resource *entities.HelpResource, scopedMunicipality string) error {
	if scopedMunicipality != "" {
		resource.Municipality = scopedMunicipality
		// A gemeente account cannot publish beyond its own borders.
		if resource.CoverageLevel == entities.CoverageLandelijk || resource.CoverageLevel == entities.CoverageProvincie {
			resource.CoverageLevel = entities.CoverageGemeente
		}
	}

	if resource.ID == uuid.Nil {
		return uc.repo.Create(resource)
	}

	existing, err := uc.repo.GetByID(resource.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return uc.repo.Create(resource)
	}
	if scopedMunicipality != "" && existing.Municipality != scopedMunicipality {
		return ErrGemeenteMismatch
	}

	return uc.repo.Update(resource)
}

func (uc *hulpbronUseCase) Delete(id uuid.UUID, scopedMunicipality string) error {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNietGevonden
	}
	if scopedMunicipality != "" && existing.Municipality != scopedMunicipality {
		return ErrGemeenteMismatch
	}

	return uc.repo.Delete(id)
}
