package usecases

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/repositories"
	"github.com/mantelbuddy/mantelbuddy-api/internal/resolver"
)

// ZoekResultaat is the combined payload of the keyword search tool.
type ZoekResultaat struct {
	Artikelen   []entities.Article      `json:"artikelen"`
	Hulpbronnen []entities.HelpResource `json:"hulpbronnen"`
}

// RapportUseCase backs the chat-tool endpoints that do not map one-to-one
// onto another use case: municipality info, alarms, keyword search and the
// textual report summary.
type RapportUseCase interface {
	GemeenteInfo(naam string) (*entities.Gemeente, error)
	RegistreerAlarm(caregiverID uuid.UUID, reason, note string) (*entities.Alarm, error)
	Zoeken(term string, limit int) (*ZoekResultaat, error)
	// Samenvatting renders the latest rapport as plain text, usable both by
	// the coaching chat and the WhatsApp result message.
	Samenvatting(caregiverID uuid.UUID) (string, *Rapport, error)
}

type rapportUseCase struct {
	balans     BalanstestUseCase
	artikelen  ArtikelUseCase
	hulp       HulpbronUseCase
	gemeenten  repositories.GemeenteRepository
	alarms     repositories.AlarmRepository
	caregivers repositories.CaregiverRepository
}

func NewRapportUseCase(
	balans BalanstestUseCase,
	artikelen ArtikelUseCase,
	hulp HulpbronUseCase,
	gemeenten repositories.GemeenteRepository,
	alarms repositories.AlarmRepository,
	caregivers repositories.CaregiverRepository,
) RapportUseCase {
	return &rapportUseCase{balans, artikelen, hulp, gemeenten, alarms, caregivers}
}

func (uc *rapportUseCase) GemeenteInfo(naam string) (*entities.Gemeente, error) {
	gemeente, err := uc.gemeenten.GetByName(naam)
	if err != nil {
		return nil, err
	}
	if gemeente == nil {
		return nil, ErrNietGevonden
	}

	return gemeente, nil
}

func (uc *rapportUseCase) RegistreerAlarm(caregiverID uuid.UUID, reason, note string) (*entities.Alarm, error) {
	caregiver, err := uc.caregivers.GetByID(caregiverID)
	if err != nil {
		return nil, err
	}
	if caregiver == nil {
		return nil, ErrNietGevonden
	}

	alarm := &entities.Alarm{
		CaregiverID: caregiverID,
		Reason:      reason,
		Note:        note,
	}
	if err := uc.alarms.Create(alarm); err != nil {
		return nil, err
	}

	return alarm, nil
}

func (uc *rapportUseCase) Zoeken(term string, limit int) (*ZoekResultaat, error) {
	if limit <= 0 {
		limit = 5
	}

	artikelen, err := uc.artikelen.Zoek(term, limit)
	if err != nil {
		return nil, err
	}

	hulpbronnen, err := uc.hulp.Zoek(resolver.Query{SearchTerm: term})
	if err != nil {
		return nil, err
	}
	if len(hulpbronnen) > limit {
		hulpbronnen = hulpbronnen[:limit]
	}

	return &ZoekResultaat{Artikelen: artikelen, Hulpbronnen: hulpbronnen}, nil
}

func (uc *rapportUseCase) Samenvatting(caregiverID uuid.UUID) (string, *Rapport, error) {
	rapport, err := uc.balans.Laatste(caregiverID)
	if err != nil {
		return "", nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Balanstest van %s: score %.1f van 24, niveau %s.\n",
		rapport.CompletedAt.Format("02-01-2006"), rapport.TotalScore, rapport.TierLevel)
	for _, d := range rapport.Deelgebieden {
		fmt.Fprintf(&b, "- %s: %d%% (%s). %s\n", d.Name, d.Percentage, d.TierLevel, d.Tip)
	}
	if rapport.TotalCareHoursPerWeek > 0 {
		fmt.Fprintf(&b, "Zorguren per week: %.0f.\n", rapport.TotalCareHoursPerWeek)
	}
	if len(rapport.Hulpbronnen) > 0 {
		fmt.Fprintf(&b, "Passende hulp: %s.", rapport.Hulpbronnen[0].Name)
	}

	return b.String(), rapport, nil
}
