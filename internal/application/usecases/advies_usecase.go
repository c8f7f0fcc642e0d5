package usecases

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/repositories"
	"github.com/mantelbuddy/mantelbuddy-api/internal/scoring"
)

// AdviesUseCase resolves advisory texts. Admin-configured rows win; when no
// row exists the static fallback text is used, so the user never sees a gap.
type AdviesUseCase interface {
	// TipFor implements scoring.TipResolver for the deelgebied aggregator.
	TipFor(deelgebied string, tier scoring.Tier) (string, bool)
	// TaakAdvies returns the advice text for one care task.
	TaakAdvies(taskID string) string
	GetAll() ([]entities.Advice, error)
	Save(advice *entities.Advice) error
	Delete(key string) error
}

type adviesUseCase struct {
	repo repositories.AdviceRepository
}

func NewAdviesUseCase(repo repositories.AdviceRepository) AdviesUseCase {
	return &adviesUseCase{repo}
}

// Static fallbacks per "{deelgebied}.{tier}". Kept deliberately generic; the
// admin screens are where the real texts live.
var fallbackAdvies = map[string]string{
	"energie.laag":      "Je energiebalans ziet er goed uit. Blijf voldoende rusten.",
	"energie.gemiddeld": "Let op je energie. Plan bewust momenten voor jezelf in.",
	"energie.hoog":      "Je energie staat onder druk. Overweeg respijtzorg of vraag hulp in je omgeving.",
	"gevoel.laag":       "Je voelt je over het algemeen goed. Houd dit vast.",
	"gevoel.gemiddeld":  "Praat af en toe met iemand over hoe het met je gaat.",
	"gevoel.hoog":       "Je gevoel vraagt aandacht. Neem contact op met een mantelzorgconsulent.",
	"tijd.laag":         "Je houdt voldoende tijd over voor jezelf.",
	"tijd.gemiddeld":    "Bewaak je eigen tijd. Durf ook nee te zeggen.",
	"tijd.hoog":         "Zorgtaken nemen veel tijd in beslag. Kijk welke taken anderen kunnen overnemen.",
}

const fallbackTaakAdvies = "Bespreek met je gemeente of een zorgorganisatie welke ondersteuning er voor deze taak bestaat."

func (uc *adviesUseCase) TipFor(deelgebied string, tier scoring.Tier) (string, bool) {
	key := fmt.Sprintf("%s.%s", deelgebied, tier)

	advice, err := uc.repo.GetByKey(key)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("advies opzoeken mislukt, fallback gebruikt")
	}
	if advice != nil && advice.Text != "" {
		return advice.Text, true
	}

	if text, ok := fallbackAdvies[key]; ok {
		return text, true
	}
	return "", false
}

func (uc *adviesUseCase) TaakAdvies(taskID string) string {
	key := fmt.Sprintf("taak.%s.advies", taskID)

	advice, err := uc.repo.GetByKey(key)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("taakadvies opzoeken mislukt, fallback gebruikt")
	}
	if advice != nil && advice.Text != "" {
		return advice.Text
	}

	return fallbackTaakAdvies
}

func (uc *adviesUseCase) GetAll() ([]entities.Advice, error) {
	return uc.repo.GetAll()
}

func (uc *adviesUseCase) Save(advice *entities.Advice) error {
	return uc.repo.Upsert(advice)
}

func (uc *adviesUseCase) Delete(key string) error {
	return uc.repo.Delete(key)
}
