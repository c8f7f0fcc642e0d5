package usecases

import (
	"time"

	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/repositories"
	"github.com/mantelbuddy/mantelbuddy-api/internal/infrastructure/cache"
)

const catalogCacheTTL = 10 * time.Minute

// VraagUseCase serves the question and care-task catalogs. Catalog data only
// changes through seeding, so reads go through a short TTL cache.
type VraagUseCase interface {
	GetVragen(questionnaireType entities.QuestionnaireType) ([]entities.Question, error)
	GetZorgtaken() ([]entities.CareTask, error)
	// InvalidateCache drops the cached catalogs after a reseed.
	InvalidateCache()
}

type vraagUseCase struct {
	questionRepo repositories.QuestionRepository
	taskRepo     repositories.CareTaskRepository
	cache        *cache.Cache
}

func NewVraagUseCase(questionRepo repositories.QuestionRepository, taskRepo repositories.CareTaskRepository, c *cache.Cache) VraagUseCase {
	return &vraagUseCase{questionRepo, taskRepo, c}
}

func (uc *vraagUseCase) GetVragen(questionnaireType entities.QuestionnaireType) ([]entities.Question, error) {
	v, err := uc.cache.GetOrLoad("vragen:"+string(questionnaireType), catalogCacheTTL, func() (interface{}, error) {
		return uc.questionRepo.GetQuestions(questionnaireType)
	})
	if err != nil {
		return nil, err
	}

	return v.([]entities.Question), nil
}

func (uc *vraagUseCase) GetZorgtaken() ([]entities.CareTask, error) {
	v, err := uc.cache.GetOrLoad("zorgtaken", catalogCacheTTL, func() (interface{}, error) {
		return uc.taskRepo.GetTasks()
	})
	if err != nil {
		return nil, err
	}

	return v.([]entities.CareTask), nil
}

func (uc *vraagUseCase) InvalidateCache() {
	uc.cache.Clear()
}
