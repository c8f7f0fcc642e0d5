package usecases

import (
	"github.com/google/uuid"

	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/repositories"
)

type ArtikelUseCase interface {
	GetAll(page, limit int) ([]entities.Article, int64, error)
	GetByID(id uuid.UUID) (*entities.Article, error)
	Zoek(term string, limit int) ([]entities.Article, error)
	Save(article *entities.Article) error
	Delete(id uuid.UUID) error
}

type artikelUseCase struct {
	repo repositories.ArticleRepository
}

func NewArtikelUseCase(repo repositories.ArticleRepository) ArtikelUseCase {
	return &artikelUseCase{repo}
}

func (uc *artikelUseCase) GetAll(page, limit int) ([]entities.Article, int64, error) {
	return uc.repo.GetAll(page, limit)
}

func (uc *artikelUseCase) GetByID(id uuid.UUID) (*entities.Article, error) {
	article, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNietGevonden
	}

	return article, nil
}

func (uc *artikelUseCase) Zoek(term string, limit int) ([]entities.Article, error) {
	return uc.repo.Search(term, limit)
}

func (uc *artikelUseCase) Save(article *entities.Article) error {
	if article.ID == uuid.Nil {
		return uc.repo.Create(article)
	}

	return uc.repo.Update(article)
}

func (uc *artikelUseCase) Delete(id uuid.UUID) error {
	return uc.repo.Delete(id)
}
