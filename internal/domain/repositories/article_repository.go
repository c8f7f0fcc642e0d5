package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
)

type ArticleRepository interface {
	GetAll(page, limit int) ([]entities.Article, int64, error)
	GetByID(id uuid.UUID) (*entities.Article, error)
	// Search does a case-insensitive keyword match over title, summary and
	// body of active articles.
	Search(term string, limit int) ([]entities.Article, error)
	Create(article *entities.Article) error
	Update(article *entities.Article) error
	Delete(id uuid.UUID) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db}
}

func (r *articleRepository) GetAll(page, limit int) ([]entities.Article, int64, error) {
	var articles []entities.Article
	var total int64

	query := r.db.Model(&entities.Article{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("artikelen tellen mislukt: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 25
	}

	err := query.
		Order("published_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&articles).Error
	if err != nil {
		return nil, 0, fmt.Errorf("artikelen ophalen mislukt: %w", err)
	}

	return articles, total, nil
}

func (r *articleRepository) GetByID(id uuid.UUID) (*entities.Article, error) {
	var article entities.Article

	err := r.db.First(&article, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("artikel ophalen mislukt: %w", err)
	}

	return &article, nil
}

func (r *articleRepository) Search(term string, limit int) ([]entities.Article, error) {
	var articles []entities.Article

	if limit <= 0 {
		limit = 10
	}
	pattern := "%" + term + "%"

	err := r.db.
		Where("is_active = ?", true).
		Where("title ILIKE ? OR summary ILIKE ? OR body ILIKE ?", pattern, pattern, pattern).
		Order("published_at desc").
		Limit(limit).
		Find(&articles).Error
	if err != nil {
		return nil, fmt.Errorf("artikelen zoeken mislukt: %w", err)
	}

	return articles, nil
}

func (r *articleRepository) Create(article *entities.Article) error {
	if article.ID == uuid.Nil {
		article.ID = uuid.New()
	}

	if err := r.db.Create(article).Error; err != nil {
		return fmt.Errorf("artikel aanmaken mislukt: %w", err)
	}

	return nil
}

func (r *articleRepository) Update(article *entities.Article) error {
	if err := r.db.Save(article).Error; err != nil {
		return fmt.Errorf("artikel bijwerken mislukt: %w", err)
	}

	return nil
}

func (r *articleRepository) Delete(id uuid.UUID) error {
	if err := r.db.Delete(&entities.Article{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("artikel verwijderen mislukt: %w", err)
	}

	return nil
}
