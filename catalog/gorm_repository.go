package catalog

import (
	"context"
	"fmt"

	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategoryEnumeration is the persisted category list of one kind.
type CategoryEnumeration struct {
	Kind      models.CatalogKind `gorm:"primaryKey;size:32"`
	Name      string             `gorm:"primaryKey;size:128"`
	Position  int                `gorm:"not null;default:0"`
	MatchMode models.MatchMode   `gorm:"size:16;not null;default:'exact'"`
}

func (CategoryEnumeration) TableName() string {
	return "catalog_categories"
}

// GormRepository reads collections from the catalog tables. Every call reads
// the current rows, so wrap it in a cache for hot paths.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Migrate creates the catalog tables.
func (r *GormRepository) Migrate() error {
	return r.db.AutoMigrate(&models.CatalogItem{}, &CategoryEnumeration{})
}

func (r *GormRepository) Collection(ctx context.Context, kind models.CatalogKind) (*Collection, error) {
	var enum []CategoryEnumeration
	if err := r.db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("position ASC").
		Find(&enum).Error; err != nil {
		return nil, fmt.Errorf("load %s categories: %w", kind, err)
	}
	if len(enum) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	items := make([]models.CatalogItem, 0)
	if err := r.db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("position ASC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("load %s items: %w", kind, err)
	}

	categories := make(models.CategorySet, 0, len(enum))
	for _, e := range enum {
		categories = append(categories, e.Name)
	}
	return NewCollection(kind, categories, enum[0].MatchMode, items)
}

// Import upserts a collection, replacing rows with the same (kind, id).
func (r *GormRepository) Import(ctx context.Context, c *Collection) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("kind = ?", c.Kind).Delete(&CategoryEnumeration{}).Error; err != nil {
			return err
		}
		enum := make([]CategoryEnumeration, 0, len(c.Categories))
		for i, name := range c.Categories {
			enum = append(enum, CategoryEnumeration{Kind: c.Kind, Name: name, Position: i, MatchMode: c.MatchMode})
		}
		if len(enum) > 0 {
			if err := tx.Create(&enum).Error; err != nil {
				return err
			}
		}
		if len(c.Items) == 0 {
			return nil
		}
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&c.Items).Error
	})
}
