// Package catalog provides database operations for the imported award
// catalog: find-or-create by slug for people and works, and nested event
// creation inside a single transaction.
//
// This package implements the CatalogStore interface defined in
// internal/services/interfaces.go:
//
//	var _ services.CatalogStore = (*Repository)(nil)
package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/awardpool/awardpool/internal/entities"
	"github.com/awardpool/awardpool/internal/services"
)

// Repository handles all award catalog database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new catalog repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTransaction runs fn inside one transaction. Returning an error from
// fn rolls back every change performed through the transaction handle.
func (r *Repository) WithTransaction(ctx context.Context, fn func(tx services.CatalogTx) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&catalogTx{db: tx})
	})
}

type catalogTx struct {
	db *gorm.DB
}

// FindOrCreatePerson returns the person with the given slug, creating it
// when absent. Existing rows keep their stored name and image.
func (t *catalogTx) FindOrCreatePerson(slug, name, imageURL string) (*entities.Person, error) {
	var person entities.Person
	err := t.db.Where("slug = ?", slug).First(&person).Error
	if err == nil {
		return &person, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	person = entities.Person{Slug: slug, Name: name, ImageURL: imageURL}
	if err := t.db.Create(&person).Error; err != nil {
		return nil, err
	}
	return &person, nil
}

// FindOrCreateWork returns the work with the given slug, creating it when
// absent.
func (t *catalogTx) FindOrCreateWork(slug, title string, workType entities.WorkType, year int, imageURL string) (*entities.Work, error) {
	var work entities.Work
	err := t.db.Where("slug = ?", slug).First(&work).Error
	if err == nil {
		return &work, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	work = entities.Work{Slug: slug, Title: title, Type: workType, Year: year, ImageURL: imageURL}
	if err := t.db.Create(&work).Error; err != nil {
		return nil, err
	}
	return &work, nil
}

// CreateEvent persists the event with its nested categories and
// nominations in one shot.
func (t *catalogTx) CreateEvent(event *entities.Event) error {
	return t.db.Create(event).Error
}

// GetEventBySlug loads a persisted event with its full graph, categories
// in scan order.
func (r *Repository) GetEventBySlug(slug string) (*entities.Event, error) {
	var event entities.Event
	err := r.db.Preload("Categories", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC")
	}).Preload("Categories.Nominations").
		Preload("Categories.Nominations.Person").
		Preload("Categories.Nominations.Work").
		Where("slug = ?", slug).First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// PeopleMissingImage lists people imported without an image.
func (r *Repository) PeopleMissingImage() ([]entities.Person, error) {
	var people []entities.Person
	err := r.db.Where("image_url = ''").Find(&people).Error
	return people, err
}

// WorksMissingImage lists works imported without an image.
func (r *Repository) WorksMissingImage() ([]entities.Work, error) {
	var works []entities.Work
	err := r.db.Where("image_url = ''").Find(&works).Error
	return works, err
}

func (r *Repository) UpdatePersonImage(id uint, imageURL string) error {
	return r.db.Model(&entities.Person{}).Where("id = ?", id).Update("image_url", imageURL).Error
}

func (r *Repository) UpdateWorkImage(id uint, imageURL string) error {
	return r.db.Model(&entities.Work{}).Where("id = ?", id).Update("image_url", imageURL).Error
}
