package services

import (
	"context"

	"github.com/awardpool/awardpool/internal/entities"
	"github.com/awardpool/awardpool/internal/wikipedia"
)

// PageSource provides structured access to encyclopedia articles.
// Implemented by wikipedia.Client.
type PageSource interface {
	GetPage(ctx context.Context, title string) (*wikipedia.Page, error)
}

// CatalogStore persists imported award catalogs. Implemented by
// database/catalog.Repository.
type CatalogStore interface {
	// WithTransaction runs fn inside a single transaction. Any error
	// returned by fn rolls back everything performed through the CatalogTx.
	WithTransaction(ctx context.Context, fn func(tx CatalogTx) error) error
}

// CatalogTx exposes the storage operations available inside one import
// transaction.
type CatalogTx interface {
	FindOrCreatePerson(slug, name, imageURL string) (*entities.Person, error)
	FindOrCreateWork(slug, title string, workType entities.WorkType, year int, imageURL string) (*entities.Work, error)
	CreateEvent(event *entities.Event) error
}
