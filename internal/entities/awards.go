package entities

import (
	"time"

	"gorm.io/gorm"
)

type WorkType string

const (
	WorkTypeFilm   WorkType = "film"
	WorkTypeTVShow WorkType = "tv_show"
	WorkTypeSong   WorkType = "song"
	WorkTypeAlbum  WorkType = "album"
	WorkTypePlay   WorkType = "play"
	WorkTypeBook   WorkType = "book"
)

// Event is one awards-show instance, e.g. "97th Academy Awards".
type Event struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"index;size:256" json:"name"`
	Slug        string         `gorm:"uniqueIndex;size:256" json:"slug"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	Date        *time.Time     `json:"date,omitempty"`
	Categories  []Category     `gorm:"foreignKey:EventID" json:"categories,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// Category is an award category within an event. SortOrder preserves the
// position in which the category was first encountered in the source
// article; PointValue feeds the scoring subsystem.
type Category struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	EventID     uint         `gorm:"index" json:"event_id"`
	Name        string       `gorm:"size:256" json:"name"`
	PointValue  int          `gorm:"default:1" json:"point_value"`
	SortOrder   int          `json:"sort_order"`
	Nominations []Nomination `gorm:"foreignKey:CategoryID" json:"nominations,omitempty"`
	Event       Event        `gorm:"foreignKey:EventID" json:"-"`
	CreatedAt   time.Time    `json:"created_at"`
}

// Nomination is one nominee within a category, referencing a person and/or
// a work.
type Nomination struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CategoryID  uint      `gorm:"index" json:"category_id"`
	PersonID    *uint     `gorm:"index" json:"person_id,omitempty"`
	WorkID      *uint     `gorm:"index" json:"work_id,omitempty"`
	DisplayText string    `gorm:"size:512" json:"display_text"`
	IsWinner    bool      `gorm:"default:false" json:"is_winner"`
	Person      *Person   `gorm:"foreignKey:PersonID" json:"person,omitempty"`
	Work        *Work     `gorm:"foreignKey:WorkID" json:"work,omitempty"`
	Category    Category  `gorm:"foreignKey:CategoryID" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

// Person is a nominee identity shared across categories and events,
// keyed by its Wikipedia-derived slug.
type Person struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Slug      string    `gorm:"uniqueIndex;size:256" json:"slug"`
	Name      string    `gorm:"index;size:256" json:"name"`
	ImageURL  string    `gorm:"size:2048" json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Work is a nominated film, show, song or similar, keyed by its slug.
type Work struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Slug      string    `gorm:"uniqueIndex;size:256" json:"slug"`
	Title     string    `gorm:"index;size:512" json:"title"`
	Type      WorkType  `gorm:"size:20;default:'film'" json:"type"`
	Year      int       `json:"year,omitempty"`
	ImageURL  string    `gorm:"size:2048" json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Event) TableName() string {
	return "events"
}

func (Category) TableName() string {
	return "categories"
}

func (Nomination) TableName() string {
	return "nominations"
}

func (Person) TableName() string {
	return "people"
}

func (Work) TableName() string {
	return "works"
}
