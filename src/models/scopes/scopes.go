package scopes

import (
	"encoding/json"

	"hbs/src/config"
	"hbs/src/types"

	"gorm.io/gorm"
)

func WithID(id uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	}
}

func OwnedBy(userID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// ForSearch translates a HotelSearchFilter into WHERE clauses. Fields left
// unset contribute nothing, so an empty filter matches every hotel.
func ForSearch(f types.HotelSearchFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Destination != nil {
			pattern := "%" + *f.Destination + "%"
			db = db.Where("(city ILIKE ? OR country ILIKE ?)", pattern, pattern)
		}
		if f.AdultCount != nil {
			db = db.Where("adult_count >= ?", *f.AdultCount)
		}
		if f.ChildCount != nil {
			db = db.Where("child_count >= ?", *f.ChildCount)
		}
		if len(f.Facilities) > 0 {
			// jsonb containment requires every listed facility to be present.
			b, _ := json.Marshal(f.Facilities)
			db = db.Where("facilities @> ?::jsonb", string(b))
		}
		if len(f.Types) > 0 {
			db = db.Where("type IN ?", f.Types)
		}
		if len(f.Stars) > 0 {
			db = db.Where("star_rating IN ?", f.Stars)
		}
		if f.MaxPrice != nil {
			db = db.Where("price_per_night <= ?", *f.MaxPrice)
		}
		return db
	}
}

func OrderedBy(sort types.SortOption) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch sort {
		case types.SORT_STAR_RATING:
			return db.Order("star_rating DESC")
		case types.SORT_PRICE_NIGHT_ASC:
			return db.Order("price_per_night ASC")
		case types.SORT_PRICE_NIGHT_DESC:
			return db.Order("price_per_night DESC")
		}
		return db
	}
}

func Paginated(page int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset((page - 1) * config.SEARCH_PAGE_SIZE).Limit(config.SEARCH_PAGE_SIZE)
	}
}
