package scopes

import (
	"log"
	"testing"

	"hbs/src/models"
	"hbs/src/types"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, _, err := sqlmock.New()
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening a stub database connection", err)
	}
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening gorm database", err)
	}
	return gormDB
}

func searchSQL(gdb *gorm.DB, f types.HotelSearchFilter) string {
	return gdb.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&models.Hotel{}).Scopes(ForSearch(f)).Find(&[]models.Hotel{})
	})
}

func TestForSearchEmptyFilter(t *testing.T) {
	gdb := newMockDB(t)
	sql := searchSQL(gdb, types.HotelSearchFilter{})

	assert.NotContains(t, sql, "ILIKE")
	assert.NotContains(t, sql, "adult_count")
	assert.NotContains(t, sql, "child_count")
	assert.NotContains(t, sql, "facilities")
	assert.NotContains(t, sql, "type IN")
	assert.NotContains(t, sql, "star_rating")
	assert.NotContains(t, sql, "price_per_night")
}

func TestForSearchAllClauses(t *testing.T) {
	gdb := newMockDB(t)
	dest := "london"
	adults := 2
	children := 1
	maxPrice := 150
	f := types.HotelSearchFilter{
		Destination: &dest,
		AdultCount:  &adults,
		ChildCount:  &children,
		Facilities:  []string{"wifi", "pool"},
		Types:       []string{"Budget", "Boutique"},
		Stars:       []int{3, 4},
		MaxPrice:    &maxPrice,
	}
	sql := searchSQL(gdb, f)

	assert.Contains(t, sql, "city ILIKE '%london%'")
	assert.Contains(t, sql, "country ILIKE '%london%'")
	assert.Contains(t, sql, "adult_count >= 2")
	assert.Contains(t, sql, "child_count >= 1")
	assert.Contains(t, sql, `facilities @> '["wifi","pool"]'::jsonb`)
	assert.Contains(t, sql, "type IN ('Budget','Boutique')")
	assert.Contains(t, sql, "star_rating IN (3,4)")
	assert.Contains(t, sql, "price_per_night <= 150")
}

func TestForSearchSingleStar(t *testing.T) {
	gdb := newMockDB(t)
	sql := searchSQL(gdb, types.HotelSearchFilter{Stars: []int{5}})
	assert.Contains(t, sql, "star_rating IN (5)")
}

func TestOrderedBy(t *testing.T) {
	gdb := newMockDB(t)
	cases := map[types.SortOption]string{
		types.SORT_STAR_RATING:      "ORDER BY star_rating DESC",
		types.SORT_PRICE_NIGHT_ASC:  "ORDER BY price_per_night ASC",
		types.SORT_PRICE_NIGHT_DESC: "ORDER BY price_per_night DESC",
	}
	for opt, expected := range cases {
		sql := gdb.ToSQL(func(tx *gorm.DB) *gorm.DB {
			return tx.Model(&models.Hotel{}).Scopes(OrderedBy(opt)).Find(&[]models.Hotel{})
		})
		assert.Contains(t, sql, expected)
	}

	sql := gdb.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&models.Hotel{}).Scopes(OrderedBy("bogus")).Find(&[]models.Hotel{})
	})
	assert.NotContains(t, sql, "ORDER BY")
}

func TestPaginated(t *testing.T) {
	gdb := newMockDB(t)
	sql := gdb.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&models.Hotel{}).Scopes(Paginated(2)).Find(&[]models.Hotel{})
	})
	assert.Contains(t, sql, "LIMIT 5")
	assert.Contains(t, sql, "OFFSET 5")
}

func TestOwnedBy(t *testing.T) {
	gdb := newMockDB(t)
	sql := gdb.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&models.Hotel{}).Scopes(WithID(7), OwnedBy(3)).Find(&[]models.Hotel{})
	})
	assert.Contains(t, sql, "id = 7")
	assert.Contains(t, sql, "user_id = 3")
}
