package v1

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// stringFilters filters budgets by name and searches names and expenses.
// A name filter that is set to the empty string matches budgets with an
// empty name.
func stringFilters(db, query *gorm.DB, setFields []string, name, search string) *gorm.DB {
	if name != "" {
		query = query.Where("name LIKE ?", fmt.Sprintf("%%%s%%", name))
	} else if slices.Contains(setFields, "Name") {
		query = query.Where("name = ''")
	}

	if search != "" {
		query = query.Where(
			db.Where("name LIKE ?", fmt.Sprintf("%%%s%%", search)).Or(
				db.Where("expenses LIKE ?", fmt.Sprintf("%%%s%%", search)),
			),
		)
	}

	return query
}

// paginate applies offset and limit. It returns the limit that is used.
func paginate(query *gorm.DB, setFields []string, offset uint, limit int) (*gorm.DB, int) {
	// Set the offset. Does not need checking since the default is 0
	query = query.Offset(int(offset))

	if !slices.Contains(setFields, "Limit") {
		limit = defaultLimit
	}

	return query.Limit(limit), limit
}
