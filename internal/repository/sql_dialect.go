package repository

import (
	"strings"

	"gorm.io/gorm"
)

// dbDialectName nama dialek database, default diperlakukan sebagai sqlite.
func dbDialectName(db *gorm.DB) string {
	if db == nil || db.Dialector == nil {
		return "sqlite"
	}
	name := strings.ToLower(strings.TrimSpace(db.Dialector.Name()))
	if name == "" {
		return "sqlite"
	}
	return name
}

// nameLikeCondition kondisi LIKE tanpa memandang huruf besar-kecil.
// Postgres memakai ILIKE; sqlite LIKE sudah case-insensitive untuk ASCII.
func nameLikeCondition(dialect, column string) string {
	switch strings.ToLower(strings.TrimSpace(dialect)) {
	case "postgres", "postgresql":
		return column + " ILIKE ?"
	default:
		return column + " LIKE ?"
	}
}
