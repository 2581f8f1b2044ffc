package repository

import (
	"testing"

	"github.com/Domenick1991/routeplanner/internal/domain"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewDatasetRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewDatasetRepository(pool)
	assert.NotNil(t, repo)
}

func TestTimeOfDay(t *testing.T) {
	us := int64((13*3600 + 45*60 + 30) * 1_000_000)
	assert.Equal(t, domain.NewTimeOfDay(13, 45, 30), timeOfDay(pgtype.Time{Microseconds: us, Valid: true}))
	assert.Equal(t, domain.TimeOfDay(0), timeOfDay(pgtype.Time{}))
}

func TestSelectAirportsSQL_ToleratesNulls(t *testing.T) {
	for _, col := range []string{"name", "city", "country", "timezone", "latitude", "longitude"} {
		assert.Contains(t, selectAirportsSQL, "COALESCE("+col+",", col)
	}
}

func TestSelectFlightsSQL_ToleratesNulls(t *testing.T) {
	for _, col := range []string{"duration_minutes", "distance_km"} {
		assert.Contains(t, selectFlightsSQL, "COALESCE("+col+",", col)
	}
}
