package repository

import (
	"context"

	"github.com/Domenick1991/routeplanner/internal/dataset"
	"github.com/Domenick1991/routeplanner/internal/domain"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	selectAirportsSQL = `SELECT code, COALESCE(name, ''), COALESCE(city, ''), COALESCE(country, ''), COALESCE(timezone, ''),
		COALESCE(latitude, 0), COALESCE(longitude, 0) FROM airports ORDER BY id`
	selectFlightsSQL  = `SELECT flight_number, origin, destination, price, departure_time, arrival_time, COALESCE(duration_minutes, 0), COALESCE(distance_km, 0) FROM flights ORDER BY id`
)

// PGDatasetRepository reads the dataset from the airports and flights tables:
//
//	airports(id serial, code char(3) unique, name, city, country, timezone text,
//	         latitude, longitude double precision)
//	flights(id serial, flight_number text, origin, destination char(3) references airports(code),
//	        price bigint, departure_time, arrival_time time, duration_minutes int,
//	        distance_km double precision)
//
// NULL columns read as zero values. A NULL duration is then derived from distance,
// while a negative one is left for the graph builder to reject.
type PGDatasetRepository struct {
	db *pgxpool.Pool
}

func NewDatasetRepository(db *pgxpool.Pool) DatasetRepository {
	return &PGDatasetRepository{db: db}
}

func (r *PGDatasetRepository) Airports(ctx context.Context) ([]domain.Airport, error) {
	rows, err := r.db.Query(ctx, selectAirportsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.Code, &a.Name, &a.City, &a.Country, &a.Timezone, &a.Latitude, &a.Longitude); err != nil {
			return nil, err
		}
		airports = append(airports, a)
	}
	return airports, rows.Err()
}

func (r *PGDatasetRepository) Flights(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, selectFlightsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var (
			f                  domain.Flight
			departure, arrival pgtype.Time
		)
		if err := rows.Scan(&f.FlightNumber, &f.Origin, &f.Destination, &f.Price, &departure, &arrival, &f.DurationMinutes, &f.DistanceKm); err != nil {
			return nil, err
		}
		f.DepartureTime = timeOfDay(departure)
		f.ArrivalTime = timeOfDay(arrival)
		flights = append(flights, dataset.Complete(f, domain.Airport{}, domain.Airport{}, arrival.Valid))
	}
	return flights, rows.Err()
}

func timeOfDay(t pgtype.Time) domain.TimeOfDay {
	if !t.Valid {
		return 0
	}
	return domain.TimeOfDay(t.Microseconds / 1_000_000)
}

var _ DatasetRepository = (*PGDatasetRepository)(nil)
