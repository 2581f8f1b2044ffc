package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Domenick1991/routeplanner/internal/dataset"
	"github.com/Domenick1991/routeplanner/internal/domain"
)

// Airports file columns: CODE,Name,Lat,Lon,Timezone,RunwayLength[,City,Country], no header.
// Flights file columns: flightNumber,origin,destination,distance,departureTime,price[,durationMinutes],
// with a header row.
const (
	minAirportFields = 6
	minFlightFields  = 6
)

type CSVDatasetRepository struct {
	airportsPath string
	flightsPath  string
}

func NewCSVDatasetRepository(airportsPath, flightsPath string) *CSVDatasetRepository {
	return &CSVDatasetRepository{airportsPath: airportsPath, flightsPath: flightsPath}
}

func (r *CSVDatasetRepository) Airports(ctx context.Context) ([]domain.Airport, error) {
	f, err := os.Open(r.airportsPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadAirports(ctx, f)
}

func (r *CSVDatasetRepository) Flights(ctx context.Context) ([]domain.Flight, error) {
	airports, err := r.Airports(ctx)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(r.flightsPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadFlights(ctx, f, airports)
}

func newReader(src io.Reader) *csv.Reader {
	rd := csv.NewReader(src)
	rd.FieldsPerRecord = -1
	rd.TrimLeadingSpace = true
	rd.ReuseRecord = true
	return rd
}

func isHeader(record []string, first string) bool {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(record[0]), "_", ""))
	return key == first
}

// ReadAirports parses an airports file. A leading "code,..." header is tolerated.
func ReadAirports(ctx context.Context, src io.Reader) ([]domain.Airport, error) {
	rd := newReader(src)
	airports := make([]domain.Airport, 0)

	for line := 1; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := rd.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if line == 1 && isHeader(record, "code") {
			continue
		}
		if len(record) < minAirportFields {
			return nil, fmt.Errorf("airports line %d: expected at least %d fields, got %d", line, minAirportFields, len(record))
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("airports line %d: latitude: %w", line, err)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
		if err != nil {
			return nil, fmt.Errorf("airports line %d: longitude: %w", line, err)
		}

		a := domain.Airport{
			Code:      strings.ToUpper(strings.TrimSpace(record[0])),
			Name:      strings.TrimSpace(record[1]),
			Latitude:  lat,
			Longitude: lon,
			Timezone:  strings.TrimSpace(record[4]),
		}
		if len(record) > 6 {
			a.City = strings.TrimSpace(record[6])
		}
		if len(record) > 7 {
			a.Country = strings.TrimSpace(record[7])
		}
		airports = append(airports, a)
	}
	return airports, nil
}

// ReadFlights parses a flights file. Distance, duration and arrival time are
// derived from the airports when the row does not carry them.
func ReadFlights(ctx context.Context, src io.Reader, airports []domain.Airport) ([]domain.Flight, error) {
	byCode := make(map[string]domain.Airport, len(airports))
	for _, a := range airports {
		byCode[a.Code] = a
	}

	rd := newReader(src)
	flights := make([]domain.Flight, 0)

	for line := 1; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := rd.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if line == 1 && isHeader(record, "flightnumber") {
			continue
		}
		f, err := parseFlight(record)
		if err != nil {
			return nil, fmt.Errorf("flights line %d: %w", line, err)
		}
		flights = append(flights, dataset.Complete(f, byCode[f.Origin], byCode[f.Destination], false))
	}
	return flights, nil
}

func parseFlight(record []string) (domain.Flight, error) {
	if len(record) < minFlightFields {
		return domain.Flight{}, fmt.Errorf("expected at least %d fields, got %d", minFlightFields, len(record))
	}
	field := func(i int) string { return strings.TrimSpace(record[i]) }

	f := domain.Flight{
		FlightNumber: field(0),
		Origin:       strings.ToUpper(field(1)),
		Destination:  strings.ToUpper(field(2)),
	}

	var err error
	if s := field(3); s != "" {
		if f.DistanceKm, err = strconv.ParseFloat(s, 64); err != nil {
			return f, fmt.Errorf("distance: %w", err)
		}
	}
	if f.DepartureTime, err = domain.ParseTimeOfDay(field(4)); err != nil {
		return f, err
	}
	if f.Price, err = strconv.ParseInt(field(5), 10, 64); err != nil {
		return f, fmt.Errorf("price: %w", err)
	}
	if len(record) > 6 && field(6) != "" {
		if f.DurationMinutes, err = strconv.Atoi(field(6)); err != nil {
			return f, fmt.Errorf("duration: %w", err)
		}
		if f.DurationMinutes <= 0 {
			return f, fmt.Errorf("duration must be positive, got %d", f.DurationMinutes)
		}
	}
	return f, nil
}

var _ DatasetRepository = (*CSVDatasetRepository)(nil)
