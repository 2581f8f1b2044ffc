package api

import "github.com/Domenick1991/routeplanner/internal/domain"

type flightView struct {
	FlightNumber    string           `json:"flightNumber"`
	Price           int64            `json:"price"`
	DepartureTime   domain.TimeOfDay `json:"departureTime"`
	ArrivalTime     domain.TimeOfDay `json:"arrivalTime"`
	DurationMinutes int              `json:"durationMinutes"`
	Best            bool             `json:"best"`
	Cheapest        bool             `json:"cheapest"`
}

type legView struct {
	From            string       `json:"from"`
	To              string       `json:"to"`
	FromCity        string       `json:"fromCity"`
	FromCountry     string       `json:"fromCountry"`
	ToCity          string       `json:"toCity"`
	ToCountry       string       `json:"toCountry"`
	BestFlightIndex int          `json:"bestFlightIndex"`
	Flights         []flightView `json:"flights"`
}

// routeView carries CheapestTotalPrice alongside TotalMetric for clients that
// only understand price-ranked routes.
type routeView struct {
	Airports           []string  `json:"airports"`
	TotalMetric        int64     `json:"totalMetric"`
	CheapestTotalPrice int64     `json:"cheapestTotalPrice"`
	Legs               []legView `json:"legs"`
}

type multiCityView struct {
	From       string      `json:"from"`
	OptimizeBy string      `json:"optimizeBy"`
	Routes     []routeView `json:"routes"`
}

type directFlightsView struct {
	From    string          `json:"from"`
	To      string          `json:"to"`
	Flights []domain.Flight `json:"flights"`
	Message string          `json:"message,omitempty"`
}

func newMultiCityView(r *domain.MultiCityResult) multiCityView {
	v := multiCityView{
		From:       r.From,
		OptimizeBy: string(r.Criterion),
		Routes:     make([]routeView, 0, len(r.Routes)),
	}
	for _, route := range r.Routes {
		rv := routeView{
			Airports:    route.Airports,
			TotalMetric: route.TotalMetric,
			Legs:        make([]legView, 0, len(route.Legs)),
		}
		for _, leg := range route.Legs {
			if best, ok := leg.Best(); ok {
				rv.CheapestTotalPrice += best.Price
			}
			rv.Legs = append(rv.Legs, newLegView(leg))
		}
		v.Routes = append(v.Routes, rv)
	}
	return v
}

func newLegView(leg domain.Leg) legView {
	lv := legView{
		From:            leg.From.Code,
		To:              leg.To.Code,
		FromCity:        leg.From.City,
		FromCountry:     leg.From.Country,
		ToCity:          leg.To.City,
		ToCountry:       leg.To.Country,
		BestFlightIndex: leg.BestIndex,
		Flights:         make([]flightView, 0, len(leg.Flights)),
	}
	for i, f := range leg.Flights {
		lv.Flights = append(lv.Flights, flightView{
			FlightNumber:    f.FlightNumber,
			Price:           f.Price,
			DepartureTime:   f.DepartureTime,
			ArrivalTime:     f.ArrivalTime,
			DurationMinutes: f.DurationMinutes,
			Best:            i == leg.BestIndex,
			Cheapest:        i == leg.BestIndex,
		})
	}
	return lv
}
