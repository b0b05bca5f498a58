package model

// CurrentWeather current conditions
type CurrentWeather struct {
	Temperature   float64 `json:"temperature"`
	WindSpeed     float64 `json:"windspeed"`
	WindDirection float64 `json:"winddirection"`
	WeatherCode   int     `json:"weathercode"`
	Time          string  `json:"time"`
}

// DailyForecast one forecast day
type DailyForecast struct {
	Date          string  `json:"date"`
	TempMax       float64 `json:"tempMax"`
	TempMin       float64 `json:"tempMin"`
	Sunrise       string  `json:"sunrise"` // HH:MM
	Sunset        string  `json:"sunset"`  // HH:MM
	Precipitation float64 `json:"precipitation"`
}

// Rainy precipitation above zero
func (d DailyForecast) Rainy() bool {
	return d.Precipitation > 0
}

// Forecast weather card data; zero value means "no data"
type Forecast struct {
	Current *CurrentWeather `json:"current,omitempty"`
	Daily   []DailyForecast `json:"daily"`
}

// Empty reports whether nothing was fetched
func (f Forecast) Empty() bool {
	return f.Current == nil && len(f.Daily) == 0
}

// Day returns the forecast for date, falling back to the first day
func (f Forecast) Day(date string) (DailyForecast, bool) {
	if len(f.Daily) == 0 {
		return DailyForecast{}, false
	}
	for _, d := range f.Daily {
		if d.Date == date {
			return d, true
		}
	}
	return f.Daily[0], true
}

// Dates forecast dates in API order
func (f Forecast) Dates() []string {
	out := make([]string, 0, len(f.Daily))
	for _, d := range f.Daily {
		out = append(out, d.Date)
	}
	return out
}
