package models

import "fmt"

// OutcomeKind tags the live variant of an Outcome.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota + 1
	OutcomeCoordinatesEmpty
	OutcomeNoWeatherData
	OutcomeClientError
	OutcomeServerError
	OutcomeNoInternetConnection
	OutcomeDeserializationError
	OutcomeUnknownError
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeCoordinatesEmpty:
		return "coordinates_empty"
	case OutcomeNoWeatherData:
		return "no_weather_data"
	case OutcomeClientError:
		return "client_error"
	case OutcomeServerError:
		return "server_error"
	case OutcomeNoInternetConnection:
		return "no_internet_connection"
	case OutcomeDeserializationError:
		return "deserialization_error"
	case OutcomeUnknownError:
		return "unknown_error"
	}
	panic(fmt.Sprintf("unhandled outcome kind %d", int(k)))
}

// Message is the user-facing text for the outcome.
func (k OutcomeKind) Message() string {
	switch k {
	case OutcomeSuccess:
		return ""
	case OutcomeCoordinatesEmpty:
		return "No coordinates found for the entered city."
	case OutcomeNoWeatherData:
		return "No weather data found!"
	case OutcomeClientError:
		return "Client error! Please try again!"
	case OutcomeServerError:
		return "Server error! Please try again!"
	case OutcomeNoInternetConnection:
		return "No internet connection!"
	case OutcomeDeserializationError:
		return "Failed to deserialize data!"
	case OutcomeUnknownError:
		return "Something unexpected happened! Please try again!"
	}
	panic(fmt.Sprintf("unhandled outcome kind %d", int(k)))
}

// Outcome is the result of resolving a city to its weather. Weather is set
// only when Kind is OutcomeSuccess.
type Outcome struct {
	Kind    OutcomeKind
	Weather *CityWeather
}

func Success(w CityWeather) Outcome {
	return Outcome{Kind: OutcomeSuccess, Weather: &w}
}

// Failure builds a non-success outcome. It panics on OutcomeSuccess, which
// always needs weather data.
func Failure(kind OutcomeKind) Outcome {
	if kind == OutcomeSuccess {
		panic("models: Failure called with OutcomeSuccess")
	}
	return Outcome{Kind: kind}
}

func (o Outcome) IsSuccess() bool {
	return o.Kind == OutcomeSuccess
}

func (o Outcome) String() string {
	if o.Weather != nil {
		return fmt.Sprintf("%s: %s", o.Kind, o.Weather.ToString())
	}
	return o.Kind.String()
}
