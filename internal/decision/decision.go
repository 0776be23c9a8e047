// Package decision classifies a weather observation into a verdict on
// whether laundry can be hung outside to dry. It is pure: no I/O, no
// state, same observation in, same verdict out.
package decision

import (
	"fmt"
	"strings"

	"github.com/tendedero-app/tendedero-api/internal/model"
)

// Thresholds above/below which a check fires.
const (
	cloudyThreshold   = 80   // cloud coverage %
	humidityThreshold = 85   // relative humidity %
	strongWindSpeed   = 6.94 // m/s, about 25 km/h
	coldThreshold     = 10   // °C
)

// CanHangMessage is the affirmative verdict message. It is fixed: warnings
// are surfaced separately and never alter it.
const CanHangMessage = "¡Podés colgar la ropa!"

func isPrecipitating(condition string) bool {
	switch condition {
	case "Rain", "Drizzle", "Thunderstorm":
		return true
	}
	return false
}

// Evaluate produces the verdict for one observation.
//
// Checks run in a fixed order and each routes its finding by the current
// value of the verdict boolean: into warnings while the verdict is still
// positive, into blocking reasons once the precipitation gate has failed it.
// Only the gate ever flips the boolean; warnings never revoke a yes.
func Evaluate(obs model.WeatherObservation) model.Verdict {
	canHang := true
	var reasons []string
	var warnings []string

	if isPrecipitating(obs.Condition) {
		canHang = false
		reasons = append(reasons, "Está lloviendo")
	}

	// cloud coverage affects solar radiation
	if obs.Clouds > cloudyThreshold {
		if canHang {
			warnings = append(warnings, "⚠️ Secado lento - Cielo muy nublado (poca radiación solar)")
		} else {
			reasons = append(reasons, "Cielo muy nublado")
		}
	}

	if obs.Humidity > humidityThreshold {
		if canHang {
			warnings = append(warnings, "⚠️ No recomendado - Humedad muy alta")
		} else {
			reasons = append(reasons, "Humedad muy alta")
		}
	}

	if obs.WindSpeed > strongWindSpeed {
		if canHang {
			warnings = append(warnings, "⚠️ Riesgoso - Viento fuerte")
		} else {
			reasons = append(reasons, "Viento fuerte")
		}
	}

	if obs.Temp < coldThreshold {
		if canHang {
			warnings = append(warnings, "⚠️ Secado lento - Temperatura baja")
		} else {
			reasons = append(reasons, "Temperatura baja")
		}
	}

	message := CanHangMessage
	if !canHang {
		if len(reasons) == 1 {
			message = fmt.Sprintf("No colgar - %s", reasons[0])
		} else {
			message = fmt.Sprintf("No colgar - %s (además: %s)", reasons[0], strings.Join(reasons[1:], ", "))
		}
	}

	return model.Verdict{
		CanHang:  canHang,
		Message:  message,
		Reasons:  reasons,
		Warnings: warnings,
	}
}

// EvaluateForecast runs the same five checks as Evaluate but collapses all
// findings into one short-label list for compact forecast display. Rain
// still fails the verdict; its finding shares the list with the advisory
// ones.
func EvaluateForecast(obs model.WeatherObservation) model.ForecastBadge {
	canHang := true
	var findings []string

	if isPrecipitating(obs.Condition) {
		canHang = false
		findings = append(findings, "Lluvia")
	}

	if obs.Clouds > cloudyThreshold {
		findings = append(findings, "Muy nublado")
	}

	if obs.Humidity > humidityThreshold {
		findings = append(findings, "Humedad alta")
	}

	if obs.WindSpeed > strongWindSpeed {
		findings = append(findings, "Viento fuerte")
	}

	if obs.Temp < coldThreshold {
		findings = append(findings, "Temperatura baja")
	}

	return model.ForecastBadge{
		CanHang:  canHang,
		Findings: findings,
		Label:    badgeLabel(findings),
	}
}

func badgeLabel(findings []string) string {
	if len(findings) == 0 {
		return "Óptimo"
	}
	if len(findings) > 1 {
		return fmt.Sprintf("%s +%d", findings[0], len(findings)-1)
	}
	return findings[0]
}
