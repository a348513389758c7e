package http

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/couchcryptid/impact-sim/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type analyzeRequest struct {
	DiameterMeters   float64 `json:"diameter_m" validate:"gt=0"`
	VelocityKmPerSec float64 `json:"velocity_km_s" validate:"gt=0"`
	DensityKgPerM3   float64 `json:"density" validate:"gte=0"`
	Latitude         float64 `json:"lat" validate:"gte=-90,lte=90"`
	Longitude        float64 `json:"lng" validate:"gte=-180,lte=180"`
}

func (r analyzeRequest) parameters() domain.ImpactParameters {
	return domain.ImpactParameters{
		DiameterMeters:   r.DiameterMeters,
		VelocityKmPerSec: r.VelocityKmPerSec,
		DensityKgPerM3:   r.DensityKgPerM3,
		Latitude:         r.Latitude,
		Longitude:        r.Longitude,
	}
}

type craterRequest struct {
	MassKg            float64 `json:"mass_kg" validate:"gt=0"`
	SceneVelocity     float64 `json:"scene_velocity"`
	PlanetRadiusUnits float64 `json:"planet_radius_units" validate:"gte=0"`
}

type neoAnalyzeRequest struct {
	Latitude  float64 `json:"lat" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"lng" validate:"gte=-180,lte=180"`
}

// neoAnalyzeResponse pairs the fetched object with its hypothetical impact.
type neoAnalyzeResponse struct {
	NEO        neoSummary              `json:"neo"`
	Parameters domain.ImpactParameters `json:"parameters"`
	Analysis   domain.ImpactAnalysis   `json:"analysis"`
}

type neoSummary struct {
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	IsPotentiallyHazardous bool   `json:"is_potentially_hazardous"`
}

// errorResponse is the body of every 4xx/5xx reply from the /v1 API.
type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// fieldError converts validator or domain parameter errors into an
// errorResponse. ok is false for any other error.
func fieldError(err error) (errorResponse, bool) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return errorResponse{
			Error: fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()),
			Field: fe.Field(),
		}, true
	}
	var perr *domain.ParameterError
	if errors.As(err, &perr) {
		return errorResponse{Error: perr.Error(), Field: perr.Field}, true
	}
	return errorResponse{}, false
}

// zonesQuery reads impact parameters from GET query values.
func zonesQuery(q url.Values) (analyzeRequest, error) {
	var r analyzeRequest
	fields := []struct {
		name     string
		dst      *float64
		required bool
	}{
		{"diameter_m", &r.DiameterMeters, true},
		{"velocity_km_s", &r.VelocityKmPerSec, true},
		{"density", &r.DensityKgPerM3, false},
		{"lat", &r.Latitude, false},
		{"lng", &r.Longitude, false},
	}
	for _, f := range fields {
		raw := q.Get(f.name)
		if raw == "" {
			if f.required {
				return r, &domain.ParameterError{Field: f.name, Reason: "is required"}
			}
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return r, &domain.ParameterError{Field: f.name, Reason: "must be a number"}
		}
		*f.dst = v
	}
	return r, nil
}
