// Package validate holds the input checks shared by the broadcast operations.
package validate

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// MinyanTypes are the accepted prayer service names, matched case-sensitively.
var MinyanTypes = []string{"shacharit", "mincha", "maariv"}

// Coordinates checks that a latitude/longitude pair is within range.
func Coordinates(latitude, longitude float64) error {
	if math.IsNaN(latitude) || math.IsNaN(longitude) {
		return errors.New("Latitude and longitude must be numbers")
	}
	if latitude < -90 || latitude > 90 {
		return errors.New("Latitude must be between -90 and 90")
	}
	if longitude < -180 || longitude > 180 {
		return errors.New("Longitude must be between -180 and 180")
	}
	return nil
}

// MinyanType checks that a prayer service name is one of the accepted values.
func MinyanType(minyanType string) error {
	for _, t := range MinyanTypes {
		if minyanType == t {
			return nil
		}
	}
	return fmt.Errorf("Minyan type must be one of: %s", strings.Join(MinyanTypes, ", "))
}
