package schema

import (
	"github.com/carebook/carebook/pkg/sanitizer"
	"github.com/carebook/carebook/pkg/validator"
)

// knownSpecialties is the fixed set of searchable medical specialties.
var knownSpecialties = []string{
	"cardiology", "dentistry", "dermatology", "endocrinology",
	"gastroenterology", "general medicine", "gynecology", "neurology",
	"oncology", "ophthalmology", "orthopedics", "pediatrics",
	"psychiatry", "pulmonology", "urology",
}

// SearchFiltersInput carries raw doctor-search filters. All fields are
// optional; an empty input lists everything.
type SearchFiltersInput struct {
	Query     string `json:"query"`
	Specialty string `json:"specialty"`
	City      string `json:"city"`
}

// SearchFilters is the accepted search payload. Query is sanitized and
// bounded before it reaches the search backend.
type SearchFilters struct {
	Query     string
	Specialty string
	City      string
}

func (f SearchFilters) IsEmpty() bool {
	return f.Query == "" && f.Specialty == "" && f.City == ""
}

// ParseSearchFilters validates and sanitizes doctor-search filters.
func ParseSearchFilters(in SearchFiltersInput) (SearchFilters, error) {
	var rules []validator.Rule

	specialty := sanitizer.TrimToLower(in.Specialty)
	if specialty != "" {
		rules = append(rules, validator.OneOf("specialty", specialty, knownSpecialties...))
	}

	city := sanitizer.Trim(in.City)
	if city != "" {
		rules = append(rules, validator.ValidNamePart("city", city, 2))
	}

	if err := validator.Apply(rules...); err != nil {
		return SearchFilters{}, err
	}

	return SearchFilters{
		Query:     sanitizer.SanitizeSearchQuery(in.Query),
		Specialty: specialty,
		City:      sanitizer.NormalizeWhitespace(city),
	}, nil
}
