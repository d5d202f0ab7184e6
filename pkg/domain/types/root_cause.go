package types

import "github.com/m-mizutani/goerr/v2"

// RootCauseCategory classifies why a disruption is occurring
type RootCauseCategory string

const (
	RootCauseFactoryStrike      RootCauseCategory = "FACTORY_STRIKE"
	RootCauseTransportDelay     RootCauseCategory = "TRANSPORT_DELAY"
	RootCauseWeather            RootCauseCategory = "WEATHER"
	RootCauseCapacity           RootCauseCategory = "CAPACITY"
	RootCausePortCongestion     RootCauseCategory = "PORT_CONGESTION"
	RootCauseSupplierBankruptcy RootCauseCategory = "SUPPLIER_BANKRUPTCY"
	RootCauseQualityIssue       RootCauseCategory = "QUALITY_ISSUE"
	RootCauseCustomsDelay       RootCauseCategory = "CUSTOMS_DELAY"
	RootCauseOther              RootCauseCategory = "OTHER"
)

var rootCauseLabels = map[RootCauseCategory]string{
	RootCauseFactoryStrike:      "Factory Strike",
	RootCauseTransportDelay:     "Transport Delay",
	RootCauseWeather:            "Weather Event",
	RootCauseCapacity:           "Capacity Constraint",
	RootCausePortCongestion:     "Port Congestion",
	RootCauseSupplierBankruptcy: "Supplier Financial",
	RootCauseQualityIssue:       "Quality Issue",
	RootCauseCustomsDelay:       "Customs Delay",
	RootCauseOther:              "Other",
}

// AllRootCauseCategories returns all valid root cause categories
func AllRootCauseCategories() []RootCauseCategory {
	return []RootCauseCategory{
		RootCauseFactoryStrike,
		RootCauseTransportDelay,
		RootCauseWeather,
		RootCauseCapacity,
		RootCausePortCongestion,
		RootCauseSupplierBankruptcy,
		RootCauseQualityIssue,
		RootCauseCustomsDelay,
		RootCauseOther,
	}
}

// IsValid checks if the category is valid
func (c RootCauseCategory) IsValid() bool {
	_, ok := rootCauseLabels[c]
	return ok
}

// Label returns a human readable label
func (c RootCauseCategory) Label() string {
	if l, ok := rootCauseLabels[c]; ok {
		return l
	}
	return string(c)
}

func (c RootCauseCategory) String() string {
	return string(c)
}

// ParseRootCauseCategory parses a string into a RootCauseCategory
func ParseRootCauseCategory(s string) (RootCauseCategory, error) {
	c := RootCauseCategory(s)
	if !c.IsValid() {
		return "", goerr.New("invalid root cause category", goerr.V("category", s))
	}
	return c, nil
}
