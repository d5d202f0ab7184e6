package http

import (
	"net/url"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controltower/pkg/domain/model"
)

var filterParams = []string{
	"search", "severity", "rootCause", "supplierId", "plantId",
	"onlyCritical", "onlyNextTwoWeeks", "timeHorizon",
}

// parseFilters builds risk filters from the query string. It returns nil when
// no filter parameter is present. Empty values leave a dimension disabled.
func parseFilters(q url.Values) (*model.RiskFilters, error) {
	present := false
	for _, p := range filterParams {
		if q.Has(p) {
			present = true
			break
		}
	}
	if !present {
		return nil, nil
	}

	f := &model.RiskFilters{
		SearchQuery:       q.Get("search"),
		Severity:          q.Get("severity"),
		RootCauseCategory: q.Get("rootCause"),
		SupplierID:        q.Get("supplierId"),
		PlantID:           q.Get("plantId"),
	}

	var err error
	if f.OnlyCritical, err = parseBool(q, "onlyCritical"); err != nil {
		return nil, err
	}
	if f.OnlyNextTwoWeeks, err = parseBool(q, "onlyNextTwoWeeks"); err != nil {
		return nil, err
	}

	if v := q.Get("timeHorizon"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, goerr.Wrap(err, "timeHorizon must be a number of weeks", goerr.V("timeHorizon", v))
		}
		f.TimeHorizon = n
	}

	return f, nil
}

func parseBool(q url.Values, key string) (bool, error) {
	v := q.Get(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, goerr.Wrap(err, key+" must be true or false", goerr.V(key, v))
	}
	return b, nil
}
