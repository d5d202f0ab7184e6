package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/controltower/pkg/domain/model"
	"github.com/secmon-lab/controltower/pkg/domain/types"
)

// SeedFile is the TOML layout of a seed data file. Dates are either
// YYYY-MM-DD or relative to the load day: "today", "today+3", "today-1".
type SeedFile struct {
	Suppliers []SeedSupplier `toml:"supplier"`
	Plants    []SeedPlant    `toml:"plant"`
	Risks     []SeedRisk     `toml:"risk"`
}

type SeedSupplier struct {
	ID       string `toml:"id"`
	Name     string `toml:"name"`
	Location string `toml:"location"`
}

type SeedPlant struct {
	ID     string `toml:"id"`
	Name   string `toml:"name"`
	Region string `toml:"region"`
}

type SeedRisk struct {
	ID                 string  `toml:"id"`
	ComponentID        string  `toml:"component_id"`
	ComponentName      string  `toml:"component_name"`
	SupplierID         string  `toml:"supplier_id"`
	PlantID            string  `toml:"plant_id"`
	DaysOfSupply       float64 `toml:"days_of_supply"`
	DemandPerDay       int64   `toml:"demand_per_day"`
	CurrentStock       int64   `toml:"current_stock"`
	DisruptionStart    string  `toml:"disruption_start"`
	DisruptionEnd      string  `toml:"disruption_end"`
	Severity           string  `toml:"severity"`
	RootCauseCategory  string  `toml:"root_cause_category"`
	RootCauseSummary   string  `toml:"root_cause_summary"`
	MitigationStatus   string  `toml:"mitigation_status"`
	ActiveMitigationID string  `toml:"active_mitigation_id"`
	RiskScore          int     `toml:"risk_score"`
	Trend              string  `toml:"trend"`
	LastUpdated        string  `toml:"last_updated"`
}

// LoadSeedFile reads and resolves a TOML seed file
func LoadSeedFile(path string, today types.Date) (*model.Seed, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(ErrSeedNotFound, err.Error(), goerr.V(SeedPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read seed file", goerr.V(SeedPathKey, path))
	}

	seed, err := ParseSeed(data, today)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load seed file", goerr.V(SeedPathKey, path))
	}
	return seed, nil
}

// ParseSeed decodes TOML seed data and resolves it against today
func ParseSeed(data []byte, today types.Date) (*model.Seed, error) {
	var file SeedFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(ErrInvalidSeed, err.Error())
	}
	return file.Resolve(today)
}

// Resolve converts the file into domain data. Supplier and plant names of
// risks come from the reference tables.
func (f *SeedFile) Resolve(today types.Date) (*model.Seed, error) {
	seed := &model.Seed{
		Suppliers: make([]*model.Supplier, 0, len(f.Suppliers)),
		Plants:    make([]*model.Plant, 0, len(f.Plants)),
		Risks:     make([]*model.ComponentRisk, 0, len(f.Risks)),
	}

	suppliers := make(map[string]string, len(f.Suppliers))
	for _, s := range f.Suppliers {
		if s.ID == "" || s.Name == "" {
			return nil, goerr.Wrap(ErrInvalidSeed, "supplier requires id and name", goerr.V(SupplierIDKey, s.ID))
		}
		if _, dup := suppliers[s.ID]; dup {
			return nil, goerr.Wrap(ErrInvalidSeed, "duplicate supplier ID", goerr.V(SupplierIDKey, s.ID))
		}
		suppliers[s.ID] = s.Name
		seed.Suppliers = append(seed.Suppliers, &model.Supplier{ID: s.ID, Name: s.Name, Location: s.Location})
	}

	plants := make(map[string]string, len(f.Plants))
	for _, p := range f.Plants {
		if p.ID == "" || p.Name == "" {
			return nil, goerr.Wrap(ErrInvalidSeed, "plant requires id and name", goerr.V(PlantIDKey, p.ID))
		}
		if _, dup := plants[p.ID]; dup {
			return nil, goerr.Wrap(ErrInvalidSeed, "duplicate plant ID", goerr.V(PlantIDKey, p.ID))
		}
		plants[p.ID] = p.Name
		seed.Plants = append(seed.Plants, &model.Plant{ID: p.ID, Name: p.Name, Region: p.Region})
	}

	ids := make(map[string]struct{}, len(f.Risks))
	for i, r := range f.Risks {
		risk, err := r.resolve(today, suppliers, plants)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid risk", goerr.V(RiskIndexKey, i), goerr.V(model.RiskIDKey, r.ID))
		}
		if _, dup := ids[risk.ID]; dup {
			return nil, goerr.Wrap(ErrInvalidSeed, "duplicate risk ID", goerr.V(RiskIndexKey, i), goerr.V(model.RiskIDKey, r.ID))
		}
		ids[risk.ID] = struct{}{}
		seed.Risks = append(seed.Risks, risk)
	}

	return seed, nil
}

func (r SeedRisk) resolve(today types.Date, suppliers, plants map[string]string) (*model.ComponentRisk, error) {
	supplierName, ok := suppliers[r.SupplierID]
	if !ok {
		return nil, goerr.Wrap(ErrInvalidSeed, "unknown supplier", goerr.V(SupplierIDKey, r.SupplierID))
	}
	plantName, ok := plants[r.PlantID]
	if !ok {
		return nil, goerr.Wrap(ErrInvalidSeed, "unknown plant", goerr.V(PlantIDKey, r.PlantID))
	}

	start, err := ResolveDate(r.DisruptionStart, today)
	if err != nil {
		return nil, err
	}
	end, err := ResolveDate(r.DisruptionEnd, today)
	if err != nil {
		return nil, err
	}
	lastUpdated := today
	if r.LastUpdated != "" {
		if lastUpdated, err = ResolveDate(r.LastUpdated, today); err != nil {
			return nil, err
		}
	}

	daysOfSupply := r.DaysOfSupply
	if daysOfSupply == 0 && r.DemandPerDay > 0 {
		daysOfSupply = float64(r.CurrentStock) / float64(r.DemandPerDay)
	}

	status := types.MitigationStatusNone
	if r.MitigationStatus != "" {
		status = types.MitigationStatus(r.MitigationStatus)
	}
	trend := types.TrendStable
	if r.Trend != "" {
		trend = types.Trend(r.Trend)
	}

	risk := &model.ComponentRisk{
		ID:                  r.ID,
		ComponentID:         r.ComponentID,
		ComponentName:       r.ComponentName,
		SupplierID:          r.SupplierID,
		SupplierName:        supplierName,
		PlantID:             r.PlantID,
		PlantName:           plantName,
		DaysOfSupply:        daysOfSupply,
		DemandPerDay:        r.DemandPerDay,
		CurrentStock:        r.CurrentStock,
		DisruptionStartDate: start,
		DisruptionEndDate:   end,
		Severity:            types.Severity(r.Severity),
		RootCauseCategory:   types.RootCauseCategory(r.RootCauseCategory),
		RootCauseSummary:    r.RootCauseSummary,
		MitigationStatus:    status,
		ActiveMitigationID:  r.ActiveMitigationID,
		RiskScore:           r.RiskScore,
		Trend:               trend,
		LastUpdated:         lastUpdated,
	}
	if err := risk.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidSeed, err.Error())
	}
	return risk, nil
}

// ResolveDate parses an absolute YYYY-MM-DD date or an offset from today
// written as "today", "today+N" or "today-N".
func ResolveDate(expr string, today types.Date) (types.Date, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return types.Date{}, goerr.Wrap(ErrInvalidDate, "date is required")
	}

	rest, relative := strings.CutPrefix(expr, "today")
	if !relative {
		d, err := types.ParseDate(expr)
		if err != nil {
			return types.Date{}, goerr.Wrap(ErrInvalidDate, err.Error(), goerr.V(DateKey, expr))
		}
		return d, nil
	}

	if rest == "" {
		return today, nil
	}
	if rest[0] != '+' && rest[0] != '-' {
		return types.Date{}, goerr.Wrap(ErrInvalidDate, "offset must start with + or -", goerr.V(DateKey, expr))
	}
	days, err := strconv.Atoi(rest)
	if err != nil {
		return types.Date{}, goerr.Wrap(ErrInvalidDate, err.Error(), goerr.V(DateKey, expr))
	}
	return today.AddDays(days), nil
}

// SeedIssue is a consistency problem of otherwise valid seed data
type SeedIssue struct {
	RiskID  string
	Message string
}

// Inspect reports risks whose mitigation fields disagree or whose disruption
// window has already ended
func Inspect(seed *model.Seed, today types.Date) []SeedIssue {
	var issues []SeedIssue
	for _, r := range seed.Risks {
		switch {
		case r.MitigationStatus.IsActive() && r.ActiveMitigationID == "":
			issues = append(issues, SeedIssue{RiskID: r.ID, Message: "mitigation is " + string(r.MitigationStatus) + " but no active mitigation ID is set"})
		case r.MitigationStatus == types.MitigationStatusNone && r.ActiveMitigationID != "":
			issues = append(issues, SeedIssue{RiskID: r.ID, Message: "active mitigation ID is set without a mitigation status"})
		}
		if r.DisruptionEndDate.Before(today) {
			issues = append(issues, SeedIssue{RiskID: r.ID, Message: "disruption window ended on " + r.DisruptionEndDate.String()})
		}
	}
	return issues
}
