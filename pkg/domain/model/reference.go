package model

// Supplier is a source of components
type Supplier struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Plant is a production site consuming components
type Plant struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region"`
}

// Seed is an initial or refreshed data set for the repository
type Seed struct {
	Suppliers []*Supplier
	Plants    []*Plant
	Risks     []*ComponentRisk
}
