package model

// State is the persisted blob: exactly these top-level fields.
type State struct {
	SeedName      string         `json:"seedName"`
	GrowthScore   int            `json:"growthScore"`
	Records       []Record       `json:"records"`
	Blooms        []Bloom        `json:"blooms"`
	Settings      AppSettings    `json:"settings"`
	Notifications []Notification `json:"notifications"`
}

const DefaultSeedName = "봄비"

// InitialState is the empty, non-demo state used after a reset or a failed read.
func InitialState() State {
	return State{
		SeedName:      DefaultSeedName,
		Records:       []Record{},
		Blooms:        []Bloom{},
		Settings:      DefaultSettings(),
		Notifications: []Notification{},
	}
}

// Stats summarises the journal for the profile screen.
type Stats struct {
	TotalRecords int `json:"totalRecords"`
	TotalLikes   int `json:"totalLikes"`
	TotalBlooms  int `json:"totalBlooms"`
}
