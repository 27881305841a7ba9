package types

// ProfileRecord is the exported view of a stored profile
type ProfileRecord struct {
	ID      int      `json:"id" yaml:"id"`
	Name    string   `json:"name" yaml:"name"`
	Age     int      `json:"age" yaml:"age"`
	City    string   `json:"city" yaml:"city"`
	Country string   `json:"country" yaml:"country"`
	Hobbies []string `json:"hobbies" yaml:"hobbies"`
}

// ProfileExport wraps every record together with the format tag of the source data
type ProfileExport struct {
	Format   string          `json:"format" yaml:"format"`
	Count    int             `json:"count" yaml:"count"`
	Profiles []ProfileRecord `json:"profiles" yaml:"profiles"`
}
