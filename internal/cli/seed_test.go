package cli

import (
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

const sampleSeed = `
[[city]]
name = "Paris"
country = "France"
cost_index = 75
popularity_score = 98

[[city]]
name = "Rome"
country = "Italy"
cost_index = 68
popularity_score = 95

[[activity]]
name = "Louvre"
category = "museum"
avg_cost = 22
duration_hours = 3

[[activity]]
name = "Seine walk"
category = "outdoors"
duration_hours = 2
`

func TestSeedFileDecode(t *testing.T) {
	var seed SeedFile
	if _, err := toml.Decode(sampleSeed, &seed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(seed.Cities) != 2 || len(seed.Activities) != 2 {
		t.Fatalf("got %d cities, %d activities; want 2 and 2", len(seed.Cities), len(seed.Activities))
	}
	if seed.Cities[0].Name != "Paris" || seed.Cities[0].CostIndex != 75 {
		t.Errorf("first city = %+v", seed.Cities[0])
	}
	if seed.Activities[0].AvgCost == nil || *seed.Activities[0].AvgCost != 22 {
		t.Errorf("Louvre avg_cost = %v, want 22", seed.Activities[0].AvgCost)
	}
	if seed.Activities[1].AvgCost != nil {
		t.Errorf("Seine walk avg_cost = %v, want nil (absent key)", seed.Activities[1].AvgCost)
	}
}

func TestValidateSeed(t *testing.T) {
	neg := int64(-5)
	tests := []struct {
		name    string
		seed    SeedFile
		wantErr string
	}{
		{
			"valid",
			SeedFile{
				Cities:     []CitySeed{{Name: "Paris", Country: "France"}},
				Activities: []ActivitySeed{{Name: "Louvre", Category: "museum"}},
			},
			"",
		},
		{
			"city missing country",
			SeedFile{Cities: []CitySeed{{Name: "Paris"}}},
			"name and country",
		},
		{
			"activity missing category",
			SeedFile{Activities: []ActivitySeed{{Name: "Louvre"}}},
			"name and category",
		},
		{
			"negative avg_cost",
			SeedFile{Activities: []ActivitySeed{{Name: "Louvre", Category: "museum", AvgCost: &neg}}},
			"must not be negative",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSeed(&tt.seed)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}
