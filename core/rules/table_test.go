package rules

import (
	"testing"

	"foster-budget/core/types"
)

func TestBuiltinValidates(t *testing.T) {
	if err := Builtin().Validate(); err != nil {
		t.Fatalf("builtin table failed validation: %v", err)
	}
}

// TestAgeBandsExhaustive proves every age 0-18 maps to exactly one band
func TestAgeBandsExhaustive(t *testing.T) {
	table := Builtin()

	for age := 0; age <= MaxAge; age++ {
		matches := 0
		for _, band := range table.AgeBands {
			if band.Contains(age) {
				matches++
			}
		}
		if matches != 1 {
			t.Errorf("age %d matches %d bands, want exactly 1", age, matches)
		}
	}
}

func TestAgeBandForBoundaries(t *testing.T) {
	table := Builtin()

	tests := []struct {
		age     int
		wantMin int
		wantMax int
	}{
		{0, 0, 2},
		{2, 0, 2},
		{3, 3, 6},
		{6, 3, 6},
		{7, 7, 12},
		{12, 7, 12},
		{13, 13, 18},
		{18, 13, 18}, // exactly 18 maps to the last band
	}

	for _, tt := range tests {
		band, ok := table.AgeBandFor(tt.age)
		if !ok {
			t.Errorf("age %d: no band found", tt.age)
			continue
		}
		if band.Min != tt.wantMin || band.Max != tt.wantMax {
			t.Errorf("age %d: got band %s, want %d-%d", tt.age, band.Label(), tt.wantMin, tt.wantMax)
		}
	}
}

func TestRegionForState(t *testing.T) {
	table := Builtin()

	tests := []struct {
		state string
		want  types.Region
	}{
		{"SP", types.RegionSudeste},
		{"AM", types.RegionNorte},
		{"BA", types.RegionNordeste},
		{"DF", types.RegionCentroOeste},
		{"RS", types.RegionSul},
		{"XX", types.RegionUnknown},
		{"", types.RegionUnknown},
	}

	for _, tt := range tests {
		if got := table.RegionForState(tt.state); got != tt.want {
			t.Errorf("RegionForState(%q) = %s, want %s", tt.state, got, tt.want)
		}
	}
}

func TestBuiltinCoversAllFederativeUnits(t *testing.T) {
	table := Builtin()
	if len(table.StateRegions) != 27 {
		t.Fatalf("expected 27 federative units, got %d", len(table.StateRegions))
	}
	for state, region := range table.StateRegions {
		if _, ok := table.RegionMultipliers[region]; !ok {
			t.Errorf("state %s maps to region %s with no multiplier", state, region)
		}
	}
}

func TestRegionMultiplierFallback(t *testing.T) {
	table := Builtin()
	got := table.RegionMultiplier(types.RegionUnknown)
	if !got.Equal(table.DefaultRegionMultiplier) {
		t.Errorf("unknown region multiplier = %s, want default %s", got, table.DefaultRegionMultiplier)
	}
}

func TestValidateRejectsBrokenTables(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Table)
	}{
		{
			name: "gapped age bands",
			mutate: func(t *Table) {
				t.AgeBands = []AgeBand{
					{Min: 0, Max: 2, Multiplier: dec("1.30")},
					{Min: 4, Max: 18, Multiplier: dec("1.10")},
				}
			},
		},
		{
			name: "bands not covering 18",
			mutate: func(t *Table) {
				t.AgeBands = []AgeBand{
					{Min: 0, Max: 17, Multiplier: dec("1.10")},
				}
			},
		},
		{
			name: "bands not starting at 0",
			mutate: func(t *Table) {
				t.AgeBands = []AgeBand{
					{Min: 1, Max: 18, Multiplier: dec("1.10")},
				}
			},
		},
		{
			name: "age multiplier below 1.0",
			mutate: func(t *Table) {
				t.AgeBands[0].Multiplier = dec("0.90")
			},
		},
		{
			name: "region multiplier below 1.0",
			mutate: func(t *Table) {
				t.RegionMultipliers[types.RegionSul] = dec("0.80")
			},
		},
		{
			name: "ceiling below minimum wage",
			mutate: func(t *Table) {
				t.MaximumMonthlyBenefit = dec("1000.00")
			},
		},
		{
			name: "special needs fraction above 1",
			mutate: func(t *Table) {
				t.SpecialNeedsMultiplier = dec("1.50")
			},
		},
		{
			name: "state mapped to region without multiplier",
			mutate: func(t *Table) {
				t.StateRegions["SP"] = types.Region("litoral")
			},
		},
		{
			name: "single missing federative unit",
			mutate: func(t *Table) {
				delete(t.StateRegions, "TO")
			},
		},
		{
			name: "most federative units missing",
			mutate: func(t *Table) {
				t.StateRegions = map[string]types.Region{
					"SP": types.RegionSudeste,
					"RJ": types.RegionSudeste,
					"PR": types.RegionSul,
				}
			},
		},
		{
			name: "extraneous state code",
			mutate: func(t *Table) {
				t.StateRegions["ZZ"] = types.RegionSul
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := Builtin()
			tt.mutate(table)
			if err := table.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
