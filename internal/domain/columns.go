package domain

// Column names read from the dataset.
const (
	ColLocation      = "LOCATION"
	ColState         = "StateName"
	ColLatitude      = "Latitude_zillow"
	ColLongitude     = "Longitude_zillow"
	ColDensityDOM    = "DENSITY_DOM"
	ColDensityGroupQ = "DENSITY_GROUPQ"
	ColDOM           = "DOM"

	// ColCombinedScore is derived by Score and never read from the source.
	ColCombinedScore = "combined_score"
)

// AllStates is the selection that disables the state filter.
const AllStates = "All States"

// DemographicFields are the SVI estimate columns shown in marker tooltips,
// in display order.
var DemographicFields = []string{
	"E_POV150", "E_UNEMP", "E_NOHSDP", "E_UNINSUR", "E_AGE65",
	"E_AGE17", "E_DISABL", "E_SNGPNT", "E_LIMENG", "E_MINRTY",
	"E_MUNIT", "E_MOBILE", "E_CROWD", "E_NOVEH", "E_GROUPQ",
}

// RequiredColumns lists every column some stage reads from the source.
func RequiredColumns() []string {
	cols := []string{
		ColState, ColLatitude, ColLongitude,
		ColDensityDOM, ColDensityGroupQ, ColLocation, ColDOM,
	}
	return append(cols, DemographicFields...)
}

// MissingColumns returns the required columns absent from t, in
// RequiredColumns order. Stages do not call it; they fail on first access.
func MissingColumns(t *Table) []string {
	var missing []string
	for _, c := range RequiredColumns() {
		if !t.HasColumn(c) {
			missing = append(missing, c)
		}
	}
	return missing
}
