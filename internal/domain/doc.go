// Package domain models the listing/vulnerability dataset behind the heatmap
// dashboard and the pure transforms applied to it.
//
// # Data Source
//
// The dataset is a single CSV file (training_ready_data.csv by default) that
// joins Zillow listing aggregates with CDC/ATSDR Social Vulnerability Index
// (SVI) estimates. One row describes one location.
//
// # Columns
//
// Identity and placement:
//
//	LOCATION          free-text place name
//	StateName         state name, the categorical filter key
//	Latitude_zillow   WGS-84 latitude, may be null
//	Longitude_zillow  WGS-84 longitude, may be null
//
// Density measures:
//
//	DENSITY_DOM       density of days-on-market observations
//	DENSITY_GROUPQ    density of group-quarters population
//
// Display-only fields:
//
//	DOM               days on market
//	E_POV150 ... E_GROUPQ  SVI estimate counts, see [DemographicFields]
//
// # Null Values
//
// Cells that are empty or hold one of the usual null tokens (NA, N/A, NaN,
// null, None, <NA>) are null. Nulls propagate through arithmetic; they are
// never read as zero.
//
// # Combined Score
//
// The combined score is a normalized difference index of the two densities:
//
//	(DENSITY_DOM - DENSITY_GROUPQ) / (DENSITY_DOM + DENSITY_GROUPQ)
//
// A zero denominator is replaced by 1, so two zero densities score 0. For
// non-negative inputs the score lies in [-1, 1]; negative inputs are not
// clamped. See [CombinedScore].
//
// # Map Layers
//
// Rows with both coordinates become markers. Rows that additionally have a
// score become weighted heat points. Rows without coordinates stay in the
// table and the export but never reach the map.
package domain
