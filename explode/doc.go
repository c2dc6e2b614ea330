// Package explode generates the XUnits of an input row.
//
// A row is a list of DimGroups. YPaths expands one group into its YPaths;
// Untagged and Tagged combine the groups of a row into XUnit strings.
// Both return the complete output of a row or an error, never a partial row.
package explode
