// Package xunit implements the XUnit/YPath dimensional-tagging model.
//
// A YPath is one hierarchical dimension tag, encoded as
//
//	/dim/name1=value1/name2=value2
//
// and an XUnit is the set of YPaths describing one fact, encoded as the YPath
// strings joined by ','. The global XUnit holds no YPaths and is encoded as /G.
//
// Both types are immutable values and safe to share between goroutines.
package xunit
