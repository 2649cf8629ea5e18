// Package loader parses the YAML documents described in spec §6 (feature
// table, catalog, needs, questions) into the catalog package's *Input
// structs. Apart from profile's Save/Load, which read and write the YAML
// profile document, it is the one place in this module that touches a file
// format; the core packages never import it.
package loader
