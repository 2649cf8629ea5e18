// Package catalog holds the static data model shared by every need-solver
// session: the feature-index table, catalog objects, needs, and questions
// described in spec §3 and ingested through the external interfaces of
// spec §6.
//
// Construction order is fixed: a FeatureTable is built first (resolving
// declared features plus any grouped/derived buckets into a stable index
// space), then a Catalog of Objects against that table (expanding derived
// bucket values per object, per spec §3's "derived ids are resolved at
// catalog-load time"), then the Needs, whose formula strings are compiled
// against the same table via the formula package. Questions merely carry a
// NeedID linkage and pass-through text/metadata — the core never
// interprets question text.
//
// Everything in this package is built once and treated as immutable
// thereafter; see evaluate.Matrix for the one-time compilation step that
// turns a Catalog + []Need into the precomputed satisfaction matrix.
package catalog
