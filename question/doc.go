// Package question implements the adaptive question selector (spec §4.6,
// component F): given the current user-need vector and the set of needs
// already covered, it ranks candidate needs by the expected split they
// would induce on the ranking if answered, and picks the greatest.
//
// Candidates are the caller's responsibility to narrow: a need qualifies
// only if it has a generated question, is not already answered, and is not
// marked independent. This package only computes and orders split scores;
// it never looks at question text or asks anything.
package question
