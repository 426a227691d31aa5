// Package textutil provides the string helpers used around form handling:
// display formatting of a single value, a syntactic email check and short
// random identifiers. Every call emits debug trace lines through the injected
// zerolog.Logger; the package-level functions use a silent logger.
package textutil
