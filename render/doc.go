// Package render prints cost matrices and solver results to a terminal.
//
// Cities are named like spreadsheet columns (A…Z, AA, AB, …). Colors come
// from github.com/fatih/color and are dropped automatically when the output
// is not a terminal (or when color.NoColor is set).
package render
