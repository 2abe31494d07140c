// Package buffer implements the line-oriented document model for fred.
//
// Coordinates are 0-based (Row, Col) in runes. A Buffer is an ordered
// sequence of Lines; Lines are appended only while loading and are never
// reordered or split afterwards.
package buffer
