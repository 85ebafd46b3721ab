// Package utils provides common string helpers shared by the steam-checker
// packages, such as digit detection for account identifiers and case folding
// for game name comparison.
package utils
