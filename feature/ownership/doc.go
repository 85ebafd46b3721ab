// Package ownership compares a list of wanted games with a Steam library.
//
// The flow is strictly sequential:
//
//  1. ResolveAccount turns the account argument into a SteamID64. Digits are
//     used as is; anything else goes through ResolveVanityURL.
//  2. Check loads the games list (local file or s3://bucket/key), fetches the
//     owned games and partitions the list with Compare.
//  3. Report.Print writes the sorted owned/not owned sections and a summary.
//
// Comparison is case-insensitive (Unicode case folding) while the report keeps
// the titles exactly as they were written in the games list.
//
// # Errors
//
//   - ErrUnresolvable: the custom URL is unknown to Steam.
//   - ErrGamesFileNotFound: the games list does not exist. Callers report it
//     and finish normally.
//
// A library without a games list (private profile) is not an error; every
// requested title then lands in the not owned section.
package ownership
