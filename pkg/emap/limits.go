package emap

// MaxCapacity is the largest capacity accepted by [New].
//
// A Map allocates all of its slots up front, so this bounds the single
// allocation made by New rather than any growth.
const MaxCapacity = 100_000_000
