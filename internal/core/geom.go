// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

// Mod returns a modulo limit, with the result always in [0, limit).
// Unlike the % operator it never returns a negative value.
func Mod(a, limit int) int {
	m := a % limit
	if m < 0 {
		m += limit
	}
	return m
}

// WrapInc returns value+1 wrapped into [0, limit).
func WrapInc(value, limit int) int {
	return Mod(value+1, limit)
}

// WrapDec returns value-1 wrapped into [0, limit).
// Stepping below zero wraps to limit-1.
func WrapDec(value, limit int) int {
	return Mod(value-1, limit)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
