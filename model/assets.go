package model

import "strings"

// Asset is a typed currency code, always held in canonical uppercase form.
// Yobit names currencies with plain lowercase codes and has no alias table, so
// conversion is a case mapping in both directions.
type Asset string

// AssetFromNative converts an exchange-native currency code to an Asset
func AssetFromNative(s string) Asset {
	return Asset(strings.ToUpper(s))
}

// Native converts an Asset to the exchange-native lowercase code
func (a Asset) Native() string {
	return strings.ToLower(string(a))
}

// String is the stringer function
func (a Asset) String() string {
	return string(a)
}

// Currency is per-currency metadata as reported by an exchange
type Currency struct {
	Code     Asset
	FullName string
}
