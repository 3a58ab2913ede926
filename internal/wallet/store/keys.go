package store

import "strings"

// normalizeAddressKey canonicalizes an address for use as a row key. EVM
// hex addresses are case-insensitive and stored lowercased; Base58 Tron
// addresses are case-sensitive and kept as-is.
func normalizeAddressKey(addr string) string {
	if strings.HasPrefix(addr, "0x") || strings.HasPrefix(addr, "0X") {
		return strings.ToLower(addr)
	}
	return addr
}
