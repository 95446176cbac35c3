package kaiascan

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

// Address is an account or contract address. The client does not validate
// addresses; it puts them into URLs as given.
type Address string

// IsValidAddress reports whether addr carries the "0x" prefix. It is an
// advisory check only.
func IsValidAddress(addr string) bool {
	return strings.HasPrefix(addr, "0x")
}

// IsHexAddress is the strict form: 0x followed by exactly 40 hex digits.
func IsHexAddress(addr string) bool {
	return IsValidAddress(addr) && common.IsHexAddress(addr)
}

// Checksum returns the EIP-55 mixed-case form of a strict hex address.
func Checksum(addr string) (string, bool) {
	if !IsHexAddress(addr) {
		return "", false
	}
	return common.HexToAddress(addr).Hex(), true
}

// EventTopic returns the keccak-256 topic for an event signature such as
// "Transfer(address,address,uint256)". Input already in 0x form is returned
// unchanged.
func EventTopic(signature string) string {
	if strings.HasPrefix(signature, "0x") || strings.HasPrefix(signature, "0X") {
		return signature
	}
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(strings.ReplaceAll(signature, " ", "")))
	return "0x" + hex.EncodeToString(h.Sum(nil))
}
