// Package script classifies transparent output locking scripts and renders
// their Base58Check addresses.
//
// Only the script forms that have an address are recognized:
//   - Pay-to-pubkey-hash: OP_DUP OP_HASH160 <20 bytes> OP_EQUALVERIFY OP_CHECKSIG
//   - Pay-to-script-hash: OP_HASH160 <20 bytes> OP_EQUAL
//   - Pay-to-pubkey: <33 or 65 byte pubkey> OP_CHECKSIG
//
// Everything else is NonStandard. Classification is a wire-format check,
// not script interpretation.
package script

// Params holds the network-specific address version prefixes.
//
// Address versions are two bytes, which is what makes every mainnet
// pay-to-pubkey-hash address start with "t1" and pay-to-script-hash
// with "t3".
type Params struct {
	Name             string
	PubKeyHashPrefix [2]byte
	ScriptHashPrefix [2]byte
}

// MainNetParams defines the production network address prefixes.
var MainNetParams = &Params{
	Name:             "mainnet",
	PubKeyHashPrefix: [2]byte{0x1C, 0xB8}, // t1
	ScriptHashPrefix: [2]byte{0x1C, 0xBD}, // t3
}

// TestNet3Params defines the test network address prefixes.
var TestNet3Params = &Params{
	Name:             "testnet",
	PubKeyHashPrefix: [2]byte{0x1D, 0x25}, // tm
	ScriptHashPrefix: [2]byte{0x1C, 0xBA}, // t2
}
