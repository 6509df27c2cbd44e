// zcash-sprout CLI - Sprout transaction decoder
//
// This CLI demonstrates the zcash-sprout library's capabilities for
// decoding Zcash transactions carrying Sprout JoinSplit descriptors.
//
// Example usage:
//   # Decode a raw transaction
//   zcash-sprout decode 0100000001...
//
//   # Decode against testnet address parameters
//   zcash-sprout decode 0200000001... --testnet
package main

import (
	"fmt"
	"os"

	"github.com/suffix-labs/zcash-sprout/pkg/script"
	"github.com/suffix-labs/zcash-sprout/pkg/sprout"
)

// Zatoshis per ZEC
const zatoshisPerZEC = 100_000_000

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "decode":
		cmdDecode()
	case "version":
		cmdVersion()
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`zcash-sprout - Sprout transaction decoder

Usage:
  zcash-sprout <command> [options]

Commands:
  decode <hex> [--testnet]     Decode a hex-encoded transaction
  version                      Show version information
  help                         Show this help message

Examples:
  # Decode a version 1 transparent transaction
  zcash-sprout decode 0100000001ab...

  # Decode a version 2 transaction with JoinSplits, testnet addresses
  zcash-sprout decode 0200000001ab... --testnet

For more information, see: https://github.com/suffix-labs/zcash-sprout`)
}

func cmdVersion() {
	fmt.Println("zcash-sprout v0.1.0")
	fmt.Println("Codec library for Zcash Sprout-era transactions")
	fmt.Println("Based on the Zcash protocol specification and BCTV14")
}

func cmdDecode() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "Error: hex argument required")
		fmt.Fprintln(os.Stderr, "Usage: zcash-sprout decode <hex> [--testnet]")
		os.Exit(1)
	}

	params := script.MainNetParams
	for _, arg := range os.Args[3:] {
		switch arg {
		case "--testnet":
			params = script.TestNet3Params
		default:
			fmt.Fprintf(os.Stderr, "Unknown option: %s\n", arg)
			os.Exit(1)
		}
	}

	transaction, err := sprout.NewTransactionFromHex(os.Args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read transaction: %v\n", err)
		os.Exit(1)
	}
	transaction.WithParams(params)

	if err := transaction.Deserialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to decode transaction: %v\n", err)
		os.Exit(1)
	}

	version, _ := transaction.Version()
	lockTime, _ := transaction.LockTime()
	inputs, _ := transaction.Inputs()
	outputs, _ := transaction.Outputs()
	joinSplits, _ := transaction.JoinSplits()

	fmt.Println("Transaction:")
	fmt.Printf("  Version:    %d\n", version)
	fmt.Printf("  LockTime:   %d\n", lockTime)
	fmt.Printf("  Inputs:     %d\n", len(inputs))
	fmt.Printf("  Outputs:    %d\n", len(outputs))
	if joinSplits != nil {
		fmt.Printf("  JoinSplits: %d\n", len(joinSplits))
	}
	fmt.Println()

	for i, in := range inputs {
		fmt.Printf("Input %d:\n", i)
		fmt.Printf("  Prevout:  %s:%d\n", in.PrevoutTxID(), in.PrevoutIndex)
		fmt.Printf("  Script:   %d bytes\n", len(in.ScriptSig))
		fmt.Printf("  Sequence: 0x%08x\n", in.Sequence)
		fmt.Println()
	}

	for _, out := range outputs {
		fmt.Printf("Output %d:\n", out.Index)
		fmt.Printf("  Value:   %.8f ZEC (%d zatoshis)\n", float64(out.Value)/zatoshisPerZEC, out.Value)
		fmt.Printf("  Type:    %s\n", out.Class)
		if out.Address != "" {
			fmt.Printf("  Address: %s\n", out.Address)
		}
		fmt.Println()
	}

	if len(joinSplits) == 0 {
		return
	}

	pubKey, _ := transaction.JoinSplitPubKey()
	sig, _ := transaction.JoinSplitSig()

	for i := range joinSplits {
		js := &joinSplits[i]
		fmt.Printf("JoinSplit %d:\n", i)
		fmt.Printf("  VPubOld:      %d zatoshis\n", js.VPubOld)
		fmt.Printf("  VPubNew:      %d zatoshis\n", js.VPubNew)
		fmt.Printf("  Anchor:       %x\n", js.Anchor)
		fmt.Printf("  Nullifier 0:  %x\n", js.Nullifiers[0])
		fmt.Printf("  Nullifier 1:  %x\n", js.Nullifiers[1])
		fmt.Printf("  Commitment 0: %x\n", js.Commitments[0])
		fmt.Printf("  Commitment 1: %x\n", js.Commitments[1])

		hSig, err := js.HSig(*pubKey)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to compute hSig: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("  hSig:         %x\n", hSig)
		fmt.Println()
	}

	fmt.Printf("JoinSplit public key: %x\n", *pubKey)
	fmt.Printf("JoinSplit signature:  %x\n", *sig)
}
