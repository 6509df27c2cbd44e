package sprout

// Protocol constants for the shielded transfer format.
//
// The note and ciphertext sizes are fixed by the protocol, not configurable:
// a note plaintext is a leading tag byte, an 8-byte value, the 32-byte rho
// and r commitment trapdoors, and a 512-byte memo; the transmitted
// ciphertext adds a 16-byte authentication tag.
const (
	// NumJoinSplitInputs is the number of notes spent by one descriptor.
	NumJoinSplitInputs = 2
	// NumJoinSplitOutputs is the number of notes created by one descriptor.
	NumJoinSplitOutputs = 2

	noteLeadingSize = 1
	noteValueSize   = 8
	noteRhoSize     = 32
	noteRSize       = 32

	// NoteMemoSize is the fixed memo length inside a note plaintext.
	NoteMemoSize = 512

	// NotePlaintextSize is the decrypted note size.
	NotePlaintextSize = noteLeadingSize + noteValueSize + noteRhoSize + noteRSize + NoteMemoSize

	// NoteAuthBytes is the authentication tag appended by note encryption.
	NoteAuthBytes = 16

	// NoteCiphertextSize is the transmitted size of one encrypted note.
	NoteCiphertextSize = NotePlaintextSize + NoteAuthBytes

	// ProofSize is the encoded proof length: seven compressed G1 elements
	// (33 bytes each) and one compressed G2 element (65 bytes).
	ProofSize = 7*33 + 65

	// JoinSplitSize is the encoded length of one full descriptor.
	JoinSplitSize = 8 + 8 + 32 +
		NumJoinSplitInputs*32 + NumJoinSplitOutputs*32 +
		32 + 32 + NumJoinSplitInputs*32 +
		ProofSize + NumJoinSplitOutputs*NoteCiphertextSize

	// MinShieldedVersion is the first transaction version that carries a
	// shielded section.
	MinShieldedVersion = 2

	// MaxMoney is the monetary supply cap in zatoshis. Values above it
	// cannot appear in a valid transaction.
	MaxMoney = 21_000_000 * 100_000_000

	// IncrementalMerkleTreeDepth is the depth of the note commitment tree
	// anchors refer to (4 under test parameters).
	IncrementalMerkleTreeDepth        = 29
	IncrementalMerkleTreeDepthTesting = 4
)
