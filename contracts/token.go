package contracts

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// TokenID identifies a collectible inside a collection. Only its display form
// leaves the service; nothing is ever minted or transferred.
type TokenID struct {
	Collection string
	Serial     int64
	Hash       common.Hash
}

// DeriveTokenID hashes the collection name and serial with Keccak-256,
// the same way an ERC-721 contract would derive a deterministic id.
func DeriveTokenID(collection string, serial int64) TokenID {
	serialWord := common.LeftPadBytes(big.NewInt(serial).Bytes(), 32)
	hash := crypto.Keccak256Hash([]byte(strings.TrimSpace(collection)), serialWord)

	return TokenID{
		Collection: collection,
		Serial:     serial,
		Hash:       hash,
	}
}

// Display returns the shortened 0x1234...5678 form.
func (t TokenID) Display() string {
	return ShortHex(t.Hash)
}

// ShortHex keeps the 0x prefix, the first four and the last four hex digits.
func ShortHex(h common.Hash) string {
	full := h.Hex()
	return fmt.Sprintf("%s...%s", full[:6], full[len(full)-4:])
}

// TicketQRPayload builds the check-in payload shown behind the QR toggle.
// It binds the ticket to the session that revealed it.
func TicketQRPayload(ticketID int, sessionID string) string {
	digest := crypto.Keccak256Hash(
		common.LeftPadBytes(big.NewInt(int64(ticketID)).Bytes(), 32),
		[]byte(sessionID),
	)
	return fmt.Sprintf("MUSICPASS:%d:%s", ticketID, digest.Hex()[2:18])
}
