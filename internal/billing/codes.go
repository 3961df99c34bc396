package billing

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NormalizeCode canonicalizes a user-presented activation code: surrounding
// whitespace is trimmed and the code is uppercased, so codes match
// case-insensitively.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// MasterCodes holds the three tier-wide shared-secret activation codes. They
// are deliberately reusable across customers; single-use enforcement applies
// only to minted codes in the activation_codes table.
type MasterCodes struct {
	Starter string
	Pro     string
	Premium string
}

// Match compares a normalized code against the master secrets and returns
// the granted tier. Empty secrets never match.
func (m MasterCodes) Match(code string) (Tier, bool) {
	normalized := NormalizeCode(code)
	if normalized == "" {
		return "", false
	}
	switch normalized {
	case NormalizeCode(m.Starter):
		return TierStarter, true
	case NormalizeCode(m.Pro):
		return TierPro, true
	case NormalizeCode(m.Premium):
		return TierPremium, true
	}
	return "", false
}

// tierCodePrefix maps a tier to the short prefix embedded in minted codes.
func tierCodePrefix(t Tier) string {
	switch t {
	case TierStarter:
		return "STR"
	case TierPro:
		return "PRO"
	case TierPremium:
		return "PRM"
	}
	return "UNK"
}

// MintCode generates a new single-use activation code for the given tier,
// e.g. "JS-PRO-9F3A2C1B". The random segment comes from a UUID so batch
// generation never collides in practice.
func MintCode(t Tier) string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("JS-%s-%s", tierCodePrefix(t), raw[:8])
}

// MintReactivationCode generates a single-use code earmarked for a specific
// user's discounted reactivation, e.g. "JS-REACT-STR-9F3A2C1B".
func MintReactivationCode(t Tier) string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("JS-REACT-%s-%s", tierCodePrefix(t), raw[:8])
}
