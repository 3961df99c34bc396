package billing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "JS-STR-LAUNCH24", NormalizeCode("  js-str-launch24 "))
	assert.Equal(t, "", NormalizeCode("   "))
}

func TestMasterCodes_MatchIsCaseInsensitive(t *testing.T) {
	codes := MasterCodes{
		Starter: "JS-STR-LAUNCH24",
		Pro:     "JS-PRO-LAUNCH24",
		Premium: "JS-PRM-LAUNCH24",
	}

	tier, ok := codes.Match(" js-pro-launch24 ")
	assert.True(t, ok)
	assert.Equal(t, TierPro, tier)

	tier, ok = codes.Match("JS-STR-LAUNCH24")
	assert.True(t, ok)
	assert.Equal(t, TierStarter, tier)

	tier, ok = codes.Match("js-prm-launch24")
	assert.True(t, ok)
	assert.Equal(t, TierPremium, tier)
}

func TestMasterCodes_NoMatch(t *testing.T) {
	codes := MasterCodes{Starter: "JS-STR-LAUNCH24"}

	_, ok := codes.Match("JS-STR-WRONG")
	assert.False(t, ok)
}

func TestMasterCodes_EmptySecretsNeverMatch(t *testing.T) {
	var codes MasterCodes

	_, ok := codes.Match("")
	assert.False(t, ok)

	_, ok = codes.Match("   ")
	assert.False(t, ok)
}

func TestMintCode_Format(t *testing.T) {
	code := MintCode(TierPro)

	assert.True(t, strings.HasPrefix(code, "JS-PRO-"))
	assert.Len(t, code, len("JS-PRO-")+8)
	assert.Equal(t, code, NormalizeCode(code))
}

func TestMintReactivationCode_Format(t *testing.T) {
	code := MintReactivationCode(TierStarter)

	assert.True(t, strings.HasPrefix(code, "JS-REACT-STR-"))
	assert.Equal(t, code, NormalizeCode(code))
}

func TestMintCode_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := MintCode(TierStarter)
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}
