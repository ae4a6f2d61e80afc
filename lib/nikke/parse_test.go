package nikke

import (
	"testing"

	"nikkedle-backend/lib/outcome"

	"github.com/stretchr/testify/require"
)

func requireOk[V comparable](t *testing.T, expected V, r outcome.Result[V, string]) {
	t.Helper()
	value, ok := r.Get()
	require.True(t, ok)
	require.Equal(t, expected, value)
}

func requireErrNaming[V any](t *testing.T, raw string, r outcome.Result[V, string]) {
	t.Helper()
	msg, isErr := r.GetErr()
	require.True(t, isErr)
	require.Contains(t, msg, raw)
}

func TestParseRarity(t *testing.T) {
	requireOk(t, RARITY_R, ParseRarity("R"))
	requireOk(t, RARITY_SR, ParseRarity("Sr"))
	requireOk(t, RARITY_SSR, ParseRarity("Ssr"))
	requireErrNaming(t, "Sssr", ParseRarity("Sssr"))
	requireErrNaming(t, "SSR", ParseRarity("SSR"))
}

func TestParseBurst(t *testing.T) {
	requireOk(t, BURST_I, ParseBurst("I"))
	requireOk(t, BURST_II, ParseBurst("II"))
	requireOk(t, BURST_III, ParseBurst("III"))
	requireOk(t, BURST_ALL, ParseBurst("All"))
	requireErrNaming(t, "IV", ParseBurst("IV"))
}

func TestParseCode(t *testing.T) {
	requireOk(t, CODE_FIRE, ParseCode("Perilium (Fire)"))
	requireOk(t, CODE_WATER, ParseCode("Hydro (Water)"))
	requireOk(t, CODE_WIND, ParseCode("Hurricane (Wind)"))
	requireOk(t, CODE_IRON, ParseCode("Demeter (Iron)"))
	requireOk(t, CODE_ELECTRIC, ParseCode("Zeus (Electric)"))

	// no parenthesized element at all
	requireErrNaming(t, "Fire", ParseCode("Fire"))
	// parenthesized but outside the closed set
	requireErrNaming(t, "(Lava)", ParseCode("Magma (Lava)"))
}

func TestParseWeaponType(t *testing.T) {
	requireOk(t, WEAPON_AR, ParseWeaponType("AR"))
	requireOk(t, WEAPON_MG, ParseWeaponType("MG"))
	requireOk(t, WEAPON_RL, ParseWeaponType("RL"))
	requireOk(t, WEAPON_SG, ParseWeaponType("SG"))
	requireOk(t, WEAPON_SMG, ParseWeaponType("SMG"))
	requireOk(t, WEAPON_SR, ParseWeaponType("SR"))
	requireErrNaming(t, "Bazooka", ParseWeaponType("Bazooka"))
}

func TestParsePosition(t *testing.T) {
	requireOk(t, POSITION_ATTACKER, ParsePosition("Attacker"))
	requireOk(t, POSITION_DEFENDER, ParsePosition("Defender"))
	requireOk(t, POSITION_SUPPORTER, ParsePosition("Supporter"))
	requireErrNaming(t, "Healer", ParsePosition("Healer"))
}

func TestParseManufacturer(t *testing.T) {
	requireOk(t, MANUFACTURER_ELYSION, ParseManufacturer("Elysion"))
	requireOk(t, MANUFACTURER_MISSILIS, ParseManufacturer("Missilis"))
	requireOk(t, MANUFACTURER_TETRA, ParseManufacturer("Tetra"))
	requireOk(t, MANUFACTURER_PILGRIM, ParseManufacturer("Pilgrim"))
	requireOk(t, MANUFACTURER_ABNORMAL, ParseManufacturer("Abnormal"))
	requireErrNaming(t, "Umbrella", ParseManufacturer("Umbrella"))
}

func TestEnumStrings(t *testing.T) {
	require.Equal(t, "Ssr", RARITY_SSR.String())
	require.Equal(t, "All", BURST_ALL.String())
	require.Equal(t, "Electric", CODE_ELECTRIC.String())
	require.Equal(t, "SMG", WEAPON_SMG.String())
	require.Equal(t, "Supporter", POSITION_SUPPORTER.String())
	require.Equal(t, "Pilgrim", MANUFACTURER_PILGRIM.String())
}
