package nikke

import (
	"fmt"
	"regexp"

	"nikkedle-backend/lib/outcome"
)

// The parsers below are total over strings: every input not in the
// defined set yields an error naming the offending raw value. Silently
// defaulting would corrupt the exact categorical comparisons the game
// runs against stored records.

func ParseRarity(raw string) outcome.Result[Rarity, string] {
	switch raw {
	case "R":
		return outcome.Ok[Rarity, string](RARITY_R)
	case "Sr":
		return outcome.Ok[Rarity, string](RARITY_SR)
	case "Ssr":
		return outcome.Ok[Rarity, string](RARITY_SSR)
	}
	return outcome.Err[Rarity, string](fmt.Sprintf("unknown rarity %q", raw))
}

func ParseBurst(raw string) outcome.Result[Burst, string] {
	switch raw {
	case "I":
		return outcome.Ok[Burst, string](BURST_I)
	case "II":
		return outcome.Ok[Burst, string](BURST_II)
	case "III":
		return outcome.Ok[Burst, string](BURST_III)
	case "All":
		return outcome.Ok[Burst, string](BURST_ALL)
	}
	return outcome.Err[Burst, string](fmt.Sprintf("unknown burst tier %q", raw))
}

var codeRegex = regexp.MustCompile(`\(([A-Za-z]+)\)`)

// ParseCode reads the element out of a code label like "Hurricane (Wind)".
func ParseCode(raw string) outcome.Result[Code, string] {
	match := codeRegex.FindStringSubmatch(raw)
	if match == nil {
		return outcome.Err[Code, string](fmt.Sprintf("no parenthesized element in code %q", raw))
	}
	switch match[1] {
	case "Fire":
		return outcome.Ok[Code, string](CODE_FIRE)
	case "Water":
		return outcome.Ok[Code, string](CODE_WATER)
	case "Wind":
		return outcome.Ok[Code, string](CODE_WIND)
	case "Iron":
		return outcome.Ok[Code, string](CODE_IRON)
	case "Electric":
		return outcome.Ok[Code, string](CODE_ELECTRIC)
	}
	return outcome.Err[Code, string](fmt.Sprintf("unknown element code %q", raw))
}

func ParseWeaponType(raw string) outcome.Result[WeaponType, string] {
	switch raw {
	case "AR":
		return outcome.Ok[WeaponType, string](WEAPON_AR)
	case "MG":
		return outcome.Ok[WeaponType, string](WEAPON_MG)
	case "RL":
		return outcome.Ok[WeaponType, string](WEAPON_RL)
	case "SG":
		return outcome.Ok[WeaponType, string](WEAPON_SG)
	case "SMG":
		return outcome.Ok[WeaponType, string](WEAPON_SMG)
	case "SR":
		return outcome.Ok[WeaponType, string](WEAPON_SR)
	}
	return outcome.Err[WeaponType, string](fmt.Sprintf("unknown weapon type %q", raw))
}

// ParsePosition matches the label of a position category link.
func ParsePosition(raw string) outcome.Result[Position, string] {
	switch raw {
	case "Attacker":
		return outcome.Ok[Position, string](POSITION_ATTACKER)
	case "Defender":
		return outcome.Ok[Position, string](POSITION_DEFENDER)
	case "Supporter":
		return outcome.Ok[Position, string](POSITION_SUPPORTER)
	}
	return outcome.Err[Position, string](fmt.Sprintf("unknown position %q", raw))
}

func ParseManufacturer(raw string) outcome.Result[Manufacturer, string] {
	switch raw {
	case "Elysion":
		return outcome.Ok[Manufacturer, string](MANUFACTURER_ELYSION)
	case "Missilis":
		return outcome.Ok[Manufacturer, string](MANUFACTURER_MISSILIS)
	case "Tetra":
		return outcome.Ok[Manufacturer, string](MANUFACTURER_TETRA)
	case "Pilgrim":
		return outcome.Ok[Manufacturer, string](MANUFACTURER_PILGRIM)
	case "Abnormal":
		return outcome.Ok[Manufacturer, string](MANUFACTURER_ABNORMAL)
	}
	return outcome.Err[Manufacturer, string](fmt.Sprintf("unknown manufacturer %q", raw))
}
