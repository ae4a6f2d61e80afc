// Package nikke defines the character record produced by extraction and
// the closed categorical sets the guessing game compares against.
package nikke

// Character is the fully extracted record for one playable character.
// It is only ever constructed once every required field resolved; a
// record with defaulted fields cannot be observed.
type Character struct {
	Name         string       `json:"name"`
	Rarity       Rarity       `json:"rarity"`
	Burst        Burst        `json:"burst"`
	WeaponName   *string      `json:"weapon_name,omitempty"`
	Squad        string       `json:"squad"`
	Code         Code         `json:"code"`
	WeaponType   WeaponType   `json:"weapon_type"`
	Position     Position     `json:"position"`
	Manufacturer Manufacturer `json:"manufacturer"`
	ImageURL     string       `json:"image_url"`
}

type Rarity int

const (
	RARITY_R Rarity = iota
	RARITY_SR
	RARITY_SSR
)

func (r Rarity) String() string {
	switch r {
	case RARITY_R:
		return "R"
	case RARITY_SR:
		return "Sr"
	case RARITY_SSR:
		return "Ssr"
	}
	return "unknown"
}

type Burst int

const (
	BURST_I Burst = iota
	BURST_II
	BURST_III
	BURST_ALL
)

func (b Burst) String() string {
	switch b {
	case BURST_I:
		return "I"
	case BURST_II:
		return "II"
	case BURST_III:
		return "III"
	case BURST_ALL:
		return "All"
	}
	return "unknown"
}

// Code is the elemental code a character attacks with.
type Code int

const (
	CODE_FIRE Code = iota
	CODE_WATER
	CODE_WIND
	CODE_IRON
	CODE_ELECTRIC
)

func (c Code) String() string {
	switch c {
	case CODE_FIRE:
		return "Fire"
	case CODE_WATER:
		return "Water"
	case CODE_WIND:
		return "Wind"
	case CODE_IRON:
		return "Iron"
	case CODE_ELECTRIC:
		return "Electric"
	}
	return "unknown"
}

type WeaponType int

const (
	WEAPON_AR WeaponType = iota
	WEAPON_MG
	WEAPON_RL
	WEAPON_SG
	WEAPON_SMG
	WEAPON_SR
)

func (w WeaponType) String() string {
	switch w {
	case WEAPON_AR:
		return "AR"
	case WEAPON_MG:
		return "MG"
	case WEAPON_RL:
		return "RL"
	case WEAPON_SG:
		return "SG"
	case WEAPON_SMG:
		return "SMG"
	case WEAPON_SR:
		return "SR"
	}
	return "unknown"
}

type Position int

const (
	POSITION_ATTACKER Position = iota
	POSITION_DEFENDER
	POSITION_SUPPORTER
)

func (p Position) String() string {
	switch p {
	case POSITION_ATTACKER:
		return "Attacker"
	case POSITION_DEFENDER:
		return "Defender"
	case POSITION_SUPPORTER:
		return "Supporter"
	}
	return "unknown"
}

type Manufacturer int

const (
	MANUFACTURER_ELYSION Manufacturer = iota
	MANUFACTURER_MISSILIS
	MANUFACTURER_TETRA
	MANUFACTURER_PILGRIM
	MANUFACTURER_ABNORMAL
)

func (m Manufacturer) String() string {
	switch m {
	case MANUFACTURER_ELYSION:
		return "Elysion"
	case MANUFACTURER_MISSILIS:
		return "Missilis"
	case MANUFACTURER_TETRA:
		return "Tetra"
	case MANUFACTURER_PILGRIM:
		return "Pilgrim"
	case MANUFACTURER_ABNORMAL:
		return "Abnormal"
	}
	return "unknown"
}
