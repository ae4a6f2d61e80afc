package nikkepedia

import (
	"context"
	"fmt"

	"nikkedle-backend/lib/assemble"
	"nikkedle-backend/lib/htmlutil"
	"nikkedle-backend/lib/nikke"
	"nikkedle-backend/lib/outcome"
	"nikkedle-backend/lib/treepath"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/net/html"
)

var tracer = otel.Tracer("nikkedle.scrapers.nikkepedia")

// infobox anchors, located once per page
const (
	selectTitle           = "h2[data-source='title']"
	selectImage           = "figure[data-source='image']"
	selectSquad           = "div[data-source='squad']"
	selectWeapon          = "div[data-source='weapon']"
	selectHorizontalGroup = "table.pi-horizontal-group"
)

// paths from a horizontal-group table to its cells: tbody, row, then
// sibling steps across the cells
const (
	pathFirstCell  = "vvv"
	pathSecondCell = "vvv>"
	pathThirdCell  = "vvv>>"
	pathFourthCell = "vvv>>>"
)

// textAt navigates from the first node of an anchor selection and reads
// the cleaned text content of the reached node. An empty anchor selection
// and empty text content are both reported failures, never empty strings.
func textAt(anchor *goquery.Selection, path string) outcome.Result[string, string] {
	if len(anchor.Nodes) == 0 {
		return outcome.Err[string, string]("missing anchor node")
	}
	return outcome.Then(
		treepath.Navigate(anchor.Nodes[0], path),
		func(node *html.Node) outcome.Result[string, string] {
			text := htmlutil.CleanText(node)
			if text == "" {
				return outcome.Err[string, string](fmt.Sprintf(
					"no text content at path '%s'", path,
				))
			}
			return outcome.Ok[string, string](text)
		},
	)
}

// attrAt is textAt for a named attribute of the reached node.
func attrAt(anchor *goquery.Selection, path, name string) outcome.Result[string, string] {
	if len(anchor.Nodes) == 0 {
		return outcome.Err[string, string]("missing anchor node")
	}
	return outcome.Then(
		treepath.Navigate(anchor.Nodes[0], path),
		func(node *html.Node) outcome.Result[string, string] {
			value, ok := htmlutil.Attr(node, name)
			if !ok {
				return outcome.Err[string, string](fmt.Sprintf(
					"missing attribute %q at path '%s'", name, path,
				))
			}
			return outcome.Ok[string, string](value)
		},
	)
}

// ExtractCharacter reads one character page into a record. All fields are
// attempted regardless of earlier failures so a single report names every
// divergence from the expected page shape; the record is only built when
// every field resolved.
func ExtractCharacter(ctx context.Context, doc *goquery.Document) outcome.Result[nikke.Character, assemble.Report] {
	_, span := tracer.Start(ctx, "ExtractCharacter")
	defer span.End()

	// the infobox carries two horizontal groups: rarity/burst first,
	// code/weapon/position/manufacturer second
	groups := doc.Find(selectHorizontalGroup)
	stats := groups.Eq(0)
	identity := groups.Eq(1)

	c := assemble.NewCollector()

	name := assemble.Take(c, "name",
		textAt(doc.Find(selectTitle), ""))
	imageUrl := assemble.Take(c, "image_url",
		attrAt(doc.Find(selectImage), "vv", "src"))
	squad := assemble.Take(c, "squad",
		textAt(doc.Find(selectSquad), "$"))
	rarity := assemble.Take(c, "rarity",
		outcome.Then(textAt(stats, pathFirstCell), nikke.ParseRarity))
	burst := assemble.Take(c, "burst",
		outcome.Then(textAt(stats, pathSecondCell), nikke.ParseBurst))
	code := assemble.Take(c, "code",
		outcome.Then(textAt(identity, pathFirstCell), nikke.ParseCode))
	weaponType := assemble.Take(c, "weapon_type",
		outcome.Then(textAt(identity, pathSecondCell), nikke.ParseWeaponType))
	position := assemble.Take(c, "position",
		outcome.Then(textAt(identity, pathThirdCell+"v"), nikke.ParsePosition))
	manufacturer := assemble.Take(c, "manufacturer",
		outcome.Then(textAt(identity, pathFourthCell), nikke.ParseManufacturer))

	// a character without a named signature weapon is valid: a missing
	// weapon anchor means the field does not apply, while a present but
	// unreadable weapon node fails the field
	var weaponName *string
	weaponAnchor := doc.Find(selectWeapon)
	if len(weaponAnchor.Nodes) > 0 {
		w := assemble.Take(c, "weapon_name", textAt(weaponAnchor, "$"))
		weaponName = &w
	}

	result := assemble.Finish(c, func() nikke.Character {
		return nikke.Character{
			Name:         name,
			Rarity:       rarity,
			Burst:        burst,
			WeaponName:   weaponName,
			Squad:        squad,
			Code:         code,
			WeaponType:   weaponType,
			Position:     position,
			Manufacturer: manufacturer,
			ImageURL:     imageUrl,
		}
	})
	if report, isErr := result.GetErr(); isErr {
		span.SetStatus(codes.Error, report.String())
	}
	return result
}
