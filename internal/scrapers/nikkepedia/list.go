package nikkepedia

import (
	"nikkedle-backend/internal/components/telemetry"
	"nikkedle-backend/lib/htmlutil"
	"nikkedle-backend/lib/outcome"
	"nikkedle-backend/lib/treepath"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	report_list_container = "list.container"
	report_list_card      = "list.card"
)

const selectCharacterGallery = "ul.gallery"

// CharacterLink points at one character page found on the index.
type CharacterLink struct {
	Name string
	Href string
}

func extractCard(card *html.Node) outcome.Result[CharacterLink, string] {
	return outcome.Then(
		treepath.Navigate(card, "vv"),
		func(anchor *html.Node) outcome.Result[CharacterLink, string] {
			href, ok := htmlutil.Attr(anchor, "href")
			if !ok {
				return outcome.Err[CharacterLink, string]("card link has no href attribute")
			}
			name, ok := htmlutil.Attr(anchor, "title")
			if !ok {
				return outcome.Err[CharacterLink, string]("card link has no title attribute")
			}
			return outcome.Ok[CharacterLink, string](CharacterLink{
				Name: name,
				Href: href,
			})
		},
	)
}

// ListCharacters enumerates the cards of the character gallery. Extraction
// is best effort per card: a card that diverges from the expected shape is
// reported and skipped, it never fails the listing.
func ListCharacters(doc *goquery.Document, tel telemetry.API) []CharacterLink {
	container := doc.Find(selectCharacterGallery).First()
	if len(container.Nodes) == 0 {
		tel.ReportBroken(report_list_container, "missing character gallery container")
		return nil
	}

	var links []CharacterLink
	for card := htmlutil.FirstElementChild(container.Nodes[0]); card != nil; card = htmlutil.NextElement(card) {
		result := extractCard(card)
		msg, isErr := result.GetErr()
		if isErr {
			tel.ReportWarning(report_list_card, msg)
			continue
		}
		links = append(links, result.MustGet())
	}
	return links
}
