package nikkepedia

import (
	"context"
	"strings"
	"testing"

	"nikkedle-backend/lib/nikke"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const characterPage = `<html><body>
<aside class="portable-infobox">
  <h2 class="pi-title" data-source="title">Rapunzel</h2>
  <figure class="pi-image" data-source="image">
    <a href="https://static.example.com/rapunzel.png" class="image">
      <img src="https://static.example.com/rapunzel.png">
    </a>
  </figure>
  <div class="pi-data" data-source="squad">
    <h3 class="pi-data-label">Squad</h3>
    <div class="pi-data-value">Goddess</div>
  </div>
  <div class="pi-data" data-source="weapon">
    <h3 class="pi-data-label">Weapon</h3>
    <div class="pi-data-value">Purity</div>
  </div>
  <table class="pi-horizontal-group">
    <tbody>
      <tr>
        <td>Ssr</td>
        <td>I</td>
      </tr>
    </tbody>
  </table>
  <table class="pi-horizontal-group">
    <tbody>
      <tr>
        <td>Perilium (Fire)</td>
        <td>RL</td>
        <td><a href="/wiki/Category:Supporters">Supporter</a></td>
        <td>Pilgrim</td>
      </tr>
    </tbody>
  </table>
</aside>
</body></html>`

func parsePage(t *testing.T, page string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestExtractCharacter(t *testing.T) {
	doc := parsePage(t, characterPage)

	result := ExtractCharacter(context.Background(), doc)
	record, ok := result.Get()
	require.True(t, ok, "extraction failed: %v", result)

	weapon := "Purity"
	expected := nikke.Character{
		Name:         "Rapunzel",
		Rarity:       nikke.RARITY_SSR,
		Burst:        nikke.BURST_I,
		WeaponName:   &weapon,
		Squad:        "Goddess",
		Code:         nikke.CODE_FIRE,
		WeaponType:   nikke.WEAPON_RL,
		Position:     nikke.POSITION_SUPPORTER,
		Manufacturer: nikke.MANUFACTURER_PILGRIM,
		ImageURL:     "https://static.example.com/rapunzel.png",
	}
	if diff := cmp.Diff(expected, record); diff != "" {
		t.Fatal(diff)
	}
}

func TestExtractCharacterIsRepeatable(t *testing.T) {
	doc := parsePage(t, characterPage)

	first := ExtractCharacter(context.Background(), doc)
	second := ExtractCharacter(context.Background(), doc)
	if diff := cmp.Diff(first.MustGet(), second.MustGet()); diff != "" {
		t.Fatal(diff)
	}
}

func TestExtractCharacterMissingWeaponIsNotAFailure(t *testing.T) {
	page := strings.Replace(
		characterPage,
		`<div class="pi-data" data-source="weapon">
    <h3 class="pi-data-label">Weapon</h3>
    <div class="pi-data-value">Purity</div>
  </div>`,
		"",
		1,
	)
	require.NotEqual(t, characterPage, page)
	doc := parsePage(t, page)

	result := ExtractCharacter(context.Background(), doc)
	record, ok := result.Get()
	require.True(t, ok, "extraction failed: %v", result)
	require.Nil(t, record.WeaponName)
	require.Equal(t, "Rapunzel", record.Name)
}

func TestExtractCharacterAggregatesFieldFailures(t *testing.T) {
	page := characterPage
	// unknown rarity literal
	page = strings.Replace(page, "<td>Ssr</td>", "<td>Sssr</td>", 1)
	// manufacturer cell removed entirely
	page = strings.Replace(page, "\n        <td>Pilgrim</td>", "", 1)
	doc := parsePage(t, page)

	result := ExtractCharacter(context.Background(), doc)
	report, isErr := result.GetErr()
	require.True(t, isErr)

	require.Equal(t, []string{"manufacturer", "rarity"}, report.Fields())
	require.Contains(t, report["rarity"], "Sssr")
	require.Contains(t, report["manufacturer"], "missing next sibling at path 'vvv>>'")
}

func TestExtractCharacterMissingInfobox(t *testing.T) {
	doc := parsePage(t, `<html><body><p>maintenance page</p></body></html>`)

	result := ExtractCharacter(context.Background(), doc)
	report, isErr := result.GetErr()
	require.True(t, isErr)

	// every required field fails, the optional weapon name does not appear
	require.Equal(t, []string{
		"burst",
		"code",
		"image_url",
		"manufacturer",
		"name",
		"position",
		"rarity",
		"squad",
		"weapon_type",
	}, report.Fields())
}
