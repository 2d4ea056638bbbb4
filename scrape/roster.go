package scrape

import "github.com/PuerkitoBio/goquery"

// ParseRoster extracts the player listing from one team page. Every
// sub-node is optional: a missing id, name, number or position yields an
// empty string, never a parse failure. A missing profile link yields a nil
// ProfileURL, which also suppresses the detail fetch for that player.
// Team and league come from the registry keyed by teamID; an unregistered
// id produces no records.
func ParseRoster(doc *goquery.Document, teamID, baseURL string) []PlayerRecord {
	info, ok := LookupTeam(teamID)
	if !ok {
		return nil
	}

	var players []PlayerRecord
	doc.Find("div.player_entry").Each(func(_ int, entry *goquery.Selection) {
		p := PlayerRecord{
			ID:       entry.AttrOr("id", ""),
			Name:     textOf(entry.Find("h4.name").First()),
			Number:   textOf(entry.Find("div.number").First()),
			Position: textOf(entry.Find("div.position").First()),
			Team:     info.Name,
			League:   info.League,
			TeamID:   teamID,
		}
		if href, ok := entry.Find("a").First().Attr("href"); ok {
			u := baseURL + href
			p.ProfileURL = &u
		}
		players = append(players, p)
	})
	return players
}
