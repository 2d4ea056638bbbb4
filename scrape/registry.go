package scrape

// TeamInfo is one registry entry: the team's display name and league.
type TeamInfo struct {
	Name   string
	League League
}

// teamOrder fixes iteration order for runs and API responses. Central
// league first, matching the source site's navigation.
var teamOrder = []string{
	"giants", "tigers", "baystars", "carp", "swallows", "dragons",
	"hawks", "fighters", "marines", "eagles", "buffaloes", "lions",
}

// teams is the static registry of the twelve NPB franchises. Player team
// and league fields are copied from here, never scraped, and ids outside
// this set are never fetched.
var teams = map[string]TeamInfo{
	"giants":    {Name: "読売ジャイアンツ", League: Central},
	"tigers":    {Name: "阪神タイガース", League: Central},
	"baystars":  {Name: "横浜DeNAベイスターズ", League: Central},
	"carp":      {Name: "広島東洋カープ", League: Central},
	"swallows":  {Name: "東京ヤクルトスワローズ", League: Central},
	"dragons":   {Name: "中日ドラゴンズ", League: Central},
	"hawks":     {Name: "福岡ソフトバンクホークス", League: Pacific},
	"fighters":  {Name: "北海道日本ハムファイターズ", League: Pacific},
	"marines":   {Name: "千葉ロッテマリーンズ", League: Pacific},
	"eagles":    {Name: "東北楽天ゴールデンイーグルス", League: Pacific},
	"buffaloes": {Name: "オリックス・バファローズ", League: Pacific},
	"lions":     {Name: "埼玉西武ライオンズ", League: Pacific},
}

// TeamIDs returns all registered team ids in fixed order.
func TeamIDs() []string {
	ids := make([]string, len(teamOrder))
	copy(ids, teamOrder)
	return ids
}

// LookupTeam returns the registry entry for a team id.
func LookupTeam(id string) (TeamInfo, bool) {
	info, ok := teams[id]
	return info, ok
}
