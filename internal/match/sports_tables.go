package match

// championshipMappings normalize the many ways both venues label the same
// title market.
var championshipMappings = map[string]string{
	// NFL
	"super bowl":                            "super bowl",
	"pro football championship":             "super bowl",
	"nfl championship":                      "super bowl",
	"afc championship":                      "afc championship",
	"nfc championship":                      "nfc championship",
	"national football conference champion": "nfc championship",
	"american football conference champion": "afc championship",
	// NBA
	"nba finals":              "nba finals",
	"nba championship":        "nba finals",
	"basketball championship": "nba finals",
	"pro basketball finals":   "nba finals",
	"pro basketball champion": "nba finals",
	// NHL
	"stanley cup":      "stanley cup",
	"nhl championship": "stanley cup",
	// MLB
	"world series":     "world series",
	"mlb championship": "world series",
}

// gameMVPIndicators mark a championship-game MVP market (Super Bowl MVP,
// Finals MVP). These must never match season MVP markets.
var gameMVPIndicators = []string{
	"championship game mvp",
	"pro football championship game mvp",
	"super bowl mvp",
	"finals mvp",
	"nba finals mvp",
	"world series mvp",
	"stanley cup mvp",
	"sbmvp",
}

var seasonMVPIndicators = []string{
	"nfl mvp award",
	"nfl mvp",
	"nba mvp award",
	"nba mvp",
	"mlb mvp",
	"nhl mvp",
	"mvp award",
	"regular season mvp",
	"season mvp",
}

// collegeKeywords veto pro-team alias hits in texts that are actually about
// college programs ("Indiana" the Hoosiers, not the Pacers).
var collegeKeywords = []string{"college", "university", "ncaa", "ncaaf", "state"}
