package normalize

// Uppercase ticker abbreviation tables. Values use the same canonical names
// as the alias tables so extractions from tickers and from free text land on
// one vocabulary.

var nflAbbrevs = map[string]string{
	"ARI": "Arizona Cardinals", "ATL": "Atlanta Falcons", "BAL": "Baltimore Ravens",
	"BUF": "Buffalo Bills", "CAR": "Carolina Panthers", "CHI": "Chicago Bears",
	"CIN": "Cincinnati Bengals", "CLE": "Cleveland Browns", "DAL": "Dallas Cowboys",
	"DEN": "Denver Broncos", "DET": "Detroit Lions", "GB": "Green Bay Packers",
	"HOU": "Houston Texans", "IND": "Indianapolis Colts", "JAX": "Jacksonville Jaguars",
	"KC": "Kansas City Chiefs", "LAC": "LA Chargers", "LAR": "LA Rams",
	"LV": "Las Vegas Raiders", "MIA": "Miami Dolphins", "MIN": "Minnesota Vikings",
	"NE": "New England Patriots", "NO": "New Orleans Saints", "NYG": "New York Giants",
	"NYJ": "New York Jets", "PHI": "Philadelphia Eagles", "PIT": "Pittsburgh Steelers",
	"SEA": "Seattle Seahawks", "SF": "San Francisco 49ers", "TB": "Tampa Bay Buccaneers",
	"TEN": "Tennessee Titans", "WAS": "Washington Commanders",
}

var nbaAbbrevs = map[string]string{
	"ATL": "Atlanta Hawks", "BOS": "Boston Celtics", "BKN": "Brooklyn Nets",
	"CHA": "Charlotte Hornets", "CHI": "Chicago Bulls", "CLE": "Cleveland Cavaliers",
	"DAL": "Dallas Mavericks", "DEN": "Denver Nuggets", "DET": "Detroit Pistons",
	"GSW": "Golden State Warriors", "HOU": "Houston Rockets", "IND": "Indiana Pacers",
	"LAC": "LA Clippers", "LAL": "LA Lakers", "MEM": "Memphis Grizzlies",
	"MIA": "Miami Heat", "MIL": "Milwaukee Bucks", "MIN": "Minnesota Timberwolves",
	"NOP": "New Orleans Pelicans", "NYK": "New York Knicks", "OKC": "Oklahoma City Thunder",
	"ORL": "Orlando Magic", "PHI": "Philadelphia 76ers", "PHX": "Phoenix Suns",
	"POR": "Portland Trail Blazers", "SAC": "Sacramento Kings", "SAS": "San Antonio Spurs",
	"TOR": "Toronto Raptors", "UTA": "Utah Jazz", "WAS": "Washington Wizards",
}

var nhlAbbrevs = map[string]string{
	"ANA": "Anaheim Ducks", "BOS": "Boston Bruins", "BUF": "Buffalo Sabres",
	"CAR": "Carolina Hurricanes", "CBJ": "Columbus Blue Jackets", "CGY": "Calgary Flames",
	"CHI": "Chicago Blackhawks", "COL": "Colorado Avalanche", "DAL": "Dallas Stars",
	"DET": "Detroit Red Wings", "EDM": "Edmonton Oilers", "FLA": "Florida Panthers",
	"LAK": "LA Kings", "MIN": "Minnesota Wild", "MTL": "Montreal Canadiens",
	"NJD": "New Jersey Devils", "NSH": "Nashville Predators", "NYI": "New York Islanders",
	"NYR": "New York Rangers", "OTT": "Ottawa Senators", "PHI": "Philadelphia Flyers",
	"PIT": "Pittsburgh Penguins", "SEA": "Seattle Kraken", "SJS": "San Jose Sharks",
	"STL": "St. Louis Blues", "TBL": "Tampa Bay Lightning", "TOR": "Toronto Maple Leafs",
	"VAN": "Vancouver Canucks", "VGK": "Vegas Golden Knights", "WPG": "Winnipeg Jets",
	"WSH": "Washington Capitals",
}

var abbrevMaps = map[Sport]map[string]string{
	SportNFL: nflAbbrevs,
	SportNBA: nbaAbbrevs,
	SportNHL: nhlAbbrevs,
}

// Abbrev resolves an uppercase ticker abbreviation within one sport.
func (n *Normalizer) Abbrev(code string, sport Sport) (string, bool) {
	m, ok := abbrevMaps[sport]
	if !ok {
		return "", false
	}
	team, ok := m[code]
	return team, ok
}

// AbbrevAny resolves an abbreviation when the league could not be
// determined, consulting the tables in NBA, NFL, NHL order. Never use this
// when the league is known: codes collide across leagues ("HOU", "DAL").
func (n *Normalizer) AbbrevAny(code string) (string, Sport, bool) {
	for _, sport := range []Sport{SportNBA, SportNFL, SportNHL} {
		if team, ok := abbrevMaps[sport][code]; ok {
			return team, sport, ok
		}
	}
	return "", SportUnknown, false
}

// Aliases exposes the read-only alias table for a sport so callers can scan
// free text for team mentions. Callers must not mutate the returned map.
func (n *Normalizer) Aliases(sport Sport) map[string]string {
	return n.teamMaps[sport]
}
