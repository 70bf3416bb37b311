package normalize

// Canonical team alias tables, one per league. Keys are lowercase aliases
// (abbreviation, city, mascot, or full name); values are the canonical
// "City Mascot" form. Tables are never merged: "hou" is the Rockets in an
// NBA context and the Texans in an NFL context.

var nbaTeams = map[string]string{
	"atl": "Atlanta Hawks", "atlanta": "Atlanta Hawks", "hawks": "Atlanta Hawks",
	"atlanta hawks": "Atlanta Hawks",

	"bos": "Boston Celtics", "boston": "Boston Celtics", "celtics": "Boston Celtics",
	"boston celtics": "Boston Celtics",

	"bkn": "Brooklyn Nets", "bk": "Brooklyn Nets", "brooklyn": "Brooklyn Nets",
	"nets": "Brooklyn Nets", "brooklyn nets": "Brooklyn Nets",

	"cha": "Charlotte Hornets", "charlotte": "Charlotte Hornets", "hornets": "Charlotte Hornets",
	"charlotte hornets": "Charlotte Hornets",

	"chi": "Chicago Bulls", "chicago bulls": "Chicago Bulls", "bulls": "Chicago Bulls",

	"cle": "Cleveland Cavaliers", "cleveland": "Cleveland Cavaliers",
	"cavaliers": "Cleveland Cavaliers", "cavs": "Cleveland Cavaliers",
	"cleveland cavaliers": "Cleveland Cavaliers",

	"dal": "Dallas Mavericks", "dallas": "Dallas Mavericks", "mavericks": "Dallas Mavericks",
	"mavs": "Dallas Mavericks", "dallas mavericks": "Dallas Mavericks",

	"den": "Denver Nuggets", "denver": "Denver Nuggets", "nuggets": "Denver Nuggets",
	"denver nuggets": "Denver Nuggets",

	"det": "Detroit Pistons", "detroit": "Detroit Pistons", "pistons": "Detroit Pistons",
	"detroit pistons": "Detroit Pistons",

	"gsw": "Golden State Warriors", "gs": "Golden State Warriors",
	"golden state": "Golden State Warriors", "warriors": "Golden State Warriors",
	"golden state warriors": "Golden State Warriors",

	"hou": "Houston Rockets", "houston": "Houston Rockets", "rockets": "Houston Rockets",
	"houston rockets": "Houston Rockets",

	"ind": "Indiana Pacers", "indiana": "Indiana Pacers", "pacers": "Indiana Pacers",
	"indiana pacers": "Indiana Pacers",

	"lac": "LA Clippers", "la clippers": "LA Clippers", "clippers": "LA Clippers",
	"los angeles clippers": "LA Clippers",

	"lal": "LA Lakers", "la lakers": "LA Lakers", "lakers": "LA Lakers",
	"los angeles lakers": "LA Lakers",

	"mem": "Memphis Grizzlies", "memphis": "Memphis Grizzlies", "grizzlies": "Memphis Grizzlies",
	"memphis grizzlies": "Memphis Grizzlies",

	"mia": "Miami Heat", "miami": "Miami Heat", "heat": "Miami Heat",
	"miami heat": "Miami Heat",

	"mil": "Milwaukee Bucks", "milwaukee": "Milwaukee Bucks", "bucks": "Milwaukee Bucks",
	"milwaukee bucks": "Milwaukee Bucks",

	"min": "Minnesota Timberwolves", "minnesota": "Minnesota Timberwolves",
	"timberwolves": "Minnesota Timberwolves", "wolves": "Minnesota Timberwolves",
	"minnesota timberwolves": "Minnesota Timberwolves",

	"nop": "New Orleans Pelicans", "new orleans": "New Orleans Pelicans",
	"pelicans": "New Orleans Pelicans", "new orleans pelicans": "New Orleans Pelicans",

	"nyk": "New York Knicks", "ny knicks": "New York Knicks", "knicks": "New York Knicks",
	"new york knicks": "New York Knicks",

	"okc": "Oklahoma City Thunder", "oklahoma city": "Oklahoma City Thunder",
	"thunder": "Oklahoma City Thunder", "oklahoma city thunder": "Oklahoma City Thunder",

	"orl": "Orlando Magic", "orlando": "Orlando Magic", "magic": "Orlando Magic",
	"orlando magic": "Orlando Magic",

	"phi": "Philadelphia 76ers", "philadelphia": "Philadelphia 76ers",
	"76ers": "Philadelphia 76ers", "sixers": "Philadelphia 76ers",
	"philadelphia 76ers": "Philadelphia 76ers",

	"phx": "Phoenix Suns", "phoenix": "Phoenix Suns", "suns": "Phoenix Suns",
	"phoenix suns": "Phoenix Suns",

	"por": "Portland Trail Blazers", "portland": "Portland Trail Blazers",
	"blazers": "Portland Trail Blazers", "trail blazers": "Portland Trail Blazers",
	"portland trail blazers": "Portland Trail Blazers",

	"sac": "Sacramento Kings", "sacramento": "Sacramento Kings", "kings": "Sacramento Kings",
	"sacramento kings": "Sacramento Kings",

	"sas": "San Antonio Spurs", "sa": "San Antonio Spurs", "san antonio": "San Antonio Spurs",
	"spurs": "San Antonio Spurs", "san antonio spurs": "San Antonio Spurs",

	"tor": "Toronto Raptors", "toronto": "Toronto Raptors", "raptors": "Toronto Raptors",
	"toronto raptors": "Toronto Raptors",

	"uta": "Utah Jazz", "utah": "Utah Jazz", "jazz": "Utah Jazz",
	"utah jazz": "Utah Jazz",

	"was": "Washington Wizards", "wsh": "Washington Wizards",
	"washington": "Washington Wizards", "wizards": "Washington Wizards",
	"washington wizards": "Washington Wizards",
}

var nflTeams = map[string]string{
	// AFC East
	"buf": "Buffalo Bills", "buffalo": "Buffalo Bills", "bills": "Buffalo Bills",
	"mia": "Miami Dolphins", "miami dolphins": "Miami Dolphins", "dolphins": "Miami Dolphins",
	"ne": "New England Patriots", "new england": "New England Patriots", "patriots": "New England Patriots",
	"nyj": "New York Jets", "jets": "New York Jets", "ny jets": "New York Jets",

	// AFC North
	"bal": "Baltimore Ravens", "baltimore": "Baltimore Ravens", "ravens": "Baltimore Ravens",
	"cin": "Cincinnati Bengals", "cincinnati": "Cincinnati Bengals", "bengals": "Cincinnati Bengals",
	"cle": "Cleveland Browns", "cleveland": "Cleveland Browns", "browns": "Cleveland Browns",
	"pit": "Pittsburgh Steelers", "pittsburgh": "Pittsburgh Steelers", "steelers": "Pittsburgh Steelers",

	// AFC South
	"hou": "Houston Texans", "houston": "Houston Texans", "texans": "Houston Texans",
	"ind": "Indianapolis Colts", "indianapolis": "Indianapolis Colts", "colts": "Indianapolis Colts",
	"jax": "Jacksonville Jaguars", "jacksonville": "Jacksonville Jaguars", "jaguars": "Jacksonville Jaguars",
	"ten": "Tennessee Titans", "tennessee": "Tennessee Titans", "titans": "Tennessee Titans",

	// AFC West
	"den": "Denver Broncos", "denver": "Denver Broncos", "broncos": "Denver Broncos",
	"kc": "Kansas City Chiefs", "kansas city": "Kansas City Chiefs", "chiefs": "Kansas City Chiefs",
	"lv": "Las Vegas Raiders", "las vegas": "Las Vegas Raiders", "raiders": "Las Vegas Raiders",
	"lac": "LA Chargers", "la chargers": "LA Chargers", "chargers": "LA Chargers",
	"los angeles chargers": "LA Chargers",

	// NFC East
	"dal": "Dallas Cowboys", "dallas": "Dallas Cowboys", "cowboys": "Dallas Cowboys",
	"nyg": "New York Giants", "giants": "New York Giants", "ny giants": "New York Giants",
	"phi": "Philadelphia Eagles", "philadelphia": "Philadelphia Eagles", "eagles": "Philadelphia Eagles",
	"was": "Washington Commanders", "washington": "Washington Commanders", "commanders": "Washington Commanders",
	"wsh": "Washington Commanders",

	// NFC North
	"chi": "Chicago Bears", "chicago": "Chicago Bears", "bears": "Chicago Bears",
	"det": "Detroit Lions", "detroit": "Detroit Lions", "lions": "Detroit Lions",
	"gb": "Green Bay Packers", "green bay": "Green Bay Packers", "packers": "Green Bay Packers",
	"min": "Minnesota Vikings", "minnesota": "Minnesota Vikings", "vikings": "Minnesota Vikings",

	// NFC South
	"atl": "Atlanta Falcons", "atlanta": "Atlanta Falcons", "falcons": "Atlanta Falcons",
	"car": "Carolina Panthers", "carolina": "Carolina Panthers", "panthers": "Carolina Panthers",
	"no": "New Orleans Saints", "new orleans": "New Orleans Saints", "saints": "New Orleans Saints",
	"tb": "Tampa Bay Buccaneers", "tampa bay": "Tampa Bay Buccaneers", "buccaneers": "Tampa Bay Buccaneers",
	"bucs": "Tampa Bay Buccaneers",

	// NFC West
	"ari": "Arizona Cardinals", "arizona": "Arizona Cardinals", "cardinals": "Arizona Cardinals",
	"lar": "LA Rams", "la rams": "LA Rams", "rams": "LA Rams", "los angeles rams": "LA Rams",
	"sf": "San Francisco 49ers", "san francisco": "San Francisco 49ers", "49ers": "San Francisco 49ers",
	"niners": "San Francisco 49ers",
	"sea":    "Seattle Seahawks", "seattle": "Seattle Seahawks", "seahawks": "Seattle Seahawks",
}

var nhlTeams = map[string]string{
	// Atlantic
	"bos": "Boston Bruins", "boston": "Boston Bruins", "bruins": "Boston Bruins",
	"buf": "Buffalo Sabres", "buffalo": "Buffalo Sabres", "sabres": "Buffalo Sabres",
	"det": "Detroit Red Wings", "detroit": "Detroit Red Wings", "red wings": "Detroit Red Wings",
	"fla": "Florida Panthers", "florida": "Florida Panthers",
	"mtl": "Montreal Canadiens", "montreal": "Montreal Canadiens", "canadiens": "Montreal Canadiens",
	"habs": "Montreal Canadiens",
	"ott":  "Ottawa Senators", "ottawa": "Ottawa Senators", "senators": "Ottawa Senators",
	"sens": "Ottawa Senators",
	"tbl":  "Tampa Bay Lightning", "tampa bay": "Tampa Bay Lightning", "lightning": "Tampa Bay Lightning",
	"tampa": "Tampa Bay Lightning",
	"tor":   "Toronto Maple Leafs", "toronto": "Toronto Maple Leafs", "maple leafs": "Toronto Maple Leafs",
	"leafs": "Toronto Maple Leafs",

	// Metropolitan
	"car": "Carolina Hurricanes", "carolina": "Carolina Hurricanes", "hurricanes": "Carolina Hurricanes",
	"canes": "Carolina Hurricanes",
	"cbj":   "Columbus Blue Jackets", "columbus": "Columbus Blue Jackets", "blue jackets": "Columbus Blue Jackets",
	"njd": "New Jersey Devils", "nj": "New Jersey Devils", "new jersey": "New Jersey Devils",
	"devils": "New Jersey Devils",
	"nyi":    "New York Islanders", "ny islanders": "New York Islanders", "islanders": "New York Islanders",
	"nyr": "New York Rangers", "ny rangers": "New York Rangers", "rangers": "New York Rangers",
	"phi": "Philadelphia Flyers", "philadelphia": "Philadelphia Flyers", "flyers": "Philadelphia Flyers",
	"pit": "Pittsburgh Penguins", "pittsburgh": "Pittsburgh Penguins", "penguins": "Pittsburgh Penguins",
	"pens": "Pittsburgh Penguins",
	"wsh":  "Washington Capitals", "washington": "Washington Capitals", "capitals": "Washington Capitals",
	"caps": "Washington Capitals",

	// Central
	"chi": "Chicago Blackhawks", "chicago": "Chicago Blackhawks", "blackhawks": "Chicago Blackhawks",
	"hawks": "Chicago Blackhawks",
	"col":   "Colorado Avalanche", "colorado": "Colorado Avalanche", "avalanche": "Colorado Avalanche",
	"avs": "Colorado Avalanche",
	"dal": "Dallas Stars", "dallas": "Dallas Stars", "stars": "Dallas Stars",
	"min": "Minnesota Wild", "minnesota": "Minnesota Wild", "wild": "Minnesota Wild",
	"nsh": "Nashville Predators", "nashville": "Nashville Predators", "predators": "Nashville Predators",
	"preds": "Nashville Predators",
	"stl":   "St. Louis Blues", "st louis": "St. Louis Blues", "blues": "St. Louis Blues",
	"saint louis": "St. Louis Blues",
	"wpg":         "Winnipeg Jets", "winnipeg": "Winnipeg Jets",
	"uta": "Utah Hockey Club", "utah": "Utah Hockey Club",

	// Pacific
	"ana": "Anaheim Ducks", "anaheim": "Anaheim Ducks", "ducks": "Anaheim Ducks",
	"cgy": "Calgary Flames", "calgary": "Calgary Flames", "flames": "Calgary Flames",
	"edm": "Edmonton Oilers", "edmonton": "Edmonton Oilers", "oilers": "Edmonton Oilers",
	"lak": "LA Kings", "la": "LA Kings", "la kings": "LA Kings", "kings": "LA Kings",
	"los angeles kings": "LA Kings",
	"sjs":               "San Jose Sharks", "san jose": "San Jose Sharks", "sharks": "San Jose Sharks",
	"sea": "Seattle Kraken", "seattle": "Seattle Kraken", "kraken": "Seattle Kraken",
	"van": "Vancouver Canucks", "vancouver": "Vancouver Canucks", "canucks": "Vancouver Canucks",
	"vgk": "Vegas Golden Knights", "vegas": "Vegas Golden Knights", "golden knights": "Vegas Golden Knights",
}

var mlbTeams = map[string]string{
	// AL East
	"bal": "Baltimore Orioles", "baltimore": "Baltimore Orioles", "orioles": "Baltimore Orioles",
	"bos": "Boston Red Sox", "boston": "Boston Red Sox", "red sox": "Boston Red Sox",
	"nyy": "New York Yankees", "ny yankees": "New York Yankees", "yankees": "New York Yankees",
	"tb": "Tampa Bay Rays", "tampa bay": "Tampa Bay Rays", "rays": "Tampa Bay Rays",
	"tor": "Toronto Blue Jays", "toronto": "Toronto Blue Jays", "blue jays": "Toronto Blue Jays",

	// AL Central
	"cws": "Chicago White Sox", "chi": "Chicago White Sox", "white sox": "Chicago White Sox",
	"cle": "Cleveland Guardians", "cleveland": "Cleveland Guardians", "guardians": "Cleveland Guardians",
	"det": "Detroit Tigers", "detroit": "Detroit Tigers", "tigers": "Detroit Tigers",
	"kc": "Kansas City Royals", "kansas city": "Kansas City Royals", "royals": "Kansas City Royals",
	"min": "Minnesota Twins", "minnesota": "Minnesota Twins", "twins": "Minnesota Twins",

	// AL West
	"hou": "Houston Astros", "houston": "Houston Astros", "astros": "Houston Astros",
	"laa": "LA Angels", "la angels": "LA Angels", "angels": "LA Angels",
	"oak": "Oakland Athletics", "oakland": "Oakland Athletics", "athletics": "Oakland Athletics",
	"a's": "Oakland Athletics",
	"sea": "Seattle Mariners", "seattle": "Seattle Mariners", "mariners": "Seattle Mariners",
	"tex": "Texas Rangers", "texas": "Texas Rangers", "rangers": "Texas Rangers",

	// NL East
	"atl": "Atlanta Braves", "atlanta": "Atlanta Braves", "braves": "Atlanta Braves",
	"mia": "Miami Marlins", "miami": "Miami Marlins", "marlins": "Miami Marlins",
	"nym": "New York Mets", "ny mets": "New York Mets", "mets": "New York Mets",
	"phi": "Philadelphia Phillies", "philadelphia": "Philadelphia Phillies", "phillies": "Philadelphia Phillies",
	"wsh": "Washington Nationals", "washington": "Washington Nationals", "nationals": "Washington Nationals",
	"nats": "Washington Nationals",

	// NL Central
	"chc": "Chicago Cubs", "cubs": "Chicago Cubs",
	"cin": "Cincinnati Reds", "cincinnati": "Cincinnati Reds", "reds": "Cincinnati Reds",
	"mil": "Milwaukee Brewers", "milwaukee": "Milwaukee Brewers", "brewers": "Milwaukee Brewers",
	"pit": "Pittsburgh Pirates", "pittsburgh": "Pittsburgh Pirates", "pirates": "Pittsburgh Pirates",
	"stl": "St. Louis Cardinals", "st louis": "St. Louis Cardinals", "cardinals": "St. Louis Cardinals",

	// NL West
	"ari": "Arizona Diamondbacks", "arizona": "Arizona Diamondbacks", "diamondbacks": "Arizona Diamondbacks",
	"dbacks": "Arizona Diamondbacks",
	"col":    "Colorado Rockies", "colorado": "Colorado Rockies", "rockies": "Colorado Rockies",
	"lad": "LA Dodgers", "la dodgers": "LA Dodgers", "dodgers": "LA Dodgers",
	"sd": "San Diego Padres", "san diego": "San Diego Padres", "padres": "San Diego Padres",
	"sf": "San Francisco Giants", "san francisco": "San Francisco Giants",
}

var collegeBasketballTeams = map[string]string{
	// ACC
	"duke": "Duke Blue Devils", "blue devils": "Duke Blue Devils",
	"unc": "North Carolina Tar Heels", "tar heels": "North Carolina Tar Heels",
	"north carolina": "North Carolina Tar Heels",
	"uva":            "Virginia Cavaliers", "virginia": "Virginia Cavaliers",
	"wake": "Wake Forest Demon Deacons", "wake forest": "Wake Forest Demon Deacons",
	"nc state": "NC State Wolfpack", "ncsu": "NC State Wolfpack",
	"louisville": "Louisville Cardinals",
	"syracuse":   "Syracuse Orange", "cuse": "Syracuse Orange",
	"fsu": "Florida State Seminoles", "florida state": "Florida State Seminoles",
	"miami": "Miami Hurricanes",
	"pitt":  "Pittsburgh Panthers",
	"gt":    "Georgia Tech Yellow Jackets", "georgia tech": "Georgia Tech Yellow Jackets",
	"bc": "Boston College Eagles", "boston college": "Boston College Eagles",
	"nd": "Notre Dame Fighting Irish", "notre dame": "Notre Dame Fighting Irish",
	"clemson": "Clemson Tigers",
	"vt":      "Virginia Tech Hokies", "virginia tech": "Virginia Tech Hokies",
	"smu": "SMU Mustangs",
	"cal": "California Golden Bears", "california": "California Golden Bears",
	"stanford": "Stanford Cardinal",

	// Big Ten
	"msu": "Michigan State Spartans", "michigan state": "Michigan State Spartans",
	"um": "Michigan Wolverines", "michigan": "Michigan Wolverines",
	"iu": "Indiana Hoosiers", "indiana": "Indiana Hoosiers",
	"purdue":       "Purdue Boilermakers",
	"illinois":     "Illinois Fighting Illini",
	"wisconsin":    "Wisconsin Badgers",
	"iowa":         "Iowa Hawkeyes",
	"minnesota":    "Minnesota Golden Gophers",
	"maryland":     "Maryland Terrapins",
	"rutgers":      "Rutgers Scarlet Knights",
	"northwestern": "Northwestern Wildcats",
	"psu":          "Penn State Nittany Lions", "penn state": "Penn State Nittany Lions",
	"nebraska":   "Nebraska Cornhuskers",
	"ucla":       "UCLA Bruins",
	"usc":        "USC Trojans",
	"oregon":     "Oregon Ducks",
	"washington": "Washington Huskies",

	// Big 12
	"ku": "Kansas Jayhawks", "kansas": "Kansas Jayhawks",
	"baylor": "Baylor Bears",
	"ttu":    "Texas Tech Red Raiders", "texas tech": "Texas Tech Red Raiders",
	"texas": "Texas Longhorns",
	"tcu":   "TCU Horned Frogs",
	// "osu" is ambiguous between Ohio State and Oklahoma State; the
	// Cowboys entry wins, matching the source tables.
	"osu": "Oklahoma State Cowboys", "oklahoma state": "Oklahoma State Cowboys",
	"ohio state": "Ohio State Buckeyes",
	"wvu":        "West Virginia Mountaineers", "west virginia": "West Virginia Mountaineers",
	"ksu": "Kansas State Wildcats", "kansas state": "Kansas State Wildcats",
	"isu": "Iowa State Cyclones", "iowa state": "Iowa State Cyclones",
	"ou": "Oklahoma Sooners", "oklahoma": "Oklahoma Sooners",
	"byu": "BYU Cougars",
	"uc":  "Cincinnati Bearcats", "cincinnati": "Cincinnati Bearcats",
	"uh": "Houston Cougars", "houston": "Houston Cougars",
	"ucf":     "UCF Knights",
	"arizona": "Arizona Wildcats",
	"asu":     "Arizona State Sun Devils", "arizona state": "Arizona State Sun Devils",
	"colorado": "Colorado Buffaloes",
	"utah":     "Utah Utes",

	// SEC
	"uk": "Kentucky Wildcats", "kentucky": "Kentucky Wildcats",
	"tennessee": "Tennessee Volunteers", "vols": "Tennessee Volunteers",
	"auburn":  "Auburn Tigers",
	"alabama": "Alabama Crimson Tide", "bama": "Alabama Crimson Tide",
	"arkansas": "Arkansas Razorbacks", "hogs": "Arkansas Razorbacks",
	"florida": "Florida Gators", "gators": "Florida Gators",
	"lsu":     "LSU Tigers",
	"georgia": "Georgia Bulldogs", "uga": "Georgia Bulldogs",
	"mizzou": "Missouri Tigers", "missouri": "Missouri Tigers",
	"sc": "South Carolina Gamecocks", "south carolina": "South Carolina Gamecocks",
	"vandy": "Vanderbilt Commodores", "vanderbilt": "Vanderbilt Commodores",
	"ole miss": "Ole Miss Rebels", "mississippi": "Ole Miss Rebels",
	"miss state": "Mississippi State Bulldogs", "mississippi state": "Mississippi State Bulldogs",
	"a&m": "Texas A&M Aggies", "texas a&m": "Texas A&M Aggies",

	// Big East
	"uconn": "UConn Huskies", "connecticut": "UConn Huskies",
	"villanova": "Villanova Wildcats", "nova": "Villanova Wildcats",
	"creighton":  "Creighton Bluejays",
	"marquette":  "Marquette Golden Eagles",
	"georgetown": "Georgetown Hoyas",
	"xavier":     "Xavier Musketeers",
	"st johns":   "St. John's Red Storm", "st. john's": "St. John's Red Storm",
	"seton hall": "Seton Hall Pirates",
	"providence": "Providence Friars",
	"butler":     "Butler Bulldogs",
	"depaul":     "DePaul Blue Demons",

	// Other top programs
	"gonzaga": "Gonzaga Bulldogs", "zags": "Gonzaga Bulldogs",
	"memphis": "Memphis Tigers",
	"unlv":    "UNLV Rebels",
	"sdsu":    "San Diego State Aztecs", "san diego state": "San Diego State Aztecs",
}
