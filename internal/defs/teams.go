// internal/defs/teams.go
package defs

// DefaultTeams returns the built-in league, used when no teams file is given.
func DefaultTeams() []TeamDefinition {
	return []TeamDefinition{
		{ID: 1, Name: "Arsenal", ShortName: "ARS", PrimaryColor: "#DC143C", SecondaryColor: "#FFFFFF"},
		{ID: 2, Name: "Aston Villa", ShortName: "AVL", PrimaryColor: "#95BFE5", SecondaryColor: "#670E36"},
		{ID: 3, Name: "Bournemouth", ShortName: "BOU", PrimaryColor: "#DA020E", SecondaryColor: "#000000"},
		{ID: 4, Name: "Brentford", ShortName: "BRE", PrimaryColor: "#E30613", SecondaryColor: "#FFD700"},
		{ID: 5, Name: "Brighton", ShortName: "BHA", PrimaryColor: "#0057B8", SecondaryColor: "#FFD700"},
		{ID: 6, Name: "Chelsea", ShortName: "CHE", PrimaryColor: "#034694", SecondaryColor: "#FFFFFF"},
		{ID: 7, Name: "Crystal Palace", ShortName: "CRY", PrimaryColor: "#1B458F", SecondaryColor: "#A7A5A6"},
		{ID: 8, Name: "Everton", ShortName: "EVE", PrimaryColor: "#003399", SecondaryColor: "#FFFFFF"},
		{ID: 9, Name: "Fulham", ShortName: "FUL", PrimaryColor: "#FFFFFF", SecondaryColor: "#000000"},
		{ID: 10, Name: "Ipswich Town", ShortName: "IPS", PrimaryColor: "#4C9FE0", SecondaryColor: "#FFFFFF"},
		{ID: 11, Name: "Leicester City", ShortName: "LEI", PrimaryColor: "#003090", SecondaryColor: "#FFD700"},
		{ID: 12, Name: "Liverpool", ShortName: "LIV", PrimaryColor: "#C8102E", SecondaryColor: "#FFD700"},
		{ID: 13, Name: "Manchester City", ShortName: "MCI", PrimaryColor: "#6CABDD", SecondaryColor: "#1C2C5B"},
		{ID: 14, Name: "Manchester United", ShortName: "MUN", PrimaryColor: "#DA020E", SecondaryColor: "#FFE500"},
		{ID: 15, Name: "Newcastle United", ShortName: "NEW", PrimaryColor: "#241F20", SecondaryColor: "#FFFFFF"},
		{ID: 16, Name: "Nottingham Forest", ShortName: "NFO", PrimaryColor: "#DD0000", SecondaryColor: "#FFFFFF"},
		{ID: 17, Name: "Southampton", ShortName: "SOU", PrimaryColor: "#D71920", SecondaryColor: "#130C0E"},
		{ID: 18, Name: "Tottenham", ShortName: "TOT", PrimaryColor: "#132257", SecondaryColor: "#FFFFFF"},
		{ID: 19, Name: "West Ham United", ShortName: "WHU", PrimaryColor: "#7A263A", SecondaryColor: "#F3D459"},
		{ID: 20, Name: "Wolverhampton", ShortName: "WOL", PrimaryColor: "#FDB913", SecondaryColor: "#231F20"},
	}
}
