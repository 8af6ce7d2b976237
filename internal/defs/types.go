// internal/defs/types.go
package defs

// TeamDefinition is one club of the league.
type TeamDefinition struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	ShortName      string `json:"short_name"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
}

// Initial is the letter drawn on the team's bodies.
func (t TeamDefinition) Initial() string {
	for _, r := range t.ShortName {
		return string(r)
	}
	for _, r := range t.Name {
		return string(r)
	}
	return ""
}
