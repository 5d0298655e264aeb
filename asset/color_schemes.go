package asset

// ColorSchemes holds the built-in color schemes keyed by name
var ColorSchemes = map[string]string{
	"Default": defaultColorScheme,
	"Dusk":    duskColorScheme,
}

const defaultColorScheme = `
aliases:
  yes: "#00c800"
  no: "#c80000"
  highlight: "#ffff00"

layers:
  bombs:
    dig: "#8b0000"
    blast: "#ff8c00"
    shockwave: "#ffd700"
  sprinklers:
    covered: "#1e90ff"
    dry: no
  scarecrows:
    protected: yes
    exposed: no
  junimo_huts:
    harvested: yes
    out_of_range: no
`

const duskColorScheme = `
aliases:
  yes: "#2e8b57"
  no: "#b22222"
  highlight: "#da70d6"

layers:
  bombs:
    dig: "#4b0082"
    blast: "#c71585"
    shockwave: "#ff69b4"
  sprinklers:
    covered: "#4682b4"
`
