// Package portfolio is the landing page: a project catalog and the tview launcher that sets up a game
package portfolio

import (
	"errors"
	"fmt"
)

// ErrUnavailable is returned for catalog entries with no terminal implementation
var ErrUnavailable = errors.New("not available in the terminal build")

// Group is a catalog section
type Group string

const (
	GroupGames       Group = "games"
	GroupScenes      Group = "scenes"
	GroupExperiments Group = "experiments"
)

// Groups lists sections in display order
var Groups = []Group{GroupGames, GroupScenes, GroupExperiments}

// Title returns the section heading
func (g Group) Title() string {
	switch g {
	case GroupGames:
		return "Games"
	case GroupScenes:
		return "Scenes"
	case GroupExperiments:
		return "Experiments"
	default:
		return string(g)
	}
}

// Project is one catalog card
type Project struct {
	ID          int
	Group       Group
	Title       string
	Description string
	Tags        []string
	Folder      string
	GameID      string // Empty when the project has no playable build
}

// Playable reports a project that launches a game
func (p Project) Playable() bool {
	return p.GameID != ""
}

var catalog = []Project{
	{
		ID: 1, Group: GroupGames,
		Title:       "Star wars 3D",
		Description: "Juego de naves espaciales con física realista y combate en el espacio",
		Tags:        []string{"acción", "espacio", "shooter"},
		Folder:      "games/star-wars-dogfight",
		GameID:      "dogfight",
	},
	{
		ID: 2, Group: GroupGames,
		Title:       "TETHROUGH",
		Description: "Juego de carreras de obstáculos con controles simples pero desafiantes",
		Tags:        []string{"carreras", "arcade", "3D"},
		Folder:      "games/basic-game",
		GameID:      "tether",
	},
	{
		ID: 7, Group: GroupGames,
		Title:       "Space Shooter",
		Description: "Arcade de disparos: destruye los drones antes de que alcancen tu nave",
		Tags:        []string{"arcade", "espacio", "shooter"},
		Folder:      "games/space-shooter",
		GameID:      "shooter",
	},
	{
		ID: 3, Group: GroupScenes,
		Title:       "Galaxia Interactiva",
		Description: "Sistema solar completo con planetas orbitando y información educativa",
		Tags:        []string{"espacio", "educativo", "simulación"},
		Folder:      "scenes/galaxy",
	},
	{
		ID: 4, Group: GroupScenes,
		Title:       "Sala de Exposiciones 3D",
		Description: "Galería virtual para mostrar modelos 3D con controles de cámara",
		Tags:        []string{"exhibición", "modelos", "VR"},
		Folder:      "scenes/showroom",
	},
	{
		ID: 5, Group: GroupExperiments,
		Title:       "Sistema de Partículas Avanzado",
		Description: "Simulación de efectos de partículas: fuego, agua, humo y explosiones",
		Tags:        []string{"partículas", "simulación", "shaders"},
		Folder:      "experiments/particles",
	},
	{
		ID: 6, Group: GroupExperiments,
		Title:       "Simulación Física con Cannon.js",
		Description: "Demostración interactiva de físicas realistas: gravedad, colisiones, joints",
		Tags:        []string{"física", "simulación", "cannon.js"},
		Folder:      "experiments/physics",
	},
}

// Projects returns the catalog of one group in display order
func Projects(g Group) []Project {
	var out []Project
	for _, p := range catalog {
		if p.Group == g {
			out = append(out, p)
		}
	}
	return out
}

// All returns every project grouped in display order
func All() []Project {
	out := make([]Project, 0, len(catalog))
	for _, g := range Groups {
		out = append(out, Projects(g)...)
	}
	return out
}

// Find returns the project launching gameID
func Find(gameID string) (Project, bool) {
	for _, p := range catalog {
		if p.GameID != "" && p.GameID == gameID {
			return p, true
		}
	}
	return Project{}, false
}

// Open checks that a project can be launched
func Open(p Project) error {
	if !p.Playable() {
		return fmt.Errorf("%s: %w", p.Title, ErrUnavailable)
	}
	return nil
}
