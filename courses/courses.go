// Package courses provides TMX course parsing. Courses are authored in
// Tiled as object groups only: Solid geometry, Water hazards, floating
// Platforms, the Bonfire goal and the Matches chain. It has no dependencies
// on ebitengine, donburi, or resolv — pure data only.
package courses

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

//go:embed *.tmx
var files embed.FS

// Rect is an axis-aligned area in course pixels.
type Rect struct {
	X, Y, W, H float64
}

// MatchSpawn places one matchstick along the chain. Order 0 ignites at race
// start; PlayerIndex is the pre-assigned controlling player.
type MatchSpawn struct {
	X, Y        float64
	Order       int
	PlayerIndex int
}

// Course holds everything a race scene spawns.
type Course struct {
	Name      string
	Width     int
	Height    int
	Solids    []Rect
	Water     []Rect
	Platforms []Rect
	Bonfire   Rect
	Matches   []MatchSpawn
}

// Load parses the embedded course for a race scene identifier ("Solo",
// "Coop", "Versus").
func Load(name string) (*Course, error) {
	return loadFS(files, strings.ToLower(name)+".tmx", name)
}

func loadFS(fsys fs.FS, path, name string) (*Course, error) {
	courseMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}

	course := &Course{
		Name:   name,
		Width:  courseMap.Width * courseMap.TileWidth,
		Height: courseMap.Height * courseMap.TileHeight,
	}

	for _, og := range courseMap.ObjectGroups {
		switch og.Name {
		case "Solid":
			for _, o := range og.Objects {
				course.Solids = append(course.Solids, objectRect(o))
			}
		case "Water":
			for _, o := range og.Objects {
				course.Water = append(course.Water, objectRect(o))
			}
		case "Platforms":
			for _, o := range og.Objects {
				course.Platforms = append(course.Platforms, objectRect(o))
			}
		case "Bonfire":
			if len(og.Objects) > 0 {
				course.Bonfire = objectRect(og.Objects[0])
			}
		case "Matches":
			for _, o := range og.Objects {
				course.Matches = append(course.Matches, MatchSpawn{
					X:           o.X,
					Y:           o.Y,
					Order:       o.Properties.GetInt("order"),
					PlayerIndex: o.Properties.GetInt("playerIndex"),
				})
			}
		}
	}

	if len(course.Matches) == 0 {
		return nil, fmt.Errorf("course %s: no matchsticks defined", name)
	}
	if course.Bonfire.W == 0 {
		return nil, fmt.Errorf("course %s: no bonfire defined", name)
	}

	// Chain order is authoritative for race start and handoff direction.
	sort.Slice(course.Matches, func(i, j int) bool {
		return course.Matches[i].Order < course.Matches[j].Order
	})

	return course, nil
}

func objectRect(o *tiled.Object) Rect {
	return Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}
