package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// Solid is a solid collision rectangle from the Solids object group
type Solid struct {
	X, Y, Width, Height float64
}

// PlayerSpawn is the player start position
type PlayerSpawn struct {
	X float64
	Y float64
}

// WarpPoint is a warp menu destination. X/Y are the actor's feet in world
// space; Facing is a binary angle.
type WarpPoint struct {
	Name   string
	Area   string
	X      float64
	Y      float64
	Facing int16
}

type Level struct {
	Solids      []Solid
	PlayerSpawn PlayerSpawn
	Warps       []WarpPoint
	Name        string
	Width       int
	Height      int
}

// FS returns the embedded asset file system.
func FS() fs.FS {
	return assetFS
}

// LoadLevel parses a TMX file from fsys. Tile layers are ignored; the
// practice level is built from object groups only.
func LoadLevel(fsys fs.FS, levelPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", levelPath, err)
	}

	level := &Level{
		Name:   levelPath,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Solids":
			for _, o := range og.Objects {
				level.Solids = append(level.Solids, Solid{
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
				})
			}
		case "PlayerSpawn":
			if len(og.Objects) > 0 {
				level.PlayerSpawn = PlayerSpawn{X: og.Objects[0].X, Y: og.Objects[0].Y}
				spawnFound = true
			}
		case "Warps":
			for _, o := range og.Objects {
				level.Warps = append(level.Warps, WarpPoint{
					Name:   o.Name,
					Area:   o.Properties.GetString("area"),
					X:      o.X,
					Y:      o.Y,
					Facing: int16(o.Properties.GetInt("facing")),
				})
			}
		}
	}

	if !spawnFound {
		return nil, fmt.Errorf("level %s: no PlayerSpawn object", levelPath)
	}

	// Keep object IDs out of the menu order: group by area, then left to right
	sort.SliceStable(level.Warps, func(i, j int) bool {
		if level.Warps[i].Area != level.Warps[j].Area {
			return level.Warps[i].Area < level.Warps[j].Area
		}
		return level.Warps[i].X < level.Warps[j].X
	})

	return level, nil
}
