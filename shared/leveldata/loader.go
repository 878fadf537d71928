package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/bombgrid/shared/messages"
	"github.com/lafriks/go-tiled"
)

const (
	boxLayer   = "boxes"
	spawnGroup = "PlayerSpawn"
)

// LoadArena parses a TMX file into an Arena. Box tiles come from the "boxes"
// layer, their material from the tileset tile's "material" property; spawns
// come from the "PlayerSpawn" object group. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		TilesX: levelMap.Width,
		TilesY: levelMap.Height,
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != boxLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				boxType := messages.BoxCrate
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					if tilesetTile.Properties.GetString("material") == "stone" {
						boxType = messages.BoxStone
					}
				}
				arena.Boxes = append(arena.Boxes, BoxSpawn{X: x, Y: y, Type: boxType})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != spawnGroup {
			continue
		}
		for _, o := range og.Objects {
			arena.SpawnPoints = append(arena.SpawnPoints, SpawnPoint{
				X:     int(o.X) / levelMap.TileWidth,
				Y:     int(o.Y) / levelMap.TileHeight,
				Index: o.Properties.GetInt("spawnIndex"),
			})
		}
	}

	sort.Slice(arena.SpawnPoints, func(i, j int) bool {
		return arena.SpawnPoints[i].Index < arena.SpawnPoints[j].Index
	})

	return arena, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		arena, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[arena.Name] = arena
		names = append(names, arena.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
