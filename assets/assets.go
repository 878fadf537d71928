package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/bombgrid/shared/leveldata"
)

var (
	//go:embed all:arenas all:replays
	assetFS embed.FS
)

const arenaDir = "arenas"

// FS exposes the embedded asset tree.
func FS() fs.FS {
	return assetFS
}

type ArenaLoader struct {
	cache map[string]*leveldata.Arena
	names []string
}

func NewArenaLoader() *ArenaLoader {
	return &ArenaLoader{}
}

func (l *ArenaLoader) load() error {
	if l.cache != nil {
		return nil
	}
	arenas, names, err := leveldata.LoadAllArenas(assetFS, arenaDir)
	if err != nil {
		return err
	}
	l.cache = arenas
	l.names = names
	return nil
}

// Arena returns the embedded arena called name.
func (l *ArenaLoader) Arena(name string) (*leveldata.Arena, error) {
	if err := l.load(); err != nil {
		return nil, err
	}
	arena, ok := l.cache[name]
	if !ok {
		return nil, fmt.Errorf("arena %q not found (have %v)", name, l.names)
	}
	return arena, nil
}

// MustLoadArena is Arena for arenas shipped with the binary.
func (l *ArenaLoader) MustLoadArena(name string) *leveldata.Arena {
	arena, err := l.Arena(name)
	if err != nil {
		panic(err)
	}
	return arena
}

// ListArenaNames returns the sorted names of all embedded arenas.
func (l *ArenaLoader) ListArenaNames() []string {
	if err := l.load(); err != nil {
		return nil
	}
	return l.names
}

// OpenReplay opens an embedded replay script by stem name.
func OpenReplay(name string) (fs.File, error) {
	return assetFS.Open("replays/" + name + ".toml")
}
