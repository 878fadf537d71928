package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/bombgrid/shared/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallArena = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="3" height="2" tilewidth="16" tileheight="16" infinite="0">
 <tileset firstgid="1" name="boxes" tilewidth="16" tileheight="16" tilecount="2" columns="2">
  <tile id="0">
   <properties>
    <property name="material" value="crate"/>
   </properties>
  </tile>
  <tile id="1">
   <properties>
    <property name="material" value="stone"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="boxes" width="3" height="2">
  <data encoding="csv">
0,1,2,
0,0,1
</data>
 </layer>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="2" x="32" y="16" width="16" height="16">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
  </object>
  <object id="1" x="0" y="0" width="16" height="16">
   <properties>
    <property name="spawnIndex" type="int" value="0"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func TestLoadArena(t *testing.T) {
	fsys := fstest.MapFS{"arenas/small.tmx": {Data: []byte(smallArena)}}

	arena, err := LoadArena(fsys, "arenas/small.tmx")
	require.NoError(t, err)

	assert.Equal(t, "small", arena.Name)
	assert.Equal(t, 3, arena.TilesX)
	assert.Equal(t, 2, arena.TilesY)
	assert.Equal(t, []BoxSpawn{
		{X: 1, Y: 0, Type: messages.BoxCrate},
		{X: 2, Y: 0, Type: messages.BoxStone},
		{X: 2, Y: 1, Type: messages.BoxCrate},
	}, arena.Boxes)
	assert.Equal(t, []SpawnPoint{{X: 0, Y: 0, Index: 0}, {X: 2, Y: 1, Index: 1}}, arena.SpawnPoints)

	assert.Equal(t, arena.SpawnPoints[0], arena.Spawn(2))
}

func TestLoadAllArenas(t *testing.T) {
	fsys := fstest.MapFS{
		"arenas/b.tmx": {Data: []byte(smallArena)},
		"arenas/a.tmx": {Data: []byte(smallArena)},
	}

	arenas, names, err := LoadAllArenas(fsys, "arenas")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Len(t, arenas, 2)

	_, _, err = LoadAllArenas(fstest.MapFS{}, "arenas")
	assert.Error(t, err)
}
