package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/calebrood/ghostpunch/config"
)

const testArenaTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="100" height="50" tilewidth="32" tileheight="32">
 <objectgroup id="1" name="markers">
  <object id="1" name="ground" x="0" y="1000"/>
  <object id="2" name="spawn" x="1400" y="1000"/>
  <object id="3" name="enemy_spawn" x="3000" y="1000"/>
 </objectgroup>
</map>
`

func restoreSpawn(t *testing.T) {
	t.Helper()
	spawnX, spawnY := config.Player.SpawnX, config.Player.SpawnY
	t.Cleanup(func() {
		config.Player.SpawnX = spawnX
		config.Player.SpawnY = spawnY
	})
}

func TestLoadArenaMissingFileFallsBack(t *testing.T) {
	arena := LoadArena(filepath.Join(t.TempDir(), "nope.tmx"))

	def := DefaultArena()
	if *arena != *def {
		t.Errorf("arena = %+v, want default %+v", arena, def)
	}
}

func TestLoadArenaReadsMarkers(t *testing.T) {
	restoreSpawn(t)

	path := filepath.Join(t.TempDir(), "arena.tmx")
	if err := os.WriteFile(path, []byte(testArenaTMX), 0644); err != nil {
		t.Fatal(err)
	}

	arena := LoadArena(path)

	// The map is 3200x1600; marker positions are taken relative to its
	// center, Y flipped into world space.
	if want := float64(config.WorldCenterY - 200); arena.GroundY != want {
		t.Errorf("ground = %v, want %v", arena.GroundY, want)
	}
	if config.Player.SpawnX != -200 || config.Player.SpawnY != -200 {
		t.Errorf("player spawn = (%v, %v), want (-200, -200)",
			config.Player.SpawnX, config.Player.SpawnY)
	}
	if arena.EnemySpawnX != 1400 {
		t.Errorf("enemy spawn edge = %v, want 1400", arena.EnemySpawnX)
	}
	if arena.MinX != config.WorldCenterX-1600 || arena.MaxX != config.WorldCenterX+1600 {
		t.Errorf("extents = [%v, %v], want centered 3200", arena.MinX, arena.MaxX)
	}
}
