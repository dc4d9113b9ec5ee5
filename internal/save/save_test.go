package save

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"

	"github.com/samdwyer/farmsim/internal/entity"
	"github.com/samdwyer/farmsim/internal/farm"
	"github.com/samdwyer/farmsim/internal/world"
)

func playedState(t *testing.T) *farm.State {
	t.Helper()
	s := farm.New(farm.DefaultRules(), rand.New(rand.NewSource(99)))
	s.Gold = 450
	s.BuyHelper()
	s.Inventory = farm.Stock{Corn: 4, Turnip: 1}
	s.Shed = farm.Stock{Turnip: 9}
	for i := 0; i < 500; i++ {
		s.Tick(farm.Input{Move: entity.DirLeft})
	}
	return s
}

func assertSameState(t *testing.T, got, want *farm.State) {
	t.Helper()
	if got.Field.Cells != want.Field.Cells {
		t.Error("field differs after restore")
	}
	if got.Gold != want.Gold || got.Inventory != want.Inventory || got.Shed != want.Shed {
		t.Errorf("gold/stock = %d %+v %+v, want %d %+v %+v",
			got.Gold, got.Inventory, got.Shed, want.Gold, want.Inventory, want.Shed)
	}
	if got.Player.Pos != want.Player.Pos {
		t.Errorf("player at %v, want %v", got.Player.Pos, want.Player.Pos)
	}
	if got.HasHelper() != want.HasHelper() || (got.HasHelper() && got.Helper.Pos != want.Helper.Pos) {
		t.Error("helper differs after restore")
	}
	if got.Timers != want.Timers {
		t.Errorf("timers = %+v, want %+v", got.Timers, want.Timers)
	}
}

func TestStoreRoundTripInMemory(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore(nil, "slot1")
	if err != nil {
		t.Fatalf("NewStore() = %v", err)
	}

	if _, ok, err := store.Load(ctx); ok || err != nil {
		t.Fatalf("Load() on empty slot = %v, %v; want false, nil", ok, err)
	}

	saved := playedState(t)
	if err := store.Save(ctx, Capture(saved, time.Now())); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	if !store.Exists() {
		t.Fatal("Exists() = false after Save")
	}

	snap, ok, err := store.Load(ctx)
	if err != nil || !ok {
		t.Fatalf("Load() = %v, %v", ok, err)
	}
	restored, err := Restore(snap, farm.DefaultRules(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Restore() = %v", err)
	}
	assertSameState(t, restored, saved)

	// Both copies keep evolving identically without further input.
	for i := 0; i < 1000; i++ {
		saved.Tick(farm.Input{})
		restored.Tick(farm.Input{})
	}
	assertSameState(t, restored, saved)
}

func TestCaptureDropsOpenMenu(t *testing.T) {
	s := playedState(t)
	s.Mode = farm.ModeMerchantBuy

	restored, err := Restore(Capture(s, time.Now()), farm.DefaultRules(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Restore() = %v", err)
	}
	if restored.Mode != farm.ModePlaying {
		t.Errorf("Mode = %v, want playing", restored.Mode)
	}
}

func TestRestoreRejectsBadSaves(t *testing.T) {
	base := Capture(farm.New(farm.DefaultRules(), rand.New(rand.NewSource(3))), time.Now())

	tests := []struct {
		name   string
		mutate func(s *Snapshot)
	}{
		{"future version", func(s *Snapshot) { s.Version = Version + 1 }},
		{"unknown crop", func(s *Snapshot) { s.Crops = append(s.Crops, Crop{X: 0, Y: 0, Kind: "pumpkin"}) }},
		{"crop off field", func(s *Snapshot) { s.Crops = append(s.Crops, Crop{X: 25, Y: 0, Kind: "corn"}) }},
		{"crop on merchant", func(s *Snapshot) { s.Crops = append(s.Crops, Crop{X: 5, Y: 5, Kind: "corn"}) }},
		{"overgrown crop", func(s *Snapshot) { s.Crops = append(s.Crops, Crop{X: 1, Y: 1, Kind: "turnip", Growth: 150}) }},
		{"negative gold", func(s *Snapshot) { s.Gold = -1 }},
		{"player off field", func(s *Snapshot) { s.Player = Point{X: 20, Y: 3} }},
		{"helper off field", func(s *Snapshot) { s.Helper = &Point{X: 4, Y: -1} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := base
			snap.Crops = append([]Crop(nil), base.Crops...)
			tt.mutate(&snap)
			if _, err := Restore(snap, farm.DefaultRules(), rand.New(rand.NewSource(1))); err == nil {
				t.Error("Restore() = nil error, want failure")
			}
		})
	}
}

func TestRestoreDrawsNothingFromRNG(t *testing.T) {
	snap := Capture(playedState(t), time.Now())

	rng := rand.New(rand.NewSource(11))
	if _, err := Restore(snap, farm.DefaultRules(), rng); err != nil {
		t.Fatalf("Restore() = %v", err)
	}

	want := rand.New(rand.NewSource(11)).Int63()
	if got := rng.Int63(); got != want {
		t.Errorf("rng advanced by Restore: next draw %d, want %d", got, want)
	}
}

func TestNewStoreValidatesSlot(t *testing.T) {
	for _, slot := range []string{"", "../escape", "has space", "a/b"} {
		if _, err := NewStore(nil, slot); err == nil {
			t.Errorf("NewStore(%q) should fail", slot)
		}
	}
	if _, err := NewStore(nil, "autosave_2"); err != nil {
		t.Errorf("NewStore(autosave_2) = %v", err)
	}
}

func TestStoreWithGdata(t *testing.T) {
	appName := fmt.Sprintf("farmsim_test_%d", time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})

	ctx := context.Background()
	store, err := NewStore(manager, "main")
	if err != nil {
		t.Fatalf("NewStore() = %v", err)
	}

	saved := playedState(t)
	if err := store.Save(ctx, Capture(saved, time.Now())); err != nil {
		t.Fatalf("Save() = %v", err)
	}

	snap, ok, err := store.Load(ctx)
	if err != nil || !ok {
		t.Fatalf("Load() = %v, %v", ok, err)
	}
	restored, err := Restore(snap, farm.DefaultRules(), rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("Restore() = %v", err)
	}
	assertSameState(t, restored, saved)

	if restored.Field.At(world.Pt(15, 15)).Kind != world.KindShed {
		t.Error("restored field lost the shed")
	}
}
