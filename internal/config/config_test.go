package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yubin/internal/domain"
	"yubin/internal/eventbus"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, err := NewConfigService(path).Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	d, err := cfg.DebounceDuration()
	require.NoError(t, err)
	assert.Equal(t, 200*time.Millisecond, d)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigService(path)

	cfg := DefaultConfig()
	cfg.Dataset.Source = "s3://postal/kyoto.json.zst"
	cfg.Dataset.S3.Endpoint = "localhost:9000"
	cfg.Results.PageSize = 50
	cfg.Results.SortOrder = domain.SortByFuriganaDesc.String()
	require.NoError(t, svc.Save(cfg))

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	order, err := loaded.Order()
	require.NoError(t, err)
	assert.Equal(t, domain.SortByFuriganaDesc, order)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[search]
debounce = "350ms"
default_mode = "kana"
`), 0644))

	cfg, err := NewConfigService(path).LoadFromPath(path)
	require.NoError(t, err)

	d, err := cfg.DebounceDuration()
	require.NoError(t, err)
	assert.Equal(t, 350*time.Millisecond, d)

	mode, err := cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, domain.ModeFurigana, mode)

	assert.Equal(t, domain.DefaultPageSize, cfg.Results.PageSize)
	assert.True(t, cfg.UI.AltScreen)
}

func TestInvalidValuesAreRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[search]
debounce = "soon"
[results]
page_size = 15
`), 0644))

	_, err := NewConfigService(path).LoadFromPath(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidPageSize)
	assert.Contains(t, err.Error(), "search.debounce")
}

func TestMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[dataset\nsource = 1"), 0644))

	_, err := NewConfigService(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadPublishesEvent(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	got := make(chan string, 1)
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		got <- e.(eventbus.ConfigLoadedEvent).Source
	})

	svc := NewConfigServiceWithBus(filepath.Join(t.TempDir(), "config.toml"), bus)
	_, err := svc.Load()
	require.NoError(t, err)

	select {
	case source := <-got:
		assert.Equal(t, "defaults", source)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for ConfigLoadedEvent")
	}
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "config.toml", filepath.Base(DefaultPath()))
	assert.Equal(t, "yubin", filepath.Base(filepath.Dir(DefaultPath())))
}
