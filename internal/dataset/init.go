package dataset

import (
	"sync"

	"github.com/gpulens/gpulens/internal/configs"
	"github.com/rs/zerolog/log"
)

var (
	store *Store
	once  sync.Once
)

// Init wires the shared dataset store from app config.
func Init(config configs.Configs) {
	once.Do(func() {
		loader := NewExcelLoader(config.DataDir)
		store = NewStore(loader, config.DatasetCacheSize, config.DatasetCacheTTLSec)
		log.Info().Str("dataDir", config.DataDir).Msg("Dataset store initialized")
	})
}

// Instance returns the shared dataset store
func Instance() *Store {
	if store == nil {
		log.Fatal().Msg("Dataset store not initialized")
	}
	return store
}
