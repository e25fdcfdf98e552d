package storage

import (
	"time"

	"github.com/MixinNetwork/rational/config"
	"github.com/MixinNetwork/rational/logger"
	"github.com/VictoriaMetrics/fastcache"
	"github.com/dgraph-io/badger/v3"
	"github.com/dgraph-io/badger/v3/options"
)

type BadgerStore struct {
	custom  *config.Custom
	db      *badger.DB
	cache   *fastcache.Cache
	closing chan struct{}
}

func NewBadgerStore(custom *config.Custom, dir string) (*BadgerStore, error) {
	db, err := openDB(dir+"/registers", true)
	if err != nil {
		return nil, err
	}
	store := &BadgerStore{
		custom:  custom,
		db:      db,
		cache:   fastcache.New(custom.Storage.CacheSize * 1024 * 1024),
		closing: make(chan struct{}),
	}
	if custom.Storage.ValueLogGC {
		go store.loopValueLogGC()
	}
	return store, nil
}

func (s *BadgerStore) Close() error {
	select {
	case <-s.closing:
		return nil
	default:
		close(s.closing)
	}
	s.cache.Reset()
	return s.db.Close()
}

func (s *BadgerStore) loopValueLogGC() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-s.closing:
			return
		case <-ticker.C:
		}
		lsm, vlog := s.db.Size()
		logger.Verbosef("Badger LSM %d VLOG %d\n", lsm, vlog)
		if lsm > 1024*1024*8 || vlog > 1024*1024*32 {
			err := s.db.RunValueLogGC(0.5)
			logger.Verbosef("Badger RunValueLogGC %v\n", err)
		}
	}
}

func openDB(dir string, sync bool) (*badger.DB, error) {
	opts := badger.DefaultOptions(dir)
	opts = opts.WithSyncWrites(sync)
	opts = opts.WithCompression(options.None)
	opts = opts.WithLoggingLevel(badger.WARNING)
	return badger.Open(opts)
}
