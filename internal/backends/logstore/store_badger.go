package logstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"sync/atomic"

	"github.com/dgraph-io/badger/v4"

	"polyglot/internal/backends"
	"polyglot/internal/platform/config"
	id "polyglot/pkg/domain"
	"polyglot/pkg/platform/sentinel"
)

const (
	storeName = "badger_logstore"
	keyPrefix = "log/"
)

// BadgerStore appends log entries under log/<user>/<inverted ts><inverted seq>,
// so a forward prefix scan yields the newest entry first.
type BadgerStore struct {
	db  *badger.DB
	seq atomic.Uint64
}

// OpenBadger opens the log store. An empty Dir keeps everything in memory.
func OpenBadger(cfg config.BadgerConfig, logger *slog.Logger) (*BadgerStore, error) {
	var opts badger.Options
	if cfg.Dir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
			return nil, fmt.Errorf("create log directory %s: %w", cfg.Dir, err)
		}
		opts = badger.DefaultOptions(cfg.Dir).WithSyncWrites(true)
	}
	if logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: logger})
	} else {
		opts = opts.WithLogger(nil)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// Close releases the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

func userPrefix(userID id.UserID) []byte {
	return []byte(keyPrefix + userID.String() + "/")
}

func (s *BadgerStore) entryKey(entry id.LogEntry) []byte {
	inverted := uint64(math.MaxInt64 - entry.Timestamp.UnixNano())
	seq := math.MaxUint64 - s.seq.Add(1)
	return append(userPrefix(entry.UserID), fmt.Sprintf("%016x%016x", inverted, seq)...)
}

// Append stores the entry. Callers assign the timestamp.
func (s *BadgerStore) Append(_ context.Context, entry id.LogEntry) error {
	defer backends.ObserveStore(storeName, "append")()

	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode log entry: %w", err)
	}
	key := s.entryKey(entry)
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, raw)
	}); err != nil {
		return fmt.Errorf("append log entry: %w", storeErr(err))
	}
	return nil
}

// Read returns up to limit entries of the user, newest first.
func (s *BadgerStore) Read(ctx context.Context, userID id.UserID, limit int) ([]id.LogEntry, error) {
	defer backends.ObserveStore(storeName, "read")()

	entries := []id.LogEntry{}
	prefix := userPrefix(userID)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchSize = limit
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix) && len(entries) < limit; it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var entry id.LogEntry
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &entry)
			}); err != nil {
				return fmt.Errorf("decode log entry %s: %w", it.Item().Key(), err)
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read log entries: %w", storeErr(err))
	}
	return entries, nil
}

// storeErr marks a closed database as unavailable.
func storeErr(err error) error {
	if errors.Is(err, badger.ErrDBClosed) {
		return fmt.Errorf("%w: %w", sentinel.ErrUnavailable, err)
	}
	return err
}

type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...any) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...any) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}
