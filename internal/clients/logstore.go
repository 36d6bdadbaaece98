package clients

import (
	"context"

	"polyglot/contracts/wire"
	"polyglot/internal/registry"
	id "polyglot/pkg/domain"
)

// LogStoreClient talks to the append-only log store.
type LogStoreClient struct {
	caller *Caller
}

func NewLogStoreClient(caller *Caller) *LogStoreClient {
	return &LogStoreClient{caller: caller}
}

func (c *LogStoreClient) AppendLog(ctx context.Context, entry wire.AppendLog) (bool, error) {
	var ok bool
	err := c.caller.Call(ctx, registry.LogStore, registry.OpAppendLog, entry, &ok)
	return ok, err
}

func (c *LogStoreClient) ReadLogs(ctx context.Context, userID id.UserID, limit int) ([]id.LogEntry, error) {
	var entries []id.LogEntry
	err := c.caller.Call(ctx, registry.LogStore, registry.OpReadLogs, wire.ReadLogs{UserID: userID, Limit: limit}, &entries)
	return entries, err
}
