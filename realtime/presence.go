package realtime

import (
	"context"

	"skillflow/contract"
	"skillflow/domain/event"
)

// PresenceBroadcaster announces the online-user set. It always pushes the
// full snapshot rather than add/remove deltas: clients replace their local
// set wholesale, which avoids ordering bugs at the cost of some bandwidth.
type PresenceBroadcaster struct {
	registry    contract.IRegistry
	broadcaster contract.IBroadcaster
}

func NewPresenceBroadcaster(registry contract.IRegistry, broadcaster contract.IBroadcaster) *PresenceBroadcaster {
	return &PresenceBroadcaster{registry: registry, broadcaster: broadcaster}
}

// Announce pushes the current snapshot to every connected session,
// anonymous ones included. Called on every connect and disconnect.
func (p *PresenceBroadcaster) Announce(ctx context.Context) {
	online := p.registry.ListOnlineUserIDs()
	if online == nil {
		// Clients expect a JSON array, never null
		online = []string{}
	}
	p.broadcaster.EmitToAll(ctx, event.OnlineUsers(online))
}
