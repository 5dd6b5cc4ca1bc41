package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/prebuild/internal/core/ports"
)

const HasherNodeID graft.ID = "adapter.hasher"

func init() {
	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
