package util

import (
	"os"
	"strconv"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/segmentio/ksuid"
)

// NewPrefixedID returns a namespaced, collision-resistant identifier such as
// "V-2bQTn...". Uniqueness within a namespace is ultimately enforced by the
// store's unique index at insert time.
func NewPrefixedID(prefix string) string {
	return prefix + "-" + ksuid.New().String()
}

var (
	nodeOnce sync.Once
	node     *snowflake.Node
)

// NewInvoiceNumber generates a human-facing, roughly sequential invoice
// number. The snowflake node ID comes from SNOWFLAKE_NODE (default 1), so
// replicas producing numbers concurrently never collide.
func NewInvoiceNumber() string {
	nodeOnce.Do(func() {
		nodeID := int64(1)
		if env := os.Getenv("SNOWFLAKE_NODE"); env != "" {
			if parsed, err := strconv.ParseInt(env, 10, 64); err == nil {
				nodeID = parsed
			}
		}
		n, err := snowflake.NewNode(nodeID)
		if err != nil {
			n, _ = snowflake.NewNode(1)
		}
		node = n
	})
	if node == nil {
		// last resort when node init failed entirely
		return ksuid.New().String()
	}
	return node.Generate().String()
}
