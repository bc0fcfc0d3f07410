// Package idgen generates time-ordered numeric ids for object keys.
package idgen

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// Generator hands out snowflake ids from a single node
type Generator struct {
	node *snowflake.Node
}

// New creates a generator for node (0-1023). Instances sharing a bucket need distinct nodes.
func New(node int64) (*Generator, error) {
	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, fmt.Errorf("failed to init snowflake node %d: %w", node, err)
	}
	return &Generator{node: n}, nil
}

// Next returns the next id in base 10
func (g *Generator) Next() string {
	return g.node.Generate().String()
}
