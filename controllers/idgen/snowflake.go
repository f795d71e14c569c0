// controllers/idgen/snowflake.go
package idgen

import (
	"fmt"
	"log"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

func Init() {
	var err error
	node, err = snowflake.NewNode(1)
	if err != nil {
		log.Fatalf("Failed to init Snowflake: %v", err)
	}
}

func GenerateID() int64 {
	return node.Generate().Int64()
}

// RefCode builds a prefixed reference code, ex: "DLV-1845672950123456512".
func RefCode(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, GenerateID())
}
