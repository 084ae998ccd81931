package memory_test

import (
	"testing"

	"github.com/aretw0/lex/pkg/adapters/memory"
	"github.com/aretw0/lex/pkg/ports"
)

func TestMemoryStoreContract(t *testing.T) {
	ports.RunSessionStoreContract(t, memory.NewStore())
}
