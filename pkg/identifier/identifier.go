package identifier

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// New gera um identificador único para a sessão, combinando o instante
// atual (em milissegundos) com um sufixo aleatório. O sufixo garante que
// duas chamadas dentro do mesmo milissegundo produzam valores distintos.
func New() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
