package athletex

import (
	"github.com/streamingfast/logging"
	"go.uber.org/zap"
)

var zlog *zap.Logger

func init() {
	zlog, _ = logging.ApplicationLogger("athletex", "github.com/SportsToken/AthleteX-Dex-Subgraph/cli/athletex")
}
