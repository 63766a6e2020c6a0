package feeds

import (
	"github.com/reusee/dscope"

	"github.com/reusee/linecast/configs"
	"github.com/reusee/linecast/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
