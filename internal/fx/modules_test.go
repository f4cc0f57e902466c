package fx

import (
	"testing"

	"progress-tracker/internal/server"
	"progress-tracker/internal/web"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestModuleGraph(t *testing.T) {
	t.Setenv("DB_PATH", ":memory:")
	t.Setenv("COLLATION_LOCALE", "en")

	err := fx.ValidateApp(
		Module,
		fx.Invoke(func(*server.ProgressServer, *web.DashboardHandler) {}),
	)
	require.NoError(t, err)
}
