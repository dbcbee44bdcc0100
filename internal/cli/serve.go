package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/gestor/internal/adapters/httpapi"
	"github.com/example/gestor/internal/wire"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Levantar la API HTTP del panel",
		Long: `Expone los servicios como API JSON en /api/v1.

La identidad llega verificada en el header X-Usuario-Email; el middleware la
resuelve contra el directorio de usuarios autorizados.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewProduction()
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer logger.Sync()

			handler := httpapi.NewHandler(
				wire.GestionService(),
				wire.UsuarioService(),
				wire.SesionService(),
				logger,
			)

			logger.Info("listening", zap.String("addr", addr))
			return http.ListenAndServe(addr, handler.Router())
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "Dirección de escucha")

	return cmd
}
