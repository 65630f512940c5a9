package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/vfg2006/export-sales-api/infrastructure/integrator/usda"
	"github.com/vfg2006/export-sales-api/infrastructure/integrator/usda/esrclient"
	"github.com/vfg2006/export-sales-api/internal/catalog"
	"github.com/vfg2006/export-sales-api/internal/config"
	"github.com/vfg2006/export-sales-api/internal/usecases/exportsales"
	"github.com/vfg2006/export-sales-api/pkg/log"
	"github.com/vfg2006/export-sales-api/pkg/utils"
)

// errJobFailed sinaliza status 500 sem repetir a mensagem já impressa no envelope
var errJobFailed = errors.New("job finalizado com erro")

type runOptions struct {
	year   string
	id     string
	offset int
}

type runnerFactory func(cfg *config.Config) (exportsales.Runner, error)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "esrctl",
		Short:         "Consulta as vendas de exportação do USDA e calcula o momento mensal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd(defaultRunner))
	return root
}

func newRunCmd(factory runnerFactory) *cobra.Command {
	opts := runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Executa o job uma vez e imprime o envelope JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("offset") {
				cfg.Pipeline.MonthOffset = opts.offset
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			log.Configure(cfg.App.LogLevel)

			runner, err := factory(cfg)
			if err != nil {
				return err
			}

			return runOnce(cmd.Context(), runner, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.year, "year", "", "ano de mercado (ex: 2023)")
	cmd.Flags().StringVar(&opts.id, "id", "", "id do job devolvido no envelope")
	cmd.Flags().IntVar(&opts.offset, "offset", 0, "0 inclui o mês mais recente; 1 o descarta")

	return cmd
}

func defaultRunner(cfg *config.Config) (exportsales.Runner, error) {
	cat, err := catalog.Default()
	if err != nil {
		return nil, err
	}

	integrator := usda.New(esrclient.NewClient(cfg))
	return exportsales.NewService(cfg, cat, integrator, nil), nil
}

func runOnce(ctx context.Context, runner exportsales.Runner, opts runOptions, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	status, response := runner.Execute(ctx, exportsales.RequestPayload{
		ID:   opts.id,
		Data: &exportsales.RequestData{Year: opts.year},
	})

	pretty, err := utils.PrettyJson(response)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, pretty)

	if status != http.StatusOK {
		return errJobFailed
	}
	return nil
}
