package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maynagashev/nextflix/internal/config"
	"github.com/maynagashev/nextflix/internal/logger"
	"github.com/maynagashev/nextflix/internal/repository"
	"github.com/maynagashev/nextflix/internal/services"
)

// newRootCmd создает корневую команду. Конфигурация читается из .env и
// окружения до регистрации флагов, чтобы флаги могли ее перекрыть.
func newRootCmd() (*cobra.Command, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	cfg, err := config.FromEnv(os.LookupEnv)
	if err != nil {
		return nil, err
	}

	root := &cobra.Command{
		Use:           "nextflix-server",
		Short:         "Nextflix - сервер каталога фильмов и пользовательских списков",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	config.AddFlags(root.PersistentFlags(), cfg)

	root.AddCommand(newServeCmd(cfg))
	root.AddCommand(newMigrateCmd(cfg))
	root.AddCommand(newHashPasswordCmd(cfg))

	return root, nil
}

// newServeCmd создает команду запуска HTTP-сервера.
func newServeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP-сервер",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			log, err := logger.New(cfg.LogLevel, !cfg.IsProduction())
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err = run(ctx, cfg, log); err != nil {
				log.Error("Ошибка выполнения сервера", zap.Error(err))
				return err
			}
			return nil
		},
	}
}

// newMigrateCmd создает команду применения миграций PostgreSQL.
func newMigrateCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Применить миграции PostgreSQL",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.DatabaseDSN == "" {
				return errors.New("не указана строка подключения к БД (--database-dsn или DATABASE_DSN)")
			}
			log, err := logger.New(cfg.LogLevel, !cfg.IsProduction())
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			db, err := repository.NewPostgresDB(cmd.Context(), cfg.DatabaseDSN, log)
			if err != nil {
				return err
			}
			defer db.Close()

			return repository.Migrate(cmd.Context(), db, log)
		},
	}
}

// newHashPasswordCmd создает команду, печатающую bcrypt-хеш пароля.
func newHashPasswordCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Вывести bcrypt-хеш пароля (для заполнения тестовых данных)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hasher, err := services.NewBcryptHasher(cfg.BcryptCost)
			if err != nil {
				return err
			}
			digest, err := hasher.Hash(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), digest)
			return err
		},
	}
}

