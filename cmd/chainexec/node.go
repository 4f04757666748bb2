package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/goodnatureofminers/chainexec/internal/executor"
	"go.uber.org/zap"
)

type initchainCommand struct{}

func (c *initchainCommand) Execute([]string) error {
	e, err := executor.NewFromFile(options.Config, os.Stdout, os.Stderr)
	if err != nil {
		return err
	}
	defer e.Close()
	return e.InitChain()
}

type runCommand struct{}

func (c *runCommand) Execute([]string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e, err := executor.NewFromFile(options.Config, os.Stdout, os.Stderr)
	if err != nil {
		return err
	}
	defer e.Close()

	if err := e.RunWait(ctx); err != nil {
		e.Logger().Error("node failed", zap.Error(err))
		return err
	}
	return nil
}
