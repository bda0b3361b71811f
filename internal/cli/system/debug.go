package system

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/julianstephens/dayflow/internal/cli"
	"github.com/julianstephens/dayflow/internal/logger"
)

type DebugCmd struct {
	DBPath  DebugDBPathCmd  `cmd:"" name:"db-path" help:"Show database path."`
	Keys    DebugKeysCmd    `cmd:"" help:"List stored keys."`
	DumpKey DebugDumpKeyCmd `cmd:"" name:"dump-key" help:"Dump a stored value as JSON."`
	LogPath DebugLogPathCmd `cmd:"" name:"log-path" help:"Show the log file path."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	out, err := json.MarshalIndent(map[string]string{"path": ctx.Store.GetConfigPath()}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

type DebugKeysCmd struct{}

func (cmd *DebugKeysCmd) Run(ctx *cli.Context) error {
	keys, err := ctx.Store.Keys()
	if err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}
	for _, k := range keys {
		fmt.Println(k)
	}
	return nil
}

type DebugDumpKeyCmd struct {
	Key string `arg:"" help:"Key to dump (tasks, settings, user)."`
}

func (cmd *DebugDumpKeyCmd) Run(ctx *cli.Context) error {
	raw, err := ctx.Store.Get(cmd.Key)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", cmd.Key, err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("stored value for %s is not valid JSON: %w", cmd.Key, err)
	}
	fmt.Println(buf.String())
	return nil
}

type DebugLogPathCmd struct{}

func (cmd *DebugLogPathCmd) Run(ctx *cli.Context) error {
	path := logger.Path()
	if path == "" {
		return fmt.Errorf("logging is not initialized")
	}
	fmt.Println(path)
	return nil
}
